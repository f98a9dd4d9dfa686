/*
Copyright 2025 The Freqtrade Operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package controller provides aliases for internal controller types so that
external programs can embed the Bot reconciler in their own managers.
*/
package controller

import (
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"

	"github.com/freqtrade/freqtrade-operator/internal/config"
	internalcontroller "github.com/freqtrade/freqtrade-operator/internal/controller"
)

// BotReconciler wraps the internal BotReconciler.
type BotReconciler struct {
	Client client.Client
	Scheme *runtime.Scheme
	Config *config.Config
}

// SetupWithManager sets up the BotReconciler with the Manager.
func (r *BotReconciler) SetupWithManager(mgr ctrl.Manager, options controller.Options) error {
	return (&internalcontroller.BotReconciler{
		Client: r.Client,
		Scheme: r.Scheme,
		Config: r.Config,
	}).SetupWithManager(mgr, options)
}
