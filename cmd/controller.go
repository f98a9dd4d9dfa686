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

package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	ctrlcontroller "sigs.k8s.io/controller-runtime/pkg/controller"

	ftv1alpha1 "github.com/freqtrade/freqtrade-operator/api/v1alpha1"
	"github.com/freqtrade/freqtrade-operator/internal/controller"
)

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(ftv1alpha1.AddToScheme(scheme))

	rootCmd.AddCommand(controllerCmd)
}

var controllerCmd = &cobra.Command{
	Use:   "controller",
	Short: "Run the reconcile loop until signalled",
	Long: heredoc.Doc(`
		Watch Bot resources across all namespaces and converge their
		dependent objects with the declared specification. A SIGINT or
		SIGTERM lets in-flight reconciles complete before exiting.`),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runController()
	},
}

func runController() error {
	setupLogging()
	setupLog := ctrl.Log.WithName("setup")

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme: scheme,
	})
	if err != nil {
		return errors.Wrap(err, "creating manager")
	}

	reconciler := &controller.BotReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Config: cfg,
	}
	if err := reconciler.SetupWithManager(mgr, ctrlcontroller.Options{}); err != nil {
		return errors.Wrap(err, "setting up Bot controller")
	}

	setupLog.Info("Starting manager")

	return mgr.Start(ctrl.SetupSignalHandler())
}
