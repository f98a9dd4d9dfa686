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

package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
)

const (
	// fieldManager is the server-side-apply identity for every mutation the
	// operator issues. Keeping it stable lets subsequent applies remove
	// fields the operator stops setting.
	fieldManager = "operator.freqtrade.io"

	// rolloutAnnotation is patched onto the pod template to force a
	// rollout when the config contents change.
	rolloutAnnotation = "kube.kubernetes.io/restartedAt"
)

// apply server-side-applies obj under the operator's field manager. The
// object's GVK must be populated for an apply patch, so it is resolved from
// the scheme first.
func (r *BotReconciler) apply(ctx context.Context, obj client.Object) error {
	gvk, err := apiutil.GVKForObject(obj, r.Scheme)
	if err != nil {
		return errors.Wrap(err, "resolving GVK for apply")
	}
	obj.GetObjectKind().SetGroupVersionKind(gvk)

	return r.Client.Patch(ctx, obj, client.Apply, client.ForceOwnership, client.FieldOwner(fieldManager))
}

// deleteObject removes obj, treating an already-gone object as success.
func (r *BotReconciler) deleteObject(ctx context.Context, obj client.Object) error {
	return client.IgnoreNotFound(r.Client.Delete(ctx, obj))
}

// mergePatch issues a JSON merge patch under the operator's field manager.
func (r *BotReconciler) mergePatch(ctx context.Context, obj client.Object, patch []byte) error {
	return r.Client.Patch(ctx, obj, client.RawPatch(types.MergePatchType, patch), client.FieldOwner(fieldManager))
}

// patchConfigHash records the incoming config hash on the Deployment.
func (r *BotReconciler) patchConfigHash(ctx context.Context, deployment *appsv1.Deployment, annotation, hash string) error {
	patch := fmt.Sprintf(`{"metadata":{"annotations":{%q:%q}}}`, annotation, hash)
	return r.mergePatch(ctx, deployment, []byte(patch))
}

// rollout restarts the Deployment's pods by stamping the pod template with
// the current time, the same mechanism kubectl rollout restart uses.
func (r *BotReconciler) rollout(ctx context.Context, deployment *appsv1.Deployment) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	patch := fmt.Sprintf(`{"spec":{"template":{"metadata":{"annotations":{%q:%q}}}}}`, rolloutAnnotation, timestamp)

	return r.mergePatch(ctx, deployment, []byte(patch))
}
