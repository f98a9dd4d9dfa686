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
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/workqueue"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	ftv1alpha1 "github.com/freqtrade/freqtrade-operator/api/v1alpha1"
	"github.com/freqtrade/freqtrade-operator/internal/config"
	"github.com/freqtrade/freqtrade-operator/internal/hub"
)

// requeueInterval bounds self-healing latency: every reconcile, successful
// or not, schedules the next one this far out.
const requeueInterval = 30 * time.Second

// BotReconciler converges the dependent objects of every Bot with its
// declared specification.
type BotReconciler struct {
	Client client.Client
	Scheme *runtime.Scheme
	Config *config.Config
}

func (r *BotReconciler) SetupWithManager(mgr ctrl.Manager, options controller.Options) error {
	if options.RateLimiter == nil {
		options.RateLimiter = workqueue.NewTypedItemExponentialFailureRateLimiter[reconcile.Request](requeueInterval, requeueInterval)
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&ftv1alpha1.Bot{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&corev1.PersistentVolumeClaim{}).
		WithOptions(options).
		Complete(r)
}

func (r *BotReconciler) Reconcile(ctx context.Context, req reconcile.Request) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	bot := &ftv1alpha1.Bot{}
	if err := r.Client.Get(ctx, req.NamespacedName, bot); err != nil {
		if apierrors.IsNotFound(err) {
			// Dependents are garbage-collected via owner references.
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if bot.Namespace == "" {
		return ctrl.Result{}, errors.New("expected Bot to be namespaced via metadata.namespace")
	}

	owner, err := controllerOwnerRef(bot)
	if err != nil {
		return ctrl.Result{}, err
	}

	if !bot.DeletionTimestamp.IsZero() {
		if controllerutil.ContainsFinalizer(bot, ftv1alpha1.BotFinalizer) {
			if err := r.reconcileDelete(ctx, bot); err != nil {
				return ctrl.Result{}, err
			}

			controllerutil.RemoveFinalizer(bot, ftv1alpha1.BotFinalizer)
			if err := r.Client.Update(ctx, bot); err != nil {
				return ctrl.Result{}, errors.Wrap(err, "removing finalizer")
			}
		}

		return ctrl.Result{}, nil
	}

	// Add the finalizer first to avoid racing the deletion path.
	if !controllerutil.ContainsFinalizer(bot, ftv1alpha1.BotFinalizer) {
		controllerutil.AddFinalizer(bot, ftv1alpha1.BotFinalizer)
		if err := r.Client.Update(ctx, bot); err != nil {
			return ctrl.Result{}, errors.Wrap(err, "adding finalizer")
		}

		log.Info("Added finalizer")

		return ctrl.Result{}, nil
	}

	return r.reconcileNormal(ctx, bot, owner)
}

// controllerOwnerRef builds the owner reference every dependent object
// carries. A Bot that has not been assigned a UID yet cannot own anything.
func controllerOwnerRef(bot *ftv1alpha1.Bot) (metav1.OwnerReference, error) {
	if bot.UID == "" {
		return metav1.OwnerReference{}, errors.New("expected Bot to have a UID for its owner reference")
	}

	return metav1.OwnerReference{
		APIVersion:         ftv1alpha1.GroupVersion.String(),
		Kind:               "Bot",
		Name:               bot.Name,
		UID:                bot.UID,
		Controller:         ptr.To(true),
		BlockOwnerDeletion: ptr.To(true),
	}, nil
}

func (r *BotReconciler) reconcileNormal(ctx context.Context, bot *ftv1alpha1.Bot, owner metav1.OwnerReference) (ctrl.Result, error) {
	log := ctrl.LoggerFrom(ctx)

	hubBot := hub.FromV1Alpha1(bot)
	name, namespace := bot.Name, bot.Namespace

	desiredConfigMap := botConfigMap(hubBot, name, namespace, owner, &r.Config.Controller)
	desiredPVC := botPersistentVolumeClaim(hubBot, name, namespace, owner, &r.Config.Controller)
	desiredDeployment := botDeployment(hubBot, name, namespace, owner, &r.Config.Controller)
	desiredService := botService(hubBot, name, namespace, owner, &r.Config.Controller)

	key := types.NamespacedName{Name: name, Namespace: namespace}

	configMap, err := getIgnoreNotFound(ctx, r.Client, key, &corev1.ConfigMap{})
	if err != nil {
		return ctrl.Result{}, err
	}
	pvc, err := getIgnoreNotFound(ctx, r.Client, key, &corev1.PersistentVolumeClaim{})
	if err != nil {
		return ctrl.Result{}, err
	}
	deployment, err := getIgnoreNotFound(ctx, r.Client, key, &appsv1.Deployment{})
	if err != nil {
		return ctrl.Result{}, err
	}
	service, err := getIgnoreNotFound(ctx, r.Client, key, &corev1.Service{})
	if err != nil {
		return ctrl.Result{}, err
	}

	currentConfigHash := ""
	if deployment != nil {
		currentConfigHash = deployment.Annotations[ftv1alpha1.ConfigHashAnnotation]
	}

	// A hash failure must never trigger a rollout; the empty hash is
	// written to the annotation and stays empty until the data serialises.
	incomingConfigHash, err := computeObjectHash(desiredConfigMap.Data)
	if err != nil {
		log.Error(err, "Failed to hash ConfigMap data")

		incomingConfigHash = ""
	}

	if bot.Status == nil {
		log.Info("Updating Bot status", "phase", hub.BotPhasePending)

		if err := r.updateStatus(ctx, bot, hub.BotPhasePending); err != nil {
			return ctrl.Result{}, err
		}
	}

	if configMap == nil || configMapDrifted(configMap, desiredConfigMap) {
		log.Info("Applying ConfigMap")

		if err := r.apply(ctx, desiredConfigMap); err != nil {
			return ctrl.Result{}, errors.Wrap(err, "applying ConfigMap")
		}
	}

	if hubBot.Spec.PVC.Enabled {
		if pvc == nil || pvcDrifted(pvc, desiredPVC) {
			log.Info("Applying PersistentVolumeClaim")

			if err := r.apply(ctx, desiredPVC); err != nil {
				return ctrl.Result{}, errors.Wrap(err, "applying PersistentVolumeClaim")
			}
		}
	} else if pvc != nil {
		log.Info("Deleting PersistentVolumeClaim")

		if err := r.deleteObject(ctx, pvc); err != nil {
			return ctrl.Result{}, errors.Wrap(err, "deleting PersistentVolumeClaim")
		}
	}

	if deployment == nil || deploymentDrifted(deployment, desiredDeployment) {
		log.Info("Applying Deployment")

		if err := r.apply(ctx, desiredDeployment); err != nil {
			return ctrl.Result{}, errors.Wrap(err, "applying Deployment")
		}

		// The apply response carries the server's view, including status.
		deployment = desiredDeployment
	}

	if currentConfigHash != incomingConfigHash {
		if err := r.patchConfigHash(ctx, deployment, ftv1alpha1.ConfigHashAnnotation, incomingConfigHash); err != nil {
			return ctrl.Result{}, errors.Wrap(err, "patching config hash")
		}

		// Skip the rollout on first materialisation: an empty current hash
		// means the Deployment never carried one.
		if currentConfigHash != "" {
			log.Info("Rolling out Deployment")

			if err := r.rollout(ctx, deployment); err != nil {
				return ctrl.Result{}, errors.Wrap(err, "rolling out Deployment")
			}
		}
	}

	phase := phaseForDeployment(deployment)
	if bot.Status == nil || string(phase) != bot.Status.Phase {
		log.Info("Updating Bot status", "phase", phase)

		if err := r.updateStatus(ctx, bot, phase); err != nil {
			return ctrl.Result{}, err
		}
	}

	if hubBot.Spec.API.Enabled {
		if service == nil || serviceDrifted(service, desiredService) {
			log.Info("Applying Service")

			if err := r.apply(ctx, desiredService); err != nil {
				return ctrl.Result{}, errors.Wrap(err, "applying Service")
			}
		}
	} else if service != nil {
		log.Info("Deleting Service")

		if err := r.deleteObject(ctx, service); err != nil {
			return ctrl.Result{}, errors.Wrap(err, "deleting Service")
		}
	}

	return ctrl.Result{RequeueAfter: requeueInterval}, nil
}

// reconcileDelete records the terminal phase; the owned objects are
// cascade-deleted by the API server once the finalizer is removed.
// Repeating it is a no-op beyond the status patch.
func (r *BotReconciler) reconcileDelete(ctx context.Context, bot *ftv1alpha1.Bot) error {
	ctrl.LoggerFrom(ctx).Info("Updating Bot status", "phase", hub.BotPhaseDeleting)

	return r.updateStatus(ctx, bot, hub.BotPhaseDeleting)
}

// updateStatus merge-patches the status subresource with the given phase
// and a fresh lastUpdated timestamp.
func (r *BotReconciler) updateStatus(ctx context.Context, bot *ftv1alpha1.Bot, phase hub.BotPhase) error {
	now := metav1.Now()
	payload, err := json.Marshal(map[string]ftv1alpha1.BotStatus{
		"status": {Phase: string(phase), LastUpdated: &now},
	})
	if err != nil {
		return errors.Wrap(err, "marshalling status patch")
	}

	if err := r.Client.Status().Patch(ctx, bot, client.RawPatch(types.MergePatchType, payload), client.FieldOwner(fieldManager)); err != nil {
		return errors.Wrap(err, "patching Bot status")
	}

	bot.Status = &ftv1alpha1.BotStatus{Phase: string(phase), LastUpdated: &now}

	return nil
}

// phaseForDeployment derives the Bot phase from the Deployment conditions.
// The derivation is pure and idempotent; there is no independent state.
func phaseForDeployment(deployment *appsv1.Deployment) hub.BotPhase {
	if deployment == nil {
		return hub.BotPhasePending
	}
	for _, c := range deployment.Status.Conditions {
		if c.Type == appsv1.DeploymentProgressing && c.Status == corev1.ConditionFalse {
			return hub.BotPhaseError
		}
	}
	for _, c := range deployment.Status.Conditions {
		if c.Type == appsv1.DeploymentAvailable && c.Status == corev1.ConditionTrue {
			return hub.BotPhaseRunning
		}
	}
	return hub.BotPhasePending
}

// getIgnoreNotFound fetches key into obj, mapping a 404 to a nil object.
func getIgnoreNotFound[T client.Object](ctx context.Context, c client.Client, key types.NamespacedName, obj T) (T, error) {
	var zero T
	if err := c.Get(ctx, key, obj); err != nil {
		if apierrors.IsNotFound(err) {
			return zero, nil
		}
		return zero, err
	}
	return obj, nil
}
