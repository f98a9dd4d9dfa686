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
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
)

// Drift detection answers, per kind, "does the observed object differ from
// the desired projection in a way that requires mutation?". The rules are
// asymmetric on purpose: a field the API server populated on its own (a
// server-side default) must not count as drift, or the operator would
// re-apply forever. A field the projection sets but the server lacks does.

// configMapDrifted reports whether the observed ConfigMap needs mutation.
func configMapDrifted(observed, desired *corev1.ConfigMap) bool {
	return !equality.Semantic.DeepEqual(observed.Data, desired.Data)
}

// pvcDrifted compares storage class only when both sides set it (the server
// may fill in the cluster default) and resource requests by equality.
func pvcDrifted(observed, desired *corev1.PersistentVolumeClaim) bool {
	if observed.Spec.StorageClassName != nil && desired.Spec.StorageClassName != nil &&
		*observed.Spec.StorageClassName != *desired.Spec.StorageClassName {
		return true
	}
	return !equality.Semantic.DeepEqual(observed.Spec.Resources, desired.Spec.Resources)
}

// serviceDrifted compares type, selector, and the port lists positionally.
// Port protocol defaults to TCP on either side.
func serviceDrifted(observed, desired *corev1.Service) bool {
	if observed.Spec.Type != desired.Spec.Type {
		return true
	}
	if !equality.Semantic.DeepEqual(observed.Spec.Selector, desired.Spec.Selector) {
		return true
	}
	for i := range min(len(observed.Spec.Ports), len(desired.Spec.Ports)) {
		op, dp := observed.Spec.Ports[i], desired.Spec.Ports[i]
		if op.Port != dp.Port ||
			op.Name != dp.Name ||
			op.TargetPort != dp.TargetPort ||
			protocolOrTCP(op.Protocol) != protocolOrTCP(dp.Protocol) {
			return true
		}
	}
	return false
}

func protocolOrTCP(p corev1.Protocol) corev1.Protocol {
	if p == "" {
		return corev1.ProtocolTCP
	}
	return p
}

// deploymentDrifted compares the fields the operator claims ownership of,
// tolerating server-side defaulting everywhere else.
func deploymentDrifted(observed, desired *appsv1.Deployment) bool {
	if !equality.Semantic.DeepEqual(observed.Spec.Replicas, desired.Spec.Replicas) {
		return true
	}

	observedPod := observed.Spec.Template.Spec
	desiredPod := desired.Spec.Template.Spec

	if len(observedPod.Containers) != len(desiredPod.Containers) {
		return true
	}
	for i := range observedPod.Containers {
		if containerDrifted(&observedPod.Containers[i], &desiredPod.Containers[i]) {
			return true
		}
	}

	if volumesDrifted(observedPod.Volumes, desiredPod.Volumes) {
		return true
	}

	// Node selector only counts when both sides set one.
	if len(observedPod.NodeSelector) > 0 && len(desiredPod.NodeSelector) > 0 &&
		!equality.Semantic.DeepEqual(observedPod.NodeSelector, desiredPod.NodeSelector) {
		return true
	}

	if !equality.Semantic.DeepEqual(observedPod.Affinity, desiredPod.Affinity) {
		return true
	}
	if !equality.Semantic.DeepEqual(observedPod.Tolerations, desiredPod.Tolerations) {
		return true
	}

	// Pod security context: one side unset means "use the default", which
	// is never drift.
	if observedPod.SecurityContext != nil && desiredPod.SecurityContext != nil &&
		!equality.Semantic.DeepEqual(observedPod.SecurityContext, desiredPod.SecurityContext) {
		return true
	}

	return !equality.Semantic.DeepEqual(observedPod.ImagePullSecrets, desiredPod.ImagePullSecrets)
}

func containerDrifted(observed, desired *corev1.Container) bool {
	if observed.Image != desired.Image {
		return true
	}
	if !equality.Semantic.DeepEqual(observed.Command, desired.Command) {
		return true
	}
	if containerPortsDrifted(observed.Ports, desired.Ports) {
		return true
	}
	// Pull policy only counts when both sides set it.
	if observed.ImagePullPolicy != "" && desired.ImagePullPolicy != "" &&
		observed.ImagePullPolicy != desired.ImagePullPolicy {
		return true
	}
	if envVarsDrifted(observed.Env, desired.Env) {
		return true
	}
	if !equality.Semantic.DeepEqual(observed.VolumeMounts, desired.VolumeMounts) {
		return true
	}
	// Resources only count when both sides set them.
	if len(observed.Resources.Limits)+len(observed.Resources.Requests) > 0 &&
		len(desired.Resources.Limits)+len(desired.Resources.Requests) > 0 &&
		!equality.Semantic.DeepEqual(observed.Resources, desired.Resources) {
		return true
	}
	// Container security context only counts when both sides set it.
	if observed.SecurityContext != nil && desired.SecurityContext != nil &&
		!equality.Semantic.DeepEqual(observed.SecurityContext, desired.SecurityContext) {
		return true
	}
	return false
}

func containerPortsDrifted(observed, desired []corev1.ContainerPort) bool {
	if len(observed) != len(desired) {
		return true
	}
	for i := range observed {
		if observed[i].ContainerPort != desired[i].ContainerPort ||
			observed[i].Name != desired[i].Name ||
			protocolOrTCP(observed[i].Protocol) != protocolOrTCP(desired[i].Protocol) {
			return true
		}
	}
	return false
}

// envVarsDrifted compares the lists as multisets keyed by name so that
// in-cluster reordering never looks like drift.
func envVarsDrifted(observed, desired []corev1.EnvVar) bool {
	if len(observed) != len(desired) {
		return true
	}
	o := append([]corev1.EnvVar(nil), observed...)
	d := append([]corev1.EnvVar(nil), desired...)
	sort.Slice(o, func(i, j int) bool { return o[i].Name < o[j].Name })
	sort.Slice(d, func(i, j int) bool { return d[i].Name < d[j].Name })
	return !equality.Semantic.DeepEqual(o, d)
}

// volumesDrifted compares the lists as multisets keyed by name.
func volumesDrifted(observed, desired []corev1.Volume) bool {
	if len(observed) != len(desired) {
		return true
	}
	o := append([]corev1.Volume(nil), observed...)
	d := append([]corev1.Volume(nil), desired...)
	sort.Slice(o, func(i, j int) bool { return o[i].Name < o[j].Name })
	sort.Slice(d, func(i, j int) bool { return d[i].Name < d[j].Name })
	for i := range o {
		if !volumesEqual(&o[i], &d[i]) {
			return true
		}
	}
	return false
}

// volumesEqual is structural equality with one tolerance: for ConfigMap
// volumes the server defaults defaultMode to 420, so 420 and unset compare
// equal.
func volumesEqual(a, b *corev1.Volume) bool {
	if equality.Semantic.DeepEqual(a, b) {
		return true
	}
	if a.ConfigMap == nil || b.ConfigMap == nil {
		return false
	}
	if a.Name != b.Name ||
		a.ConfigMap.Name != b.ConfigMap.Name ||
		!equality.Semantic.DeepEqual(a.ConfigMap.Items, b.ConfigMap.Items) ||
		!equality.Semantic.DeepEqual(a.ConfigMap.Optional, b.ConfigMap.Optional) {
		return false
	}
	return defaultModeOr420(a.ConfigMap.DefaultMode) == defaultModeOr420(b.ConfigMap.DefaultMode)
}

func defaultModeOr420(mode *int32) int32 {
	if mode == nil {
		return 420
	}
	return *mode
}
