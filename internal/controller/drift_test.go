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
	"testing"

	. "github.com/onsi/gomega"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/utils/ptr"

	ftv1alpha1 "github.com/freqtrade/freqtrade-operator/api/v1alpha1"
)

// A fresh projection must never report drift against itself: otherwise the
// operator would mutate forever.
func TestProjectionNeverDriftsAgainstItself(t *testing.T) {
	g := NewWithT(t)

	bot := testBot(func(b *ftv1alpha1.Bot) {
		b.Spec.Model = &ftv1alpha1.BotModelSpec{Source: "class M: pass"}
		b.Spec.Deployment.Env = []corev1.EnvVar{{Name: "EXTRA", Value: "1"}}
		b.Spec.Deployment.NodeSelector = map[string]string{"zone": "a"}
	})
	owner := testOwner()

	g.Expect(configMapDrifted(
		botConfigMap(bot, "trader", "ns", owner, testControllerConfig),
		botConfigMap(bot, "trader", "ns", owner, testControllerConfig),
	)).To(BeFalse())
	g.Expect(pvcDrifted(
		botPersistentVolumeClaim(bot, "trader", "ns", owner, testControllerConfig),
		botPersistentVolumeClaim(bot, "trader", "ns", owner, testControllerConfig),
	)).To(BeFalse())
	g.Expect(deploymentDrifted(
		botDeployment(bot, "trader", "ns", owner, testControllerConfig),
		botDeployment(bot, "trader", "ns", owner, testControllerConfig),
	)).To(BeFalse())
	g.Expect(serviceDrifted(
		botService(bot, "trader", "ns", owner, testControllerConfig),
		botService(bot, "trader", "ns", owner, testControllerConfig),
	)).To(BeFalse())
}

func TestConfigMapDrift(t *testing.T) {
	g := NewWithT(t)

	bot := testBot()
	owner := testOwner()

	desired := botConfigMap(bot, "trader", "ns", owner, testControllerConfig)
	observed := desired.DeepCopy()
	g.Expect(configMapDrifted(observed, desired)).To(BeFalse())

	observed.Data["config.json"] = `{"dry_run":false}`
	g.Expect(configMapDrifted(observed, desired)).To(BeTrue())
}

func TestPVCDriftToleratesServerDefaultedStorageClass(t *testing.T) {
	g := NewWithT(t)

	bot := testBot()
	owner := testOwner()

	desired := botPersistentVolumeClaim(bot, "trader", "ns", owner, testControllerConfig)
	observed := desired.DeepCopy()

	// The server fills in the cluster default when the claim omits one.
	observed.Spec.StorageClassName = ptr.To("standard")
	g.Expect(pvcDrifted(observed, desired)).To(BeFalse())

	desired.Spec.StorageClassName = ptr.To("fast")
	g.Expect(pvcDrifted(observed, desired)).To(BeTrue())
}

func TestPVCDriftOnResize(t *testing.T) {
	g := NewWithT(t)

	bot := testBot()
	owner := testOwner()

	desired := botPersistentVolumeClaim(bot, "trader", "ns", owner, testControllerConfig)
	observed := desired.DeepCopy()
	observed.Spec.Resources.Requests[corev1.ResourceStorage] = resource.MustParse("5Gi")

	g.Expect(pvcDrifted(observed, desired)).To(BeTrue())
}

func TestServiceDrift(t *testing.T) {
	g := NewWithT(t)

	bot := testBot()
	owner := testOwner()

	desired := botService(bot, "trader", "ns", owner, testControllerConfig)
	observed := desired.DeepCopy()

	// Server-side port protocol defaulting is not drift.
	observed.Spec.Ports[0].Protocol = corev1.ProtocolTCP
	g.Expect(serviceDrifted(observed, desired)).To(BeFalse())

	// A surplus observed port beyond the desired list is tolerated; ports
	// are compared pairwise up to the shorter list.
	observed.Spec.Ports = append(observed.Spec.Ports, corev1.ServicePort{Name: "extra", Port: 9100})
	g.Expect(serviceDrifted(observed, desired)).To(BeFalse())

	observed.Spec.Ports[0].Port = 9999
	g.Expect(serviceDrifted(observed, desired)).To(BeTrue())

	observed = desired.DeepCopy()
	observed.Spec.Type = corev1.ServiceTypeNodePort
	g.Expect(serviceDrifted(observed, desired)).To(BeTrue())
}

func TestDeploymentDriftToleratesServerDefaults(t *testing.T) {
	g := NewWithT(t)

	bot := testBot()
	owner := testOwner()

	desired := botDeployment(bot, "trader", "ns", owner, testControllerConfig)
	observed := desired.DeepCopy()

	observed.Spec.Template.Spec.NodeSelector = map[string]string{"kubernetes.io/os": "linux"}
	observed.Spec.Template.Spec.SecurityContext = &corev1.PodSecurityContext{FSGroup: ptr.To(int64(1000))}
	observed.Spec.Template.Spec.Containers[0].ImagePullPolicy = corev1.PullIfNotPresent
	observed.Spec.Template.Spec.Containers[0].SecurityContext = &corev1.SecurityContext{}
	observed.Spec.Template.Spec.Containers[0].Resources = corev1.ResourceRequirements{
		Requests: corev1.ResourceList{corev1.ResourceCPU: resource.MustParse("100m")},
	}
	observed.Spec.Template.Spec.Volumes[0].ConfigMap.DefaultMode = ptr.To(int32(420))

	g.Expect(deploymentDrifted(observed, desired)).To(BeFalse())
}

func TestDeploymentDriftIgnoresReordering(t *testing.T) {
	g := NewWithT(t)

	bot := testBot(func(b *ftv1alpha1.Bot) {
		b.Spec.Deployment.Env = []corev1.EnvVar{{Name: "EXTRA", Value: "1"}}
	})
	owner := testOwner()

	desired := botDeployment(bot, "trader", "ns", owner, testControllerConfig)
	observed := desired.DeepCopy()

	env := observed.Spec.Template.Spec.Containers[0].Env
	env[0], env[len(env)-1] = env[len(env)-1], env[0]
	volumes := observed.Spec.Template.Spec.Volumes
	volumes[0], volumes[1] = volumes[1], volumes[0]

	g.Expect(deploymentDrifted(observed, desired)).To(BeFalse())
}

func TestDeploymentDriftDetectsOwnedFieldChanges(t *testing.T) {
	g := NewWithT(t)

	bot := testBot()
	owner := testOwner()
	desired := botDeployment(bot, "trader", "ns", owner, testControllerConfig)

	cases := map[string]func(*appsv1.Deployment){
		"image": func(d *appsv1.Deployment) {
			d.Spec.Template.Spec.Containers[0].Image = "example/ft:old"
		},
		"command": func(d *appsv1.Deployment) {
			d.Spec.Template.Spec.Containers[0].Command = []string{"sleep", "infinity"}
		},
		"env value": func(d *appsv1.Deployment) {
			d.Spec.Template.Spec.Containers[0].Env[0].Value = "Other"
		},
		"container port": func(d *appsv1.Deployment) {
			d.Spec.Template.Spec.Containers[0].Ports[0].ContainerPort = 9999
		},
		"replicas": func(d *appsv1.Deployment) {
			d.Spec.Replicas = ptr.To(int32(2))
		},
		"extra container": func(d *appsv1.Deployment) {
			d.Spec.Template.Spec.Containers = append(d.Spec.Template.Spec.Containers, corev1.Container{Name: "extra"})
		},
		"volume source": func(d *appsv1.Deployment) {
			d.Spec.Template.Spec.Volumes[0].ConfigMap.Name = "other"
		},
	}

	for name, mutate := range cases {
		observed := desired.DeepCopy()
		mutate(observed)
		g.Expect(deploymentDrifted(observed, desired)).To(BeTrue(), name)
	}
}

func TestDeploymentDriftBothSetComparisons(t *testing.T) {
	g := NewWithT(t)

	bot := testBot(func(b *ftv1alpha1.Bot) {
		b.Spec.Image.PullPolicy = "Always"
		b.Spec.Deployment.Resources = &corev1.ResourceRequirements{
			Limits: corev1.ResourceList{corev1.ResourceCPU: resource.MustParse("1")},
		}
	})
	owner := testOwner()
	desired := botDeployment(bot, "trader", "ns", owner, testControllerConfig)

	observed := desired.DeepCopy()
	observed.Spec.Template.Spec.Containers[0].ImagePullPolicy = corev1.PullIfNotPresent
	g.Expect(deploymentDrifted(observed, desired)).To(BeTrue())

	observed = desired.DeepCopy()
	observed.Spec.Template.Spec.Containers[0].Resources.Limits[corev1.ResourceCPU] = resource.MustParse("2")
	g.Expect(deploymentDrifted(observed, desired)).To(BeTrue())
}
