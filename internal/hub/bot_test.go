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

package hub

import (
	"testing"

	. "github.com/onsi/gomega"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	ftv1alpha1 "github.com/freqtrade/freqtrade-operator/api/v1alpha1"
)

func minimalWireBot() *ftv1alpha1.Bot {
	return &ftv1alpha1.Bot{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "trader",
			Namespace: "ns",
		},
		Spec: ftv1alpha1.BotSpec{
			Exchange: "binance",
			Strategy: ftv1alpha1.BotStrategySpec{Name: "SampleStrategy"},
			Secrets:  ftv1alpha1.BotSecrets{},
		},
	}
}

func TestFromV1Alpha1Defaults(t *testing.T) {
	g := NewWithT(t)

	bot := FromV1Alpha1(minimalWireBot())

	g.Expect(bot.Spec.Database).To(Equal(DefaultDatabaseURL))
	g.Expect(bot.Spec.API).To(Equal(BotAPISpec{Enabled: true, Host: "0.0.0.0", Port: 8080}))
	g.Expect(bot.Spec.Service.ServiceType).To(Equal("ClusterIP"))
	g.Expect(bot.Spec.PVC).To(Equal(BotPVCSpec{Enabled: true, Size: "1Gi"}))
	g.Expect(bot.Spec.Model).To(BeNil())
	g.Expect(bot.Status).To(BeNil())
}

func TestFromV1Alpha1PartialBlocksKeepDefaults(t *testing.T) {
	g := NewWithT(t)

	in := minimalWireBot()
	in.Spec.API = &ftv1alpha1.BotAPISpec{Port: 9090}
	in.Spec.PVC = &ftv1alpha1.BotPVCSpec{Enabled: ptr.To(false)}
	in.Spec.Service = &ftv1alpha1.BotServiceSpec{
		Ports: []ftv1alpha1.BotServicePort{{Name: "metrics", Port: 9100, TargetPort: "metrics"}},
	}

	bot := FromV1Alpha1(in)

	g.Expect(bot.Spec.API).To(Equal(BotAPISpec{Enabled: true, Host: "0.0.0.0", Port: 9090}))
	g.Expect(bot.Spec.PVC.Enabled).To(BeFalse())
	g.Expect(bot.Spec.PVC.Size).To(Equal("1Gi"))
	g.Expect(bot.Spec.Service.ServiceType).To(Equal("ClusterIP"))
	g.Expect(bot.Spec.Service.Ports).To(HaveLen(1))
}

func TestFromV1Alpha1ModelNameDefault(t *testing.T) {
	g := NewWithT(t)

	in := minimalWireBot()
	in.Spec.Model = &ftv1alpha1.BotModelSpec{Source: "class Model: pass"}

	bot := FromV1Alpha1(in)

	g.Expect(bot.Spec.Model).NotTo(BeNil())
	g.Expect(bot.Spec.Model.Name).To(Equal(DefaultModelName))

	in.Spec.Model.Name = "CatboostRegressor"
	g.Expect(FromV1Alpha1(in).Spec.Model.Name).To(Equal("CatboostRegressor"))
}

func TestFromV1Alpha1Status(t *testing.T) {
	g := NewWithT(t)

	in := minimalWireBot()
	now := metav1.Now()
	in.Status = &ftv1alpha1.BotStatus{Phase: "running", LastUpdated: &now}

	bot := FromV1Alpha1(in)

	g.Expect(bot.Status).NotTo(BeNil())
	g.Expect(bot.Status.Phase).To(Equal(BotPhaseRunning))
	g.Expect(bot.Status.LastUpdated).NotTo(BeNil())
}

func TestFromV1Alpha1DoesNotAliasInput(t *testing.T) {
	g := NewWithT(t)

	in := minimalWireBot()
	in.Spec.Deployment.NodeSelector = map[string]string{"zone": "a"}
	in.Spec.Image.PullSecrets = []string{"regcred"}

	bot := FromV1Alpha1(in)
	bot.Spec.Deployment.NodeSelector["zone"] = "b"
	bot.Spec.Image.PullSecrets[0] = "other"

	g.Expect(in.Spec.Deployment.NodeSelector["zone"]).To(Equal("a"))
	g.Expect(in.Spec.Image.PullSecrets[0]).To(Equal("regcred"))
}

func TestEnsureAPIPort(t *testing.T) {
	g := NewWithT(t)

	svc := BotServiceSpec{}
	svc.EnsureAPIPort(8080)
	g.Expect(svc.Ports).To(Equal([]BotServicePort{{Name: "api", Port: 8080, TargetPort: "api"}}))

	// A user-declared api port wins.
	svc = BotServiceSpec{Ports: []BotServicePort{{Name: "api", Port: 443, TargetPort: "api"}}}
	svc.EnsureAPIPort(8080)
	g.Expect(svc.Ports).To(HaveLen(1))
	g.Expect(svc.Ports[0].Port).To(Equal(int32(443)))
}
