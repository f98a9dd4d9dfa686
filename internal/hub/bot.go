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

// Package hub holds the version-agnostic form of the Bot resource. Wire
// versions are converted into it at ingress and all downstream logic
// (projection, drift detection, reconciliation) operates on it alone.
package hub

import (
	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	ftv1alpha1 "github.com/freqtrade/freqtrade-operator/api/v1alpha1"
)

// BotPhase is the lifecycle phase recorded in the Bot status.
type BotPhase string

const (
	BotPhasePending  BotPhase = "pending"
	BotPhaseRunning  BotPhase = "running"
	BotPhaseError    BotPhase = "error"
	BotPhaseDeleting BotPhase = "deleting"
)

const (
	// DefaultDatabaseURL is used when the spec omits a database URL.
	DefaultDatabaseURL = "sqlite:///database.db"

	// DefaultModelName is used when a model is declared without a name.
	DefaultModelName = "LightGBMRegressor"
)

// Bot is the hub form of the custom resource.
type Bot struct {
	ObjectMeta metav1.ObjectMeta
	Spec       BotSpec
	Status     *BotStatus
}

// BotSpec is the hub form of the desired state. Optional blocks that have
// operator-level defaults (api, service, pvc) are fully resolved here, so
// projection never needs to consider absence.
type BotSpec struct {
	Exchange   string
	Database   string
	Config     map[string]apiextensionsv1.JSON
	Strategy   BotStrategySpec
	Model      *BotModelSpec
	Image      BotImageSpec
	Secrets    BotSecrets
	API        BotAPISpec
	Service    BotServiceSpec
	PVC        BotPVCSpec
	Deployment BotDeploymentSpec
}

// BotStatus is the hub form of the observed state.
type BotStatus struct {
	Phase       BotPhase
	LastUpdated *metav1.Time
}

type BotStrategySpec struct {
	Name          string
	ConfigMapName string
	Source        string
}

type BotModelSpec struct {
	Name          string
	ConfigMapName string
	Source        string
}

type BotImageSpec struct {
	Repository  string
	Tag         string
	PullPolicy  string
	PullSecrets []string
}

type BotSecrets struct {
	Exchange *ExchangeSecrets
	API      *APISecrets
	Telegram *TelegramSecrets
}

type ExchangeSecrets struct {
	Key      *SecretItem
	Secret   *SecretItem
	Password *SecretItem
	UID      *SecretItem
}

type APISecrets struct {
	Username     *SecretItem
	Password     *SecretItem
	WSToken      *SecretItem
	JWTSecretKey *SecretItem
}

type TelegramSecrets struct {
	Token  *SecretItem
	ChatID string
}

// SecretItem is either an inline value or a reference to a key in an
// existing Secret. Exactly one of the fields is set.
type SecretItem struct {
	Value        *string
	SecretKeyRef *SecretKeyRef
}

type SecretKeyRef struct {
	Name string
	Key  string
}

type BotAPISpec struct {
	Enabled bool
	Host    string
	Port    int32
}

type BotServiceSpec struct {
	ServiceType string
	Annotations map[string]string
	Labels      map[string]string
	Ports       []BotServicePort
}

// EnsureAPIPort appends a port named "api" targeting the container's api
// port unless the user already declared one; a user-declared api port wins.
func (s *BotServiceSpec) EnsureAPIPort(apiPort int32) {
	for _, p := range s.Ports {
		if p.Name == "api" {
			return
		}
	}
	s.Ports = append(s.Ports, BotServicePort{Name: "api", Port: apiPort, TargetPort: "api"})
}

type BotServicePort struct {
	Name       string
	Port       int32
	TargetPort string
}

type BotPVCSpec struct {
	Enabled      bool
	Annotations  map[string]string
	Labels       map[string]string
	StorageClass string
	Size         string
}

type BotDeploymentSpec struct {
	Command            []string
	Annotations        map[string]string
	Labels             map[string]string
	NodeSelector       map[string]string
	Resources          *corev1.ResourceRequirements
	Affinity           *corev1.Affinity
	Tolerations        []corev1.Toleration
	PodSecurityContext *corev1.PodSecurityContext
	SecurityContext    *corev1.SecurityContext
	Containers         []corev1.Container
	InitContainers     []corev1.Container
	Volumes            []corev1.Volume
	VolumeMounts       []corev1.VolumeMount
	Env                []corev1.EnvVar
}

// FromV1Alpha1 converts a wire-form Bot into the hub form, applying the
// schema defaults the wire version leaves implicit. The input is not
// mutated.
func FromV1Alpha1(in *ftv1alpha1.Bot) *Bot {
	out := &Bot{
		ObjectMeta: *in.ObjectMeta.DeepCopy(),
		Spec:       specFromV1Alpha1(&in.Spec),
	}
	if in.Status != nil {
		out.Status = &BotStatus{
			Phase:       BotPhase(in.Status.Phase),
			LastUpdated: in.Status.LastUpdated.DeepCopy(),
		}
	}
	return out
}

func specFromV1Alpha1(in *ftv1alpha1.BotSpec) BotSpec {
	spec := BotSpec{
		Exchange: in.Exchange,
		Database: in.Database,
		Strategy: BotStrategySpec{
			Name:          in.Strategy.Name,
			ConfigMapName: in.Strategy.ConfigMapName,
			Source:        in.Strategy.Source,
		},
		Image: BotImageSpec{
			Repository: in.Image.Repository,
			Tag:        in.Image.Tag,
			PullPolicy: in.Image.PullPolicy,
		},
		Secrets:    secretsFromV1Alpha1(&in.Secrets),
		API:        apiFromV1Alpha1(in.API),
		Service:    serviceFromV1Alpha1(in.Service),
		PVC:        pvcFromV1Alpha1(in.PVC),
		Deployment: deploymentFromV1Alpha1(&in.Deployment),
	}
	if spec.Database == "" {
		spec.Database = DefaultDatabaseURL
	}
	if len(in.Config) > 0 {
		spec.Config = make(map[string]apiextensionsv1.JSON, len(in.Config))
		for k, v := range in.Config {
			spec.Config[k] = *v.DeepCopy()
		}
	}
	if in.Model != nil {
		spec.Model = &BotModelSpec{
			Name:          in.Model.Name,
			ConfigMapName: in.Model.ConfigMapName,
			Source:        in.Model.Source,
		}
		if spec.Model.Name == "" {
			spec.Model.Name = DefaultModelName
		}
	}
	if len(in.Image.PullSecrets) > 0 {
		spec.Image.PullSecrets = append([]string(nil), in.Image.PullSecrets...)
	}
	return spec
}

func apiFromV1Alpha1(in *ftv1alpha1.BotAPISpec) BotAPISpec {
	api := BotAPISpec{Enabled: true, Host: "0.0.0.0", Port: 8080}
	if in == nil {
		return api
	}
	if in.Enabled != nil {
		api.Enabled = *in.Enabled
	}
	if in.Host != "" {
		api.Host = in.Host
	}
	if in.Port != 0 {
		api.Port = in.Port
	}
	return api
}

func serviceFromV1Alpha1(in *ftv1alpha1.BotServiceSpec) BotServiceSpec {
	svc := BotServiceSpec{ServiceType: "ClusterIP"}
	if in == nil {
		return svc
	}
	if in.ServiceType != "" {
		svc.ServiceType = in.ServiceType
	}
	svc.Annotations = copyStringMap(in.Annotations)
	svc.Labels = copyStringMap(in.Labels)
	for _, p := range in.Ports {
		svc.Ports = append(svc.Ports, BotServicePort{Name: p.Name, Port: p.Port, TargetPort: p.TargetPort})
	}
	return svc
}

func pvcFromV1Alpha1(in *ftv1alpha1.BotPVCSpec) BotPVCSpec {
	pvc := BotPVCSpec{Enabled: true, Size: "1Gi"}
	if in == nil {
		return pvc
	}
	if in.Enabled != nil {
		pvc.Enabled = *in.Enabled
	}
	if in.Size != "" {
		pvc.Size = in.Size
	}
	pvc.Annotations = copyStringMap(in.Annotations)
	pvc.Labels = copyStringMap(in.Labels)
	pvc.StorageClass = in.StorageClass
	return pvc
}

func deploymentFromV1Alpha1(in *ftv1alpha1.BotDeploymentSpec) BotDeploymentSpec {
	d := BotDeploymentSpec{
		Annotations:  copyStringMap(in.Annotations),
		Labels:       copyStringMap(in.Labels),
		NodeSelector: copyStringMap(in.NodeSelector),
	}
	if in.Command != nil {
		d.Command = append([]string(nil), in.Command...)
	}
	if in.Resources != nil {
		d.Resources = in.Resources.DeepCopy()
	}
	if in.Affinity != nil {
		d.Affinity = in.Affinity.DeepCopy()
	}
	for _, t := range in.Tolerations {
		d.Tolerations = append(d.Tolerations, *t.DeepCopy())
	}
	if in.PodSecurityContext != nil {
		d.PodSecurityContext = in.PodSecurityContext.DeepCopy()
	}
	if in.SecurityContext != nil {
		d.SecurityContext = in.SecurityContext.DeepCopy()
	}
	for _, c := range in.Containers {
		d.Containers = append(d.Containers, *c.DeepCopy())
	}
	for _, c := range in.InitContainers {
		d.InitContainers = append(d.InitContainers, *c.DeepCopy())
	}
	for _, v := range in.Volumes {
		d.Volumes = append(d.Volumes, *v.DeepCopy())
	}
	for _, m := range in.VolumeMounts {
		d.VolumeMounts = append(d.VolumeMounts, *m.DeepCopy())
	}
	for _, e := range in.Env {
		d.Env = append(d.Env, *e.DeepCopy())
	}
	return d
}

func secretsFromV1Alpha1(in *ftv1alpha1.BotSecrets) BotSecrets {
	var out BotSecrets
	if in.Exchange != nil {
		out.Exchange = &ExchangeSecrets{
			Key:      secretItemFromV1Alpha1(in.Exchange.Key),
			Secret:   secretItemFromV1Alpha1(in.Exchange.Secret),
			Password: secretItemFromV1Alpha1(in.Exchange.Password),
			UID:      secretItemFromV1Alpha1(in.Exchange.UID),
		}
	}
	if in.API != nil {
		out.API = &APISecrets{
			Username:     secretItemFromV1Alpha1(in.API.Username),
			Password:     secretItemFromV1Alpha1(in.API.Password),
			WSToken:      secretItemFromV1Alpha1(in.API.WSToken),
			JWTSecretKey: secretItemFromV1Alpha1(in.API.JWTSecretKey),
		}
	}
	if in.Telegram != nil {
		out.Telegram = &TelegramSecrets{
			Token:  secretItemFromV1Alpha1(in.Telegram.Token),
			ChatID: in.Telegram.ChatID,
		}
	}
	return out
}

func secretItemFromV1Alpha1(in *ftv1alpha1.SecretItem) *SecretItem {
	if in == nil {
		return nil
	}
	out := &SecretItem{}
	if in.Value != nil {
		v := *in.Value
		out.Value = &v
	}
	if in.SecretKeyRef != nil {
		out.SecretKeyRef = &SecretKeyRef{Name: in.SecretKeyRef.Name, Key: in.SecretKeyRef.Key}
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
