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

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// BotFinalizer blocks deletion of a Bot until the operator has
	// recorded a terminal status transition.
	BotFinalizer = "bots.finalizers.freqtrade.io"

	// ConfigHashAnnotation carries the hash of the last applied ConfigMap
	// data on the managed Deployment.
	ConfigHashAnnotation = "bots.freqtrade.io/config-hash"
)

// BotSpec defines the desired state of a Freqtrade bot.
type BotSpec struct {
	// Exchange is the name of the exchange the bot trades on.
	Exchange string `json:"exchange"`

	// Database is the database URL the bot persists trades to.
	// +optional
	Database string `json:"database,omitempty"`

	// Config is the bot configuration, passed through verbatim as the
	// bot's primary configuration file. The schema is open; unknown keys
	// are preserved.
	// +kubebuilder:pruning:PreserveUnknownFields
	// +optional
	Config map[string]apiextensionsv1.JSON `json:"config,omitempty"`

	// Strategy is the trading strategy the bot runs.
	Strategy BotStrategySpec `json:"strategy"`

	// Model optionally enables FreqAI with the referenced prediction model.
	// +optional
	Model *BotModelSpec `json:"model,omitempty"`

	// Image overrides the container image for the bot.
	// +optional
	Image BotImageSpec `json:"image,omitempty"`

	// Secrets holds the credentials surfaced to the bot.
	Secrets BotSecrets `json:"secrets"`

	// API configures the bot's REST API server.
	// +optional
	API *BotAPISpec `json:"api,omitempty"`

	// Service customizes the Service exposing the bot API.
	// +optional
	Service *BotServiceSpec `json:"service,omitempty"`

	// PVC configures persistent user-data storage for the bot.
	// +optional
	PVC *BotPVCSpec `json:"pvc,omitempty"`

	// Deployment holds advanced overrides for the managed Deployment.
	// +optional
	Deployment BotDeploymentSpec `json:"deployment,omitempty"`
}

// BotStrategySpec selects the strategy code for the bot. Exactly one of
// Source or ConfigMapName provides the code.
type BotStrategySpec struct {
	// Name is the strategy class name.
	Name string `json:"name"`

	// ConfigMapName references an existing ConfigMap holding the strategy.
	// +optional
	ConfigMapName string `json:"configMapName,omitempty"`

	// Source is the inline strategy source.
	// +optional
	Source string `json:"source,omitempty"`
}

// BotModelSpec selects the FreqAI prediction model for the bot.
type BotModelSpec struct {
	// Name is the model class name.
	// +optional
	Name string `json:"name,omitempty"`

	// ConfigMapName references an existing ConfigMap holding the model.
	// +optional
	ConfigMapName string `json:"configMapName,omitempty"`

	// Source is the inline model source.
	// +optional
	Source string `json:"source,omitempty"`
}

// BotImageSpec overrides the container image used for the bot.
type BotImageSpec struct {
	// +optional
	Repository string `json:"repository,omitempty"`
	// +optional
	Tag string `json:"tag,omitempty"`
	// +optional
	PullPolicy string `json:"pullPolicy,omitempty"`
	// +optional
	PullSecrets []string `json:"pullSecrets,omitempty"`
}

// BotSecrets groups the credentials surfaced to the bot as environment
// variables. The operator never reads the referenced Secrets itself.
type BotSecrets struct {
	// +optional
	Exchange *ExchangeSecrets `json:"exchange,omitempty"`
	// +optional
	API *APISecrets `json:"api,omitempty"`
	// +optional
	Telegram *TelegramSecrets `json:"telegram,omitempty"`
}

// ExchangeSecrets holds exchange credentials.
type ExchangeSecrets struct {
	// +optional
	Key *SecretItem `json:"key,omitempty"`
	// +optional
	Secret *SecretItem `json:"secret,omitempty"`
	// +optional
	Password *SecretItem `json:"password,omitempty"`
	// +optional
	UID *SecretItem `json:"uid,omitempty"`
}

// APISecrets holds API server credentials.
type APISecrets struct {
	// +optional
	Username *SecretItem `json:"username,omitempty"`
	// +optional
	Password *SecretItem `json:"password,omitempty"`
	// +optional
	WSToken *SecretItem `json:"wsToken,omitempty"`
	// +optional
	JWTSecretKey *SecretItem `json:"jwtSecretKey,omitempty"`
}

// TelegramSecrets holds Telegram notification credentials.
type TelegramSecrets struct {
	// +optional
	Token *SecretItem `json:"token,omitempty"`
	// +optional
	ChatID string `json:"chatId,omitempty"`
}

// BotAPISpec configures the bot's REST API server.
type BotAPISpec struct {
	// Enabled defaults to true when unset.
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	Host string `json:"host,omitempty"`
	// +optional
	Port int32 `json:"port,omitempty"`
}

// BotServiceSpec customizes the Service exposing the bot API.
type BotServiceSpec struct {
	// +optional
	ServiceType string `json:"serviceType,omitempty"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
	// +optional
	Labels map[string]string `json:"labels,omitempty"`
	// +optional
	Ports []BotServicePort `json:"ports,omitempty"`
}

// BotServicePort declares one Service port.
type BotServicePort struct {
	Name       string `json:"name"`
	Port       int32  `json:"port"`
	TargetPort string `json:"targetPort"`
}

// BotPVCSpec configures persistent user-data storage for the bot.
type BotPVCSpec struct {
	// Enabled defaults to true when unset.
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
	// +optional
	Labels map[string]string `json:"labels,omitempty"`
	// +optional
	StorageClass string `json:"storageClass,omitempty"`
	// +optional
	Size string `json:"size,omitempty"`
}

// BotDeploymentSpec holds advanced overrides for the managed Deployment.
type BotDeploymentSpec struct {
	// Command replaces the container command. The literal token "$CMD"
	// expands to the default command in place.
	// +optional
	Command []string `json:"command,omitempty"`
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`
	// +optional
	Labels map[string]string `json:"labels,omitempty"`
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`
	// +optional
	Resources *corev1.ResourceRequirements `json:"resources,omitempty"`
	// +optional
	Affinity *corev1.Affinity `json:"affinity,omitempty"`
	// +optional
	Tolerations []corev1.Toleration `json:"tolerations,omitempty"`
	// +optional
	PodSecurityContext *corev1.PodSecurityContext `json:"podSecurityContext,omitempty"`
	// +optional
	SecurityContext *corev1.SecurityContext `json:"securityContext,omitempty"`
	// +optional
	Containers []corev1.Container `json:"containers,omitempty"`
	// +optional
	InitContainers []corev1.Container `json:"initContainers,omitempty"`
	// +optional
	Volumes []corev1.Volume `json:"volumes,omitempty"`
	// +optional
	VolumeMounts []corev1.VolumeMount `json:"volumeMounts,omitempty"`
	// +optional
	Env []corev1.EnvVar `json:"env,omitempty"`
}

// BotStatus defines the observed state of a Bot.
type BotStatus struct {
	// Phase is the current lifecycle phase of the bot.
	// +optional
	Phase string `json:"phase,omitempty"`

	// LastUpdated is the time the status was last written.
	// +optional
	LastUpdated *metav1.Time `json:"lastUpdated,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:path=bots,scope=Namespaced
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type="string",JSONPath=".status.phase",description="Current phase of the resource"
// +kubebuilder:printcolumn:name="Exchange",type="string",JSONPath=".spec.exchange",description="Exchange the bot is trading on"
// +kubebuilder:printcolumn:name="Last Updated",type="date",JSONPath=".status.lastUpdated",description="Last time the resource was updated"
// +kubebuilder:storageversion

// Bot is the Schema for a Freqtrade bot running in a Kubernetes cluster.
type Bot struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BotSpec    `json:"spec,omitempty"`
	Status *BotStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// BotList contains a list of Bot.
type BotList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Bot `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Bot{}, &BotList{})
}
