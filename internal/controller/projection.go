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
	"fmt"
	"strconv"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	"github.com/freqtrade/freqtrade-operator/internal/config"
	"github.com/freqtrade/freqtrade-operator/internal/hub"
)

// configMountPath is where the bot's ConfigMap is mounted in the container.
const configMountPath = "/etc/freqtrade"

// Projection maps a hub-form Bot into the dependent objects the operator
// owns. Every function here is pure and deterministic: identical inputs
// yield identical outputs, which the drift detector relies on.

// identifyingLabels selects the pods of exactly one Bot. They are used as
// the Deployment selector and the Service selector and must never be
// overridden by user labels.
func identifyingLabels(name string) map[string]string {
	return map[string]string{
		"freqtrade.io/bot-name":      name,
		"app.kubernetes.io/name":     name,
		"app.kubernetes.io/instance": name,
	}
}

func metadataLabels() map[string]string {
	return map[string]string{
		"app.kubernetes.io/component":  "bot",
		"app.kubernetes.io/part-of":    "freqtrade",
		"app.kubernetes.io/managed-by": "freqtrade-operator",
	}
}

// objectLabels merges user labels with the identifying and metadata labels.
// The operator's labels win on conflict.
func objectLabels(name string, user map[string]string) map[string]string {
	labels := make(map[string]string, len(user)+6)
	for k, v := range user {
		labels[k] = v
	}
	for k, v := range identifyingLabels(name) {
		labels[k] = v
	}
	for k, v := range metadataLabels() {
		labels[k] = v
	}
	return labels
}

// botConfigMap projects the ConfigMap carrying the bot's configuration file
// and, when inlined, its strategy and model sources. The config.json value
// is the canonical JSON form of spec.config so that key order in the
// manifest never changes the rendered bytes (or the config hash).
func botConfigMap(bot *hub.Bot, name, namespace string, owner metav1.OwnerReference, _ *config.ControllerConfig) *corev1.ConfigMap {
	configJSON, err := canonicalJSON(bot.Spec.Config)
	if err != nil {
		// Unserialisable config renders as an empty document; the drift
		// detector re-applies once the spec becomes serialisable again.
		configJSON = nil
	}

	data := map[string]string{
		"config.json": string(configJSON),
	}
	if bot.Spec.Strategy.ConfigMapName == "" {
		data["strategy.py"] = bot.Spec.Strategy.Source
	}
	if bot.Spec.Model != nil && bot.Spec.Model.Source != "" {
		data["model.py"] = bot.Spec.Model.Source
	}

	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			Labels:          objectLabels(name, nil),
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Data: data,
	}
}

// botPersistentVolumeClaim projects the user-data claim.
func botPersistentVolumeClaim(bot *hub.Bot, name, namespace string, owner metav1.OwnerReference, _ *config.ControllerConfig) *corev1.PersistentVolumeClaim {
	pvc := bot.Spec.PVC

	// An unparsable size yields a zero request, which the API server
	// rejects with a useful message; projection itself stays total.
	size, _ := resource.ParseQuantity(pvc.Size)

	spec := corev1.PersistentVolumeClaimSpec{
		AccessModes: []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
		Resources: corev1.VolumeResourceRequirements{
			Requests: corev1.ResourceList{corev1.ResourceStorage: size},
		},
	}
	if pvc.StorageClass != "" {
		spec.StorageClassName = ptr.To(pvc.StorageClass)
	}

	return &corev1.PersistentVolumeClaim{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			Annotations:     pvc.Annotations,
			Labels:          objectLabels(name, pvc.Labels),
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Spec: spec,
	}
}

// defaultBotCommand is the command the container runs unless overridden.
// Declaring a model extends it with the model flag.
func defaultBotCommand(bot *hub.Bot) []string {
	cmd := []string{"freqtrade", "trade", "--config", configMountPath + "/config.json"}
	if bot.Spec.Model != nil {
		cmd = append(cmd, "--freqaimodel", bot.Spec.Model.Name)
	}
	return cmd
}

// expandCommand resolves a user command template. The literal token "$CMD"
// expands to the default command in place; any other token passes through.
func expandCommand(template, defaultCmd []string) []string {
	if template == nil {
		return defaultCmd
	}
	out := make([]string, 0, len(template))
	for _, part := range template {
		if part == "$CMD" {
			out = append(out, defaultCmd...)
			continue
		}
		out = append(out, part)
	}
	return out
}

func envVar(name, value string) corev1.EnvVar {
	return corev1.EnvVar{Name: name, Value: value}
}

// secretEnvVar surfaces a SecretItem as an environment variable. Inline
// values become plain values; references become valueFrom so the API server
// materialises the secret at runtime and the operator never reads it. An
// absent item yields a name-only variable, keeping the variable list stable.
func secretEnvVar(name string, item *hub.SecretItem) corev1.EnvVar {
	env := corev1.EnvVar{Name: name}
	if item == nil {
		return env
	}
	if item.Value != nil {
		env.Value = *item.Value
		return env
	}
	if item.SecretKeyRef != nil {
		env.ValueFrom = &corev1.EnvVarSource{
			SecretKeyRef: &corev1.SecretKeySelector{
				LocalObjectReference: corev1.LocalObjectReference{Name: item.SecretKeyRef.Name},
				Key:                  item.SecretKeyRef.Key,
			},
		}
	}
	return env
}

// botEnv synthesises the container environment in a fixed order. Absent
// sources still yield a name-only variable so the drift detector always
// sees the same variable list.
func botEnv(bot *hub.Bot, name string) []corev1.EnvVar {
	spec := bot.Spec
	secrets := spec.Secrets

	env := []corev1.EnvVar{
		envVar("FREQTRADE__STRATEGY", spec.Strategy.Name),
		envVar("FREQTRADE__STRATEGY_PATH", configMountPath),
		envVar("FREQTRADE__FREQAIMODEL_PATH", configMountPath),
		envVar("FREQTRADE__DB_URL", spec.Database),
		envVar("FREQTRADE__BOT_NAME", name),
		envVar("FREQTRADE__API_SERVER__ENABLED", strconv.FormatBool(spec.API.Enabled)),
		envVar("FREQTRADE__API_SERVER__LISTEN_IP_ADDRESS", spec.API.Host),
		envVar("FREQTRADE__API_SERVER__LISTEN_PORT", strconv.Itoa(int(spec.API.Port))),
		envVar("FREQTRADE__EXCHANGE__NAME", spec.Exchange),
	}

	if secrets.Telegram != nil {
		env = append(env, envVar("FREQTRADE__TELEGRAM__CHAT_ID", secrets.Telegram.ChatID))
	} else {
		env = append(env, envVar("FREQTRADE__TELEGRAM__CHAT_ID", ""))
	}

	var api hub.APISecrets
	if secrets.API != nil {
		api = *secrets.API
	}
	env = append(env,
		secretEnvVar("FREQTRADE__API_SERVER__USERNAME", api.Username),
		secretEnvVar("FREQTRADE__API_SERVER__PASSWORD", api.Password),
		secretEnvVar("FREQTRADE__API_SERVER__WS_TOKEN", api.WSToken),
		secretEnvVar("FREQTRADE__API_SERVER__JWT_SECRET_KEY", api.JWTSecretKey),
	)

	var telegramToken *hub.SecretItem
	if secrets.Telegram != nil {
		telegramToken = secrets.Telegram.Token
	}
	env = append(env, secretEnvVar("FREQTRADE__TELEGRAM__TOKEN", telegramToken))

	var exchange hub.ExchangeSecrets
	if secrets.Exchange != nil {
		exchange = *secrets.Exchange
	}
	env = append(env,
		secretEnvVar("FREQTRADE__EXCHANGE__KEY", exchange.Key),
		secretEnvVar("FREQTRADE__EXCHANGE__SECRET", exchange.Secret),
		secretEnvVar("FREQTRADE__EXCHANGE__PASSWORD", exchange.Password),
		secretEnvVar("FREQTRADE__EXCHANGE__UID", exchange.UID),
	)

	if spec.Model != nil {
		env = append(env, envVar("FREQTRADE__FREQAI__ENABLED", "true"))
	}

	return append(env, spec.Deployment.Env...)
}

// botVolumes composes the pod volume list: the config volume first, then
// the conditional user-data/strategy/model volumes, then user volumes.
func botVolumes(bot *hub.Bot, name string) []corev1.Volume {
	spec := bot.Spec

	items := []corev1.KeyToPath{{Key: "config.json", Path: "config.json"}}
	if spec.Strategy.ConfigMapName == "" {
		items = append(items, corev1.KeyToPath{Key: "strategy.py", Path: "strategy.py"})
	}
	if spec.Model != nil && spec.Model.Source != "" && spec.Model.ConfigMapName == "" {
		items = append(items, corev1.KeyToPath{Key: "model.py", Path: "model.py"})
	}

	volumes := []corev1.Volume{{
		Name: "config",
		VolumeSource: corev1.VolumeSource{
			ConfigMap: &corev1.ConfigMapVolumeSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: name},
				Items:                items,
			},
		},
	}}

	if spec.PVC.Enabled {
		volumes = append(volumes, corev1.Volume{
			Name: "user-data",
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{ClaimName: name},
			},
		})
	}
	if spec.Strategy.ConfigMapName != "" {
		volumes = append(volumes, corev1.Volume{
			Name: "strategy",
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: spec.Strategy.ConfigMapName},
				},
			},
		})
	}
	if spec.Model != nil && spec.Model.ConfigMapName != "" {
		volumes = append(volumes, corev1.Volume{
			Name: "model",
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: spec.Model.ConfigMapName},
				},
			},
		})
	}

	return append(volumes, spec.Deployment.Volumes...)
}

// botDeployment projects the single-replica Deployment running the bot.
func botDeployment(bot *hub.Bot, name, namespace string, owner metav1.OwnerReference, cfg *config.ControllerConfig) *appsv1.Deployment {
	spec := bot.Spec
	deployment := spec.Deployment

	imageRepo := spec.Image.Repository
	if imageRepo == "" {
		imageRepo = cfg.DefaultImageRepo
	}
	imageTag := spec.Image.Tag
	if imageTag == "" {
		imageTag = cfg.DefaultImageTag
	}

	labels := objectLabels(name, deployment.Labels)

	container := corev1.Container{
		Name:            name,
		Image:           fmt.Sprintf("%s:%s", imageRepo, imageTag),
		ImagePullPolicy: corev1.PullPolicy(spec.Image.PullPolicy),
		Command:         expandCommand(deployment.Command, defaultBotCommand(bot)),
		Env:             botEnv(bot, name),
		Ports: []corev1.ContainerPort{{
			Name:          "api",
			ContainerPort: spec.API.Port,
		}},
		VolumeMounts: append([]corev1.VolumeMount{{
			Name:      "config",
			MountPath: configMountPath,
		}}, deployment.VolumeMounts...),
		SecurityContext: deployment.SecurityContext,
	}
	if deployment.Resources != nil {
		container.Resources = *deployment.Resources
	}

	var pullSecrets []corev1.LocalObjectReference
	for _, s := range spec.Image.PullSecrets {
		pullSecrets = append(pullSecrets, corev1.LocalObjectReference{Name: s})
	}

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			Annotations:     deployment.Annotations,
			Labels:          labels,
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Spec: appsv1.DeploymentSpec{
			// Freqtrade cannot scale horizontally; the workload is
			// inherently single-replica.
			Replicas: ptr.To(int32(1)),
			Selector: &metav1.LabelSelector{MatchLabels: identifyingLabels(name)},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Annotations: deployment.Annotations,
					Labels:      labels,
				},
				Spec: corev1.PodSpec{
					ImagePullSecrets: pullSecrets,
					InitContainers:   deployment.InitContainers,
					Containers:       append([]corev1.Container{container}, deployment.Containers...),
					Volumes:          botVolumes(bot, name),
					NodeSelector:     deployment.NodeSelector,
					Affinity:         deployment.Affinity,
					Tolerations:      deployment.Tolerations,
					SecurityContext:  deployment.PodSecurityContext,
				},
			},
		},
	}
}

// botService projects the Service exposing the bot API. A port named "api"
// is ensured when the API is enabled, unless the user declared their own.
func botService(bot *hub.Bot, name, namespace string, owner metav1.OwnerReference, _ *config.ControllerConfig) *corev1.Service {
	service := bot.Spec.Service
	if bot.Spec.API.Enabled {
		service.EnsureAPIPort(bot.Spec.API.Port)
	}

	ports := make([]corev1.ServicePort, 0, len(service.Ports))
	for _, p := range service.Ports {
		ports = append(ports, corev1.ServicePort{
			Name:       p.Name,
			Port:       p.Port,
			TargetPort: intstr.FromString(p.TargetPort),
		})
	}

	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:            name,
			Namespace:       namespace,
			Annotations:     service.Annotations,
			Labels:          objectLabels(name, service.Labels),
			OwnerReferences: []metav1.OwnerReference{owner},
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceType(service.ServiceType),
			Selector: identifyingLabels(name),
			Ports:    ports,
		},
	}
}
