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

// Package crd builds the operator's CustomResourceDefinitions
// programmatically and renders them as YAML for cluster installers.
package crd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gobuffalo/flect"
	"github.com/pkg/errors"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	ftv1alpha1 "github.com/freqtrade/freqtrade-operator/api/v1alpha1"
)

// All returns every CRD the operator serves, one entry per kind.
func All() []*apiextensionsv1.CustomResourceDefinition {
	return []*apiextensionsv1.CustomResourceDefinition{Bot()}
}

// WriteYAML renders the CRDs to w as YAML documents separated by "---"
// markers.
func WriteYAML(w io.Writer) error {
	for _, crd := range All() {
		raw, err := yaml.Marshal(crd)
		if err != nil {
			return errors.Wrapf(err, "marshalling CRD %s", crd.Name)
		}
		if _, err := fmt.Fprintf(w, "---\n%s", raw); err != nil {
			return err
		}
	}
	return nil
}

// Bot builds the bots.freqtrade.io definition.
func Bot() *apiextensionsv1.CustomResourceDefinition {
	kind := "Bot"
	singular := strings.ToLower(kind)
	plural := flect.Pluralize(singular)
	group := ftv1alpha1.GroupVersion.Group

	return &apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: apiextensionsv1.SchemeGroupVersion.String(),
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: fmt.Sprintf("%s.%s", plural, group),
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Kind:     kind,
				ListKind: kind + "List",
				Singular: singular,
				Plural:   plural,
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    ftv1alpha1.GroupVersion.Version,
					Served:  true,
					Storage: true,
					Subresources: &apiextensionsv1.CustomResourceSubresources{
						Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
					},
					AdditionalPrinterColumns: []apiextensionsv1.CustomResourceColumnDefinition{
						{
							Name:        "Phase",
							Type:        "string",
							Description: "Current phase of the resource",
							JSONPath:    ".status.phase",
						},
						{
							Name:        "Exchange",
							Type:        "string",
							Description: "Exchange the bot is trading on",
							JSONPath:    ".spec.exchange",
						},
						{
							Name:        "Last Updated",
							Type:        "date",
							Description: "Last time the resource was updated",
							JSONPath:    ".status.lastUpdated",
						},
					},
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: botSchemaV1Alpha1(),
					},
				},
			},
		},
	}
}

func botSchemaV1Alpha1() *apiextensionsv1.JSONSchemaProps {
	return &apiextensionsv1.JSONSchemaProps{
		Type:        "object",
		Description: "Bot is a specification for a Freqtrade bot running in a Kubernetes cluster.",
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"spec":   botSpecSchema(),
			"status": botStatusSchema(),
		},
		Required: []string{"spec"},
	}
}

func botSpecSchema() apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:     "object",
		Required: []string{"exchange", "strategy", "secrets"},
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"exchange": stringProp("Name of the exchange the bot is trading on."),
			"database": {
				Type:        "string",
				Description: "Database URL to use for the bot.",
				Default:     jsonLiteral(`"sqlite:///database.db"`),
			},
			"config": {
				Type:        "object",
				Description: "Configuration for the bot, passed through as its primary configuration file.",
				AdditionalProperties: &apiextensionsv1.JSONSchemaPropsOrBool{
					Schema: &apiextensionsv1.JSONSchemaProps{
						XPreserveUnknownFields: ptr.To(true),
					},
				},
				XPreserveUnknownFields: ptr.To(true),
			},
			"strategy": {
				Type:        "object",
				Description: "Strategy to use for the bot.",
				Required:    []string{"name"},
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"name":          stringProp("The strategy class name to use."),
					"configMapName": stringProp("The ConfigMap to pull the source from, containing the `strategy.py` key."),
					"source":        stringProp("The source code for the strategy."),
				},
			},
			"model": {
				Type:        "object",
				Description: "Model to use for the bot. Its presence enables FreqAI.",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"name": {
						Type:        "string",
						Description: "The model class name to use.",
						Default:     jsonLiteral(`"LightGBMRegressor"`),
					},
					"configMapName": stringProp("The ConfigMap to pull the source from, containing the `model.py` key."),
					"source":        stringProp("The source code for the model."),
				},
			},
			"image": {
				Type:        "object",
				Description: "Image to use for the bot.",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"repository":  stringProp("Repository to pull the image from."),
					"tag":         stringProp("Tag to pull."),
					"pullPolicy":  stringProp("Image pull policy."),
					"pullSecrets": stringListProp("Secrets to use for pulling the image."),
				},
			},
			"secrets": {
				Type:        "object",
				Description: "Secrets to use for the bot.",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"exchange": {
						Type:        "object",
						Description: "Exchange secrets to use for the bot.",
						Properties: map[string]apiextensionsv1.JSONSchemaProps{
							"key":      secretItemSchema("The exchange key."),
							"secret":   secretItemSchema("The exchange secret."),
							"password": secretItemSchema("The exchange password."),
							"uid":      secretItemSchema("The exchange userid."),
						},
					},
					"api": {
						Type:        "object",
						Description: "API secrets to use for the bot.",
						Properties: map[string]apiextensionsv1.JSONSchemaProps{
							"username":     secretItemSchema("API username used for authentication."),
							"password":     secretItemSchema("API password used for authentication."),
							"wsToken":      secretItemSchema("API websocket token used for consumers to connect to producers."),
							"jwtSecretKey": secretItemSchema("Secret JWT key used to sign JWT tokens."),
						},
					},
					"telegram": {
						Type:        "object",
						Description: "Telegram secrets to use for the bot.",
						Properties: map[string]apiextensionsv1.JSONSchemaProps{
							"token":  secretItemSchema("The Telegram token."),
							"chatId": stringProp("The Telegram chat ID to send messages to."),
						},
					},
				},
			},
			"api": {
				Type:        "object",
				Description: "API configuration for the bot.",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"enabled": {
						Type:        "boolean",
						Description: "Whether the API is enabled or not.",
						Default:     jsonLiteral(`true`),
					},
					"host": {
						Type:        "string",
						Description: "The host to bind the API to.",
						Default:     jsonLiteral(`"0.0.0.0"`),
					},
					"port": {
						Type:        "integer",
						Description: "The port to bind the API to.",
						Default:     jsonLiteral(`8080`),
					},
				},
			},
			"service": {
				Type:        "object",
				Description: "Service resource additional configuration.",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"serviceType": {
						Type:        "string",
						Description: "The service type to use.",
						Default:     jsonLiteral(`"ClusterIP"`),
					},
					"annotations": stringMapProp("Additional annotations to add to the service."),
					"labels":      stringMapProp("Additional labels to add to the service."),
					"ports": {
						Type:        "array",
						Description: "Additional ports to expose on the service.",
						Items: &apiextensionsv1.JSONSchemaPropsOrArray{
							Schema: &apiextensionsv1.JSONSchemaProps{
								Type:     "object",
								Required: []string{"name", "port", "targetPort"},
								Properties: map[string]apiextensionsv1.JSONSchemaProps{
									"name":       stringProp("The name of the port."),
									"port":       {Type: "integer", Description: "The port to expose."},
									"targetPort": stringProp("The target port to forward to."),
								},
							},
						},
					},
				},
			},
			"pvc": {
				Type:        "object",
				Description: "PersistentVolumeClaim resource configuration.",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"enabled": {
						Type:        "boolean",
						Description: "Whether the PVC is enabled or not.",
						Default:     jsonLiteral(`true`),
					},
					"annotations":  stringMapProp("Additional annotations to add to the PVC."),
					"labels":       stringMapProp("Additional labels to add to the PVC."),
					"storageClass": stringProp("The storage class to use for the PVC; defaults to the cluster's default storage class."),
					"size": {
						Type:        "string",
						Description: "The size of the PVC.",
						Default:     jsonLiteral(`"1Gi"`),
					},
				},
			},
			"deployment": {
				Type:        "object",
				Description: "Deployment resource additional configuration.",
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"command":            stringListProp("A custom command to run in the container; the literal token `$CMD` expands to the default command in place."),
					"annotations":        stringMapProp("Additional annotations to add to the deployment."),
					"labels":             stringMapProp("Additional labels to add to the deployment."),
					"nodeSelector":       stringMapProp("Node selector to use for the deployment."),
					"resources":          embeddedObjectProp("The compute resource constraints and requests for the deployment."),
					"affinity":           embeddedObjectProp("The affinity rules for the deployment."),
					"tolerations":        embeddedListProp("The tolerations for the deployment."),
					"podSecurityContext": embeddedObjectProp("The pod's security context."),
					"securityContext":    embeddedObjectProp("The container's security context."),
					"containers":         embeddedListProp("Additional containers to add to the deployment."),
					"initContainers":     embeddedListProp("Additional init containers to add to the deployment."),
					"volumes":            embeddedListProp("Additional volumes to add to the deployment."),
					"volumeMounts":       embeddedListProp("Additional volume mounts to add to the pod's main container."),
					"env":                embeddedListProp("Additional environment variables to add to the deployment."),
				},
			},
		},
	}
}

func botStatusSchema() apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type: "object",
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"phase": stringProp("Current lifecycle phase of the bot."),
			"lastUpdated": {
				Type:        "string",
				Format:      "date-time",
				Description: "Last time the status was written.",
			},
		},
	}
}

// secretItemSchema describes the inline-value-or-reference union.
func secretItemSchema(description string) apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:        "object",
		Description: description,
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"value": stringProp("The secret value inline."),
			"secretKeyRef": {
				Type:        "object",
				Description: "A reference to a key in an existing Secret.",
				Required:    []string{"name", "key"},
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"name": stringProp("Name of the Secret to reference."),
					"key":  stringProp("Key in the Secret to reference."),
				},
			},
		},
	}
}

func stringProp(description string) apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{Type: "string", Description: description}
}

func stringListProp(description string) apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:        "array",
		Description: description,
		Items: &apiextensionsv1.JSONSchemaPropsOrArray{
			Schema: &apiextensionsv1.JSONSchemaProps{Type: "string"},
		},
	}
}

func stringMapProp(description string) apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:        "object",
		Description: description,
		AdditionalProperties: &apiextensionsv1.JSONSchemaPropsOrBool{
			Schema: &apiextensionsv1.JSONSchemaProps{Type: "string"},
		},
	}
}

// embeddedObjectProp admits an arbitrary Kubernetes object fragment. The
// field is passed through to the projected pod spec verbatim, so the pod
// admission chain performs the real validation.
func embeddedObjectProp(description string) apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:                   "object",
		Description:            description,
		XPreserveUnknownFields: ptr.To(true),
	}
}

func embeddedListProp(description string) apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:        "array",
		Description: description,
		Items: &apiextensionsv1.JSONSchemaPropsOrArray{
			Schema: &apiextensionsv1.JSONSchemaProps{
				Type:                   "object",
				XPreserveUnknownFields: ptr.To(true),
			},
		},
	}
}

func jsonLiteral(raw string) *apiextensionsv1.JSON {
	return &apiextensionsv1.JSON{Raw: []byte(raw)}
}
