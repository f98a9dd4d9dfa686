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

// Package config loads the operator-wide configuration. Values are merged
// from built-in defaults, an optional JSON or YAML file, and environment
// variables, in that order (later wins).
package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the operator-wide configuration. It is constructed once at
// startup and treated as immutable afterwards.
type Config struct {
	Controller ControllerConfig `mapstructure:"controller"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
}

// ControllerConfig holds settings for the reconcile loop.
type ControllerConfig struct {
	// DefaultImageRepo is the image repository used when a Bot omits one.
	DefaultImageRepo string `mapstructure:"defaultImageRepo"`
	// DefaultImageTag is the image tag used when a Bot omits one.
	DefaultImageTag string `mapstructure:"defaultImageTag"`
}

// WebhookConfig holds settings for the admission HTTPS server.
type WebhookConfig struct {
	Host string    `mapstructure:"host"`
	Port int       `mapstructure:"port"`
	TLS  TLSConfig `mapstructure:"tls"`
}

// TLSConfig points at the webhook's serving certificate material.
type TLSConfig struct {
	CertFile string `mapstructure:"certFile"`
	KeyFile  string `mapstructure:"keyFile"`
}

// envPrefix is joined to nested configuration keys with "__", e.g.
// FT_OPERATOR__CONTROLLER__DEFAULT_IMAGE_REPO.
const envPrefix = "FT_OPERATOR"

// envBindings maps configuration keys to their environment variable names.
// Bindings are explicit because the "__" separator and the snake_case key
// segments cannot be derived mechanically from the viper key.
var envBindings = map[string]string{
	"controller.defaultImageRepo": envPrefix + "__CONTROLLER__DEFAULT_IMAGE_REPO",
	"controller.defaultImageTag":  envPrefix + "__CONTROLLER__DEFAULT_IMAGE_TAG",
	"webhook.host":                envPrefix + "__WEBHOOK__HOST",
	"webhook.port":                envPrefix + "__WEBHOOK__PORT",
	"webhook.tls.certFile":        envPrefix + "__WEBHOOK__TLS__CERT_FILE",
	"webhook.tls.keyFile":         envPrefix + "__WEBHOOK__TLS__KEY_FILE",
}

// Load builds the configuration. path may be empty, in which case only
// defaults and environment variables apply. Files with an extension other
// than .json/.yaml/.yml are ignored.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("controller.defaultImageRepo", "freqtradeorg/freqtrade")
	v.SetDefault("controller.defaultImageTag", "stable")
	v.SetDefault("webhook.host", "0.0.0.0")
	v.SetDefault("webhook.port", 8443)
	v.SetDefault("webhook.tls.certFile", "/etc/ssl/certs/tls.crt")
	v.SetDefault("webhook.tls.keyFile", "/etc/ssl/certs/tls.key")

	if path != "" {
		switch filepath.Ext(path) {
		case ".json", ".yaml", ".yml":
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "reading config file %q", path)
			}
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "binding %q", env)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	return cfg, nil
}
