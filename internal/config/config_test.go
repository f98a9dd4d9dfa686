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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"
)

func TestLoadDefaults(t *testing.T) {
	g := NewWithT(t)

	cfg, err := Load("")
	g.Expect(err).NotTo(HaveOccurred())

	want := &Config{
		Controller: ControllerConfig{
			DefaultImageRepo: "freqtradeorg/freqtrade",
			DefaultImageTag:  "stable",
		},
		Webhook: WebhookConfig{
			Host: "0.0.0.0",
			Port: 8443,
			TLS: TLSConfig{
				CertFile: "/etc/ssl/certs/tls.crt",
				KeyFile:  "/etc/ssl/certs/tls.key",
			},
		},
	}
	g.Expect(cmp.Diff(want, cfg)).To(BeEmpty())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	g.Expect(os.WriteFile(path, []byte("controller:\n  defaultImageTag: 2024.11\nwebhook:\n  port: 9443\n"), 0o600)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(cfg.Controller.DefaultImageTag).To(Equal("2024.11"))
	g.Expect(cfg.Controller.DefaultImageRepo).To(Equal("freqtradeorg/freqtrade"))
	g.Expect(cfg.Webhook.Port).To(Equal(9443))
}

func TestLoadJSONFile(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "config.json")
	g.Expect(os.WriteFile(path, []byte(`{"webhook":{"tls":{"certFile":"/certs/tls.crt"}}}`), 0o600)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(cfg.Webhook.TLS.CertFile).To(Equal("/certs/tls.crt"))
	g.Expect(cfg.Webhook.TLS.KeyFile).To(Equal("/etc/ssl/certs/tls.key"))
}

func TestLoadIgnoresUnknownExtension(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	g.Expect(os.WriteFile(path, []byte("junk"), 0o600)).To(Succeed())

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Controller.DefaultImageRepo).To(Equal("freqtradeorg/freqtrade"))
}

func TestLoadMissingFileFails(t *testing.T) {
	g := NewWithT(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	g.Expect(err).To(HaveOccurred())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	g.Expect(os.WriteFile(path, []byte("controller:\n  defaultImageRepo: example/freqtrade\n"), 0o600)).To(Succeed())

	t.Setenv("FT_OPERATOR__CONTROLLER__DEFAULT_IMAGE_REPO", "env/freqtrade")
	t.Setenv("FT_OPERATOR__WEBHOOK__PORT", "10443")

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(cfg.Controller.DefaultImageRepo).To(Equal("env/freqtrade"))
	g.Expect(cfg.Webhook.Port).To(Equal(10443))
}
