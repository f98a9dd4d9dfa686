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

package webhook

import (
	"testing"

	. "github.com/onsi/gomega"
)

func TestValidateBotAllows(t *testing.T) {
	g := NewWithT(t)

	g.Expect(validateBot([]byte(`{
		"apiVersion": "freqtrade.io/v1alpha1",
		"kind": "Bot",
		"metadata": {"name": "trader"},
		"spec": {
			"exchange": "binance",
			"strategy": {"name": "SampleStrategy", "source": "class S: pass"},
			"secrets": {},
			"config": {"dry_run": true, "stake_currency": "USDT"}
		}
	}`))).To(Succeed())
}

func TestValidateBotRejectsReservedConfigKey(t *testing.T) {
	g := NewWithT(t)

	err := validateBot([]byte(`{
		"apiVersion": "freqtrade.io/v1alpha1",
		"kind": "Bot",
		"spec": {
			"config": {"api_server": {"listen_port": 9999}}
		}
	}`))

	g.Expect(err).To(MatchError("config key `config.api_server.listen_port` is reserved"))
}

func TestValidateBotRejectsNestedReservedKey(t *testing.T) {
	g := NewWithT(t)

	err := validateBot([]byte(`{
		"apiVersion": "freqtrade.io/v1alpha1",
		"kind": "Bot",
		"spec": {
			"config": {"strategy": "Injected"}
		}
	}`))

	g.Expect(err).To(MatchError("config key `config.strategy` is reserved"))
}

func TestValidateBotAllowsUnreservedSiblings(t *testing.T) {
	g := NewWithT(t)

	// api_server itself is fine; only specific keys below it are reserved.
	g.Expect(validateBot([]byte(`{
		"apiVersion": "freqtrade.io/v1alpha1",
		"kind": "Bot",
		"spec": {
			"config": {"api_server": {"verbosity": "error"}, "exchange": {"pair_whitelist": ["BTC/USDT"]}}
		}
	}`))).To(Succeed())
}

func TestValidateBotRejectsWrongKind(t *testing.T) {
	g := NewWithT(t)

	err := validateBot([]byte(`{"apiVersion": "freqtrade.io/v1alpha1", "kind": "Robot", "spec": {}}`))
	g.Expect(err).To(MatchError("invalid kind `Robot`, expected `Bot`"))
}

func TestValidateBotRejectsWrongVersion(t *testing.T) {
	g := NewWithT(t)

	err := validateBot([]byte(`{"apiVersion": "freqtrade.io/v1beta1", "kind": "Bot", "spec": {}}`))
	g.Expect(err).To(MatchError("invalid version `v1beta1` for kind `Bot`"))
}

func TestValidateBotRejectsMalformedJSON(t *testing.T) {
	g := NewWithT(t)

	g.Expect(validateBot([]byte(`{"kind": `))).NotTo(Succeed())
}

func TestKeyExistsOnMissingSpec(t *testing.T) {
	g := NewWithT(t)

	// No spec at all still validates kind and version.
	g.Expect(validateBot([]byte(`{"apiVersion": "freqtrade.io/v1alpha1", "kind": "Bot"}`))).To(Succeed())
}
