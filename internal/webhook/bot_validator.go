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
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// reservedConfigKeys are dotted paths under spec that users may not set:
// the operator injects them itself (setting them would race the reconcile
// loop) or does not support them.
var reservedConfigKeys = []string{
	"config.add_config_files",
	"config.recursive_strategy_search",
	"config.strategy_path",
	"config.strategy",
	"config.bot_name",
	"config.db_url",
	"config.api_server.enabled",
	"config.api_server.listen_ip_address",
	"config.api_server.listen_port",
	"config.api_server.jwt_secret_key",
	"config.api_server.username",
	"config.api_server.password",
	"config.api_server.ws_token",
	"config.telegram.token",
	"config.telegram.chat_id",
	"config.exchange.name",
	"config.exchange.key",
	"config.exchange.secret",
	"config.exchange.password",
	"config.freqai.enabled",
}

// reservedEnvVars are the environment variables the operator synthesises
// into the bot container. They are walked against the spec the same way the
// config keys are.
var reservedEnvVars = []string{
	"FREQTRADE__STRATEGY",
	"FREQTRADE__STRATEGY_PATH",
	"FREQTRADE__DB_URL",
	"FREQTRADE__BOT_NAME",
	"FREQTRADE__API_SERVER__ENABLED",
	"FREQTRADE__API_SERVER__LISTEN_IP_ADDRESS",
	"FREQTRADE__API_SERVER__LISTEN_PORT",
	"FREQTRADE__API_SERVER__USERNAME",
	"FREQTRADE__API_SERVER__PASSWORD",
	"FREQTRADE__API_SERVER__JWT_SECRET_KEY",
	"FREQTRADE__API_SERVER__WS_TOKEN",
	"FREQTRADE__EXCHANGE__NAME",
	"FREQTRADE__EXCHANGE__KEY",
	"FREQTRADE__EXCHANGE__SECRET",
	"FREQTRADE__EXCHANGE__PASSWORD",
	"FREQTRADE__EXCHANGE__UID",
	"FREQTRADE__TELEGRAM__TOKEN",
	"FREQTRADE__TELEGRAM__CHAT_ID",
}

// validateBot checks a raw admission object. A nil return allows the
// object; a non-nil error carries the denial reason.
func validateBot(raw []byte) error {
	obj, err := fastjson.ParseBytes(raw)
	if err != nil {
		return fmt.Errorf("parsing object: %v", err)
	}

	if kind := string(obj.GetStringBytes("kind")); kind != "Bot" {
		return fmt.Errorf("invalid kind `%s`, expected `Bot`", kind)
	}

	apiVersion := string(obj.GetStringBytes("apiVersion"))
	version := apiVersion
	if idx := strings.LastIndex(apiVersion, "/"); idx >= 0 {
		version = apiVersion[idx+1:]
	}
	if version != "v1alpha1" {
		return fmt.Errorf("invalid version `%s` for kind `Bot`", version)
	}

	spec := obj.Get("spec")

	for _, key := range reservedConfigKeys {
		if keyExists(spec, key) {
			return fmt.Errorf("config key `%s` is reserved", key)
		}
	}
	for _, key := range reservedEnvVars {
		if keyExists(spec, key) {
			return fmt.Errorf("env var `%s` is reserved", key)
		}
	}

	return nil
}

// keyExists walks value along the dotted path and reports whether every
// segment resolves.
func keyExists(value *fastjson.Value, key string) bool {
	for _, part := range strings.Split(key, ".") {
		if value = value.Get(part); value == nil {
			return false
		}
	}
	return true
}
