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

package main

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/freqtrade/freqtrade-operator/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "freqtrade-operator",
	SilenceUsage: true,
	Short:        "freqtrade-operator manages Freqtrade trading bots in a Kubernetes cluster",
	Long: heredoc.Doc(`
		The operator reconciles Bot custom resources into the Kubernetes
		objects a Freqtrade instance needs (Deployment, ConfigMap, Service,
		PersistentVolumeClaim) and serves an admission webhook that rejects
		specifications violating operator invariants.

		The controller and the webhook run as separate subcommands sharing
		the same configuration.`),
}

// Execute runs the root command, exiting non-zero on any startup error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to an optional JSON or YAML configuration file.")
}

// loadConfig merges defaults, the optional --config file, and environment
// variables.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// setupLogging installs the shared structured logger.
func setupLogging() {
	ctrl.SetLogger(zap.New())
}
