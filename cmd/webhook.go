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
	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/freqtrade/freqtrade-operator/internal/webhook"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Run the admission HTTPS server until signalled",
	Long: heredoc.Doc(`
		Serve the validating admission webhook over TLS. A SIGINT or
		SIGTERM stops accepting new connections and drains in-flight
		requests for up to ten seconds.`),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWebhook()
	},
}

func init() {
	rootCmd.AddCommand(webhookCmd)
}

func runWebhook() error {
	setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}

	server := webhook.NewServer(ctrl.Log.WithName("webhook"), cfg.Webhook)

	return server.Run(ctrl.SetupSignalHandler())
}
