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

/*
Package webhook provides aliases for the internal admission server so that
external programs can run the Bot validator alongside their own servers.
*/
package webhook

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/freqtrade/freqtrade-operator/internal/config"
	internalwebhook "github.com/freqtrade/freqtrade-operator/internal/webhook"
)

// Server wraps the internal admission server.
type Server struct {
	Logger logr.Logger
	Config config.WebhookConfig
}

// Run serves admission reviews until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return internalwebhook.NewServer(s.Logger, s.Config).Run(ctx)
}
