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

// Package webhook implements the validating admission HTTPS server.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	admissionv1 "k8s.io/api/admission/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/scheme"

	"github.com/freqtrade/freqtrade-operator/internal/config"
	"github.com/freqtrade/freqtrade-operator/internal/version"
)

// shutdownGracePeriod bounds how long in-flight admission requests may
// drain after a termination signal.
const shutdownGracePeriod = 10 * time.Second

// Server serves Bot admission reviews over TLS. Admission requests touch no
// shared mutable state, so handlers run concurrently without coordination.
type Server struct {
	logger  logr.Logger
	cfg     config.WebhookConfig
	decoder runtime.Decoder
}

// NewServer returns a Server configured from cfg.
func NewServer(logger logr.Logger, cfg config.WebhookConfig) *Server {
	return &Server{
		logger:  logger,
		cfg:     cfg,
		decoder: scheme.Codecs.UniversalDeserializer(),
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the grace period. Plain HTTP is never served; the TLS material is
// loaded from the configured certificate files.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.Handle("/admission/freqtrade.io/bot/validate", s.logged(s.serveAdmission(admitBot)))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
	}()

	s.logger.Info("Webhook server listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	s.logger.Info("Shutting down webhook server")

	return srv.Shutdown(shutdownCtx)
}

// handleRoot reports the operator name and version. It is deliberately not
// wrapped in request logging.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"name":    version.Name,
		"version": version.Version,
	})
}

// logged records each admission request before handling it.
func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("Admission request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

type admitFn func(*admissionv1.AdmissionReview) *admissionv1.AdmissionResponse

// serveAdmission decodes an AdmissionReview envelope, evaluates it, and
// writes the response referencing the request UID. Failures to decode deny
// the request; the handler itself never 5xxs.
func (s *Server) serveAdmission(admit admitFn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req, resp admissionv1.AdmissionReview

		if data, err := io.ReadAll(r.Body); err != nil {
			s.logger.Error(err, "reading request body")
			resp.Response = denyResponse(err.Error())
		} else if _, _, err := s.decoder.Decode(data, nil, &req); err != nil {
			s.logger.Error(err, "decoding request body")
			resp.Response = denyResponse(err.Error())
		} else if req.Request == nil {
			resp.Response = denyResponse("admission review carries no request")
		} else {
			resp.Response = admit(&req)
		}

		// Echo the envelope identity back as long as it decoded.
		if req.Request != nil {
			resp.APIVersion = req.APIVersion
			resp.Kind = req.Kind
			resp.Response.UID = req.Request.UID
		}

		w.Header().Set("Content-Type", "application/json")
		if respBytes, err := json.Marshal(resp); err != nil {
			s.logger.Error(err, "encoding response body")
		} else if _, err := w.Write(respBytes); err != nil {
			s.logger.Error(err, "writing response body")
		}
	})
}

// admitBot validates the reviewed object against the operator's reserved
// keys and accepted versions.
func admitBot(ar *admissionv1.AdmissionReview) *admissionv1.AdmissionResponse {
	if err := validateBot(ar.Request.Object.Raw); err != nil {
		return denyResponse(err.Error())
	}

	return &admissionv1.AdmissionResponse{Allowed: true}
}

func denyResponse(message string) *admissionv1.AdmissionResponse {
	return &admissionv1.AdmissionResponse{
		Allowed: false,
		Result: &metav1.Status{
			Status:  metav1.StatusFailure,
			Message: message,
		},
	}
}
