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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	. "github.com/onsi/gomega"
	admissionv1 "k8s.io/api/admission/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"

	"github.com/freqtrade/freqtrade-operator/internal/config"
	"github.com/freqtrade/freqtrade-operator/internal/version"
)

func newTestServer() *Server {
	return NewServer(logr.Discard(), config.WebhookConfig{})
}

func reviewFor(object string) []byte {
	review := admissionv1.AdmissionReview{
		TypeMeta: admissionV1TypeMeta(),
		Request: &admissionv1.AdmissionRequest{
			UID:    types.UID("review-1"),
			Object: runtime.RawExtension{Raw: []byte(object)},
		},
	}
	raw, _ := json.Marshal(review)
	return raw
}

func admissionV1TypeMeta() metav1.TypeMeta {
	return metav1.TypeMeta{Kind: "AdmissionReview", APIVersion: "admission.k8s.io/v1"}
}

func postAdmission(g *WithT, s *Server, body []byte) *admissionv1.AdmissionReview {
	req := httptest.NewRequest(http.MethodPost, "/admission/freqtrade.io/bot/validate", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.serveAdmission(admitBot).ServeHTTP(rec, req)

	g.Expect(rec.Code).To(Equal(http.StatusOK))

	resp := &admissionv1.AdmissionReview{}
	g.Expect(json.Unmarshal(rec.Body.Bytes(), resp)).To(Succeed())
	g.Expect(resp.Response).NotTo(BeNil())
	return resp
}

func TestAdmissionAllowsValidBot(t *testing.T) {
	g := NewWithT(t)

	resp := postAdmission(g, newTestServer(), reviewFor(`{
		"apiVersion": "freqtrade.io/v1alpha1",
		"kind": "Bot",
		"spec": {"config": {"dry_run": true}}
	}`))

	g.Expect(resp.Response.Allowed).To(BeTrue())
	g.Expect(resp.Response.UID).To(Equal(types.UID("review-1")))
}

func TestAdmissionDeniesReservedKey(t *testing.T) {
	g := NewWithT(t)

	resp := postAdmission(g, newTestServer(), reviewFor(`{
		"apiVersion": "freqtrade.io/v1alpha1",
		"kind": "Bot",
		"spec": {"config": {"db_url": "postgres://elsewhere"}}
	}`))

	g.Expect(resp.Response.Allowed).To(BeFalse())
	g.Expect(resp.Response.Result.Message).To(Equal("config key `config.db_url` is reserved"))
	g.Expect(resp.Response.UID).To(Equal(types.UID("review-1")))
}

func TestAdmissionDeniesWrongVersion(t *testing.T) {
	g := NewWithT(t)

	resp := postAdmission(g, newTestServer(), reviewFor(`{
		"apiVersion": "freqtrade.io/v1beta1",
		"kind": "Bot",
		"spec": {}
	}`))

	g.Expect(resp.Response.Allowed).To(BeFalse())
	g.Expect(resp.Response.Result.Message).To(Equal("invalid version `v1beta1` for kind `Bot`"))
}

// A garbage envelope is denied, never 5xx'd: the API server treats webhook
// transport errors according to its failure policy, but a clean denial is
// always unambiguous.
func TestAdmissionDeniesUndecodableEnvelope(t *testing.T) {
	g := NewWithT(t)

	req := httptest.NewRequest(http.MethodPost, "/admission/freqtrade.io/bot/validate", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()

	newTestServer().serveAdmission(admitBot).ServeHTTP(rec, req)

	g.Expect(rec.Code).To(Equal(http.StatusOK))

	resp := &admissionv1.AdmissionReview{}
	g.Expect(json.Unmarshal(rec.Body.Bytes(), resp)).To(Succeed())
	g.Expect(resp.Response.Allowed).To(BeFalse())
}

func TestAdmissionDeniesEmptyReview(t *testing.T) {
	g := NewWithT(t)

	raw, _ := json.Marshal(admissionv1.AdmissionReview{TypeMeta: admissionV1TypeMeta()})

	req := httptest.NewRequest(http.MethodPost, "/admission/freqtrade.io/bot/validate", bytes.NewReader(raw))
	rec := httptest.NewRecorder()

	newTestServer().serveAdmission(admitBot).ServeHTTP(rec, req)

	resp := &admissionv1.AdmissionReview{}
	g.Expect(json.Unmarshal(rec.Body.Bytes(), resp)).To(Succeed())
	g.Expect(resp.Response.Allowed).To(BeFalse())
	g.Expect(resp.Response.Result.Message).To(Equal("admission review carries no request"))
}

func TestRootEndpoint(t *testing.T) {
	g := NewWithT(t)
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	http.HandlerFunc(s.handleRoot).ServeHTTP(rec, req)

	g.Expect(rec.Code).To(Equal(http.StatusOK))

	var body map[string]string
	g.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
	g.Expect(body).To(HaveKeyWithValue("name", version.Name))
	g.Expect(body).To(HaveKey("version"))
}

func TestRootEndpointUnknownPath(t *testing.T) {
	g := NewWithT(t)
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	http.HandlerFunc(s.handleRoot).ServeHTTP(rec, req)

	g.Expect(rec.Code).To(Equal(http.StatusNotFound))
}
