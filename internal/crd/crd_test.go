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

package crd

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
)

func TestBotCRDShape(t *testing.T) {
	g := NewWithT(t)

	crd := Bot()

	g.Expect(crd.Name).To(Equal("bots.freqtrade.io"))
	g.Expect(crd.Spec.Group).To(Equal("freqtrade.io"))
	g.Expect(crd.Spec.Scope).To(Equal(apiextensionsv1.NamespaceScoped))
	g.Expect(crd.Spec.Names.Kind).To(Equal("Bot"))
	g.Expect(crd.Spec.Names.Plural).To(Equal("bots"))
	g.Expect(crd.Spec.Versions).To(HaveLen(1))

	v := crd.Spec.Versions[0]
	g.Expect(v.Name).To(Equal("v1alpha1"))
	g.Expect(v.Served).To(BeTrue())
	g.Expect(v.Storage).To(BeTrue())
	g.Expect(v.Subresources.Status).NotTo(BeNil())

	columns := make([]string, 0, len(v.AdditionalPrinterColumns))
	for _, c := range v.AdditionalPrinterColumns {
		columns = append(columns, c.Name)
	}
	g.Expect(columns).To(Equal([]string{"Phase", "Exchange", "Last Updated"}))
}

func TestBotCRDSchema(t *testing.T) {
	g := NewWithT(t)

	schema := Bot().Spec.Versions[0].Schema.OpenAPIV3Schema
	spec := schema.Properties["spec"]

	g.Expect(spec.Required).To(ConsistOf("exchange", "strategy", "secrets"))

	// The config block is an open schema.
	cfg := spec.Properties["config"]
	g.Expect(cfg.XPreserveUnknownFields).To(HaveValue(BeTrue()))

	database := spec.Properties["database"]
	g.Expect(database.Default).NotTo(BeNil())
	g.Expect(string(database.Default.Raw)).To(Equal(`"sqlite:///database.db"`))

	pvc := spec.Properties["pvc"]
	g.Expect(string(pvc.Properties["size"].Default.Raw)).To(Equal(`"1Gi"`))
	g.Expect(string(pvc.Properties["enabled"].Default.Raw)).To(Equal(`true`))

	api := spec.Properties["api"]
	g.Expect(string(api.Properties["port"].Default.Raw)).To(Equal(`8080`))
}

func TestWriteYAML(t *testing.T) {
	g := NewWithT(t)

	var buf bytes.Buffer
	g.Expect(WriteYAML(&buf)).To(Succeed())

	out := buf.String()
	g.Expect(strings.HasPrefix(out, "---\n")).To(BeTrue())
	g.Expect(out).To(ContainSubstring("kind: CustomResourceDefinition"))
	g.Expect(out).To(ContainSubstring("name: bots.freqtrade.io"))
	g.Expect(strings.Count(out, "---\n")).To(Equal(len(All())))
}
