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

package v1alpha1

// SecretItem is a tagged union: either an inline value or a reference to a
// key in an existing opaque Secret. Exactly one of the fields is set.
type SecretItem struct {
	// Value is the secret value inline.
	// +optional
	Value *string `json:"value,omitempty"`

	// SecretKeyRef references a Secret in the same namespace holding the
	// value.
	// +optional
	SecretKeyRef *SecretKeyRef `json:"secretKeyRef,omitempty"`
}

// SecretKeyRef identifies a key in a Secret.
type SecretKeyRef struct {
	// Name of the Secret to reference.
	Name string `json:"name"`

	// Key in the Secret to reference.
	Key string `json:"key"`
}
