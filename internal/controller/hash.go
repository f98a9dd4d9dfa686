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

package controller

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// canonicalJSON serialises obj with map keys sorted at every nesting level.
// Arrays keep their order. Round-tripping through interface{} is what forces
// the sort: encoding/json emits map keys in sorted order.
func canonicalJSON(obj interface{}) ([]byte, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling object")
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, errors.Wrap(err, "canonicalising object")
	}
	return json.Marshal(value)
}

// computeObjectHash returns the lowercase-hex SHA-256 of the canonical JSON
// form of obj. The hash is only ever compared to itself, so the exact
// function is not significant; it must merely distinguish distinct inputs.
func computeObjectHash(obj interface{}) (string, error) {
	canonical, err := canonicalJSON(obj)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
