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

	"github.com/freqtrade/freqtrade-operator/internal/crd"
)

var crdsCmd = &cobra.Command{
	Use:   "crds",
	Short: "Emit the operator's CRDs as YAML to standard output",
	Long: heredoc.Doc(`
		Emit the CustomResourceDefinitions the operator serves, one YAML
		document per version, separated by "---" markers. Pipe the output
		to kubectl apply to install them.`),
	RunE: func(cmd *cobra.Command, args []string) error {
		return crd.WriteYAML(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(crdsCmd)
}
