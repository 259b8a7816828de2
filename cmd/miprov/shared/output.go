// Copyright 2026 The miprov Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// PrintJSONOrYAML prints data in JSON or YAML format.
// The data parameter should be a struct that can be marshaled.
func PrintJSONOrYAML(cmd *cobra.Command, data interface{}, format string) error {
	var outputStr string
	var err error

	if format == "json" {
		var b []byte
		b, err = json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		outputStr = string(b)
	} else {
		var b []byte
		b, err = yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		outputStr = string(b)
	}

	cmd.Print(outputStr)
	return nil
}

// PrintCreationOutcome prints one "exists/created/missing" line for a
// converged resource.
func PrintCreationOutcome(cmd *cobra.Command, label string, existsPost, created bool) {
	switch {
	case created:
		cmd.Printf("  - %s: created\n", label)
	case existsPost:
		cmd.Printf("  - %s: already present\n", label)
	default:
		cmd.Printf("  - %s: missing\n", label)
	}
}
