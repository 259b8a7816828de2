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
	"fmt"
	"io"
	"os"

	"github.com/nimslab/miprov/cmd/config"
	"github.com/nimslab/miprov/internal/apischeme"
	"github.com/nimslab/miprov/internal/apply/parser"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	v1beta1 "github.com/nimslab/miprov/pkg/api/model/v1beta1"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ReadFileOrStdin reads from a file or stdin if file is "-".
// Returns the reader and a cleanup function that should be called when done.
// If file is "-", the cleanup function is a no-op.
func ReadFileOrStdin(file string) (io.Reader, func() error, error) {
	if file == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %q: %w", file, err)
	}

	return f, f.Close, nil
}

// HostFromCmd resolves the Host manifest for the command: the --file flag
// when given, otherwise a fully defaulted manifest named after the machine.
func HostFromCmd(cmd *cobra.Command) (intmodel.Host, error) {
	file := viper.GetString(config.MIPROV_ROOT_FILE.ViperKey)
	if file == "" {
		return defaultHost()
	}

	reader, cleanup, err := ReadFileOrStdin(file)
	if err != nil {
		return intmodel.Host{}, err
	}
	defer func() { _ = cleanup() }()

	return HostFromReader(reader)
}

// HostFromReader parses, validates and normalizes a single Host manifest.
func HostFromReader(reader io.Reader) (intmodel.Host, error) {
	docs, err := parser.ParseAll(reader)
	if err != nil {
		return intmodel.Host{}, err
	}

	for _, doc := range docs {
		if validateErr := parser.Validate(doc); validateErr != nil {
			return intmodel.Host{}, validateErr
		}
	}

	// One host per run; extra documents are a manifest mistake.
	if len(docs) != 1 {
		return intmodel.Host{}, fmt.Errorf("expected exactly one Host document, got %d", len(docs))
	}

	host, _, err := apischeme.NormalizeHost(*docs[0].HostDoc)
	if err != nil {
		return intmodel.Host{}, err
	}
	return host, nil
}

func defaultHost() (intmodel.Host, error) {
	name, err := os.Hostname()
	if err != nil || name == "" {
		name = "localhost"
	}

	host, _, err := apischeme.NormalizeHost(v1beta1.HostDoc{
		APIVersion: v1beta1.APIVersionV1Beta1,
		Kind:       v1beta1.KindHost,
		Metadata:   v1beta1.HostMetadata{Name: name},
	})
	if err != nil {
		return intmodel.Host{}, err
	}
	return host, nil
}
