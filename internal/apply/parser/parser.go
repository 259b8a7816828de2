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

// Package parser reads declarative host manifests from YAML input.
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/nimslab/miprov/internal/errdefs"
	v1beta1 "github.com/nimslab/miprov/pkg/api/model/v1beta1"
	"gopkg.in/yaml.v3"
)

// Document represents a parsed YAML document with its type information.
type Document struct {
	Index      int
	Raw        []byte
	APIVersion v1beta1.Version
	Kind       v1beta1.Kind
	HostDoc    *v1beta1.HostDoc
}

// ValidationError represents a validation error for a specific document.
type ValidationError struct {
	Index int
	Kind  v1beta1.Kind
	Name  string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("document %d (%s %q): %v", e.Index, e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("document %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ParseDocuments reads a YAML stream from the given reader and splits it into
// its component documents. Empty documents are dropped.
func ParseDocuments(r io.Reader) ([][]byte, error) {
	dec := yaml.NewDecoder(r)

	var result [][]byte
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if emptyDocument(&node) {
			continue
		}

		raw, err := yaml.Marshal(&node)
		if err != nil {
			return nil, fmt.Errorf("failed to encode document: %w", err)
		}
		result = append(result, raw)
	}

	if len(result) == 0 {
		return nil, errors.New("no documents found in input")
	}

	return result, nil
}

func emptyDocument(node *yaml.Node) bool {
	if node.Kind == 0 {
		return true
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) != 1 {
		return false
	}
	return node.Content[0].Tag == "!!null"
}

// DetectKind extracts the kind from raw YAML bytes.
func DetectKind(raw []byte) (v1beta1.Kind, error) {
	var header struct {
		Kind v1beta1.Kind `yaml:"kind"`
	}
	if err := yaml.Unmarshal(raw, &header); err != nil {
		return "", fmt.Errorf("failed to parse kind: %w", err)
	}
	return header.Kind, nil
}

// ParseDocument parses a single YAML document and returns a Document with
// the appropriate typed doc.
func ParseDocument(index int, raw []byte) (*Document, error) {
	doc := &Document{
		Index: index,
		Raw:   raw,
	}

	kind, err := DetectKind(raw)
	if err != nil {
		return nil, fmt.Errorf("document %d: %w", index, err)
	}
	doc.Kind = kind

	switch kind {
	case v1beta1.KindHost:
		var hostDoc v1beta1.HostDoc
		if unmarshalErr := yaml.Unmarshal(raw, &hostDoc); unmarshalErr != nil {
			return nil, fmt.Errorf("document %d: failed to parse Host: %w", index, unmarshalErr)
		}
		doc.HostDoc = &hostDoc
		doc.APIVersion = hostDoc.APIVersion
	default:
		return nil, &ValidationError{Index: index, Kind: kind, Err: errdefs.ErrUnknownKind}
	}

	if doc.APIVersion != "" && doc.APIVersion != v1beta1.APIVersionV1Beta1 {
		return nil, &ValidationError{
			Index: index,
			Kind:  kind,
			Name:  docName(doc),
			Err:   fmt.Errorf("%w: %s", errdefs.ErrUnsupportedAPI, doc.APIVersion),
		}
	}

	return doc, nil
}

// ParseAll reads, splits and parses every document in the input.
func ParseAll(r io.Reader) ([]*Document, error) {
	raws, err := ParseDocuments(r)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(raws))
	for i, raw := range raws {
		doc, parseErr := ParseDocument(i, raw)
		if parseErr != nil {
			return nil, parseErr
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Validate performs structural validation on a parsed document.
func Validate(doc *Document) error {
	switch doc.Kind {
	case v1beta1.KindHost:
		if doc.HostDoc.Metadata.Name == "" {
			return &ValidationError{Index: doc.Index, Kind: doc.Kind, Err: errdefs.ErrHostNameRequired}
		}
		for _, s := range doc.HostDoc.Spec.Services {
			if s.Name == "" {
				return &ValidationError{
					Index: doc.Index,
					Kind:  doc.Kind,
					Name:  doc.HostDoc.Metadata.Name,
					Err:   errors.New("service name is required"),
				}
			}
		}
		return nil
	default:
		return &ValidationError{Index: doc.Index, Kind: doc.Kind, Err: errdefs.ErrUnknownKind}
	}
}

func docName(doc *Document) string {
	if doc.HostDoc != nil {
		return doc.HostDoc.Metadata.Name
	}
	return ""
}
