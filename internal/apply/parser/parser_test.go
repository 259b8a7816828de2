//go:build !integration

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

package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nimslab/miprov/internal/apply/parser"
	"github.com/nimslab/miprov/internal/errdefs"
	v1beta1 "github.com/nimslab/miprov/pkg/api/model/v1beta1"
)

const hostManifest = `apiVersion: v1beta1
kind: Host
metadata:
  name: imaging-01
spec:
  appName: mip
  services:
    - name: dev
      image: quay.io/nimslab/mip-dev:latest
      port: 8000
`

func TestParseDocuments(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "single document",
			input: hostManifest,
			want:  1,
		},
		{
			name:  "multiple documents",
			input: hostManifest + "---\n" + hostManifest,
			want:  2,
		},
		{
			name:  "leading separator and blank documents are skipped",
			input: "---\n" + hostManifest + "\n---\n\n---\n" + hostManifest,
			want:  2,
		},
		{
			name:  "separator inside a block scalar stays one document",
			input: "kind: Host\nmetadata:\n  name: imaging-01\nspec:\n  appName: |\n    ---\n    mip\n",
			want:  1,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only separators",
			input:   "---\n---\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := parser.ParseDocuments(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(docs) != tt.want {
				t.Errorf("expected %d documents, got %d", tt.want, len(docs))
			}
		})
	}
}

func TestDetectKind(t *testing.T) {
	kind, err := parser.DetectKind([]byte(hostManifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != v1beta1.KindHost {
		t.Errorf("expected kind %q, got %q", v1beta1.KindHost, kind)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := parser.ParseDocument(0, []byte(hostManifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Kind != v1beta1.KindHost {
		t.Errorf("expected kind %q, got %q", v1beta1.KindHost, doc.Kind)
	}
	if doc.APIVersion != v1beta1.APIVersionV1Beta1 {
		t.Errorf("expected apiVersion %q, got %q", v1beta1.APIVersionV1Beta1, doc.APIVersion)
	}
	if doc.HostDoc == nil {
		t.Fatal("expected a parsed HostDoc")
	}
	if doc.HostDoc.Metadata.Name != "imaging-01" {
		t.Errorf("expected host name 'imaging-01', got %q", doc.HostDoc.Metadata.Name)
	}
	if len(doc.HostDoc.Spec.Services) != 1 || doc.HostDoc.Spec.Services[0].Port != 8000 {
		t.Errorf("services mismatch: %+v", doc.HostDoc.Spec.Services)
	}
}

func TestParseDocument_UnknownKind(t *testing.T) {
	_, err := parser.ParseDocument(0, []byte("kind: Cluster\nmetadata:\n  name: x\n"))
	if !errors.Is(err, errdefs.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestParseDocument_UnsupportedAPIVersion(t *testing.T) {
	manifest := strings.Replace(hostManifest, "apiVersion: v1beta1", "apiVersion: v2", 1)

	_, err := parser.ParseDocument(3, []byte(manifest))
	if !errors.Is(err, errdefs.ErrUnsupportedAPI) {
		t.Fatalf("expected ErrUnsupportedAPI, got %v", err)
	}

	var vErr *parser.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected a ValidationError, got %T", err)
	}
	if vErr.Index != 3 || vErr.Name != "imaging-01" {
		t.Errorf("validation error detail mismatch: %+v", vErr)
	}
}

func TestParseAll(t *testing.T) {
	docs, err := parser.ParseAll(strings.NewReader(hostManifest + "---\n" + hostManifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[1].Index != 1 {
		t.Errorf("expected index 1 on second document, got %d", docs[1].Index)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*v1beta1.HostDoc)
		wantErr  error
		wantText string
	}{
		{
			name:   "valid host",
			mutate: func(_ *v1beta1.HostDoc) {},
		},
		{
			name:    "missing host name",
			mutate:  func(d *v1beta1.HostDoc) { d.Metadata.Name = "" },
			wantErr: errdefs.ErrHostNameRequired,
		},
		{
			name: "missing service name",
			mutate: func(d *v1beta1.HostDoc) {
				d.Spec.Services = append(d.Spec.Services, v1beta1.ServiceSpec{Image: "x"})
			},
			wantText: "service name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parser.ParseDocument(0, []byte(hostManifest))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.mutate(doc.HostDoc)

			err = parser.Validate(doc)
			if tt.wantErr == nil && tt.wantText == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantText != "" && !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("expected %q in error, got %q", tt.wantText, err)
			}
		})
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	err := &parser.ValidationError{
		Index: 2,
		Kind:  v1beta1.KindHost,
		Name:  "imaging-01",
		Err:   errors.New("boom"),
	}
	want := `document 2 (Host "imaging-01"): boom`
	if err.Error() != want {
		t.Errorf("formatting mismatch:\n got %q\nwant %q", err.Error(), want)
	}

	err = &parser.ValidationError{Index: 0, Kind: v1beta1.KindHost, Err: errors.New("boom")}
	want = "document 0 (Host): boom"
	if err.Error() != want {
		t.Errorf("formatting mismatch:\n got %q\nwant %q", err.Error(), want)
	}
}
