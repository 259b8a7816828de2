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

package pkgmgr_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nimslab/miprov/internal/hostcap"
	"github.com/nimslab/miprov/internal/pkgmgr"
)

type fakeCmdRunner struct {
	RunFn func(ctx context.Context, name string, args ...string) (string, error)

	calls [][]string
}

func (f *fakeCmdRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.RunFn != nil {
		return f.RunFn(ctx, name, args...)
	}
	return "", nil
}

func (f *fakeCmdRunner) LookPath(_ string) bool { return true }

func testManager(t *testing.T, fact hostcap.PackageManager, runner *fakeCmdRunner) pkgmgr.Manager {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr, err := pkgmgr.New(fact, logger, runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return mgr
}

func TestNew_UnknownFact(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := pkgmgr.New(hostcap.PackageManagerUnknown, logger, &fakeCmdRunner{}); err == nil {
		t.Fatal("expected error for unknown package manager")
	}
}

func TestEnsurePackage(t *testing.T) {
	tests := []struct {
		name      string
		fact      hostcap.PackageManager
		queryCmd  string
		install   string
		installed bool
	}{
		{
			name:     "dnf installs absent package",
			fact:     hostcap.PackageManagerDnf,
			queryCmd: "rpm -q podman",
			install:  "dnf install -y podman",
		},
		{
			name:      "dnf leaves present package alone",
			fact:      hostcap.PackageManagerDnf,
			queryCmd:  "rpm -q podman",
			installed: true,
		},
		{
			name:     "apt installs absent package",
			fact:     hostcap.PackageManagerApt,
			queryCmd: "dpkg -s podman",
			install:  "apt-get install -y podman",
		},
		{
			name:     "brew installs absent package",
			fact:     hostcap.PackageManagerHomebrew,
			queryCmd: "brew list --versions podman",
			install:  "brew install podman",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeCmdRunner{
				RunFn: func(_ context.Context, name string, args ...string) (string, error) {
					cmd := strings.Join(append([]string{name}, args...), " ")
					if cmd == tt.queryCmd && !tt.installed {
						return "", errors.New("package not installed")
					}
					return "", nil
				},
			}

			mgr := testManager(t, tt.fact, runner)

			changed, err := mgr.EnsurePackage(context.Background(), "podman")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.installed {
				if changed {
					t.Error("expected no change for an installed package")
				}
				if len(runner.calls) != 1 {
					t.Errorf("expected only the query call, got %v", runner.calls)
				}
				return
			}

			if !changed {
				t.Error("expected install to report a change")
			}
			got := strings.Join(runner.calls[1], " ")
			if got != tt.install {
				t.Errorf("install command mismatch:\n got %q\nwant %q", got, tt.install)
			}
		})
	}
}

func TestEnsurePipPackage(t *testing.T) {
	runner := &fakeCmdRunner{
		RunFn: func(_ context.Context, _ string, args ...string) (string, error) {
			if len(args) >= 3 && args[2] == "show" {
				return "", errors.New("not installed")
			}
			return "", nil
		},
	}

	mgr := testManager(t, hostcap.PackageManagerDnf, runner)

	changed, err := mgr.EnsurePipPackage(context.Background(), "/usr/bin/python3", "psycopg2-binary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Error("expected pip install to report a change")
	}

	got := strings.Join(runner.calls[1], " ")
	want := "/usr/bin/python3 -m pip install psycopg2-binary"
	if got != want {
		t.Errorf("pip command mismatch:\n got %q\nwant %q", got, want)
	}
}
