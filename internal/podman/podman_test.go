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

package podman_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/nimslab/miprov/internal/podman"
	"github.com/nimslab/miprov/internal/util/cmdexec"
)

// fakeCmdRunner implements cmdexec.Runner for testing.
type fakeCmdRunner struct {
	RunFn      func(ctx context.Context, name string, args ...string) (string, error)
	LookPathFn func(name string) bool

	calls [][]string
}

func (f *fakeCmdRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.RunFn != nil {
		return f.RunFn(ctx, name, args...)
	}
	return "", nil
}

func (f *fakeCmdRunner) LookPath(name string) bool {
	if f.LookPathFn != nil {
		return f.LookPathFn(name)
	}
	return true
}

func testClient(runner cmdexec.Runner) podman.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return podman.NewClient(logger, "", runner)
}

func TestVersion(t *testing.T) {
	runner := &fakeCmdRunner{
		RunFn: func(_ context.Context, _ string, _ ...string) (string, error) {
			return "3.4.4", nil
		},
	}

	version, err := testClient(runner).Version(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != "3.4.4" {
		t.Errorf("expected version '3.4.4', got %q", version)
	}

	want := []string{"podman", "version", "--format", "{{.Version}}"}
	if len(runner.calls) != 1 || strings.Join(runner.calls[0], " ") != strings.Join(want, " ") {
		t.Errorf("unexpected command: %v", runner.calls)
	}
}

func TestExistsNetwork(t *testing.T) {
	tests := []struct {
		name       string
		runErr     error
		wantExists bool
		wantErr    bool
	}{
		{
			name:       "zero exit means present",
			wantExists: true,
		},
		{
			name:   "exit code one means absent",
			runErr: &cmdexec.ExitError{Cmd: "podman network exists mip-net", Code: 1},
		},
		{
			name:    "other failures propagate",
			runErr:  &cmdexec.ExitError{Cmd: "podman network exists mip-net", Code: 125, Stderr: "cannot connect"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeCmdRunner{
				RunFn: func(_ context.Context, _ string, _ ...string) (string, error) {
					return "", tt.runErr
				},
			}

			exists, err := testClient(runner).ExistsNetwork(context.Background(), "mip-net")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if exists != tt.wantExists {
				t.Errorf("exists = %v, want %v", exists, tt.wantExists)
			}
		})
	}
}

func TestCreateNetwork_ClassifiesAlreadyExists(t *testing.T) {
	runner := &fakeCmdRunner{
		RunFn: func(_ context.Context, _ string, _ ...string) (string, error) {
			return "", &cmdexec.ExitError{
				Cmd:    "podman network create mip-net",
				Code:   125,
				Stderr: `Error: network name "mip-net" already exists`,
			}
		},
	}

	err := testClient(runner).CreateNetwork(context.Background(), "mip-net")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !podman.IsAlreadyExists(err) {
		t.Errorf("expected an already-exists classification, got %v", err)
	}
}

func TestCreatePod_BuildsPublishArgs(t *testing.T) {
	runner := &fakeCmdRunner{}

	spec := podman.PodSpec{
		Name:    "mip-pod",
		Network: "mip-net",
		Publish: []podman.PortMapping{
			{Host: 5432, Container: 5432},
			{Host: 8000, Container: 8000},
		},
	}

	if err := testClient(runner).CreatePod(context.Background(), spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := strings.Join(runner.calls[0], " ")
	want := "podman pod create --name mip-pod --network mip-net -p 5432:5432 -p 8000:8000"
	if got != want {
		t.Errorf("command mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestStartPod_AlreadyRunningTolerated(t *testing.T) {
	runner := &fakeCmdRunner{
		RunFn: func(_ context.Context, _ string, _ ...string) (string, error) {
			return "", &cmdexec.ExitError{
				Cmd:    "podman pod start mip-pod",
				Code:   125,
				Stderr: "Error: pod mip-pod is already running",
			}
		},
	}

	if err := testClient(runner).StartPod(context.Background(), "mip-pod"); err != nil {
		t.Fatalf("expected already-running start to be tolerated, got %v", err)
	}
}

func TestMachineInit_AlreadyInitializedTolerated(t *testing.T) {
	runner := &fakeCmdRunner{
		RunFn: func(_ context.Context, _ string, _ ...string) (string, error) {
			return "", &cmdexec.ExitError{
				Cmd:    "podman machine init",
				Code:   125,
				Stderr: `Error: podman-machine-default: VM already exists`,
			}
		},
	}

	if err := testClient(runner).MachineInit(context.Background()); err != nil {
		t.Fatalf("expected already-initialized machine to be tolerated, got %v", err)
	}
}
