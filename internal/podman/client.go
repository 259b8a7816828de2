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

// Package podman drives the podman runtime through its CLI. The runtime is
// treated as a black box: every operation is a single idempotent command
// whose failure modes are classified into generic error classes.
package podman

import (
	"context"
	"log/slog"

	"github.com/nimslab/miprov/internal/util/cmdexec"
)

type client struct {
	logger *slog.Logger
	bin    string
	runner cmdexec.Runner
}

type Client interface {
	Version(ctx context.Context) (string, error)
	ExistsNetwork(ctx context.Context, name string) (bool, error)
	CreateNetwork(ctx context.Context, name string) error
	ExistsPod(ctx context.Context, name string) (bool, error)
	CreatePod(ctx context.Context, spec PodSpec) error
	StartPod(ctx context.Context, name string) error
	MachineInit(ctx context.Context) error
	MachineStart(ctx context.Context) error
}

// PodSpec describes the shared multi-service pod.
type PodSpec struct {
	Name    string
	Network string
	Publish []PortMapping
}

type PortMapping struct {
	Host      int
	Container int
}

// NewClient returns a Client invoking the given podman binary through the
// runner. An empty bin selects "podman".
func NewClient(logger *slog.Logger, bin string, runner cmdexec.Runner) Client {
	if bin == "" {
		bin = "podman"
	}
	return &client{
		logger: logger,
		bin:    bin,
		runner: runner,
	}
}
