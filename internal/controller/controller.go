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

// Package controller reconciles desired host state (the Host manifest)
// against the actual host. Every operation is a convergence check: it
// reports what existed before, what exists after and what was changed.
package controller

import (
	"context"
	"log/slog"

	"github.com/nimslab/miprov/internal/controller/runner"
	"github.com/nimslab/miprov/internal/hostcap"
)

type Controller interface {
	Provision(opts ProvisionOptions) (ProvisionReport, error)
}

type Exec struct {
	ctx    context.Context
	logger *slog.Logger
	opts   Options
	runner runner.Runner
}

type Options struct {
	RuntimeBin   string
	CNIConfigDir string
}

func NewControllerExec(ctx context.Context, logger *slog.Logger, opts Options) *Exec {
	return &Exec{
		ctx:    ctx,
		logger: logger,
		opts:   opts,
		runner: runner.NewRunner(ctx, logger, runner.Options{
			RuntimeBin:   opts.RuntimeBin,
			CNIConfigDir: opts.CNIConfigDir,
		}),
	}
}

// NewControllerExecForTesting builds a controller around an injected runner.
func NewControllerExecForTesting(
	ctx context.Context,
	logger *slog.Logger,
	opts Options,
	r runner.Runner,
) *Exec {
	return &Exec{
		ctx:    ctx,
		logger: logger,
		opts:   opts,
		runner: r,
	}
}

// DetectCapabilities probes the host: package manager, native init system,
// SELinux enforcement.
func (b *Exec) DetectCapabilities() hostcap.Capabilities {
	return b.runner.DetectCapabilities()
}

// Close releases runner resources (the systemd D-Bus connection).
func (b *Exec) Close() error {
	return b.runner.Close()
}
