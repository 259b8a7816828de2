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

// Package pkgmgr converges OS and pip packages to the installed state
// through whichever package manager the host carries.
package pkgmgr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nimslab/miprov/internal/hostcap"
	"github.com/nimslab/miprov/internal/util/cmdexec"
)

type Manager interface {
	Kind() hostcap.PackageManager
	// EnsurePackage installs the named OS package if absent and reports
	// whether anything changed.
	EnsurePackage(ctx context.Context, name string) (bool, error)
	// EnsurePipPackage installs a python package through pip if absent.
	EnsurePipPackage(ctx context.Context, python, name string) (bool, error)
}

// New selects a Manager for the detected package-manager fact.
func New(fact hostcap.PackageManager, logger *slog.Logger, runner cmdexec.Runner) (Manager, error) {
	switch fact {
	case hostcap.PackageManagerApt:
		return &apt{base{logger: logger, runner: runner}}, nil
	case hostcap.PackageManagerDnf:
		return &dnf{base{logger: logger, runner: runner}}, nil
	case hostcap.PackageManagerHomebrew:
		return &brew{base{logger: logger, runner: runner}}, nil
	default:
		return nil, fmt.Errorf("no package manager available for fact %q", fact)
	}
}

type base struct {
	logger *slog.Logger
	runner cmdexec.Runner
}

// pipInstalled checks presence through `pip show`, which exits non-zero for
// unknown packages.
func (b *base) pipInstalled(ctx context.Context, python, name string) bool {
	_, err := b.runner.Run(ctx, python, "-m", "pip", "show", name)
	return err == nil
}

func (b *base) ensurePip(ctx context.Context, python, name string) (bool, error) {
	if python == "" {
		python = "python3"
	}
	if b.pipInstalled(ctx, python, name) {
		return false, nil
	}

	if _, err := b.runner.Run(ctx, python, "-m", "pip", "install", name); err != nil {
		return false, fmt.Errorf("failed to pip install %s: %w", name, err)
	}
	b.logger.InfoContext(ctx, "installed pip package", "package", name)
	return true, nil
}
