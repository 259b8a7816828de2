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

package pkgmgr

import (
	"context"
	"fmt"

	"github.com/nimslab/miprov/internal/hostcap"
)

type apt struct{ base }

func (a *apt) Kind() hostcap.PackageManager { return hostcap.PackageManagerApt }

func (a *apt) EnsurePackage(ctx context.Context, name string) (bool, error) {
	if _, err := a.runner.Run(ctx, "dpkg", "-s", name); err == nil {
		return false, nil
	}

	if _, err := a.runner.Run(ctx, "apt-get", "install", "-y", name); err != nil {
		return false, fmt.Errorf("failed to install %s: %w", name, err)
	}
	a.logger.InfoContext(ctx, "installed package", "package", name, "manager", "apt")
	return true, nil
}

func (a *apt) EnsurePipPackage(ctx context.Context, python, name string) (bool, error) {
	return a.ensurePip(ctx, python, name)
}

type dnf struct{ base }

func (d *dnf) Kind() hostcap.PackageManager { return hostcap.PackageManagerDnf }

func (d *dnf) EnsurePackage(ctx context.Context, name string) (bool, error) {
	if _, err := d.runner.Run(ctx, "rpm", "-q", name); err == nil {
		return false, nil
	}

	if _, err := d.runner.Run(ctx, "dnf", "install", "-y", name); err != nil {
		return false, fmt.Errorf("failed to install %s: %w", name, err)
	}
	d.logger.InfoContext(ctx, "installed package", "package", name, "manager", "dnf")
	return true, nil
}

func (d *dnf) EnsurePipPackage(ctx context.Context, python, name string) (bool, error) {
	return d.ensurePip(ctx, python, name)
}

type brew struct{ base }

func (b *brew) Kind() hostcap.PackageManager { return hostcap.PackageManagerHomebrew }

func (b *brew) EnsurePackage(ctx context.Context, name string) (bool, error) {
	if _, err := b.runner.Run(ctx, "brew", "list", "--versions", name); err == nil {
		return false, nil
	}

	if _, err := b.runner.Run(ctx, "brew", "install", name); err != nil {
		return false, fmt.Errorf("failed to install %s: %w", name, err)
	}
	b.logger.InfoContext(ctx, "installed package", "package", name, "manager", "homebrew")
	return true, nil
}

func (b *brew) EnsurePipPackage(ctx context.Context, python, name string) (bool, error) {
	return b.ensurePip(ctx, python, name)
}
