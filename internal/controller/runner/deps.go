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

package runner

import (
	"fmt"

	"github.com/nimslab/miprov/internal/errdefs"
	"github.com/nimslab/miprov/internal/pkgmgr"
)

// PackageManager lazily selects the manager matching the detected fact and
// keeps it for the rest of the run.
func (r *Exec) PackageManager() (pkgmgr.Manager, error) {
	if r.packager != nil {
		return r.packager, nil
	}

	caps := r.probe.Detect()
	mgr, err := pkgmgr.New(caps.PackageManager, r.logger, r.cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrDetectPackager, err)
	}
	r.packager = mgr
	return mgr, nil
}

func (r *Exec) EnsurePackage(name string) (bool, error) {
	mgr, err := r.PackageManager()
	if err != nil {
		return false, err
	}

	changed, err := mgr.EnsurePackage(r.ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errdefs.ErrInstallPackage, err)
	}
	return changed, nil
}

func (r *Exec) EnsurePipPackage(python, name string) (bool, error) {
	mgr, err := r.PackageManager()
	if err != nil {
		return false, err
	}

	changed, err := mgr.EnsurePipPackage(r.ctx, python, name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errdefs.ErrInstallPipPackage, err)
	}
	return changed, nil
}

func (r *Exec) EnsureSELinuxBoolean(name string, on bool) error {
	if err := r.labeler.EnsureBoolean(r.ctx, name, on); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrSetBoolean, err)
	}
	return nil
}
