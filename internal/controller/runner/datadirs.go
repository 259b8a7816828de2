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
	"errors"
	"fmt"
	"os"
	"os/user"
	"strconv"

	"github.com/nimslab/miprov/internal/consts"
	"github.com/nimslab/miprov/internal/errdefs"
)

func (r *Exec) ExistsDataDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s exists but is not a directory", dir)
	}
	return true, nil
}

// CreateDataDir creates the directory owned by the app user with
// world-read/write/execute permission. Dependent services mount it from
// arbitrary container UIDs, hence the wide mode.
func (r *Exec) CreateDataDir(dir, owner string) error {
	if err := os.MkdirAll(dir, consts.DataDirMode); err != nil {
		return fmt.Errorf("%w: %s: %w", errdefs.ErrCreateDataDir, dir, err)
	}
	// MkdirAll mode is masked by umask; converge explicitly.
	if err := os.Chmod(dir, consts.DataDirMode); err != nil {
		return fmt.Errorf("%w: %s: %w", errdefs.ErrCreateDataDir, dir, err)
	}

	u, err := user.Lookup(owner)
	if err != nil {
		return fmt.Errorf("%w: unknown user %s: %w", errdefs.ErrOwnDataDir, owner, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrOwnDataDir, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrOwnDataDir, err)
	}
	if err = os.Chown(dir, uid, gid); err != nil {
		return fmt.Errorf("%w: %s: %w", errdefs.ErrOwnDataDir, dir, err)
	}

	r.logger.DebugContext(r.ctx, "created data directory", "dir", dir, "owner", owner)
	return nil
}

func (r *Exec) SELinuxEnabled() bool {
	return r.labeler.Enabled()
}

func (r *Exec) HasContainerContext(dir string) (bool, error) {
	return r.labeler.HasFileType(dir, consts.ContainerFileType)
}

// LabelDataDir registers the persistent file-context rule and immediately
// relabels the tree. The rule must exist before restorecon runs, or the
// relabel has nothing to apply.
func (r *Exec) LabelDataDir(dir string) error {
	if err := r.labeler.EnsureFileContext(r.ctx, dir, consts.ContainerFileType); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrLabelDataDir, err)
	}
	if err := r.labeler.Restorecon(r.ctx, dir); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrRelabelDataDir, err)
	}
	return nil
}
