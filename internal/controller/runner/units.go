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
)

func (r *Exec) WriteUnit(path string, content []byte) (bool, error) {
	changed, err := r.units.WriteUnit(path, content)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errdefs.ErrWriteUnit, err)
	}
	if changed {
		r.logger.InfoContext(r.ctx, "wrote unit file", "path", path)
	}
	return changed, nil
}

func (r *Exec) DaemonReload() error {
	if err := r.units.DaemonReload(r.ctx); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrReloadUnits, err)
	}
	return nil
}

func (r *Exec) EnableAndRestartUnit(unit string) error {
	if err := r.units.EnableAndRestart(r.ctx, unit); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrRestartUnit, err)
	}
	return nil
}
