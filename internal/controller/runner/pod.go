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
	"github.com/nimslab/miprov/internal/podman"
)

func (r *Exec) ExistsPod(name string) (bool, error) {
	exists, err := r.runtime.ExistsPod(r.ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errdefs.ErrCheckPodExists, err)
	}
	return exists, nil
}

func (r *Exec) CreatePod(spec podman.PodSpec) error {
	return r.runtime.CreatePod(r.ctx, spec)
}

func (r *Exec) StartPod(name string) error {
	if err := r.runtime.StartPod(r.ctx, name); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrStartPod, err)
	}
	return nil
}

func (r *Exec) MachineInit() error {
	if err := r.runtime.MachineInit(r.ctx); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrMachineInit, err)
	}
	return nil
}

func (r *Exec) MachineStart() error {
	if err := r.runtime.MachineStart(r.ctx); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrMachineStart, err)
	}
	return nil
}
