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

	"github.com/Masterminds/semver/v3"
	"github.com/nimslab/miprov/internal/cni"
	"github.com/nimslab/miprov/internal/errdefs"
)

func (r *Exec) ExistsNetwork(name string) (bool, error) {
	exists, err := r.runtime.ExistsNetwork(r.ctx, name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errdefs.ErrCheckNetworkExists, err)
	}
	return exists, nil
}

func (r *Exec) CreateNetwork(name string) error {
	return r.runtime.CreateNetwork(r.ctx, name)
}

// VerifyNetwork inspects the CNI conflist podman wrote for the network.
// Netavark-backed runtime versions (major >= 4) keep no conflist, so there
// is nothing to verify there. A missing conflist on a CNI-backed version is
// tolerated: rootless podman keeps its configs under the user's home.
func (r *Exec) VerifyNetwork(name, runtimeVersion string) error {
	v, err := semver.NewVersion(runtimeVersion)
	if err != nil || v.Major() >= 4 {
		return nil
	}

	if verifyErr := r.cniMgr.VerifyNetworkConfig(name, ""); verifyErr != nil {
		if errors.Is(verifyErr, cni.ErrInvalidConfigList) || errors.Is(verifyErr, cni.ErrConfigNotFound) {
			r.logger.DebugContext(r.ctx, "no readable conflist for network", "network", name, "err", verifyErr)
			return nil
		}
		return fmt.Errorf("%w: %w", errdefs.ErrVerifyNetwork, verifyErr)
	}
	return nil
}
