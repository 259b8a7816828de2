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

package controller

import (
	"fmt"

	"github.com/nimslab/miprov/internal/errdefs"
	"github.com/nimslab/miprov/internal/podman"
)

// EnsureNetworkResult reports the reconciliation outcome for the shared
// network.
type EnsureNetworkResult struct {
	Network string

	// Skipped is set in host-network mode, where no shared network
	// applies.
	Skipped    bool
	ExistsPre  bool
	ExistsPost bool
	Created    bool
}

// EnsureNetwork ensures the shared network exists when the resolved mode
// calls for one. A pre-existing network of the same name is a satisfied
// outcome; any other creation failure is fatal.
func (b *Exec) EnsureNetwork(mode NetworkModeResult) (EnsureNetworkResult, error) {
	var res EnsureNetworkResult

	if mode.PodNetwork == "" {
		res.Skipped = true
		return res, nil
	}
	res.Network = mode.PodNetwork

	exists, err := b.runner.ExistsNetwork(mode.PodNetwork)
	if err != nil {
		return res, err
	}
	res.ExistsPre = exists

	if !exists {
		if createErr := b.runner.CreateNetwork(mode.PodNetwork); createErr != nil {
			// Lost a creation race, or the exists check lied; both
			// mean the network is there.
			if !podman.IsAlreadyExists(createErr) {
				return res, fmt.Errorf("%w: %w", errdefs.ErrCreateNetwork, createErr)
			}
		} else {
			res.Created = true
		}
	}
	res.ExistsPost = true

	if err = b.runner.VerifyNetwork(mode.PodNetwork, mode.RuntimeVersion); err != nil {
		return res, err
	}

	return res, nil
}
