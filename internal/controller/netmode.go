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
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	"github.com/nimslab/miprov/internal/netmode"
)

// NetworkModeResult reports the outcome of network-mode resolution. At most
// one of PodNetwork and ContainerNetwork is non-empty; both stay empty when
// the runtime version could not be classified.
type NetworkModeResult struct {
	RuntimeVersion   string
	Mode             netmode.Mode
	PodNetwork       string
	ContainerNetwork string
}

// ResolveNetworkMode queries the runtime version once and derives the
// network strategy. Read-only: no host mutation happens here.
func (b *Exec) ResolveNetworkMode(host intmodel.Host) (NetworkModeResult, error) {
	var res NetworkModeResult

	version, err := b.runner.RuntimeVersion()
	if err != nil {
		return res, fmt.Errorf("%w: %w", errdefs.ErrResolveNetworkMode, err)
	}
	res.RuntimeVersion = version

	resolution := netmode.Resolve(version, host.Spec.Network)
	res.Mode = resolution.Mode
	res.PodNetwork = resolution.PodNetwork
	res.ContainerNetwork = resolution.ContainerNetwork

	b.logger.DebugContext(b.ctx, "resolved network mode",
		"version", version,
		"mode", res.Mode.String(),
		"podNetwork", res.PodNetwork,
		"containerNetwork", res.ContainerNetwork,
	)
	return res, nil
}
