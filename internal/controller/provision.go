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
	"github.com/nimslab/miprov/internal/hostcap"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
)

type ProvisionOptions struct {
	Host intmodel.Host

	// SkipDeps leaves the package database alone; useful on hosts
	// provisioned by another tool.
	SkipDeps bool
}

// ProvisionReport aggregates the whole pipeline's outcomes.
type ProvisionReport struct {
	HostName     string
	Capabilities hostcap.Capabilities

	Deps     EnsureDepsResult
	Mode     NetworkModeResult
	Network  EnsureNetworkResult
	Pod      EnsurePodResult
	DataDirs EnsureDataDirsResult
	Units    EnsureUnitsResult
}

// Provision runs the full host pipeline: dependencies, network-mode
// resolution, shared network and pod, data directories, then unit install
// and activation. Strictly sequential; the first failure halts the run.
func (b *Exec) Provision(opts ProvisionOptions) (ProvisionReport, error) {
	defer b.runner.Close()

	host := opts.Host
	report := ProvisionReport{HostName: host.Metadata.Name}

	b.logger.DebugContext(b.ctx, "provisioning host", "host", host.Metadata.Name)

	report.Capabilities = b.runner.DetectCapabilities()

	var err error
	if !opts.SkipDeps {
		report.Deps, err = b.EnsureDeps(host, report.Capabilities)
		if err != nil {
			return report, fmt.Errorf("%w: %w", errdefs.ErrProvisionHost, err)
		}
	}

	report.Mode, err = b.ResolveNetworkMode(host)
	if err != nil {
		return report, fmt.Errorf("%w: %w", errdefs.ErrProvisionHost, err)
	}

	report.Network, err = b.EnsureNetwork(report.Mode)
	if err != nil {
		return report, fmt.Errorf("%w: %w", errdefs.ErrProvisionHost, err)
	}

	report.Pod, err = b.EnsurePod(host, report.Mode)
	if err != nil {
		return report, fmt.Errorf("%w: %w", errdefs.ErrProvisionHost, err)
	}

	report.DataDirs, err = b.EnsureDataDirs(host)
	if err != nil {
		return report, fmt.Errorf("%w: %w", errdefs.ErrProvisionHost, err)
	}

	report.Units, err = b.EnsureUnits(host, report.Mode, report.Capabilities)
	if err != nil {
		return report, fmt.Errorf("%w: %w", errdefs.ErrProvisionHost, err)
	}

	return report, nil
}
