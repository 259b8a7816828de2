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
	"github.com/nimslab/miprov/internal/sysd"
)

// UnitResult reports one installed service unit.
type UnitResult struct {
	Service        string
	Unit           string
	Path           string
	ContentChanged bool
}

// EnsureUnitsResult reports the unit install and activation step.
type EnsureUnitsResult struct {
	// Skipped is set on hosts without a native init system; MachineInit
	// and MachineStarted report the VM lifecycle fallback issued instead.
	Skipped        bool
	Units          []UnitResult
	Reloaded       bool
	MachineInit    bool
	MachineStarted bool
}

// EnsureUnits renders and installs a unit per service, reloads the unit
// cache unconditionally and leaves every service enabled and freshly
// restarted. On hosts without systemd the whole sequence is replaced by the
// runtime's VM lifecycle pair: initialize then start.
func (b *Exec) EnsureUnits(
	host intmodel.Host,
	mode NetworkModeResult,
	caps hostcap.Capabilities,
) (EnsureUnitsResult, error) {
	var res EnsureUnitsResult

	if !caps.NativeInit {
		res.Skipped = true

		if err := b.runner.MachineInit(); err != nil {
			return res, err
		}
		res.MachineInit = true

		if err := b.runner.MachineStart(); err != nil {
			return res, err
		}
		res.MachineStarted = true

		return res, nil
	}

	for _, svc := range host.Spec.Services {
		unitRes, err := b.ensureUnit(host, mode, svc)
		if err != nil {
			return res, err
		}
		res.Units = append(res.Units, unitRes)
	}

	// Reload even when nothing changed; a no-op reload is cheaper than a
	// stale unit cache.
	if err := b.runner.DaemonReload(); err != nil {
		return res, err
	}
	res.Reloaded = true

	for i := range res.Units {
		if err := b.runner.EnableAndRestartUnit(res.Units[i].Unit); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (b *Exec) ensureUnit(
	host intmodel.Host,
	mode NetworkModeResult,
	svc intmodel.Service,
) (UnitResult, error) {
	res := UnitResult{
		Service: svc.Name,
		Unit:    svc.UnitName(),
		Path:    svc.UnitPath,
	}

	// Unknown mode carries neither setting; the unit falls back to the
	// runtime's default networking.
	networkFlag := ""
	switch {
	case mode.PodNetwork != "":
		networkFlag = "--pod " + host.Spec.Pod
	case mode.ContainerNetwork != "":
		networkFlag = "--network " + mode.ContainerNetwork
	}
	volumeFlag := ""
	if svc.DataDir != "" {
		volumeFlag = "-v " + svc.DataDir + ":" + svc.DataDir
	}

	content, err := sysd.RenderUnit(sysd.UnitParams{
		Description:   fmt.Sprintf("%s %s service", host.Spec.AppName, svc.Name),
		ContainerName: host.Spec.AppName + "-" + svc.Name,
		Image:         svc.Image,
		NetworkFlag:   networkFlag,
		VolumeFlag:    volumeFlag,
	})
	if err != nil {
		return res, fmt.Errorf("%w: %w", errdefs.ErrRenderUnit, err)
	}

	changed, err := b.runner.WriteUnit(svc.UnitPath, content)
	if err != nil {
		return res, err
	}
	res.ContentChanged = changed

	return res, nil
}
