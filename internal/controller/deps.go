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
	"strings"

	"github.com/nimslab/miprov/internal/consts"
	"github.com/nimslab/miprov/internal/hostcap"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
)

// PackageResult reports one ensured package.
type PackageResult struct {
	Name      string
	Installed bool
}

// EnsureDepsResult reports the dependency-installation step.
type EnsureDepsResult struct {
	PackageManager hostcap.PackageManager
	Packages       []PackageResult
	Pip            []PackageResult
	// PipSkipped is set on hosts using the legacy python2-era binding
	// set, where the database-driver pip package does not apply.
	PipSkipped bool
	BooleanSet bool
	// SELinuxSkipped is set when SELinux is not enabled on the host.
	SELinuxSkipped bool
}

// The database-driver binding installed through pip on python3 hosts.
const pipDatabaseDriver = "psycopg2-binary"

// EnsureDeps converges the base package set, the python database-driver
// binding and the SELinux boolean that lets systemd manage container
// cgroups.
func (b *Exec) EnsureDeps(host intmodel.Host, caps hostcap.Capabilities) (EnsureDepsResult, error) {
	res := EnsureDepsResult{PackageManager: caps.PackageManager}

	python3 := strings.Contains(host.Spec.Python, "python3")

	for _, pkg := range basePackages(caps, python3) {
		installed, err := b.runner.EnsurePackage(pkg)
		if err != nil {
			return res, err
		}
		res.Packages = append(res.Packages, PackageResult{Name: pkg, Installed: installed})
	}

	if !python3 {
		res.PipSkipped = true
	} else {
		installed, err := b.runner.EnsurePipPackage(host.Spec.Python, pipDatabaseDriver)
		if err != nil {
			return res, err
		}
		res.Pip = append(res.Pip, PackageResult{Name: pipDatabaseDriver, Installed: installed})
	}

	if !caps.SELinux {
		res.SELinuxSkipped = true
		return res, nil
	}

	if err := b.runner.EnsureSELinuxBoolean(consts.ContainerManageCgroupBoolean, true); err != nil {
		return res, err
	}
	res.BooleanSet = true

	return res, nil
}

// basePackages is the per-manager package name table. The two SELinux
// binding names are mutually exclusive: hosts on the python3 runtime take
// the python3-prefixed package, everything older takes the legacy name.
func basePackages(caps hostcap.Capabilities, python3 bool) []string {
	switch caps.PackageManager {
	case hostcap.PackageManagerApt:
		if python3 {
			return []string{"python3", "python3-pip", "python3-selinux", "podman"}
		}
		return []string{"python", "python-pip", "python-selinux", "podman"}
	case hostcap.PackageManagerDnf:
		if python3 {
			return []string{"python3", "python3-pip", "python3-libselinux", "podman"}
		}
		return []string{"python2", "python2-pip", "libselinux-python", "podman"}
	case hostcap.PackageManagerHomebrew:
		// No SELinux bindings on homebrew hosts; pip ships with python.
		return []string{"python3", "podman"}
	default:
		return nil
	}
}
