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

// Package hostcap detects host capabilities once per run. Steps declare
// their applicability against the Capabilities struct instead of scattering
// package-manager conditionals.
package hostcap

import (
	"github.com/nimslab/miprov/internal/util/cmdexec"
)

// PackageManager is the detected package-manager fact.
type PackageManager string

const (
	PackageManagerApt      PackageManager = "apt"
	PackageManagerDnf      PackageManager = "dnf"
	PackageManagerHomebrew PackageManager = "homebrew"
	PackageManagerUnknown  PackageManager = "unknown"
)

type Capabilities struct {
	PackageManager PackageManager
	// NativeInit reports whether the host runs services through a native
	// init system. Homebrew-managed hosts do not; unit installation is
	// replaced by the runtime's own VM lifecycle there.
	NativeInit bool
	// SELinux reports whether labeling steps apply on this host.
	SELinux bool
}

// Detector probes the host.
type Detector interface {
	Detect() Capabilities
}

type Probe struct {
	runner  cmdexec.Runner
	selinux func() bool
}

func NewProbe(runner cmdexec.Runner, selinuxEnabled func() bool) *Probe {
	return &Probe{runner: runner, selinux: selinuxEnabled}
}

func (p *Probe) Detect() Capabilities {
	pm := p.detectPackageManager()
	return Capabilities{
		PackageManager: pm,
		NativeInit:     pm != PackageManagerHomebrew && pm != PackageManagerUnknown,
		SELinux:        p.selinux(),
	}
}

func (p *Probe) detectPackageManager() PackageManager {
	// dnf before apt: some RPM hosts carry an apt compatibility shim.
	switch {
	case p.runner.LookPath("dnf"):
		return PackageManagerDnf
	case p.runner.LookPath("apt-get"):
		return PackageManagerApt
	case p.runner.LookPath("brew"):
		return PackageManagerHomebrew
	default:
		return PackageManagerUnknown
	}
}
