//go:build !integration

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

package controller_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nimslab/miprov/internal/consts"
	"github.com/nimslab/miprov/internal/controller"
	"github.com/nimslab/miprov/internal/controller/runner"
	"github.com/nimslab/miprov/internal/hostcap"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	"github.com/nimslab/miprov/internal/pkgmgr"
	"github.com/nimslab/miprov/internal/podman"
)

// fakeRunner implements runner.Runner interface for testing.
type fakeRunner struct {
	// Host facts
	RuntimeVersionFn     func() (string, error)
	DetectCapabilitiesFn func() hostcap.Capabilities

	// Runtime objects
	ExistsNetworkFn func(name string) (bool, error)
	CreateNetworkFn func(name string) error
	VerifyNetworkFn func(name, runtimeVersion string) error
	ExistsPodFn     func(name string) (bool, error)
	CreatePodFn     func(spec podman.PodSpec) error
	StartPodFn      func(name string) error
	MachineInitFn   func() error
	MachineStartFn  func() error

	// Data directories and SELinux labeling
	ExistsDataDirFn       func(dir string) (bool, error)
	CreateDataDirFn       func(dir, owner string) error
	SELinuxEnabledFn      func() bool
	HasContainerContextFn func(dir string) (bool, error)
	LabelDataDirFn        func(dir string) error

	// Unit files
	WriteUnitFn            func(path string, content []byte) (bool, error)
	DaemonReloadFn         func() error
	EnableAndRestartUnitFn func(unit string) error

	// Packages
	PackageManagerFn       func() (pkgmgr.Manager, error)
	EnsurePackageFn        func(name string) (bool, error)
	EnsurePipPackageFn     func(python, name string) (bool, error)
	EnsureSELinuxBooleanFn func(name string, on bool) error

	// Close
	CloseFn func() error
}

// Host facts

func (f *fakeRunner) RuntimeVersion() (string, error) {
	if f.RuntimeVersionFn != nil {
		return f.RuntimeVersionFn()
	}
	return "", errors.New("unexpected call to RuntimeVersion")
}

func (f *fakeRunner) DetectCapabilities() hostcap.Capabilities {
	if f.DetectCapabilitiesFn != nil {
		return f.DetectCapabilitiesFn()
	}
	return hostcap.Capabilities{}
}

// Runtime objects

func (f *fakeRunner) ExistsNetwork(name string) (bool, error) {
	if f.ExistsNetworkFn != nil {
		return f.ExistsNetworkFn(name)
	}
	return false, errors.New("unexpected call to ExistsNetwork")
}

func (f *fakeRunner) CreateNetwork(name string) error {
	if f.CreateNetworkFn != nil {
		return f.CreateNetworkFn(name)
	}
	return errors.New("unexpected call to CreateNetwork")
}

func (f *fakeRunner) VerifyNetwork(name, runtimeVersion string) error {
	if f.VerifyNetworkFn != nil {
		return f.VerifyNetworkFn(name, runtimeVersion)
	}
	return errors.New("unexpected call to VerifyNetwork")
}

func (f *fakeRunner) ExistsPod(name string) (bool, error) {
	if f.ExistsPodFn != nil {
		return f.ExistsPodFn(name)
	}
	return false, errors.New("unexpected call to ExistsPod")
}

func (f *fakeRunner) CreatePod(spec podman.PodSpec) error {
	if f.CreatePodFn != nil {
		return f.CreatePodFn(spec)
	}
	return errors.New("unexpected call to CreatePod")
}

func (f *fakeRunner) StartPod(name string) error {
	if f.StartPodFn != nil {
		return f.StartPodFn(name)
	}
	return errors.New("unexpected call to StartPod")
}

func (f *fakeRunner) MachineInit() error {
	if f.MachineInitFn != nil {
		return f.MachineInitFn()
	}
	return errors.New("unexpected call to MachineInit")
}

func (f *fakeRunner) MachineStart() error {
	if f.MachineStartFn != nil {
		return f.MachineStartFn()
	}
	return errors.New("unexpected call to MachineStart")
}

// Data directories and SELinux labeling

func (f *fakeRunner) ExistsDataDir(dir string) (bool, error) {
	if f.ExistsDataDirFn != nil {
		return f.ExistsDataDirFn(dir)
	}
	return false, errors.New("unexpected call to ExistsDataDir")
}

func (f *fakeRunner) CreateDataDir(dir, owner string) error {
	if f.CreateDataDirFn != nil {
		return f.CreateDataDirFn(dir, owner)
	}
	return errors.New("unexpected call to CreateDataDir")
}

func (f *fakeRunner) SELinuxEnabled() bool {
	if f.SELinuxEnabledFn != nil {
		return f.SELinuxEnabledFn()
	}
	return false
}

func (f *fakeRunner) HasContainerContext(dir string) (bool, error) {
	if f.HasContainerContextFn != nil {
		return f.HasContainerContextFn(dir)
	}
	return false, errors.New("unexpected call to HasContainerContext")
}

func (f *fakeRunner) LabelDataDir(dir string) error {
	if f.LabelDataDirFn != nil {
		return f.LabelDataDirFn(dir)
	}
	return errors.New("unexpected call to LabelDataDir")
}

// Unit files

func (f *fakeRunner) WriteUnit(path string, content []byte) (bool, error) {
	if f.WriteUnitFn != nil {
		return f.WriteUnitFn(path, content)
	}
	return false, errors.New("unexpected call to WriteUnit")
}

func (f *fakeRunner) DaemonReload() error {
	if f.DaemonReloadFn != nil {
		return f.DaemonReloadFn()
	}
	return errors.New("unexpected call to DaemonReload")
}

func (f *fakeRunner) EnableAndRestartUnit(unit string) error {
	if f.EnableAndRestartUnitFn != nil {
		return f.EnableAndRestartUnitFn(unit)
	}
	return errors.New("unexpected call to EnableAndRestartUnit")
}

// Packages

func (f *fakeRunner) PackageManager() (pkgmgr.Manager, error) {
	if f.PackageManagerFn != nil {
		return f.PackageManagerFn()
	}
	return nil, errors.New("unexpected call to PackageManager")
}

func (f *fakeRunner) EnsurePackage(name string) (bool, error) {
	if f.EnsurePackageFn != nil {
		return f.EnsurePackageFn(name)
	}
	return false, errors.New("unexpected call to EnsurePackage")
}

func (f *fakeRunner) EnsurePipPackage(python, name string) (bool, error) {
	if f.EnsurePipPackageFn != nil {
		return f.EnsurePipPackageFn(python, name)
	}
	return false, errors.New("unexpected call to EnsurePipPackage")
}

func (f *fakeRunner) EnsureSELinuxBoolean(name string, on bool) error {
	if f.EnsureSELinuxBooleanFn != nil {
		return f.EnsureSELinuxBooleanFn(name, on)
	}
	return errors.New("unexpected call to EnsureSELinuxBoolean")
}

// Close

func (f *fakeRunner) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

// Test helper functions

// setupTestLogger creates a test logger that discards output.
func setupTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestController creates a test controller instance with injected mock runner.
func setupTestController(t *testing.T, mockRunner runner.Runner) *controller.Exec {
	t.Helper()
	ctx := context.Background()
	logger := setupTestLogger(t)
	opts := controller.Options{
		RuntimeBin:   "podman",
		CNIConfigDir: "/test/cni/net.d",
	}
	return controller.NewControllerExecForTesting(ctx, logger, opts, mockRunner)
}

// buildTestHost creates a fully defaulted test host with two services.
func buildTestHost(name string) intmodel.Host {
	return intmodel.Host{
		Metadata: intmodel.HostMetadata{Name: name},
		Spec: intmodel.HostSpec{
			AppName: consts.DefaultAppName,
			AppUser: consts.DefaultAppUser,
			Python:  consts.DefaultPython,
			Network: consts.DefaultAppName + consts.NetworkSuffix,
			Pod:     consts.DefaultAppName + consts.PodSuffix,
			Services: []intmodel.Service{
				{
					Name:     consts.DevServiceName,
					Image:    consts.DefaultDevImage,
					UnitPath: "/etc/systemd/system/mip-dev.service",
					Port:     consts.PortDevWebApp,
					DataDir:  consts.DefaultDataDir,
				},
				{
					Name:     consts.SwiftServiceName,
					Image:    consts.DefaultSwiftImage,
					UnitPath: "/etc/systemd/system/mip-swift.service",
					Port:     consts.PortObjectStorage,
					DataDir:  consts.DefaultSwiftDataDir,
				},
			},
			Publish: []intmodel.PortMapping{
				{Host: consts.PortDatabase, Container: consts.PortDatabase},
				{Host: consts.PortDevWebApp, Container: consts.PortDevWebApp},
			},
		},
	}
}
