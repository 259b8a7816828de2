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

// Package runner is the side-effect layer of the controller: every host
// mutation (runtime objects, filesystem, SELinux policy store, systemd unit
// directory, package database) goes through the Runner interface so the
// reconcile logic above it stays testable.
package runner

import (
	"context"
	"log/slog"

	"github.com/nimslab/miprov/internal/cni"
	"github.com/nimslab/miprov/internal/hostcap"
	"github.com/nimslab/miprov/internal/pkgmgr"
	"github.com/nimslab/miprov/internal/podman"
	"github.com/nimslab/miprov/internal/selabel"
	"github.com/nimslab/miprov/internal/sysd"
	"github.com/nimslab/miprov/internal/util/cmdexec"
)

type Runner interface {
	// Host facts.
	RuntimeVersion() (string, error)
	DetectCapabilities() hostcap.Capabilities

	// Runtime objects.
	ExistsNetwork(name string) (bool, error)
	CreateNetwork(name string) error
	VerifyNetwork(name, runtimeVersion string) error
	ExistsPod(name string) (bool, error)
	CreatePod(spec podman.PodSpec) error
	StartPod(name string) error
	MachineInit() error
	MachineStart() error

	// Data directories and SELinux labeling.
	ExistsDataDir(dir string) (bool, error)
	CreateDataDir(dir, owner string) error
	SELinuxEnabled() bool
	HasContainerContext(dir string) (bool, error)
	LabelDataDir(dir string) error

	// Unit files.
	WriteUnit(path string, content []byte) (bool, error)
	DaemonReload() error
	EnableAndRestartUnit(unit string) error

	// Packages.
	PackageManager() (pkgmgr.Manager, error)
	EnsurePackage(name string) (bool, error)
	EnsurePipPackage(python, name string) (bool, error)
	EnsureSELinuxBoolean(name string, on bool) error

	Close() error
}

type Exec struct {
	ctx    context.Context
	logger *slog.Logger
	opts   Options

	cmd     cmdexec.Runner
	runtime podman.Client
	units   sysd.Manager
	labeler selabel.Labeler
	cniMgr  *cni.Manager
	probe   *hostcap.Probe

	packager pkgmgr.Manager
}

type Options struct {
	// RuntimeBin is the container runtime binary, default "podman".
	RuntimeBin string
	// CNIConfigDir overrides where CNI-backed runtime versions write
	// network configs.
	CNIConfigDir string
}

func NewRunner(ctx context.Context, logger *slog.Logger, opts Options) Runner {
	cmd := cmdexec.NewLocal()
	labeler := selabel.NewLabeler(logger, cmd)
	return &Exec{
		ctx:     ctx,
		logger:  logger,
		opts:    opts,
		cmd:     cmd,
		runtime: podman.NewClient(logger, opts.RuntimeBin, cmd),
		units:   sysd.NewManager(logger),
		labeler: labeler,
		cniMgr:  cni.NewManager(opts.CNIConfigDir, "", ""),
		probe:   hostcap.NewProbe(cmd, labeler.Enabled),
	}
}

func (r *Exec) Close() error {
	r.units.Close()
	return nil
}
