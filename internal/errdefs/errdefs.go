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

package errdefs

import (
	"errors"
)

var (
	ErrConfig             = errors.New("config error")
	ErrLoggerNotFound     = errors.New("logger not found in context")
	ErrHostNameRequired   = errors.New("host name is required")
	ErrAppUserRequired    = errors.New("app user is required")
	ErrServiceRequired    = errors.New("at least one service is required")
	ErrUnsupportedAPI     = errors.New("unsupported apiVersion")
	ErrUnknownKind        = errors.New("unknown kind")
	ErrConversionFailed   = errors.New("conversion failed")
	ErrDefaultingFailed   = errors.New("defaulting failed")
	ErrQueryRuntime       = errors.New("failed to query container runtime version")
	ErrResolveNetworkMode = errors.New("failed to resolve network mode")
	ErrCheckNetworkExists = errors.New("failed to check if network exists")
	ErrCreateNetwork      = errors.New("failed to create network")
	ErrVerifyNetwork      = errors.New("failed to verify network configuration")
	ErrCheckPodExists     = errors.New("failed to check if pod exists")
	ErrCreatePod          = errors.New("failed to create pod")
	ErrStartPod           = errors.New("failed to start pod")
	ErrCreateDataDir      = errors.New("failed to create data directory")
	ErrOwnDataDir         = errors.New("failed to set data directory ownership")
	ErrLabelDataDir       = errors.New("failed to label data directory")
	ErrRelabelDataDir     = errors.New("failed to relabel data directory")
	ErrRenderUnit         = errors.New("failed to render unit file")
	ErrWriteUnit          = errors.New("failed to write unit file")
	ErrReloadUnits        = errors.New("failed to reload unit files")
	ErrEnableUnit         = errors.New("failed to enable unit")
	ErrRestartUnit        = errors.New("failed to restart unit")
	ErrConnectSystemd     = errors.New("failed to connect to systemd")
	ErrMachineInit        = errors.New("failed to initialize podman machine")
	ErrMachineStart       = errors.New("failed to start podman machine")
	ErrDetectPackager     = errors.New("failed to detect package manager")
	ErrInstallPackage     = errors.New("failed to install package")
	ErrInstallPipPackage  = errors.New("failed to install pip package")
	ErrSetBoolean         = errors.New("failed to set SELinux boolean")
	ErrProvisionHost      = errors.New("failed to provision host")
	ErrOptimizeImage      = errors.New("failed to optimize image")
	ErrNoJPEGFound        = errors.New("no JPEG files found")
)
