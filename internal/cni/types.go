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

// Package cni inspects the CNI network configurations podman writes for
// user-defined networks on CNI-backed runtime versions. miprov never writes
// conflists itself; it verifies that a created network produced a usable one.
package cni

import (
	libcni "github.com/containernetworking/cni/libcni"
)

// Manager wraps libcni for read-only conflist verification.
type Manager struct {
	cniConf libcni.CNI
	conf    Conf
}

// Conf holds the CNI paths of a podman host.
type Conf struct {
	ConfigDir string
	BinDir    string
	CacheDir  string
}

// ConflistModel is the subset of a conflist file the verifier cares about.
type ConflistModel struct {
	CNIVersion string         `json:"cniVersion"`
	Name       string         `json:"name"`
	Plugins    []PluginHeader `json:"plugins"`
}

// PluginHeader carries only the plugin type; plugin-specific fields are the
// runtime's business.
type PluginHeader struct {
	Type string `json:"type"`
}

const (
	// Podman's CNI backend writes network configs here.
	defaultConfigDir = "/etc/cni/net.d"
	defaultBinDir    = "/usr/libexec/cni"
	defaultCacheDir  = "/var/lib/cni"

	// bridgePluginType and portmapPluginType must both appear in a shared
	// network's conflist: the bridge carries inter-service traffic and
	// portmap implements the pod's published ports.
	bridgePluginType  = "bridge"
	portmapPluginType = "portmap"
)
