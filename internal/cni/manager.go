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

package cni

import (
	libcni "github.com/containernetworking/cni/libcni"
)

// NewManager creates a Manager with the provided directories.
// configDir: where podman writes network configs, e.g. /etc/cni/net.d
// binDir: where plugins live, e.g. /usr/libexec/cni
// cacheDir: where CNI stores cache, e.g. /var/lib/cni.
func NewManager(configDir, binDir, cacheDir string) *Manager {
	if configDir == "" {
		configDir = defaultConfigDir
	}
	if binDir == "" {
		binDir = defaultBinDir
	}
	if cacheDir == "" {
		cacheDir = defaultCacheDir
	}

	cniConf := libcni.NewCNIConfigWithCacheDir(
		[]string{binDir},
		cacheDir,
		nil,
	)

	return &Manager{
		cniConf: cniConf,
		conf: Conf{
			ConfigDir: configDir,
			BinDir:    binDir,
			CacheDir:  cacheDir,
		},
	}
}

// Config returns the resolved CNI paths.
func (m *Manager) Config() Conf {
	return m.conf
}
