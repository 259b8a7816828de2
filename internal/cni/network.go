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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	libcni "github.com/containernetworking/cni/libcni"
)

var (
	ErrConfigNotFound    = errors.New("network config not found")
	ErrNameMismatch      = errors.New("network config name mismatch")
	ErrMissingPlugin     = errors.New("network config missing required plugin")
	ErrInvalidConfigList = errors.New("invalid network config list")
)

// ExistsNetworkConfig checks whether a conflist for the named network exists
// and carries the expected name. An empty configPath derives the podman
// default "<configDir>/<name>.conflist".
func (m *Manager) ExistsNetworkConfig(name, configPath string) (bool, string, error) {
	if configPath == "" {
		configPath = filepath.Join(m.conf.ConfigDir, name+".conflist")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, "", ErrConfigNotFound
		}
		return false, "", err
	}

	var raw ConflistModel
	if uErr := json.Unmarshal(data, &raw); uErr != nil {
		return false, "", uErr
	}

	if raw.Name != name {
		return false, configPath, fmt.Errorf("%w: got %q, want %q", ErrNameMismatch, raw.Name, name)
	}
	return true, configPath, nil
}

// VerifyNetworkConfig loads the conflist through libcni and checks that the
// bridge and portmap plugins are present. Without portmap the shared pod's
// published ports would silently not be wired.
func (m *Manager) VerifyNetworkConfig(name, configPath string) error {
	if configPath == "" {
		configPath = filepath.Join(m.conf.ConfigDir, name+".conflist")
	}

	conf, err := libcni.ConfListFromFile(configPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfigList, configPath, err)
	}

	if conf.Name != name {
		return fmt.Errorf("%w: got %q, want %q", ErrNameMismatch, conf.Name, name)
	}

	required := map[string]bool{
		bridgePluginType:  false,
		portmapPluginType: false,
	}
	for _, p := range conf.Plugins {
		if _, ok := required[p.Network.Type]; ok {
			required[p.Network.Type] = true
		}
	}
	for pluginType, found := range required {
		if !found {
			return fmt.Errorf("%w: %s", ErrMissingPlugin, pluginType)
		}
	}
	return nil
}
