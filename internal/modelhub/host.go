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

// Package modelhub holds the internal hub types the controller and runner
// operate on. External API documents are converted through internal/apischeme.
package modelhub

import "path/filepath"

type Host struct {
	Metadata HostMetadata
	Spec     HostSpec
	Status   HostStatus
}

type HostMetadata struct {
	Name   string
	Labels map[string]string
}

type HostSpec struct {
	AppName  string
	AppUser  string
	Python   string
	Network  string
	Pod      string
	Services []Service
	Publish  []PortMapping
}

type Service struct {
	Name     string
	Image    string
	UnitPath string
	Port     int
	DataDir  string
}

// UnitName is the systemd unit name of the service, derived from the path
// the unit file is installed at.
func (s Service) UnitName() string {
	return filepath.Base(s.UnitPath)
}

type PortMapping struct {
	Host      int
	Container int
}

type HostStatus struct {
	State HostState
}

type HostState int

const (
	HostStatePending HostState = iota
	HostStateProvisioning
	HostStateProvisioned
	HostStateFailed
	HostStateUnknown
)
