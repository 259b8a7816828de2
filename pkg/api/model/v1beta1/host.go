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

package v1beta1

type HostDoc struct {
	APIVersion Version      `json:"apiVersion" yaml:"apiVersion"`
	Kind       Kind         `json:"kind"       yaml:"kind"`
	Metadata   HostMetadata `json:"metadata"   yaml:"metadata"`
	Spec       HostSpec     `json:"spec"       yaml:"spec"`
	Status     HostStatus   `json:"status"     yaml:"status"`
}

type HostMetadata struct {
	Name   string            `json:"name"   yaml:"name"`
	Labels map[string]string `json:"labels" yaml:"labels"`
}

type HostSpec struct {
	// AppName is the short platform name; derived resources (network, pod,
	// unit files) default to names prefixed with it.
	AppName string `json:"appName"           yaml:"appName"`
	// AppUser owns the per-service data directories on the host.
	AppUser string `json:"appUser"           yaml:"appUser"`
	// Python is the interpreter path used by rendered unit files.
	Python string `json:"python,omitempty"   yaml:"python,omitempty"`
	// Network names the shared podman network. Empty selects the default
	// "<appName>-net".
	Network string `json:"network,omitempty"  yaml:"network,omitempty"`
	// Pod names the shared pod. Empty selects the default "<appName>-pod".
	Pod string `json:"pod,omitempty"      yaml:"pod,omitempty"`

	Services []ServiceSpec `json:"services,omitempty" yaml:"services,omitempty"`

	// Publish overrides the default port publication table of the shared pod.
	Publish []PortMapping `json:"publish,omitempty"  yaml:"publish,omitempty"`
}

// ServiceSpec describes one platform service managed through a systemd unit.
type ServiceSpec struct {
	Name string `json:"name"               yaml:"name"`
	// Image is the container image the unit runs.
	Image string `json:"image"              yaml:"image"`
	// UnitPath is where the rendered unit file is written. Empty selects
	// "/etc/systemd/system/<appName>-<name>.service".
	UnitPath string `json:"unitPath,omitempty" yaml:"unitPath,omitempty"`
	// Port is the service's container port.
	Port int `json:"port"               yaml:"port"`
	// DataDir is the persistent data directory. Empty means the service
	// keeps no host state.
	DataDir string `json:"dataDir,omitempty"  yaml:"dataDir,omitempty"`
}

type PortMapping struct {
	Host      int `json:"host"      yaml:"host"`
	Container int `json:"container" yaml:"container"`
}

type HostStatus struct {
	State HostState `json:"state"`
}

type HostState int

const (
	HostStatePending HostState = iota
	HostStateProvisioning
	HostStateProvisioned
	HostStateFailed
	HostStateUnknown
)

func (h *HostState) String() string {
	switch *h {
	case HostStatePending:
		return StatePendingStr
	case HostStateProvisioning:
		return StateProvisioningStr
	case HostStateProvisioned:
		return StateProvisionedStr
	case HostStateFailed:
		return StateFailedStr
	case HostStateUnknown:
		return StateUnknownStr
	}
	return StateUnknownStr
}
