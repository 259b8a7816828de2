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

package consts

const (
	// DefaultAppName prefixes derived resource names (network, pod, units).
	DefaultAppName = "mip"
	// DefaultAppUser owns the per-service data directories.
	DefaultAppUser = "mip"
	// DefaultPython is the interpreter path substituted into unit files.
	DefaultPython = "/usr/bin/python3"

	// NetworkSuffix and PodSuffix derive the shared network and pod names
	// from the app name when the manifest leaves them empty.
	NetworkSuffix = "-net"
	PodSuffix     = "-pod"

	// UnitDir is where rendered unit files are installed by default.
	UnitDir = "/etc/systemd/system"

	// Default services provisioned when the manifest lists none: the
	// development web app and the object-storage service.
	DevServiceName   = "dev"
	SwiftServiceName = "swift"

	DefaultDevImage   = "quay.io/nimslab/mip-dev:latest"
	DefaultSwiftImage = "quay.io/nimslab/mip-swift:latest"

	DefaultDataDir      = "/var/lib/mip/data"
	DefaultSwiftDataDir = "/var/lib/mip/swift"

	// DataDirMode is the permission bits of every service data directory.
	DataDirMode = 0o777

	// ContainerFileType is the SELinux type containerized processes may
	// read and write.
	ContainerFileType = "container_file_t"

	// ContainerManageCgroupBoolean lets systemd manage container cgroups,
	// required for per-service systemd-managed containers.
	ContainerManageCgroupBoolean = "container_manage_cgroup"
)

// Fixed container ports of the shared pod.
const (
	PortComputeDispatch = 30005
	PortJobManager      = 5010
	PortDatabase        = 5432
	PortObjectStorage   = 8080
	PortDevWebApp       = 8000
	PortPackageStore    = 8010
	PortUI              = 3000

	// Interactive/streaming sessions get a contiguous port range.
	PortSessionFirst = 6900
	PortSessionLast  = 6905
)
