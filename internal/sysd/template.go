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

package sysd

import (
	"bytes"
	"fmt"
	"text/template"
)

// UnitParams is the full variable surface of the unit template. The template
// performs substitution only; any conditional (pod vs host networking,
// volume mounts) is resolved into NetworkFlag/VolumeFlag by the caller.
type UnitParams struct {
	Description   string
	Runtime       string
	ContainerName string
	Image         string
	// NetworkFlag is "--pod <pod>", "--network <net>" or empty for the
	// runtime default.
	NetworkFlag string
	// VolumeFlag is "-v <dir>:<dir>" or empty for stateless services.
	VolumeFlag string
}

const unitTemplate = `[Unit]
Description={{.Description}}
Wants=network-online.target
After=network-online.target

[Service]
Restart=on-failure
ExecStartPre=-{{.Runtime}} rm -f {{.ContainerName}}
ExecStart={{.Runtime}} run --rm --name {{.ContainerName}} {{.NetworkFlag}} {{.VolumeFlag}} {{.Image}}
ExecStop={{.Runtime}} stop -t 10 {{.ContainerName}}

[Install]
WantedBy=multi-user.target
`

var unitTmpl = template.Must(template.New("unit").Option("missingkey=error").Parse(unitTemplate))

// RenderUnit renders the service unit file contents.
func RenderUnit(params UnitParams) ([]byte, error) {
	if params.Runtime == "" {
		params.Runtime = "/usr/bin/podman"
	}

	var buf bytes.Buffer
	if err := unitTmpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("failed to execute unit template: %w", err)
	}
	return buf.Bytes(), nil
}
