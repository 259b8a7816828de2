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

package runner

import (
	"fmt"

	"github.com/nimslab/miprov/internal/errdefs"
	"github.com/nimslab/miprov/internal/hostcap"
)

func (r *Exec) RuntimeVersion() (string, error) {
	version, err := r.runtime.Version(r.ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errdefs.ErrQueryRuntime, err)
	}
	return version, nil
}

func (r *Exec) DetectCapabilities() hostcap.Capabilities {
	caps := r.probe.Detect()
	r.logger.DebugContext(r.ctx, "detected host capabilities",
		"packageManager", caps.PackageManager,
		"nativeInit", caps.NativeInit,
		"selinux", caps.SELinux,
	)
	return caps
}
