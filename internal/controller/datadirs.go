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

package controller

import (
	intmodel "github.com/nimslab/miprov/internal/modelhub"
)

// DataDirResult reports the reconciliation outcome for one service data
// directory.
type DataDirResult struct {
	Service string
	Dir     string

	ExistsPre  bool
	ExistsPost bool
	Created    bool
	// LabeledPre reports whether the directory already carried the
	// container file context before the run.
	LabeledPre bool
	Labeled    bool
	// SELinuxSkipped is set when SELinux is not enabled on the host.
	SELinuxSkipped bool
}

// EnsureDataDirsResult aggregates all service data directories.
type EnsureDataDirsResult struct {
	Dirs    []DataDirResult
	Changed bool
}

// EnsureDataDirs converges every service data directory: create it owned by
// the app user, register the persistent container file context, then relabel
// the existing tree. Directory creation always precedes context
// registration, which precedes the relabel.
func (b *Exec) EnsureDataDirs(host intmodel.Host) (EnsureDataDirsResult, error) {
	var res EnsureDataDirsResult

	selinuxEnabled := b.runner.SELinuxEnabled()

	for _, svc := range host.Spec.Services {
		if svc.DataDir == "" {
			continue
		}

		dirRes := DataDirResult{Service: svc.Name, Dir: svc.DataDir}

		exists, err := b.runner.ExistsDataDir(svc.DataDir)
		if err != nil {
			return res, err
		}
		dirRes.ExistsPre = exists

		if err = b.runner.CreateDataDir(svc.DataDir, host.Spec.AppUser); err != nil {
			return res, err
		}
		dirRes.ExistsPost = true
		dirRes.Created = !exists

		if !selinuxEnabled {
			dirRes.SELinuxSkipped = true
		} else {
			dirRes.LabeledPre, err = b.runner.HasContainerContext(svc.DataDir)
			if err != nil {
				// A fresh directory has no readable label yet; treat
				// it as unlabeled and continue.
				dirRes.LabeledPre = false
			}

			if err = b.runner.LabelDataDir(svc.DataDir); err != nil {
				return res, err
			}
			dirRes.Labeled = !dirRes.LabeledPre
		}

		if dirRes.Created || dirRes.Labeled {
			res.Changed = true
		}
		res.Dirs = append(res.Dirs, dirRes)
	}

	return res, nil
}
