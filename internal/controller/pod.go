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
	"fmt"

	"github.com/nimslab/miprov/internal/errdefs"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	"github.com/nimslab/miprov/internal/podman"
)

// EnsurePodResult reports the reconciliation outcome for the shared pod.
type EnsurePodResult struct {
	Pod string

	// Skipped is set in host-network mode: host networking makes a shared
	// pod construct inapplicable.
	Skipped    bool
	ExistsPre  bool
	ExistsPost bool
	Created    bool
	Started    bool
}

// EnsurePod ensures the shared pod exists attached to the resolved network,
// publishing the manifest's port table, and converges it to started.
func (b *Exec) EnsurePod(host intmodel.Host, mode NetworkModeResult) (EnsurePodResult, error) {
	var res EnsurePodResult

	if mode.PodNetwork == "" {
		res.Skipped = true
		return res, nil
	}
	res.Pod = host.Spec.Pod

	exists, err := b.runner.ExistsPod(host.Spec.Pod)
	if err != nil {
		return res, err
	}
	res.ExistsPre = exists

	if !exists {
		spec := podman.PodSpec{
			Name:    host.Spec.Pod,
			Network: mode.PodNetwork,
		}
		for _, p := range host.Spec.Publish {
			spec.Publish = append(spec.Publish, podman.PortMapping{Host: p.Host, Container: p.Container})
		}

		if createErr := b.runner.CreatePod(spec); createErr != nil {
			if !podman.IsAlreadyExists(createErr) {
				return res, fmt.Errorf("%w: %w", errdefs.ErrCreatePod, createErr)
			}
		} else {
			res.Created = true
		}
	}
	res.ExistsPost = true

	if err = b.runner.StartPod(host.Spec.Pod); err != nil {
		return res, err
	}
	res.Started = true

	return res, nil
}
