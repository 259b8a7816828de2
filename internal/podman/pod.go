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

package podman

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nimslab/miprov/internal/util/cmdexec"
)

func (c *client) ExistsPod(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, errors.New("pod name is required")
	}

	_, err := c.runner.Run(ctx, c.bin, "pod", "exists", name)
	if err == nil {
		return true, nil
	}

	// `pod exists` signals absence with exit code 1.
	var exitErr *cmdexec.ExitError
	if errors.As(err, &exitErr) && exitErr.Code == 1 {
		return false, nil
	}
	return false, fmt.Errorf("failed to check pod %s: %w", name, err)
}

func (c *client) CreatePod(ctx context.Context, spec PodSpec) error {
	if spec.Name == "" {
		return errors.New("pod name is required")
	}
	if spec.Network == "" {
		return errors.New("pod network is required")
	}

	args := []string{"pod", "create", "--name", spec.Name, "--network", spec.Network}
	for _, p := range spec.Publish {
		args = append(args, "-p", strconv.Itoa(p.Host)+":"+strconv.Itoa(p.Container))
	}

	c.logger.DebugContext(ctx, "creating pod", "pod", spec.Name, "network", spec.Network)
	if _, err := c.runner.Run(ctx, c.bin, args...); err != nil {
		return classify(err)
	}

	c.logger.InfoContext(ctx, "created pod", "pod", spec.Name)
	return nil
}

// StartPod converges the pod to the started state. Starting an already
// running pod is accepted as satisfied.
func (c *client) StartPod(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("pod name is required")
	}

	if _, err := c.runner.Run(ctx, c.bin, "pod", "start", name); err != nil {
		if classified := classify(err); IsAlreadyExists(classified) {
			return nil
		}
		return fmt.Errorf("failed to start pod %s: %w", name, err)
	}
	return nil
}
