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

	"github.com/nimslab/miprov/internal/util/cmdexec"
)

func (c *client) ExistsNetwork(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, errors.New("network name is required")
	}

	_, err := c.runner.Run(ctx, c.bin, "network", "exists", name)
	if err == nil {
		return true, nil
	}

	// `network exists` signals absence with exit code 1.
	var exitErr *cmdexec.ExitError
	if errors.As(err, &exitErr) && exitErr.Code == 1 {
		return false, nil
	}
	if classified := classify(err); IsNotFound(classified) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check network %s: %w", name, err)
}

func (c *client) CreateNetwork(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("network name is required")
	}

	c.logger.DebugContext(ctx, "creating network", "network", name)
	if _, err := c.runner.Run(ctx, c.bin, "network", "create", name); err != nil {
		return classify(err)
	}

	c.logger.InfoContext(ctx, "created network", "network", name)
	return nil
}
