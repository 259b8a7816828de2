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
	"fmt"
)

// Version queries the installed runtime version. Read-only: the result is
// used once per run to derive the network strategy and never cached.
func (c *client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.bin, "version", "--format", "{{.Version}}")
	if err != nil {
		return "", fmt.Errorf("failed to query %s version: %w", c.bin, err)
	}

	c.logger.DebugContext(ctx, "queried runtime version", "version", out)
	return out, nil
}
