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
)

// MachineInit initializes the runtime VM on hosts without a native init
// system. An already initialized machine is a satisfied outcome.
func (c *client) MachineInit(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, c.bin, "machine", "init"); err != nil {
		if classified := classify(err); IsAlreadyExists(classified) {
			c.logger.DebugContext(ctx, "machine already initialized")
			return nil
		}
		return classify(err)
	}

	c.logger.InfoContext(ctx, "initialized machine")
	return nil
}

// MachineStart starts the runtime VM. An already running machine is a
// satisfied outcome.
func (c *client) MachineStart(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, c.bin, "machine", "start"); err != nil {
		if classified := classify(err); IsAlreadyExists(classified) {
			c.logger.DebugContext(ctx, "machine already running")
			return nil
		}
		return classify(err)
	}

	c.logger.InfoContext(ctx, "started machine")
	return nil
}
