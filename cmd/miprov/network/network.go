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

package network

import (
	mipshared "github.com/nimslab/miprov/cmd/miprov/shared"
	"github.com/nimslab/miprov/internal/controller"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	"github.com/spf13/cobra"
)

type networkController interface {
	ResolveNetworkMode(host intmodel.Host) (controller.NetworkModeResult, error)
	EnsureNetwork(mode controller.NetworkModeResult) (controller.EnsureNetworkResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "network",
		Short:         "Create or reconcile the shared container network",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := mipshared.HostFromCmd(cmd)
			if err != nil {
				return err
			}

			ctrl, err := mipshared.GetControllerWithMock(
				cmd,
				MockControllerKey{},
				func(c *cobra.Command) (networkController, error) {
					realCtrl, ctrlErr := mipshared.ControllerFromCmd(c)
					if ctrlErr != nil {
						return nil, ctrlErr
					}
					return realCtrl, nil
				},
			)
			if err != nil {
				return err
			}

			mode, err := ctrl.ResolveNetworkMode(host)
			if err != nil {
				return err
			}

			result, err := ctrl.EnsureNetwork(mode)
			if err != nil {
				return err
			}

			printNetworkResult(cmd, mode, result)
			return nil
		},
	}

	return cmd
}

func printNetworkResult(
	cmd *cobra.Command,
	mode controller.NetworkModeResult,
	result controller.EnsureNetworkResult,
) {
	cmd.Printf("Network mode %s (runtime %s)\n", mode.Mode, mode.RuntimeVersion)
	if result.Skipped {
		cmd.Println("  - network: skipped (host networking)")
		return
	}
	mipshared.PrintCreationOutcome(cmd, "network "+result.Network, result.ExistsPost, result.Created)
}
