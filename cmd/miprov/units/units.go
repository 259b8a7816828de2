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

package units

import (
	mipshared "github.com/nimslab/miprov/cmd/miprov/shared"
	"github.com/nimslab/miprov/internal/controller"
	"github.com/nimslab/miprov/internal/hostcap"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	"github.com/spf13/cobra"
)

type unitsController interface {
	DetectCapabilities() hostcap.Capabilities
	ResolveNetworkMode(host intmodel.Host) (controller.NetworkModeResult, error)
	EnsureUnits(
		host intmodel.Host,
		mode controller.NetworkModeResult,
		caps hostcap.Capabilities,
	) (controller.EnsureUnitsResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewUnitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "units",
		Short:         "Install, enable and restart the per-service units",
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
				func(c *cobra.Command) (unitsController, error) {
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

			caps := ctrl.DetectCapabilities()

			mode, err := ctrl.ResolveNetworkMode(host)
			if err != nil {
				return err
			}

			result, err := ctrl.EnsureUnits(host, mode, caps)
			if err != nil {
				return err
			}

			printUnitsResult(cmd, result)
			return nil
		},
	}

	return cmd
}

func printUnitsResult(cmd *cobra.Command, result controller.EnsureUnitsResult) {
	if result.Skipped {
		cmd.Println("Units skipped (no native init)")
		if result.MachineInit {
			cmd.Println("  - runtime VM: initialized")
		}
		if result.MachineStarted {
			cmd.Println("  - runtime VM: started")
		}
		return
	}

	for _, unit := range result.Units {
		if unit.ContentChanged {
			cmd.Printf("  - unit %s: installed (%s)\n", unit.Unit, unit.Path)
		} else {
			cmd.Printf("  - unit %s: unchanged\n", unit.Unit)
		}
	}
	if result.Reloaded {
		cmd.Println("  - unit cache: reloaded")
	}
}
