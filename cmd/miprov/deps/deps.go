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

package deps

import (
	mipshared "github.com/nimslab/miprov/cmd/miprov/shared"
	"github.com/nimslab/miprov/internal/controller"
	"github.com/nimslab/miprov/internal/hostcap"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	"github.com/spf13/cobra"
)

type depsController interface {
	DetectCapabilities() hostcap.Capabilities
	EnsureDeps(host intmodel.Host, caps hostcap.Capabilities) (controller.EnsureDepsResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "deps",
		Short:         "Install runtime dependencies and SELinux bindings",
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
				func(c *cobra.Command) (depsController, error) {
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

			result, err := ctrl.EnsureDeps(host, caps)
			if err != nil {
				return err
			}

			printDepsResult(cmd, result)
			return nil
		},
	}

	return cmd
}

func printDepsResult(cmd *cobra.Command, result controller.EnsureDepsResult) {
	cmd.Printf("Package manager %s\n", result.PackageManager)
	for _, pkg := range result.Packages {
		mipshared.PrintCreationOutcome(cmd, "package "+pkg.Name, !pkg.Installed, pkg.Installed)
	}
	switch {
	case result.PipSkipped:
		cmd.Println("  - pip packages: skipped (legacy python runtime)")
	default:
		for _, pkg := range result.Pip {
			mipshared.PrintCreationOutcome(cmd, "pip "+pkg.Name, !pkg.Installed, pkg.Installed)
		}
	}
	switch {
	case result.SELinuxSkipped:
		cmd.Println("  - SELinux boolean: skipped (SELinux disabled)")
	case result.BooleanSet:
		cmd.Println("  - SELinux boolean: container cgroup management enabled")
	}
}
