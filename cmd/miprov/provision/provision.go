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

package provision

import (
	"github.com/nimslab/miprov/cmd/config"
	mipshared "github.com/nimslab/miprov/cmd/miprov/shared"
	"github.com/nimslab/miprov/internal/controller"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type provisionController interface {
	Provision(opts controller.ProvisionOptions) (controller.ProvisionReport, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "provision",
		Short:         "Provision the host end to end",
		Long:          "Install dependencies, create the shared network and pod, prepare data directories and activate the service units.",
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
				func(c *cobra.Command) (provisionController, error) {
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

			report, err := ctrl.Provision(controller.ProvisionOptions{
				Host:     host,
				SkipDeps: viper.GetBool(config.MIPROV_PROVISION_SKIP_DEPS.ViperKey),
			})
			if err != nil {
				return err
			}

			output := viper.GetString(config.MIPROV_PROVISION_OUTPUT.ViperKey)
			if output == "json" || output == "yaml" {
				return mipshared.PrintJSONOrYAML(cmd, report, output)
			}

			printProvisionReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().Bool("skip-deps", false, "Skip dependency installation")
	_ = viper.BindPFlag(config.MIPROV_PROVISION_SKIP_DEPS.ViperKey, cmd.Flags().Lookup("skip-deps"))

	cmd.Flags().StringP("output", "o", "", "Output format: json, yaml (default: human-readable)")
	_ = viper.BindPFlag(config.MIPROV_PROVISION_OUTPUT.ViperKey, cmd.Flags().Lookup("output"))

	return cmd
}

func printProvisionReport(cmd *cobra.Command, report controller.ProvisionReport) {
	cmd.Printf("Host %q (package manager %s, runtime %s)\n",
		report.HostName,
		report.Capabilities.PackageManager,
		report.Mode.RuntimeVersion,
	)

	for _, pkg := range report.Deps.Packages {
		mipshared.PrintCreationOutcome(cmd, "package "+pkg.Name, !pkg.Installed, pkg.Installed)
	}
	for _, pkg := range report.Deps.Pip {
		mipshared.PrintCreationOutcome(cmd, "pip "+pkg.Name, !pkg.Installed, pkg.Installed)
	}

	cmd.Printf("  - network mode: %s\n", report.Mode.Mode)

	if report.Network.Skipped {
		cmd.Println("  - network: skipped (host networking)")
	} else {
		mipshared.PrintCreationOutcome(cmd, "network "+report.Network.Network, report.Network.ExistsPost, report.Network.Created)
	}

	if report.Pod.Skipped {
		cmd.Println("  - pod: skipped (host networking)")
	} else {
		mipshared.PrintCreationOutcome(cmd, "pod "+report.Pod.Pod, report.Pod.ExistsPost, report.Pod.Created)
	}

	for _, dir := range report.DataDirs.Dirs {
		mipshared.PrintCreationOutcome(cmd, "data dir "+dir.Dir, dir.ExistsPost, dir.Created)
	}

	if report.Units.Skipped {
		cmd.Println("  - units: skipped (no native init, runtime VM started)")
	} else {
		for _, unit := range report.Units.Units {
			if unit.ContentChanged {
				cmd.Printf("  - unit %s: installed\n", unit.Unit)
			} else {
				cmd.Printf("  - unit %s: unchanged\n", unit.Unit)
			}
		}
	}
}
