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

package datadirs

import (
	mipshared "github.com/nimslab/miprov/cmd/miprov/shared"
	"github.com/nimslab/miprov/internal/controller"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	"github.com/spf13/cobra"
)

type dataDirsController interface {
	EnsureDataDirs(host intmodel.Host) (controller.EnsureDataDirsResult, error)
}

// MockControllerKey is used to inject mock controllers in tests via context.
type MockControllerKey struct{}

func NewDataDirsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "datadirs",
		Short:         "Create, own and label the per-service data directories",
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
				func(c *cobra.Command) (dataDirsController, error) {
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

			result, err := ctrl.EnsureDataDirs(host)
			if err != nil {
				return err
			}

			printDataDirsResult(cmd, result)
			return nil
		},
	}

	return cmd
}

func printDataDirsResult(cmd *cobra.Command, result controller.EnsureDataDirsResult) {
	if len(result.Dirs) == 0 {
		cmd.Println("No data directories defined")
		return
	}
	for _, dir := range result.Dirs {
		mipshared.PrintCreationOutcome(cmd, "data dir "+dir.Dir, dir.ExistsPost, dir.Created)
		switch {
		case dir.SELinuxSkipped:
			cmd.Println("    labeling skipped (SELinux disabled)")
		case dir.Labeled:
			cmd.Println("    labeled for container access")
		}
	}
	if !result.Changed {
		cmd.Println("Nothing to do, all directories converged")
	}
}
