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

package mipopt

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nimslab/miprov/cmd/config"
	"github.com/nimslab/miprov/cmd/types"
	"github.com/nimslab/miprov/internal/logging"
	"github.com/nimslab/miprov/internal/optimize"
	"github.com/nimslab/miprov/internal/util/cmdexec"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type imageOptimizer interface {
	Run(ctx context.Context, path string) (optimize.Report, error)
}

// MockOptimizerKey is used to inject mock optimizers in tests via context.
type MockOptimizerKey struct{}

func NewMipoptCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "mipopt <path>",
		Short: "Optimize JPEG files in place",
		Long:  "Optimize a JPEG file, or every JPEG under a directory, by running jpegoptim and restoring the original file ownership afterwards.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if viper.GetBool(config.MIPROV_ROOT_VERBOSE.ViperKey) {
				levelVar := new(slog.LevelVar)
				levelVar.Set(logging.ParseLevel(viper.GetString(config.MIPROV_ROOT_LOG_LEVEL.ViperKey)))

				handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar})
				logger := slog.New(handler)

				ctx := cmd.Context()
				ctx = context.WithValue(ctx, types.CtxLogger, logger)
				ctx = context.WithValue(ctx, types.CtxLevelVar, &levelVar)
				ctx = context.WithValue(ctx, types.CtxHandler, handler)
				cmd.SetContext(ctx)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString(config.MIPOPT_ROOT_PATH.ViperKey)
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("path is required (argument or %s)", config.MIPOPT_ROOT_PATH.EnvVar())
			}

			optimizer, err := optimizerFromCmd(cmd)
			if err != nil {
				return err
			}

			report, err := optimizer.Run(cmd.Context(), path)
			if err != nil {
				return err
			}

			printReport(cmd, report)
			return nil
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	if err := viper.BindPFlag(config.MIPROV_ROOT_VERBOSE.ViperKey, cmd.PersistentFlags().Lookup("verbose")); err != nil {
		return nil, err
	}

	cmd.Flags().String("bin", "jpegoptim", "jpegoptim binary to invoke")
	if err := viper.BindPFlag(config.MIPOPT_ROOT_BIN.ViperKey, cmd.Flags().Lookup("bin")); err != nil {
		return nil, err
	}

	_ = config.MIPOPT_ROOT_PATH.BindEnv()
	_ = config.MIPOPT_ROOT_BIN.BindEnv()

	return cmd, nil
}

func optimizerFromCmd(cmd *cobra.Command) (imageOptimizer, error) {
	if mockOpt, ok := cmd.Context().Value(MockOptimizerKey{}).(imageOptimizer); ok {
		return mockOpt, nil
	}

	logger, ok := cmd.Context().Value(types.CtxLogger).(*slog.Logger)
	if !ok || logger == nil {
		logger = logging.NewNoopLogger()
	}

	bin := viper.GetString(config.MIPOPT_ROOT_BIN.ViperKey)
	return optimize.NewOptimizer(logger, cmdexec.NewLocal(), bin), nil
}

func printReport(cmd *cobra.Command, report optimize.Report) {
	for _, file := range report.Files {
		cmd.Printf("%s: %d -> %d bytes (%.1f%%)\n",
			file.Path, file.BytesBefore, file.BytesAfter, file.Reduction())
	}
	cmd.Printf("total: %d files, %d -> %d bytes (%.1f%%)\n",
		len(report.Files), report.BytesBefore, report.BytesAfter, report.Reduction())
}
