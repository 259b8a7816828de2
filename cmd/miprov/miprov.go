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

package miprov

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nimslab/miprov/cmd/config"
	datadirscmd "github.com/nimslab/miprov/cmd/miprov/datadirs"
	depscmd "github.com/nimslab/miprov/cmd/miprov/deps"
	networkcmd "github.com/nimslab/miprov/cmd/miprov/network"
	podcmd "github.com/nimslab/miprov/cmd/miprov/pod"
	provisioncmd "github.com/nimslab/miprov/cmd/miprov/provision"
	unitscmd "github.com/nimslab/miprov/cmd/miprov/units"
	"github.com/nimslab/miprov/cmd/miprov/version"
	"github.com/nimslab/miprov/cmd/types"
	"github.com/nimslab/miprov/internal/errdefs"
	"github.com/nimslab/miprov/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ConfigLoader interface {
	LoadConfig() error
}

// MockConfigLoaderKey is used to inject mock config loaders in tests via context.
type MockConfigLoaderKey struct{}

func NewMiprovCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "miprov",
		Short: "miprov provisions a medical-imaging platform host",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var logger *slog.Logger
			if viper.GetBool(config.MIPROV_ROOT_VERBOSE.ViperKey) {
				logLevel := viper.GetString(config.MIPROV_ROOT_LOG_LEVEL.ViperKey)
				if logLevel == "" {
					logLevel = "info"
				}

				levelVar := new(slog.LevelVar)
				levelVar.Set(logging.ParseLevel(logLevel))

				handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar})
				logger = slog.New(handler)

				// Store logger, levelVar and handler in context using struct keys
				ctx := cmd.Context()
				ctx = context.WithValue(ctx, types.CtxLogger, logger)
				ctx = context.WithValue(ctx, types.CtxLevelVar, &levelVar)
				ctx = context.WithValue(ctx, types.CtxHandler, handler)
				cmd.SetContext(ctx)
				logger.DebugContext(
					cmd.Context(),
					"enabling verbose",
					"log-level",
					viper.GetString(config.MIPROV_ROOT_LOG_LEVEL.ViperKey),
				)
			}

			// Check for mock config loader in context (for testing)
			var loader ConfigLoader
			if mockLoader, ok := cmd.Context().Value(MockConfigLoaderKey{}).(ConfigLoader); ok {
				loader = mockLoader
			} else {
				loader = &realConfigLoader{}
			}

			err := loader.LoadConfig()
			if err != nil {
				// Only log if logger was created (verbose mode)
				if logger != nil {
					logger.DebugContext(cmd.Context(), "config error", "error", err)
				}
				return fmt.Errorf("%w: %w", errdefs.ErrConfig, err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	if err := SetupMiprovCmd(cmd); err != nil {
		return nil, fmt.Errorf("failed to setup miprov command: %w", err)
	}

	return cmd, nil
}

func SetupMiprovCmd(rootCmd *cobra.Command) error {
	rootCmd.AddCommand(provisioncmd.NewProvisionCmd())
	rootCmd.AddCommand(depscmd.NewDepsCmd())
	rootCmd.AddCommand(networkcmd.NewNetworkCmd())
	rootCmd.AddCommand(podcmd.NewPodCmd())
	rootCmd.AddCommand(datadirscmd.NewDataDirsCmd())
	rootCmd.AddCommand(unitscmd.NewUnitsCmd())
	rootCmd.AddCommand(version.NewVersionCmd())

	// Persistent flags
	if err := SetPersistentLoggingFlags(rootCmd); err != nil {
		return err
	}

	return nil
}

func SetPersistentLoggingFlags(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().
		String("config", "/etc/miprov/config.yaml", "config file (default is /etc/miprov/config.yaml)")
	if err := viper.BindPFlag(config.MIPROV_ROOT_CONFIG_FILE.ViperKey, rootCmd.PersistentFlags().Lookup("config")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String("runtime-bin", "podman", "container runtime binary")
	if err := viper.BindPFlag(config.MIPROV_ROOT_RUNTIME_BIN.ViperKey, rootCmd.PersistentFlags().Lookup("runtime-bin")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String("cni-config-dir", "", "CNI network configuration directory")
	if err := viper.BindPFlag(config.MIPROV_ROOT_CNI_CONFIG_DIR.ViperKey, rootCmd.PersistentFlags().Lookup("cni-config-dir")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().StringP("file", "f", "", "Host manifest to read (use - for stdin)")
	if err := viper.BindPFlag(config.MIPROV_ROOT_FILE.ViperKey, rootCmd.PersistentFlags().Lookup("file")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	if err := viper.BindPFlag(config.MIPROV_ROOT_VERBOSE.ViperKey, rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	if err := viper.BindPFlag(config.MIPROV_ROOT_LOG_LEVEL.ViperKey, rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}

	return nil
}

type realConfigLoader struct{}

func (r *realConfigLoader) LoadConfig() error {
	return loadConfig()
}

func loadConfig() error {
	configFile := viper.GetString(config.MIPROV_ROOT_CONFIG_FILE.ViperKey)
	if configFile == "" {
		configFile = "/etc/miprov/config.yaml"
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Dir(configFile))
	_ = config.MIPROV_ROOT_CONFIG_FILE.BindEnv()

	_ = config.MIPROV_ROOT_RUNTIME_BIN.BindEnv()
	_ = config.MIPROV_ROOT_CNI_CONFIG_DIR.BindEnv()
	_ = config.MIPROV_ROOT_FILE.BindEnv()

	_ = config.MIPROV_ROOT_LOG_LEVEL.BindEnv()
	logLevel := viper.GetString(config.MIPROV_ROOT_LOG_LEVEL.ViperKey)
	if logLevel == "" {
		viper.Set(config.MIPROV_ROOT_LOG_LEVEL.ViperKey, "info")
	}

	if err := viper.ReadInConfig(); err != nil {
		// File not found is OK if ENV is set
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("%w: %w", errdefs.ErrConfig, err)
		}
	}

	return nil
}

// LoadConfig is a public wrapper for backward compatibility.
func LoadConfig() error {
	return loadConfig()
}
