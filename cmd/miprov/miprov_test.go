//go:build !integration

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

package miprov_test

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/nimslab/miprov/cmd/config"
	"github.com/nimslab/miprov/cmd/miprov"
	"github.com/nimslab/miprov/cmd/types"
	"github.com/nimslab/miprov/internal/errdefs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type fakeConfigLoader struct {
	loadConfigFn func() error
}

func (f *fakeConfigLoader) LoadConfig() error {
	if f.loadConfigFn == nil {
		return nil
	}
	return f.loadConfigFn()
}

func TestNewMiprovCmd(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd, err := miprov.NewMiprovCmd()
	if err != nil {
		t.Fatalf("NewMiprovCmd() error = %v, want nil", err)
	}

	if cmd.Use != "miprov" {
		t.Errorf("Use mismatch: got %q, want %q", cmd.Use, "miprov")
	}

	expectedSubcommands := []string{"provision", "deps", "network", "pod", "datadirs", "units", "version"}
	for _, subcmdName := range expectedSubcommands {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == subcmdName {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not found", subcmdName)
		}
	}
}

func TestNewMiprovCmdPersistentPreRunE(t *testing.T) {
	t.Cleanup(viper.Reset)

	tests := []struct {
		name        string
		verbose     bool
		logLevel    string
		loader      miprov.ConfigLoader
		wantErr     bool
		wantErrMsg  string
		checkLogger bool
	}{
		{
			name:    "verbose disabled",
			verbose: false,
			loader:  &fakeConfigLoader{},
		},
		{
			name:        "verbose enabled with default log level",
			verbose:     true,
			loader:      &fakeConfigLoader{},
			checkLogger: true,
		},
		{
			name:        "verbose enabled with debug log level",
			verbose:     true,
			logLevel:    "debug",
			loader:      &fakeConfigLoader{},
			checkLogger: true,
		},
		{
			name:    "config loading error",
			verbose: false,
			loader: &fakeConfigLoader{
				loadConfigFn: func() error {
					return fmt.Errorf("config error: %w", errdefs.ErrConfig)
				},
			},
			wantErr:    true,
			wantErrMsg: "config error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.Set(config.MIPROV_ROOT_VERBOSE.ViperKey, tt.verbose)
			if tt.logLevel != "" {
				viper.Set(config.MIPROV_ROOT_LOG_LEVEL.ViperKey, tt.logLevel)
			}

			cmd, err := miprov.NewMiprovCmd()
			if err != nil {
				t.Fatalf("NewMiprovCmd() error = %v", err)
			}

			ctx := context.WithValue(context.Background(), miprov.MockConfigLoaderKey{}, tt.loader)
			cmd.SetContext(ctx)

			err = cmd.PersistentPreRunE(cmd, []string{})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("PersistentPreRunE() error = nil, want error containing %q", tt.wantErrMsg)
				}
				if !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Fatalf("PersistentPreRunE() error = %q, want error containing %q", err.Error(), tt.wantErrMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("PersistentPreRunE() error = %v, want nil", err)
			}

			logger := cmd.Context().Value(types.CtxLogger)
			if tt.checkLogger {
				if logger == nil {
					t.Fatal("logger not found in context when verbose is enabled")
				}
				if _, ok := logger.(*slog.Logger); !ok {
					t.Errorf("logger type mismatch: got %T, want *slog.Logger", logger)
				}
			} else if logger != nil {
				t.Error("logger found in context when verbose is disabled")
			}
		})
	}
}

func TestSetupMiprovCmd(t *testing.T) {
	t.Cleanup(viper.Reset)

	rootCmd := &cobra.Command{Use: "test"}
	if err := miprov.SetupMiprovCmd(rootCmd); err != nil {
		t.Fatalf("SetupMiprovCmd() error = %v, want nil", err)
	}

	persistentFlags := []string{"config", "runtime-bin", "cni-config-dir", "file", "verbose", "log-level"}
	for _, flagName := range persistentFlags {
		if rootCmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("persistent flag %q not found", flagName)
		}
	}
}

func TestSetPersistentLoggingFlagsViperBinding(t *testing.T) {
	t.Cleanup(viper.Reset)

	rootCmd := &cobra.Command{Use: "test"}
	if err := miprov.SetPersistentLoggingFlags(rootCmd); err != nil {
		t.Fatalf("SetPersistentLoggingFlags() error = %v, want nil", err)
	}

	testCases := []struct {
		flagName  string
		flagValue string
		viperKey  string
	}{
		{"config", "/test/config.yaml", config.MIPROV_ROOT_CONFIG_FILE.ViperKey},
		{"runtime-bin", "/opt/bin/podman", config.MIPROV_ROOT_RUNTIME_BIN.ViperKey},
		{"cni-config-dir", "/test/cni/net.d", config.MIPROV_ROOT_CNI_CONFIG_DIR.ViperKey},
		{"file", "/test/host.yaml", config.MIPROV_ROOT_FILE.ViperKey},
		{"log-level", "debug", config.MIPROV_ROOT_LOG_LEVEL.ViperKey},
	}

	for _, tc := range testCases {
		t.Run(tc.flagName, func(t *testing.T) {
			if err := rootCmd.PersistentFlags().Set(tc.flagName, tc.flagValue); err != nil {
				t.Fatalf("failed to set flag %q: %v", tc.flagName, err)
			}
			got := viper.GetString(tc.viperKey)
			if got != tc.flagValue {
				t.Errorf("viper binding mismatch: got %q, want %q", got, tc.flagValue)
			}
		})
	}

	if err := rootCmd.PersistentFlags().Set("verbose", "true"); err != nil {
		t.Fatalf("failed to set verbose flag: %v", err)
	}
	if !viper.GetBool(config.MIPROV_ROOT_VERBOSE.ViperKey) {
		t.Error("viper binding mismatch for verbose: got false, want true")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	tests := []struct {
		name       string
		configFile string
	}{
		{name: "empty config file uses default"},
		{
			name:       "config file not found is acceptable",
			configFile: "/nonexistent/path/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.Set(config.MIPROV_ROOT_CONFIG_FILE.ViperKey, tt.configFile)

			if err := miprov.LoadConfig(); err != nil {
				t.Fatalf("LoadConfig() error = %v, want nil", err)
			}

			logLevel := viper.GetString(config.MIPROV_ROOT_LOG_LEVEL.ViperKey)
			if logLevel == "" {
				t.Error("log level is empty after LoadConfig")
			}
		})
	}
}

func TestNewMiprovCmdRun(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd, err := miprov.NewMiprovCmd()
	if err != nil {
		t.Fatalf("NewMiprovCmd() error = %v", err)
	}

	var outBuf strings.Builder
	cmd.SetOut(&outBuf)
	cmd.SetErr(&outBuf)

	cmd.SetArgs([]string{})
	cmd.Run(cmd, []string{})

	if !strings.Contains(outBuf.String(), "miprov") {
		t.Errorf("Run() output missing 'miprov'. Got: %q", outBuf.String())
	}
}
