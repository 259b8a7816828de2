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

package config

import (
	"os"

	"github.com/spf13/viper"
)

type Var struct {
	Key        string // e.g. "MIPROV_RUNTIME_BIN"
	ViperKey   string // optional, e.g. "miprov/runtimeBin"
	CobraKey   string // optional, e.g. "runtime-bin"
	Default    string // optional
	HasDefault bool
}

func DefineKV(envName, viperKey string, defaultVal ...string) Var {
	v := Var{Key: envName, ViperKey: viperKey}
	if len(defaultVal) > 0 {
		v.Default = defaultVal[0]
		v.HasDefault = true
	}
	return v
}

func Define(envName string, defaultVal ...string) Var {
	return DefineKV(envName, "", defaultVal...)
}

func (v *Var) EnvKey() string               { return v.Key }
func (v *Var) EnvVar() string               { return v.Key }
func (v *Var) DefaultValue() (string, bool) { return v.Default, v.HasDefault }

// ValueOrDefault defines precedence: viper (if ViperKey set and value present) → OS env → default → "".
func (v *Var) ValueOrDefault() string {
	if v.ViperKey != "" && viper.IsSet(v.ViperKey) {
		return viper.GetString(v.ViperKey)
	}
	if val, ok := os.LookupEnv(v.Key); ok {
		return val
	}
	if v.HasDefault {
		return v.Default
	}
	return ""
}

// BindEnv is safe if ViperKey is empty: does nothing.
func (v *Var) BindEnv() error {
	if v.ViperKey == "" {
		return nil
	}
	return viper.BindEnv(v.ViperKey, v.Key)
}

func (v *Var) Set(value string) error {
	return os.Setenv(v.Key, value)
}

func (v *Var) SetDefault(val string) {
	v.Default = val
	v.HasDefault = true
	if v.ViperKey != "" {
		viper.SetDefault(v.ViperKey, val)
	}
}

func KV(v Var, value string) string { return v.Key + "=" + value }

// ---- Declare statically (Viper key optional per var) ----.
var (
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_ROOT_VERBOSE = DefineKV("MIPROV_VERBOSE", "miprov/verbose")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_ROOT_CONFIG_FILE = DefineKV("MIPROV_CONFIG_FILE", "miprov/configFile")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_ROOT_LOG_LEVEL = DefineKV("MIPROV_LOG_LEVEL", "miprov/logLevel", "info")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_ROOT_RUNTIME_BIN = DefineKV("MIPROV_RUNTIME_BIN", "miprov/runtimeBin", "podman")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_ROOT_CNI_CONFIG_DIR = DefineKV("MIPROV_CNI_CONFIG_DIR", "miprov/cniConfigDir")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_ROOT_FILE = DefineKV("MIPROV_FILE", "miprov/file")

	// Provision command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_PROVISION_SKIP_DEPS = DefineKV("MIPROV_PROVISION_SKIP_DEPS", "miprov/provision/skipDeps")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPROV_PROVISION_OUTPUT = DefineKV("MIPROV_PROVISION_OUTPUT", "miprov/provision/output")

	// Optimizer command variables
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPOPT_ROOT_PATH = DefineKV("MIPOPT_PATH", "mipopt/path")
	//nolint:revive,gochecknoglobals,staticcheck // ignore linter warning about this variable
	MIPOPT_ROOT_BIN = DefineKV("MIPOPT_BIN", "mipopt/bin", "jpegoptim")
)
