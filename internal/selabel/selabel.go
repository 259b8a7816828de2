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

// Package selabel manages persistent SELinux file contexts and booleans for
// container data directories. Policy-store mutations go through semanage and
// restorecon; label reads go through the SELinux runtime library.
package selabel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nimslab/miprov/internal/util/cmdexec"
	"github.com/opencontainers/selinux/go-selinux"
)

type Labeler interface {
	// Enabled reports whether SELinux is enforcing or permissive on this
	// host. All other operations are no-ops when it returns false.
	Enabled() bool
	// EnsureFileContext registers a persistent file-context rule mapping
	// path (and everything under it) to the given type. Registering an
	// already present rule is a satisfied outcome.
	EnsureFileContext(ctx context.Context, path, fileType string) error
	// Restorecon relabels the existing tree under path so the registered
	// rule takes effect. Must run after EnsureFileContext or there is
	// nothing to apply.
	Restorecon(ctx context.Context, path string) error
	// HasFileType reports whether path currently carries the given type.
	HasFileType(path, fileType string) (bool, error)
	// EnsureBoolean persistently sets an SELinux boolean.
	EnsureBoolean(ctx context.Context, name string, on bool) error
}

type labeler struct {
	logger *slog.Logger
	runner cmdexec.Runner
}

func NewLabeler(logger *slog.Logger, runner cmdexec.Runner) Labeler {
	return &labeler{logger: logger, runner: runner}
}

func (l *labeler) Enabled() bool {
	return selinux.GetEnabled()
}

func (l *labeler) EnsureFileContext(ctx context.Context, path, fileType string) error {
	if path == "" {
		return errors.New("path is required")
	}
	if fileType == "" {
		return errors.New("file type is required")
	}

	pattern := path + "(/.*)?"
	_, err := l.runner.Run(ctx, "semanage", "fcontext", "-a", "-t", fileType, pattern)
	if err != nil {
		var exitErr *cmdexec.ExitError
		if errors.As(err, &exitErr) && strings.Contains(strings.ToLower(exitErr.Stderr), "already defined") {
			l.logger.DebugContext(ctx, "file context already registered", "path", path, "type", fileType)
			return nil
		}
		return fmt.Errorf("failed to register file context for %s: %w", path, err)
	}

	l.logger.InfoContext(ctx, "registered file context", "path", path, "type", fileType)
	return nil
}

func (l *labeler) Restorecon(ctx context.Context, path string) error {
	if path == "" {
		return errors.New("path is required")
	}

	if _, err := l.runner.Run(ctx, "restorecon", "-irv", path); err != nil {
		return fmt.Errorf("failed to relabel %s: %w", path, err)
	}
	return nil
}

func (l *labeler) HasFileType(path, fileType string) (bool, error) {
	label, err := selinux.FileLabel(path)
	if err != nil {
		return false, fmt.Errorf("failed to read label of %s: %w", path, err)
	}

	// Labels have the form user:role:type:level.
	parts := strings.Split(label, ":")
	if len(parts) < 3 {
		return false, nil
	}
	return parts[2] == fileType, nil
}

func (l *labeler) EnsureBoolean(ctx context.Context, name string, on bool) error {
	if name == "" {
		return errors.New("boolean name is required")
	}

	value := "off"
	if on {
		value = "on"
	}
	if _, err := l.runner.Run(ctx, "setsebool", "-P", name, value); err != nil {
		return fmt.Errorf("failed to set boolean %s=%s: %w", name, value, err)
	}

	l.logger.InfoContext(ctx, "set SELinux boolean", "boolean", name, "value", value)
	return nil
}
