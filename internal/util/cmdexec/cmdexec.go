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

// Package cmdexec abstracts host command invocation so callers that shell
// out to external tools (podman, restorecon, package managers) can be tested
// without touching the host.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a host command and returns its trimmed stdout.
// The returned error carries the command's stderr when the tool failed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	// LookPath reports whether the named binary is on PATH.
	LookPath(name string) bool
}

// ExitError is returned when the invoked tool exited non-zero. The
// underlying tool's stderr is surfaced verbatim.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s exited with code %d", e.Cmd, e.Code)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Cmd, e.Code, msg)
}

type Local struct{}

func NewLocal() *Local { return &Local{} }

func (l *Local) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return strings.TrimSpace(stdout.String()), &ExitError{
				Cmd:    name + " " + strings.Join(args, " "),
				Code:   exitErr.ExitCode(),
				Stderr: stderr.String(),
			}
		}
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (l *Local) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
