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

// Package sysd installs and activates systemd units over the D-Bus API.
package sysd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	sddbus "github.com/coreos/go-systemd/v22/dbus"
)

type Manager interface {
	// WriteUnit writes the rendered unit to path and reports whether the
	// file content changed.
	WriteUnit(path string, content []byte) (bool, error)
	// DaemonReload reloads the systemd unit cache. Idempotent no-op when
	// nothing changed on disk.
	DaemonReload(ctx context.Context) error
	// EnableAndRestart enables the unit across reboots and restarts it so
	// the current unit definition takes effect even if already running.
	EnableAndRestart(ctx context.Context, unit string) error
	Close()
}

type manager struct {
	logger *slog.Logger
	conn   *sddbus.Conn
}

// NewManager returns a Manager. The D-Bus connection is established lazily
// on first use so unit rendering works on hosts without systemd.
func NewManager(logger *slog.Logger) Manager {
	return &manager{logger: logger}
}

func (m *manager) connect(ctx context.Context) (*sddbus.Conn, error) {
	if m.conn != nil {
		return m.conn, nil
	}

	conn, err := sddbus.NewWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd: %w", err)
	}
	m.conn = conn
	return conn, nil
}

func (m *manager) WriteUnit(path string, content []byte) (bool, error) {
	if path == "" {
		return false, errors.New("unit path is required")
	}

	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to read existing unit %s: %w", path, err)
	}

	if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
		return false, fmt.Errorf("failed to create unit directory: %w", mkErr)
	}
	if wErr := os.WriteFile(path, content, 0o644); wErr != nil {
		return false, fmt.Errorf("failed to write unit %s: %w", path, wErr)
	}
	return true, nil
}

func (m *manager) DaemonReload(ctx context.Context) error {
	conn, err := m.connect(ctx)
	if err != nil {
		return err
	}

	m.logger.DebugContext(ctx, "reloading systemd unit cache")
	return conn.ReloadContext(ctx)
}

func (m *manager) EnableAndRestart(ctx context.Context, unit string) error {
	if unit == "" {
		return errors.New("unit name is required")
	}

	conn, err := m.connect(ctx)
	if err != nil {
		return err
	}

	if _, _, err = conn.EnableUnitFilesContext(ctx, []string{unit}, false, true); err != nil {
		return fmt.Errorf("failed to enable unit %s: %w", unit, err)
	}

	done := make(chan string, 1)
	if _, err = conn.RestartUnitContext(ctx, unit, "replace", done); err != nil {
		return fmt.Errorf("failed to restart unit %s: %w", unit, err)
	}

	select {
	case result := <-done:
		if result != "done" {
			return fmt.Errorf("restart of unit %s finished with result %q", unit, result)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	m.logger.InfoContext(ctx, "unit enabled and restarted", "unit", unit)
	return nil
}

func (m *manager) Close() {
	if m.conn != nil {
		m.conn.Close()
		m.conn = nil
	}
}
