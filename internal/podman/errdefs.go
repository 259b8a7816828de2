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

package podman

import (
	"errors"
	"fmt"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/nimslab/miprov/internal/util/cmdexec"
)

// classify maps a podman CLI failure onto generic error classes so callers
// can tell "already satisfied" apart from real provisioning failures instead
// of blanket-ignoring creation errors.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *cmdexec.ExitError
	if !errors.As(err, &exitErr) {
		return err
	}

	msg := strings.ToLower(exitErr.Stderr)
	switch {
	case strings.Contains(msg, "already exists"),
		strings.Contains(msg, "already being used"),
		strings.Contains(msg, "already running"):
		return fmt.Errorf("%w: %s", cerrdefs.ErrAlreadyExists, strings.TrimSpace(exitErr.Stderr))
	case strings.Contains(msg, "no such"),
		strings.Contains(msg, "not found"),
		strings.Contains(msg, "does not exist"):
		return fmt.Errorf("%w: %s", cerrdefs.ErrNotFound, strings.TrimSpace(exitErr.Stderr))
	}
	return err
}

// IsAlreadyExists reports whether err means the resource was already present.
func IsAlreadyExists(err error) bool {
	return cerrdefs.IsAlreadyExists(err)
}

// IsNotFound reports whether err means the resource is absent.
func IsNotFound(err error) bool {
	return cerrdefs.IsNotFound(err)
}
