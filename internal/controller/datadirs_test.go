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

package controller_test

import (
	"testing"

	"github.com/nimslab/miprov/internal/consts"
)

func TestEnsureDataDirs_CreatesAndLabels(t *testing.T) {
	host := buildTestHost("test-host")

	var createdDirs []string
	var labeledDirs []string
	mockRunner := &fakeRunner{
		SELinuxEnabledFn: func() bool { return true },
		ExistsDataDirFn:  func(_ string) (bool, error) { return false, nil },
		CreateDataDirFn: func(dir, owner string) error {
			if owner != consts.DefaultAppUser {
				t.Errorf("expected owner %q, got %q", consts.DefaultAppUser, owner)
			}
			createdDirs = append(createdDirs, dir)
			return nil
		},
		HasContainerContextFn: func(_ string) (bool, error) { return false, nil },
		LabelDataDirFn: func(dir string) error {
			labeledDirs = append(labeledDirs, dir)
			return nil
		},
	}

	ctrl := setupTestController(t, mockRunner)

	result, err := ctrl.EnsureDataDirs(host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Dirs) != 2 {
		t.Fatalf("expected 2 data dirs, got %d", len(result.Dirs))
	}
	if !result.Changed {
		t.Error("expected Changed to be true on first run")
	}
	for _, dir := range result.Dirs {
		if !dir.Created {
			t.Errorf("expected %s to be created", dir.Dir)
		}
		if !dir.Labeled {
			t.Errorf("expected %s to be labeled", dir.Dir)
		}
	}

	// Creation happens before labeling, per directory.
	if len(createdDirs) != 2 || len(labeledDirs) != 2 {
		t.Fatalf("expected 2 creations and 2 labelings, got %d and %d", len(createdDirs), len(labeledDirs))
	}
}

func TestEnsureDataDirs_SecondRunUnchanged(t *testing.T) {
	host := buildTestHost("test-host")

	mockRunner := &fakeRunner{
		SELinuxEnabledFn:      func() bool { return true },
		ExistsDataDirFn:       func(_ string) (bool, error) { return true, nil },
		CreateDataDirFn:       func(_, _ string) error { return nil },
		HasContainerContextFn: func(_ string) (bool, error) { return true, nil },
		LabelDataDirFn:        func(_ string) error { return nil },
	}

	ctrl := setupTestController(t, mockRunner)

	result, err := ctrl.EnsureDataDirs(host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Changed {
		t.Error("expected Changed to be false when everything already converged")
	}
	for _, dir := range result.Dirs {
		if dir.Created {
			t.Errorf("expected %s not to be recreated", dir.Dir)
		}
		if dir.Labeled {
			t.Errorf("expected %s not to be relabeled", dir.Dir)
		}
	}
}

func TestEnsureDataDirs_SELinuxDisabledSkipsLabeling(t *testing.T) {
	host := buildTestHost("test-host")

	mockRunner := &fakeRunner{
		SELinuxEnabledFn: func() bool { return false },
		ExistsDataDirFn:  func(_ string) (bool, error) { return false, nil },
		CreateDataDirFn:  func(_, _ string) error { return nil },
		// Label functions unset: calling them fails the test.
	}

	ctrl := setupTestController(t, mockRunner)

	result, err := ctrl.EnsureDataDirs(host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, dir := range result.Dirs {
		if !dir.SELinuxSkipped {
			t.Errorf("expected SELinuxSkipped for %s", dir.Dir)
		}
		if !dir.Created {
			t.Errorf("expected %s to still be created", dir.Dir)
		}
	}
}

func TestEnsureDataDirs_ServicesWithoutDataDirIgnored(t *testing.T) {
	host := buildTestHost("test-host")
	host.Spec.Services[1].DataDir = ""

	mockRunner := &fakeRunner{
		SELinuxEnabledFn:      func() bool { return true },
		ExistsDataDirFn:       func(_ string) (bool, error) { return false, nil },
		CreateDataDirFn:       func(_, _ string) error { return nil },
		HasContainerContextFn: func(_ string) (bool, error) { return false, nil },
		LabelDataDirFn:        func(_ string) error { return nil },
	}

	ctrl := setupTestController(t, mockRunner)

	result, err := ctrl.EnsureDataDirs(host)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Dirs) != 1 {
		t.Fatalf("expected 1 data dir, got %d", len(result.Dirs))
	}
	if result.Dirs[0].Dir != consts.DefaultDataDir {
		t.Errorf("expected %s, got %s", consts.DefaultDataDir, result.Dirs[0].Dir)
	}
}
