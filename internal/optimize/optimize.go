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

// Package optimize runs an in-place optimization pass over JPEG files by
// shelling out to the jpegoptim binary. It backs the single-purpose
// container image that bind-mounts a file or directory.
package optimize

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nimslab/miprov/internal/errdefs"
	"github.com/nimslab/miprov/internal/util/cmdexec"
)

type Optimizer struct {
	logger *slog.Logger
	runner cmdexec.Runner
	bin    string
}

// FileResult reports one optimized file.
type FileResult struct {
	Path        string
	BytesBefore int64
	BytesAfter  int64
}

// Reduction is the size reduction in percent.
func (f FileResult) Reduction() float64 {
	if f.BytesBefore == 0 {
		return 0
	}
	return float64(f.BytesBefore-f.BytesAfter) / float64(f.BytesBefore) * 100
}

// Report aggregates all optimized files.
type Report struct {
	Files       []FileResult
	BytesBefore int64
	BytesAfter  int64
}

func (r Report) Reduction() float64 {
	if r.BytesBefore == 0 {
		return 0
	}
	return float64(r.BytesBefore-r.BytesAfter) / float64(r.BytesBefore) * 100
}

// NewOptimizer returns an Optimizer invoking the given jpegoptim binary. An
// empty bin selects "jpegoptim".
func NewOptimizer(logger *slog.Logger, runner cmdexec.Runner, bin string) *Optimizer {
	if bin == "" {
		bin = "jpegoptim"
	}
	return &Optimizer{logger: logger, runner: runner, bin: bin}
}

// Run optimizes the JPEG file at path, or every JPEG under it when path is a
// directory. Optimization failures are fatal; failure to restore original
// file ownership is logged and ignored.
func (o *Optimizer) Run(ctx context.Context, path string) (Report, error) {
	var report Report

	files, err := collectJPEGs(path)
	if err != nil {
		return report, err
	}
	if len(files) == 0 {
		return report, fmt.Errorf("%w: %s", errdefs.ErrNoJPEGFound, path)
	}

	for _, file := range files {
		result, optErr := o.optimizeFile(ctx, file)
		if optErr != nil {
			return report, fmt.Errorf("%w: %s: %w", errdefs.ErrOptimizeImage, file, optErr)
		}
		report.Files = append(report.Files, result)
		report.BytesBefore += result.BytesBefore
		report.BytesAfter += result.BytesAfter
	}

	return report, nil
}

func (o *Optimizer) optimizeFile(ctx context.Context, path string) (FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileResult{}, err
	}
	result := FileResult{Path: path, BytesBefore: info.Size()}

	uid, gid, hasOwner := ownerOf(info)

	if _, err = o.runner.Run(ctx, o.bin, path); err != nil {
		return FileResult{}, err
	}

	after, err := os.Stat(path)
	if err != nil {
		return FileResult{}, err
	}
	result.BytesAfter = after.Size()

	// jpegoptim rewrites the file as the container user; hand it back to
	// the original owner. Not fatal to the optimization itself.
	if hasOwner {
		if chownErr := os.Chown(path, uid, gid); chownErr != nil {
			o.logger.WarnContext(ctx, "could not reset file ownership", "path", path, "err", chownErr)
		}
	}

	return result, nil
}

func collectJPEGs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !isJPEG(path) {
			return nil, nil
		}
		return []string{path}, nil
	}

	var files []string
	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isJPEG(p) {
			files = append(files, p)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return files, nil
}

func isJPEG(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

func ownerOf(info os.FileInfo) (int, int, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return int(stat.Uid), int(stat.Gid), true
}
