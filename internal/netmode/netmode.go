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

// Package netmode classifies the installed container runtime version into a
// network strategy. New runtime behaviors are added by extending the rule
// table, not by adding comparisons at call sites.
package netmode

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

type Mode int

const (
	// ModeUnknown means the version string could not be classified. Both
	// derived settings stay unset and dependent steps must skip.
	ModeUnknown Mode = iota
	// ModePodNetwork selects a named shared network attached to the pod;
	// the per-container network setting stays unset.
	ModePodNetwork
	// ModeHostNetwork selects host networking per container; the shared
	// pod network setting stays unset. Runtimes predating proper inter-pod
	// networking get this fallback.
	ModeHostNetwork
)

func (m Mode) String() string {
	switch m {
	case ModePodNetwork:
		return "pod-network"
	case ModeHostNetwork:
		return "host-network"
	default:
		return "unknown"
	}
}

// Resolution carries the two mutually exclusive derived settings. At most
// one of the fields is non-empty.
type Resolution struct {
	Mode Mode
	// PodNetwork is the shared network name, set only in ModePodNetwork.
	PodNetwork string
	// ContainerNetwork is the per-container network value, set only in
	// ModeHostNetwork (always the literal "host").
	ContainerNetwork string
}

type rule struct {
	constraint *semver.Constraints
	mode       Mode
}

// Ordered strategy table; the first matching constraint wins.
var rules = []rule{
	{constraint: mustConstraint("> 1"), mode: ModePodNetwork},
	{constraint: mustConstraint("<= 1"), mode: ModeHostNetwork},
}

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify maps a runtime version string to a Mode. Version strings that do
// not parse as a semantic version yield ModeUnknown rather than an error, so
// callers converge by skipping instead of failing.
func Classify(version string) Mode {
	v, err := semver.NewVersion(strings.TrimSpace(version))
	if err != nil {
		return ModeUnknown
	}

	for _, r := range rules {
		if r.constraint.Check(v) {
			return r.mode
		}
	}
	return ModeUnknown
}

// Resolve classifies the runtime version and binds the derived network
// settings for the given shared network name.
func Resolve(version, network string) Resolution {
	mode := Classify(version)

	res := Resolution{Mode: mode}
	switch mode {
	case ModePodNetwork:
		res.PodNetwork = network
	case ModeHostNetwork:
		res.ContainerNetwork = "host"
	case ModeUnknown:
	}
	return res
}
