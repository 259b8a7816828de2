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

package v1beta1

type Version string

type Kind string

const (
	// APIVersionV1Beta1 is the canonical API version for this package.
	APIVersionV1Beta1 Version = "v1beta1"
)

// Kinds.
const (
	// KindHost identifies host provisioning documents.
	KindHost Kind = "Host"
)

// Common printable state strings.
const (
	StatePendingStr      = "Pending"
	StateProvisionedStr  = "Provisioned"
	StateFailedStr       = "Failed"
	StateUnknownStr      = "Unknown"
	StateProvisioningStr = "Provisioning"
)
