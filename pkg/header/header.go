// Copyright (c) 2026, SUSE LLC.  All rights reserved.
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

// Package header provides the common metadata header carried inline in
// tunecheck result documents.
package header

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies the type of a tunecheck resource.
type Kind string

// Valid Kind constants.
const (
	KindAuditResult Kind = "AuditResult"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindAuditResult:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for serialized
// tunecheck resources, following Kubernetes-style resource conventions.
type Header struct {
	// Kind is the type of the resource.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value metadata about the resource
	// (report id, creation timestamp, tool version).
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init populates the Header with the given kind and apiVersion, a fresh
// report id, an RFC3339 creation timestamp, and the tool version if set.
func (h *Header) Init(kind Kind, apiVersion, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = map[string]string{
		"id":      uuid.NewString(),
		"created": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}
