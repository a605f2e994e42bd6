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

package fact

import "context"

// OSRelease identifies the operating system, read once per audit from
// /etc/os-release.
type OSRelease struct {
	// ID is the distribution identifier, e.g. "sles".
	ID string `json:"id" yaml:"id"`

	// VersionID is the distribution version, e.g. "15.4".
	VersionID string `json:"versionId" yaml:"versionId"`

	// PrettyName is the human-readable distribution name.
	PrettyName string `json:"prettyName,omitempty" yaml:"prettyName,omitempty"`
}

// Package describes an installed (or absent) rpm package.
type Package struct {
	Name      string `json:"name" yaml:"name"`
	Installed bool   `json:"installed" yaml:"installed"`

	// Version is the rpm VERSION-RELEASE string; empty when not installed.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Service describes the runtime and startup state of a systemd unit.
type Service struct {
	Name    string `json:"name" yaml:"name"`
	Active  bool   `json:"active" yaml:"active"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Provider is the read-only accessor for host facts consumed by the
// auditors. All reads are blocking and performed at the point a check needs
// them; a fake implementation with canned facts backs the auditor tests.
type Provider interface {
	// OSRelease returns the OS identification facts.
	OSRelease(ctx context.Context) (OSRelease, error)

	// Package returns installation state and version of the named package.
	Package(ctx context.Context, name string) (Package, error)

	// Service returns active/enabled state of the named systemd unit.
	Service(ctx context.Context, name string) (Service, error)

	// ActiveProfile returns the active tuned profile name, or an empty
	// string when no profile is applied.
	ActiveProfile(ctx context.Context) (string, error)

	// ConfigValues reads the named variables from a configuration file.
	// The result has an entry for every requested key; variables absent
	// from the file map to an empty string.
	ConfigValues(ctx context.Context, path string, keys ...string) (map[string]string, error)
}
