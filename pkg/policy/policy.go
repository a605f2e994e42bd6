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

// Package policy encodes which SLES releases support which tuning subsystem,
// and which sapconf builds count as the reworked implementation. The rules
// are ordered tables of structured (major, minor) entries; the 15 family
// matches by major version alone.
package policy

import (
	"github.com/SUSE/tunecheck/pkg/version"
)

// Subsystem names one of the two mutually-exclusive tuning mechanisms.
type Subsystem string

// The audited subsystems.
const (
	Sapconf Subsystem = "sapconf"
	Saptune Subsystem = "saptune"
)

// String returns the subsystem name.
func (s Subsystem) String() string {
	return string(s)
}

// IsValid checks if the subsystem is one of the audited ones.
func (s Subsystem) IsValid() bool {
	switch s {
	case Sapconf, Saptune:
		return true
	default:
		return false
	}
}

// anyMinor makes an osRule match every minor version of its major.
const anyMinor = -1

// osRule matches one OS release (or release family) and carries the
// per-release extra rule.
type osRule struct {
	major int
	minor int

	// versionGated marks releases where only reworked sapconf 4.1 builds
	// (patch level 12 or later) are supported.
	versionGated bool
}

func (r osRule) matches(v version.Version) bool {
	if r.major != v.Major {
		return false
	}
	return r.minor == anyMinor || r.minor == v.Minor
}

// sapconfRules: 12.1-12.3 shipped both the legacy and the reworked sapconf,
// so the package version decides; 12.4, 12.5 and all of 15 only ever shipped
// the reworked one.
var sapconfRules = []osRule{
	{major: 12, minor: 1, versionGated: true},
	{major: 12, minor: 2, versionGated: true},
	{major: 12, minor: 3, versionGated: true},
	{major: 12, minor: 4},
	{major: 12, minor: 5},
	{major: 15, minor: anyMinor},
}

// saptuneRules: saptune was introduced with 12.2.
var saptuneRules = []osRule{
	{major: 12, minor: 2},
	{major: 12, minor: 3},
	{major: 12, minor: 4},
	{major: 12, minor: 5},
	{major: 15, minor: anyMinor},
}

// reworkedSapconf is the first sapconf build of the redesigned
// implementation on the 4.1 line.
var reworkedSapconf = version.Version{Major: 4, Minor: 1, Patch: 12, Precision: 3}

// Policy evaluates OS and package version support for the audited
// subsystems.
type Policy struct{}

// New creates a Policy with the built-in rule tables.
func New() *Policy {
	return &Policy{}
}

// SupportedFamily reports whether the OS identifier belongs to the SLES
// family this tool targets.
func (p *Policy) SupportedFamily(id string) bool {
	switch id {
	case "sles", "sles_sap", "sled":
		return true
	default:
		return false
	}
}

// Supports reports whether the given subsystem is supported on the given
// OS version identifier. Unparseable version identifiers are unsupported.
func (p *Policy) Supports(sub Subsystem, osVersionID string) bool {
	rules := p.rules(sub)
	if rules == nil {
		return false
	}

	v, err := version.Parse(osVersionID)
	if err != nil {
		return false
	}

	for _, r := range rules {
		if r.matches(v) {
			return true
		}
	}
	return false
}

// SapconfReworked reports whether the installed sapconf package is the
// reworked implementation on the given OS version. On releases without a
// version gate every supported build is reworked; on gated releases the
// package must be a 4.1 build with patch level 12 or later. Unparseable
// versions are never reworked.
func (p *Policy) SapconfReworked(osVersionID, packageVersion string) bool {
	osVer, err := version.Parse(osVersionID)
	if err != nil {
		return false
	}

	var rule *osRule
	for i := range sapconfRules {
		if sapconfRules[i].matches(osVer) {
			rule = &sapconfRules[i]
			break
		}
	}
	if rule == nil {
		return false
	}
	if !rule.versionGated {
		return true
	}

	pkgVer, err := version.Parse(packageVersion)
	if err != nil {
		return false
	}
	if pkgVer.Major != reworkedSapconf.Major || pkgVer.Minor != reworkedSapconf.Minor {
		return false
	}
	return pkgVer.Patch >= reworkedSapconf.Patch
}

func (p *Policy) rules(sub Subsystem) []osRule {
	switch sub {
	case Sapconf:
		return sapconfRules
	case Saptune:
		return saptuneRules
	default:
		return nil
	}
}
