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

// Package version parses and compares dotted version strings as they appear
// in /etc/os-release VERSION_ID fields ("12.1", "15") and rpm VERSION-RELEASE
// output ("4.1.12-3.5.2"). These are not semver: components after the first
// dash are rpm release metadata and never participate in comparisons.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures.
var (
	ErrEmpty             = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
)

// Version is a parsed version with up to three significant numeric
// components. Precision records how many components were present in the
// input (1, 2, or 3); comparisons only consider significant components, so
// a precision-2 "12.1" never differs from "12.1.0" by patch level.
// Release holds rpm release metadata ("-3.5.2") verbatim.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision is the number of significant components (1, 2, or 3).
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Release preserves the rpm release suffix, e.g. "-3.5.2".
	Release string `json:"release,omitempty" yaml:"release,omitempty"`
}

// Parse parses a version string into a Version.
// Accepted forms: "15", "12.1", "4.1.12", "4.1.12-3.5.2". An rpm release
// suffix (everything from the first dash that follows a digit) is stored in
// Release and excluded from the numeric components.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmpty
	}

	var v Version

	// Separate the rpm release suffix before splitting on dots; the suffix
	// itself may contain dots ("4.1.12-3.5.2").
	numeric := s
	if i := strings.IndexByte(s, '-'); i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		numeric = s[:i]
		v.Release = s[i:]
	}

	parts := strings.Split(numeric, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrTooManyComponents, s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		switch i {
		case 0:
			v.Major = n
		case 1:
			v.Minor = n
		case 2:
			v.Patch = n
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// MustParse parses a version string and panics on failure. Only for
// hardcoded strings and test data; runtime input goes through Parse.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("version.MustParse(%q): %v", s, err))
	}
	return v
}

// String renders the significant components, without the release suffix.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Compare returns -1 if v < other, 0 if equal, 1 if v > other.
// Comparison stops at the lower of the two precisions, so 12.1 == 12.1.3
// when v was parsed from "12.1".
func (v Version) Compare(other Version) int {
	precision := v.Precision
	if other.Precision != 0 && other.Precision < precision {
		precision = other.Precision
	}

	pairs := [3][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for i, p := range pairs {
		if i >= precision {
			break
		}
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Equals reports whether the significant components match exactly.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// AtLeast reports whether v is equal to or newer than other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}
