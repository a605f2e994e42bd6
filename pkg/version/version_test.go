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

package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        Version
		expectError error
	}{
		{
			name:  "major only",
			input: "15",
			want:  Version{Major: 15, Precision: 1},
		},
		{
			name:  "major minor",
			input: "12.1",
			want:  Version{Major: 12, Minor: 1, Precision: 2},
		},
		{
			name:  "full",
			input: "4.1.12",
			want:  Version{Major: 4, Minor: 1, Patch: 12, Precision: 3},
		},
		{
			name:  "rpm release suffix",
			input: "4.1.12-3.5.2",
			want:  Version{Major: 4, Minor: 1, Patch: 12, Precision: 3, Release: "-3.5.2"},
		},
		{
			name:  "release suffix on two components",
			input: "2.0-1.1",
			want:  Version{Major: 2, Minor: 0, Precision: 2, Release: "-1.1"},
		},
		{
			name:  "surrounding whitespace",
			input: " 12.5 ",
			want:  Version{Major: 12, Minor: 5, Precision: 2},
		},
		{name: "empty", input: "", expectError: ErrEmpty},
		{name: "blank", input: "   ", expectError: ErrEmpty},
		{name: "too many components", input: "1.2.3.4", expectError: ErrTooManyComponents},
		{name: "non numeric", input: "12.x", expectError: ErrNonNumeric},
		{name: "leading dash", input: "-1.2", expectError: ErrNonNumeric},
		{name: "trailing dot", input: "12.", expectError: ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.expectError)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal full", a: "4.1.12", b: "4.1.12", want: 0},
		{name: "patch newer", a: "4.1.15", b: "4.1.12", want: 1},
		{name: "patch older", a: "4.1.5", b: "4.1.12", want: -1},
		{name: "minor wins over patch", a: "4.2.0", b: "4.1.99", want: 1},
		{name: "major wins", a: "5.0.0", b: "4.9.9", want: 1},
		{name: "precision caps comparison", a: "12.1", b: "12.1.3", want: 0},
		{name: "major-only matches family", a: "15", b: "15.4", want: 0},
		{name: "release suffix ignored", a: "4.1.12-3.5.2", b: "4.1.12-1.1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	if !MustParse("4.1.12").AtLeast(MustParse("4.1.12")) {
		t.Error("equal versions should satisfy AtLeast")
	}
	if !MustParse("4.1.15-1.2").AtLeast(MustParse("4.1.12")) {
		t.Error("newer patch should satisfy AtLeast")
	}
	if MustParse("4.0.3").AtLeast(MustParse("4.1.12")) {
		t.Error("older minor should not satisfy AtLeast")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "15", want: "15"},
		{input: "12.1", want: "12.1"},
		{input: "4.1.12", want: "4.1.12"},
		{input: "4.1.12-3.5.2", want: "4.1.12"},
	}

	for _, tt := range tests {
		if got := MustParse(tt.input).String(); got != tt.want {
			t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
