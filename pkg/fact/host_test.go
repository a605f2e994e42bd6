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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestOSRelease(t *testing.T) {
	h := &HostProvider{
		ReleasePath: writeTemp(t, "os-release", `NAME="SLES"
ID="sles"
VERSION_ID="12.3"
PRETTY_NAME="SUSE Linux Enterprise Server 12 SP3"
`),
	}

	rel, err := h.OSRelease(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "sles", rel.ID)
	assert.Equal(t, "12.3", rel.VersionID)
	assert.Equal(t, "SUSE Linux Enterprise Server 12 SP3", rel.PrettyName)
}

func TestOSReleaseUnquoted(t *testing.T) {
	h := &HostProvider{
		ReleasePath: writeTemp(t, "os-release", "ID=sles_sap\nVERSION_ID=15.1\n"),
	}

	rel, err := h.OSRelease(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "sles_sap", rel.ID)
	assert.Equal(t, "15.1", rel.VersionID)
}

func TestOSReleaseMissingFile(t *testing.T) {
	h := &HostProvider{ReleasePath: filepath.Join(t.TempDir(), "missing")}

	_, err := h.OSRelease(t.Context())
	assert.Error(t, err)
}

func TestActiveProfile(t *testing.T) {
	h := &HostProvider{
		TunedProfilePath: writeTemp(t, "active_profile", "saptune\n"),
	}

	profile, err := h.ActiveProfile(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "saptune", profile)
}

func TestActiveProfileMissingFileMeansNoProfile(t *testing.T) {
	h := &HostProvider{TunedProfilePath: filepath.Join(t.TempDir(), "missing")}

	profile, err := h.ActiveProfile(t.Context())
	require.NoError(t, err)
	assert.Empty(t, profile)
}

func TestActiveProfileEmptyFile(t *testing.T) {
	h := &HostProvider{TunedProfilePath: writeTemp(t, "active_profile", "\n")}

	profile, err := h.ActiveProfile(t.Context())
	require.NoError(t, err)
	assert.Empty(t, profile)
}

func TestConfigValues(t *testing.T) {
	path := writeTemp(t, "saptune", `TUNE_FOR_NOTES="1275776"
TUNE_FOR_SOLUTIONS=""
`)

	h := NewHostProvider()
	got, err := h.ConfigValues(t.Context(), path, "TUNE_FOR_NOTES", "TUNE_FOR_SOLUTIONS", "ABSENT")
	require.NoError(t, err)

	assert.Equal(t, "1275776", got["TUNE_FOR_NOTES"])
	assert.Empty(t, got["TUNE_FOR_SOLUTIONS"])
	assert.Empty(t, got["ABSENT"])
	assert.Len(t, got, 3, "every requested key gets an entry")
}

func TestConfigValuesMissingFile(t *testing.T) {
	h := NewHostProvider()
	_, err := h.ConfigValues(t.Context(), filepath.Join(t.TempDir(), "missing"), "KEY")
	assert.Error(t, err)
}

func TestPackageRPMMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	h := NewHostProvider()
	_, err := h.Package(t.Context(), "sapconf")
	assert.ErrorContains(t, err, "rpm not found")
}

func TestIsEnabledState(t *testing.T) {
	tests := []struct {
		state string
		want  bool
	}{
		{state: "enabled", want: true},
		{state: "enabled-runtime", want: true},
		{state: "disabled", want: false},
		{state: "masked", want: false},
		{state: "static", want: false},
		{state: "linked", want: false},
		{state: "", want: false},
	}

	for _, tt := range tests {
		if got := isEnabledState(tt.state); got != tt.want {
			t.Errorf("isEnabledState(%q) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestPropString(t *testing.T) {
	props := map[string]interface{}{
		"ActiveState":   "active",
		"UnitFileState": "enabled",
		"MainPID":       uint32(1234),
	}

	assert.Equal(t, "active", propString(props, "ActiveState"))
	assert.Empty(t, propString(props, "MainPID"), "non-string property")
	assert.Empty(t, propString(props, "Missing"))
}
