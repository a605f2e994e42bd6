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

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMapOSRelease(t *testing.T) {
	path := writeTemp(t, `NAME="SLES"
VERSION="15-SP4"
VERSION_ID="15.4"
ID="sles"
# a comment
PRETTY_NAME="SUSE Linux Enterprise Server 15 SP4"
`)

	p := NewParser(WithTrimChars(`"'`))
	got, err := p.Map(path)
	require.NoError(t, err)

	assert.Equal(t, "sles", got["ID"])
	assert.Equal(t, "15.4", got["VERSION_ID"])
	assert.Equal(t, "SUSE Linux Enterprise Server 15 SP4", got["PRETTY_NAME"])
	assert.NotContains(t, got, "# a comment")
}

func TestMapSysconfig(t *testing.T) {
	path := writeTemp(t, `## Type: string
## Default: ""
TUNE_FOR_NOTES="1275776 2578899"
TUNE_FOR_SOLUTIONS=""
`)

	p := NewParser(WithTrimChars(`"'`))
	got, err := p.Map(path)
	require.NoError(t, err)

	assert.Equal(t, "1275776 2578899", got["TUNE_FOR_NOTES"])
	v, ok := got["TUNE_FOR_SOLUTIONS"]
	assert.True(t, ok, "empty variables are still present")
	assert.Empty(t, v)
}

func TestMapSkipsMalformedLines(t *testing.T) {
	path := writeTemp(t, "KEY=value\njustaword\n=nokey\n")

	got, err := NewParser().Map(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"KEY": "value"}, got)
}

func TestLines(t *testing.T) {
	path := writeTemp(t, "\n# comment\n  one  \n\ntwo\n")

	got, err := NewParser().Lines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)
}

func TestLinesKeepsCommentsWhenConfigured(t *testing.T) {
	path := writeTemp(t, "# comment\nvalue\n")

	got, err := NewParser(WithSkipComments(false)).Lines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"# comment", "value"}, got)
}

func TestFirstLine(t *testing.T) {
	path := writeTemp(t, "\n# header\nsaptune\n")

	got, err := NewParser().FirstLine(path)
	require.NoError(t, err)
	assert.Equal(t, "saptune", got)
}

func TestFirstLineEmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	got, err := NewParser().FirstLine(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestErrors(t *testing.T) {
	p := NewParser(WithMaxSize(4))

	_, err := p.Lines("")
	assert.Error(t, err)

	_, err = p.Lines(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	path := writeTemp(t, "this file is larger than four bytes")
	_, err = p.Lines(path)
	assert.ErrorContains(t, err, "maximum size")
}
