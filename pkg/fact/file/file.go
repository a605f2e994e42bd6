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

// Package file parses line-oriented KEY=value configuration files, the
// format shared by /etc/os-release, /etc/sysconfig/* and tuned state files.
package file

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures the Parser.
type Option func(*Parser)

// Parser parses line-oriented configuration files with customizable settings.
type Parser struct {
	maxSize      int
	skipComments bool
	kvDelimiter  string
	trimChars    string
}

// WithMaxSize sets the maximum size (in bytes) of a file the parser accepts.
// Default is 1MB; the files this tool reads are a few hundred bytes.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether lines starting with '#' are ignored.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used by Map. Default is "=".
func WithKVDelimiter(delim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = delim
	}
}

// WithTrimChars sets characters trimmed from both ends of parsed values,
// typically `"'` for shell-style quoting. Default is no trimming.
func WithTrimChars(chars string) Option {
	return func(p *Parser) {
		p.trimChars = chars
	}
}

// NewParser creates a parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:      1 << 20,
		skipComments: true,
		kvDelimiter:  "=",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Map reads the file at path and parses it into a key-value map. Lines
// without the delimiter are skipped; keys and values are whitespace-trimmed
// and values additionally trimmed of the configured quote characters.
func (p *Parser) Map(path string) (map[string]string, error) {
	lines, err := p.Lines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		if p.trimChars != "" {
			value = strings.Trim(value, p.trimChars)
		}
		if key == "" {
			continue
		}
		result[key] = value
	}

	return result, nil
}

// Lines reads the file at path and returns its non-empty, non-comment lines
// with surrounding whitespace removed.
func (p *Parser) Lines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	raw := strings.Split(string(b), "\n")
	result := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, line)
	}

	return result, nil
}

// FirstLine returns the first non-empty, non-comment line of the file, or
// an empty string if the file has none.
func (p *Parser) FirstLine(path string) (string, error) {
	lines, err := p.Lines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}
