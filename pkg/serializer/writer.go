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

// Package serializer writes audit results in machine-readable formats and
// renders the human-readable report.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs data in JSON format.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format.
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format.
	FormatTable Format = "table"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns all supported output format names.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// Writer serializes result documents to a destination in one format.
// Close must be called when the Writer was created with
// NewFileWriterOrStdout so file handles are released.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer with the given format and destination.
// A nil output means stdout; an unknown format falls back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{format: format, output: output}
}

// NewFileWriterOrStdout creates a Writer for the given file path, falling
// back to stdout when the path is empty or the file cannot be created.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	if path == "" {
		return NewWriter(format, os.Stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file, falling back to stdout",
			"error", err,
			"path", path)
		return NewWriter(format, os.Stdout)
	}

	w := NewWriter(format, file)
	w.closer = file
	return w
}

// Close releases resources held by the Writer. Safe to call on
// stdout-backed writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Serialize writes the document in the configured format.
func (w *Writer) Serialize(doc any) error {
	switch w.format {
	case FormatJSON:
		return w.serializeJSON(doc)
	case FormatYAML:
		return w.serializeYAML(doc)
	case FormatTable:
		return w.serializeTable(doc)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeJSON(doc any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(doc any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return encoder.Close()
}

func (w *Writer) serializeTable(doc any) error {
	// Round-trip through JSON to get a uniform map view of the document,
	// then flatten nested keys with dot notation.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to flatten document: %w", err)
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return fmt.Errorf("failed to flatten document: %w", err)
	}

	flat := make(map[string]string)
	flatten(flat, tree, "")
	if len(flat) == 0 {
		fmt.Fprintln(w.output, "<empty>")
		return nil
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	fmt.Fprintln(tw, "-----\t-----")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", key, flat[key])
	}
	return tw.Flush()
}

func flatten(out map[string]string, v any, prefix string) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(out, child, key)
		}
	case []any:
		for i, child := range val {
			flatten(out, child, fmt.Sprintf("%s[%d]", prefix, i))
		}
	default:
		out[prefix] = fmt.Sprintf("%v", val)
	}
}
