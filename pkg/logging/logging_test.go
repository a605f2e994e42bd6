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

package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "warning alias", level: "warning", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "mixed case", level: "DeBuG", want: slog.LevelDebug},
		{name: "padded", level: "  info  ", want: slog.LevelInfo},
		{name: "empty defaults to info", level: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", level: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.level); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("tunecheck", "test", "debug")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}

	logger = NewStructuredLogger("tunecheck", "test", "error")
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info level should be disabled at error level")
	}
}
