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

// Package logging provides structured logging for tunecheck.
//
// It wraps the standard library slog package with tool-wide defaults: JSON
// output to stderr (stdout is reserved for the audit report), module and
// version context on every record, and source location tracking at debug
// level.
//
// The default logger is installed once, early in main:
//
//	logging.SetDefaultStructuredLoggerWithLevel("tunecheck", version, logLevel)
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is passed. Supported levels (case-insensitive): DEBUG, INFO, WARN,
// ERROR. The default is INFO.
package logging
