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

// Package defaults centralizes the timeout values used across tunecheck.
//
// Keeping them in one place makes the relationships between them visible:
// the per-fact timeouts must leave room inside the overall audit deadline
// so a hung rpm or systemd query surfaces as a finding for that fact
// rather than killing the whole run.
package defaults
