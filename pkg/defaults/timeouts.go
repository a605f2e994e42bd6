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

package defaults

import "time"

// Fact collection timeouts for single host queries.
const (
	// PackageQueryTimeout bounds a single rpm query. rpm takes a shared
	// lock on the database; a concurrent zypper transaction can make it
	// block, and the audit should not hang with it.
	PackageQueryTimeout = 10 * time.Second

	// ServiceQueryTimeout bounds a single systemd property read over
	// D-Bus, including the connection setup on the first call.
	ServiceQueryTimeout = 10 * time.Second
)

// Audit timeouts for a full command run.
const (
	// AuditTimeout is the deadline for one complete audit, covering all
	// fact collection. Must be comfortably larger than the sum of the
	// per-fact timeouts above.
	AuditTimeout = 2 * time.Minute
)
