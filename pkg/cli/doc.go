/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the tunecheck command line interface: subsystem
// selection, flags, logging setup and the mapping from audit outcomes to
// process exit codes.
package cli
