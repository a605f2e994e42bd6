/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/SUSE/tunecheck/pkg/cli"
)

func main() {
	cli.Run()
}
