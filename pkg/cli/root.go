/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/SUSE/tunecheck/pkg/logging"
	"github.com/SUSE/tunecheck/pkg/policy"
)

const (
	name           = "tunecheck"
	versionDefault = "dev"

	// exitUsage is returned for invalid invocations; the audit outcomes
	// map to 0, 1 and 2.
	exitUsage = 3
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New builds the root command.
func New() *cli.Command {
	root := &cli.Command{
		Name:    name,
		Usage:   "Check the sapconf or saptune setup on this host",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: `tunecheck verifies that one of the two mutually-exclusive SAP tuning
subsystems is set up correctly on this SLES host:

  tunecheck sapconf    audit the sapconf setup
  tunecheck saptune    audit the saptune setup

It checks package versions, service states, the active tuned profile and
the subsystem configuration. It does not verify the tuning effect itself.

Exit codes: 0 setup is fine (possibly with warnings), 1 the subsystem will
not work as configured, 2 the subsystem cannot be used on this system,
3 invalid usage.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("TUNECHECK_LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			auditCmd(policy.Sapconf),
			auditCmd(policy.Saptune),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			// No subsystem selected; nothing was read from the host.
			return cli.Exit(usageText(), exitUsage)
		},
		CommandNotFound: func(_ context.Context, _ *cli.Command, sub string) {
			fmt.Fprintf(os.Stderr, "unknown subsystem %q\n%s\n", sub, usageText())
			cli.OsExiter(exitUsage)
		},
	}

	return root
}

func usageText() string {
	return fmt.Sprintf("usage: %s <%s|%s> [flags]", name, policy.Sapconf, policy.Saptune)
}

// Run executes the root command with a signal-aware context and maps
// errors to process exit codes. This is called by main.main().
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			if msg := coder.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(coder.ExitCode())
		}

		// Anything urfave surfaces without an exit code is a usage
		// problem (unknown flags, malformed invocation).
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}
