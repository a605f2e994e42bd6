/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/SUSE/tunecheck/pkg/audit"
	"github.com/SUSE/tunecheck/pkg/defaults"
	"github.com/SUSE/tunecheck/pkg/fact"
	"github.com/SUSE/tunecheck/pkg/policy"
	"github.com/SUSE/tunecheck/pkg/serializer"
)

var (
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("result output format, one of %v", serializer.SupportedFormats()),
		Sources: cli.EnvVars("TUNECHECK_FORMAT"),
		Value:   string(serializer.FormatJSON),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the machine-readable audit result to this file (the text report always goes to stdout)",
		Sources: cli.EnvVars("TUNECHECK_OUTPUT"),
	}
)

func auditCmd(sub policy.Subsystem) *cli.Command {
	return &cli.Command{
		Name:                  sub.String(),
		EnableShellCompletion: true,
		Usage:                 fmt.Sprintf("Audit the %s setup on this host", sub),
		Description: fmt.Sprintf(`Run the ordered %[1]s checks against this host and print one finding per
line, a warning/failure count and the overall verdict.

The checks are read-only. The exit code reflects the verdict: 0 when the
setup is fine or only has warnings, 1 when %[1]s will not work as
configured, 2 when this system cannot run %[1]s at all.

# Examples

Audit and print the report:
  %[2]s %[1]s

Additionally save the result for machines:
  %[2]s %[1]s --output result.yaml --format yaml`, sub, name),
		Flags: []cli.Flag{
			formatFlag,
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runAudit(ctx, sub, cmd)
		},
	}
}

func runAudit(ctx context.Context, sub policy.Subsystem, cmd *cli.Command) error {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return cli.Exit(fmt.Sprintf("unknown output format: %q", outFormat), exitUsage)
	}

	auditor, err := audit.New(sub, fact.NewHostProvider(), policy.New(),
		audit.WithVersion(version))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.AuditTimeout)
	defer cancel()

	res, err := auditor.Audit(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("audit aborted: %v", err), exitUsage)
	}

	if err := serializer.NewReporter(os.Stdout).Report(res); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write report: %v", err), 1)
	}

	if output := cmd.String("output"); output != "" {
		w := serializer.NewFileWriterOrStdout(outFormat, output)
		defer func() {
			if err := w.Close(); err != nil {
				slog.Warn("failed to close result writer", "error", err)
			}
		}()
		if err := w.Serialize(res); err != nil {
			return cli.Exit(fmt.Sprintf("failed to serialize audit result: %v", err), 1)
		}
	}

	slog.Info("audit completed",
		"subsystem", sub.String(),
		"outcome", res.Summary.Outcome.String(),
		"warnings", res.Summary.Warnings,
		"failures", res.Summary.Failures,
		"duration", res.Summary.Duration)

	if code := res.Summary.Outcome.ExitCode(); code != 0 {
		return cli.Exit("", code)
	}
	return nil
}
