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

package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SUSE/tunecheck/pkg/fact"
	"github.com/SUSE/tunecheck/pkg/policy"
)

// SaptuneAuditor checks that saptune is set up correctly: a supported OS
// release, sapconf.service stopped and disabled (the two subsystems must
// never run at the same time), tuned.service running and enabled with the
// saptune profile, and at least one note or solution configured.
type SaptuneAuditor struct {
	provider fact.Provider
	policy   *policy.Policy
	opts     options
}

// NewSaptuneAuditor creates a saptune auditor with the provided options.
func NewSaptuneAuditor(provider fact.Provider, pol *policy.Policy, opts ...Option) *SaptuneAuditor {
	return &SaptuneAuditor{
		provider: provider,
		policy:   pol,
		opts:     newOptions(opts),
	}
}

// Audit runs the saptune check sequence and returns the aggregate result.
// An unsupported environment short-circuits after the explanatory finding.
func (a *SaptuneAuditor) Audit(ctx context.Context) (*Result, error) {
	start := time.Now()
	col := NewCollector()

	slog.Info("auditing saptune setup")

	rel, pkg, stop := checkEnvironment(ctx, a.provider, a.policy, policy.Saptune, saptunePackage, col)
	if stop {
		return newResult(policy.Saptune, a.opts.version, col, true, start), nil
	}

	if !a.policy.Supports(policy.Saptune, rel.VersionID) {
		col.Fail(
			fmt.Sprintf("SLES %s is not supported by saptune", rel.VersionID),
			"")
		return newResult(policy.Saptune, a.opts.version, col, true, start), nil
	}
	col.Ok(fmt.Sprintf("saptune %s is installed and supported on SLES %s", pkg.Version, rel.VersionID))

	a.checkSapconfStopped(ctx, col)
	a.checkTunedService(ctx, col)
	a.checkProfile(ctx, col)
	a.checkConfig(ctx, col)

	return newResult(policy.Saptune, a.opts.version, col, false, start), nil
}

// checkSapconfStopped enforces the mutual exclusion of the two subsystems:
// with saptune in charge, sapconf.service must be neither running nor
// enabled.
func (a *SaptuneAuditor) checkSapconfStopped(ctx context.Context, col *Collector) {
	svc, err := a.provider.Service(ctx, sapconfService)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not read the state of %s: %v", sapconfService, err),
			"")
		return
	}

	if svc.Active {
		col.Fail(
			fmt.Sprintf("%s is active; sapconf and saptune must never run at the same time", sapconfService),
			fmt.Sprintf("stop it with 'systemctl stop %s'", sapconfService))
	} else {
		col.Ok(fmt.Sprintf("%s is not active", sapconfService))
	}

	if svc.Enabled {
		col.Fail(
			fmt.Sprintf("%s is enabled", sapconfService),
			fmt.Sprintf("disable it with 'systemctl disable %s'", sapconfService))
	} else {
		col.Ok(fmt.Sprintf("%s is disabled", sapconfService))
	}
}

// checkTunedService verifies tuned.service is running and enabled; saptune
// applies its tuning through tuned.
func (a *SaptuneAuditor) checkTunedService(ctx context.Context, col *Collector) {
	svc, err := a.provider.Service(ctx, tunedService)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not read the state of %s: %v", tunedService, err),
			"")
		return
	}

	if svc.Active {
		col.Ok(fmt.Sprintf("%s is active", tunedService))
	} else {
		col.Fail(
			fmt.Sprintf("%s is not active", tunedService),
			fmt.Sprintf("start it with 'systemctl start %s'", tunedService))
	}

	if svc.Enabled {
		col.Ok(fmt.Sprintf("%s is enabled", tunedService))
	} else {
		col.Fail(
			fmt.Sprintf("%s is not enabled", tunedService),
			fmt.Sprintf("enable it with 'systemctl enable %s'", tunedService))
	}
}

// checkProfile verifies the active tuned profile is exactly the saptune
// profile.
func (a *SaptuneAuditor) checkProfile(ctx context.Context, col *Collector) {
	profile, err := a.provider.ActiveProfile(ctx)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not read the active tuned profile: %v", err),
			"")
		return
	}

	if profile != saptuneProfile {
		col.Fail(
			fmt.Sprintf("active tuned profile is %s instead of %s", displayProfile(profile), saptuneProfile),
			fmt.Sprintf("select it with 'tuned-adm profile %s'", saptuneProfile))
		return
	}
	col.Ok(fmt.Sprintf("active tuned profile is %s", saptuneProfile))
}

// checkConfig verifies that saptune has anything to apply: at least one of
// TUNE_FOR_NOTES and TUNE_FOR_SOLUTIONS must be set.
func (a *SaptuneAuditor) checkConfig(ctx context.Context, col *Collector) {
	values, err := a.provider.ConfigValues(ctx, a.opts.configPath, varTuneForNotes, varTuneForSolutions)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not read %s: %v", a.opts.configPath, err),
			"")
		return
	}

	notes := values[varTuneForNotes]
	solutions := values[varTuneForSolutions]
	if notes == "" && solutions == "" {
		col.Fail(
			"no SAP notes or solutions are configured",
			"apply one with 'saptune note apply <id>' or 'saptune solution apply <name>'")
		return
	}

	col.Ok(fmt.Sprintf("tuning for notes: %s, solutions: %s",
		displayValue(notes), displayValue(solutions)))

	slog.Debug("saptune config read",
		"notes", notes,
		"solutions", solutions)
}
