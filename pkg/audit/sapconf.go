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
	"slices"
	"strings"
	"time"

	"github.com/SUSE/tunecheck/pkg/fact"
	"github.com/SUSE/tunecheck/pkg/policy"
)

// SapconfAuditor checks that sapconf is set up correctly: a supported,
// reworked package version, an active and enabled sapconf.service, a
// sapconf tuned profile, and a tuned.service that is running but left
// disabled (sapconf starts it itself).
type SapconfAuditor struct {
	provider fact.Provider
	policy   *policy.Policy
	opts     options
}

// NewSapconfAuditor creates a sapconf auditor with the provided options.
func NewSapconfAuditor(provider fact.Provider, pol *policy.Policy, opts ...Option) *SapconfAuditor {
	return &SapconfAuditor{
		provider: provider,
		policy:   pol,
		opts:     newOptions(opts),
	}
}

// Audit runs the sapconf check sequence and returns the aggregate result.
// An unsupported environment short-circuits after the explanatory finding.
func (a *SapconfAuditor) Audit(ctx context.Context) (*Result, error) {
	start := time.Now()
	col := NewCollector()

	slog.Info("auditing sapconf setup")

	rel, pkg, stop := checkEnvironment(ctx, a.provider, a.policy, policy.Sapconf, sapconfPackage, col)
	if stop {
		return newResult(policy.Sapconf, a.opts.version, col, true, start), nil
	}

	if !a.policy.Supports(policy.Sapconf, rel.VersionID) {
		col.Fail(
			fmt.Sprintf("SLES %s is not supported by sapconf", rel.VersionID),
			"")
		return newResult(policy.Sapconf, a.opts.version, col, true, start), nil
	}

	if !a.policy.SapconfReworked(rel.VersionID, pkg.Version) {
		col.Fail(
			fmt.Sprintf("sapconf %s on SLES %s is the obsolete legacy implementation", pkg.Version, rel.VersionID),
			"update to a reworked sapconf (4.1.12 or later)")
		return newResult(policy.Sapconf, a.opts.version, col, true, start), nil
	}
	col.Ok(fmt.Sprintf("sapconf %s is installed and supported on SLES %s", pkg.Version, rel.VersionID))

	a.checkProfile(ctx, col)
	sapconfActive := a.checkSapconfService(ctx, col)
	a.checkTunedService(ctx, col, sapconfActive)

	return newResult(policy.Sapconf, a.opts.version, col, false, start), nil
}

// checkProfile verifies that the active tuned profile is one of the
// profiles sapconf ships.
func (a *SapconfAuditor) checkProfile(ctx context.Context, col *Collector) {
	profile, err := a.provider.ActiveProfile(ctx)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not read the active tuned profile: %v", err),
			"")
		return
	}

	if !slices.Contains(sapconfProfiles, profile) {
		col.Fail(
			fmt.Sprintf("active tuned profile %s is not a sapconf profile", displayProfile(profile)),
			fmt.Sprintf("select one of [%s] with 'tuned-adm profile <name>'", strings.Join(sapconfProfiles, ", ")))
		return
	}
	col.Ok(fmt.Sprintf("active tuned profile %s belongs to sapconf", profile))
}

// checkSapconfService verifies sapconf.service is active and enabled and
// reports whether it was active, which decides the severity of a stopped
// tuned.service.
func (a *SapconfAuditor) checkSapconfService(ctx context.Context, col *Collector) bool {
	svc, err := a.provider.Service(ctx, sapconfService)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not read the state of %s: %v", sapconfService, err),
			"")
		return false
	}

	if svc.Active {
		col.Ok(fmt.Sprintf("%s is active", sapconfService))
	} else {
		col.Fail(
			fmt.Sprintf("%s is not active", sapconfService),
			fmt.Sprintf("start it with 'systemctl start %s'", sapconfService))
	}

	if svc.Enabled {
		col.Ok(fmt.Sprintf("%s is enabled", sapconfService))
	} else {
		col.Fail(
			fmt.Sprintf("%s is not enabled", sapconfService),
			fmt.Sprintf("enable it with 'systemctl enable %s'", sapconfService))
	}

	return svc.Active
}

// checkTunedService verifies tuned.service is running but not enabled.
// sapconf manages tuned at runtime: a stopped tuned is only an independent
// problem when sapconf.service itself is running, otherwise it is a
// consequence of the sapconf.service finding and downgraded to a warning.
// An enabled tuned.service has inverted polarity: it must stay disabled.
func (a *SapconfAuditor) checkTunedService(ctx context.Context, col *Collector, sapconfActive bool) {
	svc, err := a.provider.Service(ctx, tunedService)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not read the state of %s: %v", tunedService, err),
			"")
		return
	}

	switch {
	case svc.Active:
		col.Ok(fmt.Sprintf("%s is active", tunedService))
	case sapconfActive:
		col.Fail(
			fmt.Sprintf("%s is not active although %s is running", tunedService, sapconfService),
			fmt.Sprintf("restart sapconf with 'systemctl restart %s'", sapconfService))
	default:
		col.Warn(
			fmt.Sprintf("%s is not active, as expected while %s is stopped", tunedService, sapconfService),
			fmt.Sprintf("starting %s will start it", sapconfService))
	}

	if svc.Enabled {
		col.Warn(
			fmt.Sprintf("%s is enabled; sapconf manages tuned itself", tunedService),
			fmt.Sprintf("disable it with 'systemctl disable %s'", tunedService))
	} else {
		col.Ok(fmt.Sprintf("%s is disabled", tunedService))
	}
}
