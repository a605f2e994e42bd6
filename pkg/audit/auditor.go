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

// Package audit implements the rule engines that judge a host's sapconf or
// saptune setup. Each auditor runs an ordered sequence of checks against a
// fact.Provider, collects findings, and reduces them to an aggregate
// outcome. An unsupported environment (wrong OS family, unsupported
// release, package not installed) stops the audit before the setup checks
// run.
package audit

import (
	"context"
	"fmt"

	"github.com/SUSE/tunecheck/pkg/fact"
	"github.com/SUSE/tunecheck/pkg/policy"
)

const (
	sapconfPackage = "sapconf"
	saptunePackage = "saptune"

	sapconfService = "sapconf.service"
	tunedService   = "tuned.service"

	saptuneProfile    = "saptune"
	saptuneConfigPath = "/etc/sysconfig/saptune"

	varTuneForNotes     = "TUNE_FOR_NOTES"
	varTuneForSolutions = "TUNE_FOR_SOLUTIONS"
)

// sapconfProfiles are the tuned profiles shipped by sapconf; any of them
// means sapconf tuning is in effect.
var sapconfProfiles = []string{
	"sapconf",
	"sap-netweaver",
	"sap-hana",
	"sap-ase",
	"sap-bobj",
}

// Auditor audits one subsystem's setup on the host.
type Auditor interface {
	Audit(ctx context.Context) (*Result, error)
}

// Option is a functional option for configuring auditors.
type Option func(*options)

type options struct {
	version    string
	configPath string
}

// WithVersion sets the tool version recorded in result headers.
func WithVersion(version string) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithConfigPath overrides the saptune sysconfig file location, used in
// tests.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

func newOptions(opts []Option) options {
	o := options{
		configPath: saptuneConfigPath,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates the auditor for the named subsystem.
func New(sub policy.Subsystem, provider fact.Provider, pol *policy.Policy, opts ...Option) (Auditor, error) {
	switch sub {
	case policy.Sapconf:
		return NewSapconfAuditor(provider, pol, opts...), nil
	case policy.Saptune:
		return NewSaptuneAuditor(provider, pol, opts...), nil
	default:
		return nil, fmt.Errorf("unknown subsystem: %q", sub)
	}
}

// displayProfile renders a tuned profile name for messages, with a
// placeholder for the no-profile state.
func displayProfile(profile string) string {
	if profile == "" {
		return "(none)"
	}
	return profile
}

// displayValue renders a config variable value, with a placeholder for an
// unset one.
func displayValue(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

// checkEnvironment runs the shared environment gate: the OS must be a
// supported SLES family release and the subsystem package must be
// installed. On success it returns the release and package facts; on a
// hard stop it appends the explanatory finding and returns stop=true.
func checkEnvironment(ctx context.Context, provider fact.Provider, pol *policy.Policy, sub policy.Subsystem, pkgName string, col *Collector) (rel fact.OSRelease, pkg fact.Package, stop bool) {
	rel, err := provider.OSRelease(ctx)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not determine the OS release: %v", err),
			"make sure /etc/os-release is readable")
		return rel, pkg, true
	}

	if !pol.SupportedFamily(rel.ID) {
		col.Fail(
			fmt.Sprintf("this is not a SLES system (ID=%q); %s is only supported on SLES", rel.ID, sub),
			"")
		return rel, pkg, true
	}

	pkg, err = provider.Package(ctx, pkgName)
	if err != nil {
		col.Fail(
			fmt.Sprintf("could not query the %s package: %v", pkgName, err),
			"")
		return rel, pkg, true
	}

	if !pkg.Installed {
		col.Fail(
			fmt.Sprintf("%s is not installed", pkgName),
			fmt.Sprintf("install it with 'zypper install %s'", pkgName))
		return rel, pkg, true
	}

	return rel, pkg, false
}
