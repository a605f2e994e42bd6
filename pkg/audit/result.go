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
	"time"

	"github.com/SUSE/tunecheck/pkg/header"
	"github.com/SUSE/tunecheck/pkg/policy"
)

const (
	// APIVersion is the schema version for serialized audit results.
	APIVersion = "tunecheck.suse.com/v1"
)

// Outcome is the aggregate verdict of an audit.
type Outcome string

// Audit outcomes, from best to worst.
const (
	// OutcomeClean means every check passed.
	OutcomeClean Outcome = "clean"

	// OutcomeWarned means the subsystem works but the setup is suboptimal.
	OutcomeWarned Outcome = "warned"

	// OutcomeFailed means the subsystem will not work as configured.
	OutcomeFailed Outcome = "failed"

	// OutcomeHardStop means the environment itself cannot run the
	// subsystem (unsupported OS or package); remaining checks were
	// skipped.
	OutcomeHardStop Outcome = "hard-stop"
)

// String returns the outcome name.
func (o Outcome) String() string {
	return string(o)
}

// ExitCode maps the outcome to the process exit code. A warned setup is
// still functional, so it exits zero like a clean one. Invalid CLI usage
// (exit 3) is handled by the caller, not here.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeFailed:
		return 1
	case OutcomeHardStop:
		return 2
	default:
		return 0
	}
}

// aggregate reduces counts and the hard-stop flag to an Outcome. A hard
// stop wins over everything; otherwise any failure means failed, any
// warning means warned.
func aggregate(warns, fails int, hardStop bool) Outcome {
	switch {
	case hardStop:
		return OutcomeHardStop
	case fails > 0:
		return OutcomeFailed
	case warns > 0:
		return OutcomeWarned
	default:
		return OutcomeClean
	}
}

// Summary contains aggregate statistics about one audit run.
type Summary struct {
	// Warnings is the count of WARN findings.
	Warnings int `json:"warnings" yaml:"warnings"`

	// Failures is the count of FAIL findings.
	Failures int `json:"failures" yaml:"failures"`

	// Outcome is the aggregate verdict.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Duration is how long the audit took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result is the complete outcome of auditing one subsystem.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	// Subsystem is the audited subsystem.
	Subsystem policy.Subsystem `json:"subsystem" yaml:"subsystem"`

	// Findings contains per-check observations in check order.
	Findings []Finding `json:"findings" yaml:"findings"`

	// Summary contains the aggregate counts and verdict.
	Summary Summary `json:"summary" yaml:"summary"`
}

// newResult assembles a Result from a collector, initializing the header
// and computing the aggregate outcome.
func newResult(sub policy.Subsystem, toolVersion string, col *Collector, hardStop bool, start time.Time) *Result {
	warns, fails := col.Counts()

	res := &Result{
		Subsystem: sub,
		Findings:  col.Findings(),
		Summary: Summary{
			Warnings: warns,
			Failures: fails,
			Outcome:  aggregate(warns, fails, hardStop),
			Duration: time.Since(start),
		},
	}
	res.Init(header.KindAuditResult, APIVersion, toolVersion)

	return res
}
