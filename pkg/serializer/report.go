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

package serializer

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SUSE/tunecheck/pkg/audit"
)

var titler = cases.Title(language.English)

// Reporter renders an audit result as the human-readable report: one line
// per finding with a bracketed severity tag, an indented remediation hint
// where present, the warning/failure counts, and the overall verdict.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report writes the report for the given result.
func (r *Reporter) Report(res *audit.Result) error {
	for _, f := range res.Findings {
		if _, err := fmt.Fprintf(r.out, "%s %s\n", severityTag(f.Severity), f.Message); err != nil {
			return err
		}
		if f.Remediation != "" {
			if _, err := fmt.Fprintf(r.out, "       -> %s\n", f.Remediation); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(r.out, "\n%d warning(s), %d failure(s) found.\n",
		res.Summary.Warnings, res.Summary.Failures); err != nil {
		return err
	}

	_, err := fmt.Fprintln(r.out, verdict(res))
	return err
}

func severityTag(sev audit.Severity) string {
	switch sev {
	case audit.SeverityOK:
		return "[ OK ]"
	case audit.SeverityWarn:
		return "[WARN]"
	case audit.SeverityFail:
		return "[FAIL]"
	default:
		return "[ ?? ]"
	}
}

func verdict(res *audit.Result) string {
	name := titler.String(res.Subsystem.String())

	switch res.Summary.Outcome {
	case audit.OutcomeClean:
		return fmt.Sprintf("%s is set up correctly. Remember that this only checks the setup, not the tuning effect.", name)
	case audit.OutcomeWarned:
		return fmt.Sprintf("%s should work, but the setup has warnings worth reviewing.", name)
	case audit.OutcomeFailed:
		return fmt.Sprintf("%s will not work properly. Fix the reported failures and run the check again.", name)
	case audit.OutcomeHardStop:
		return fmt.Sprintf("%s cannot be used on this system.", name)
	default:
		return fmt.Sprintf("%s: unknown outcome %q.", name, res.Summary.Outcome)
	}
}
