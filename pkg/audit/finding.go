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

// Severity classifies a single finding.
type Severity string

// Finding severities.
const (
	SeverityOK   Severity = "OK"
	SeverityWarn Severity = "WARN"
	SeverityFail Severity = "FAIL"
)

// Finding is one observation made during an audit. Findings are immutable
// once appended; their order is the display order and mirrors the order the
// checks ran in.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`

	// Remediation tells the operator how to fix a WARN or FAIL finding.
	Remediation string `json:"remediation,omitempty" yaml:"remediation,omitempty"`
}

// Collector accumulates findings in check order and keeps running warning
// and failure counts. It is owned by a single running auditor and never
// reorders or deduplicates.
type Collector struct {
	findings []Finding
	warns    int
	fails    int
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		findings: make([]Finding, 0, 8),
	}
}

// Add appends a finding and updates the counts.
func (c *Collector) Add(f Finding) {
	switch f.Severity {
	case SeverityWarn:
		c.warns++
	case SeverityFail:
		c.fails++
	}
	c.findings = append(c.findings, f)
}

// Ok appends an OK finding.
func (c *Collector) Ok(message string) {
	c.Add(Finding{Severity: SeverityOK, Message: message})
}

// Warn appends a WARN finding with a remediation hint.
func (c *Collector) Warn(message, remediation string) {
	c.Add(Finding{Severity: SeverityWarn, Message: message, Remediation: remediation})
}

// Fail appends a FAIL finding with a remediation hint.
func (c *Collector) Fail(message, remediation string) {
	c.Add(Finding{Severity: SeverityFail, Message: message, Remediation: remediation})
}

// Counts returns the running warning and failure counts.
func (c *Collector) Counts() (warns, fails int) {
	return c.warns, c.fails
}

// Findings returns a read-only snapshot of the collected findings in
// append order.
func (c *Collector) Findings() []Finding {
	out := make([]Finding, len(c.findings))
	copy(out, c.findings)
	return out
}
