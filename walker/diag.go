/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package walker

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityInfo is advisory only.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a token was dropped or altered.
	SeverityWarning
)

// String returns the severity label.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic codes emitted by the walker.
const (
	CodeMissingSection      = "missing-section"
	CodeUnresolvedReference = "unresolved-reference"
	CodeMalformedGradient   = "malformed-gradient"
	CodeInvalidColor        = "invalid-color"
	CodeAmbiguousMode       = "ambiguous-mode"
)

// Diagnostic is a single non-fatal issue found during a walk.
type Diagnostic struct {
	Severity Severity
	Code     string
	Context  string
}

// String renders the diagnostic as a single advisory line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Code, d.Context)
}

// Diagnostics collects non-fatal issues during a walk. The caller decides
// how to report them; the engine never prints.
type Diagnostics struct {
	entries    []Diagnostic
	collisions int
}

// Warnf records a warning diagnostic.
func (d *Diagnostics) Warnf(code, format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Context:  fmt.Sprintf(format, args...),
	})
}

// Infof records an advisory diagnostic.
func (d *Diagnostics) Infof(code, format string, args ...any) {
	d.entries = append(d.entries, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Context:  fmt.Sprintf(format, args...),
	})
}

// Collision counts a canonical-name collision. Collisions are resolved
// last-write-wins and are not errors; the counter exists for visibility.
func (d *Diagnostics) Collision() {
	d.collisions++
}

// Entries returns the recorded diagnostics.
func (d *Diagnostics) Entries() []Diagnostic {
	return d.entries
}

// Collisions returns the number of canonical-name collisions observed.
func (d *Diagnostics) Collisions() int {
	return d.collisions
}
