package diagnostic

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"mapcheck/internal/common"
)

// Diagnostic codes.
const (
	CodeMissingAssignments = "missing_assignments"
	CodeUnknownExemption   = "unknown_exemption"
	CodeInvalidExemption   = "invalid_exemption"
	CodeInvalidConfig      = "invalid_config"
	CodeNoTarget           = "no_target"
	CodeSummary            = "summary"
)

// Diagnostics holds all diagnostic information from a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Position is the source location (zero if not tied to source).
	Position token.Position
	// Function is the mapping function this relates to (if any).
	Function string
	// Target is the target type of the mapping function (if any).
	Target string
	// Fields lists the fields the diagnostic is about.
	Fields []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the severity by name.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string) {
	d.Add(Diagnostic{Severity: DiagnosticError, Code: code, Message: message})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// All returns every diagnostic ordered by file, line and column.
// Diagnostics without a position come first, in insertion order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	slices.SortStableFunc(all, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Position.Filename, b.Position.Filename),
			cmp.Compare(a.Position.Line, b.Position.Line),
			cmp.Compare(a.Position.Column, b.Position.Column),
		)
	})

	return all
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Position.IsValid() {
		prefix = append(prefix, d.Position.String())
	}

	if d.Function != "" {
		prefix = append(prefix, d.Function)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// MissingAssignments formats the message reported for a mapping function
// that leaves fields unassigned. Names keep their order.
func MissingAssignments(fields []string) string {
	return "missing assigned properties: " + strings.Join(fields, ", ")
}

// UnknownExemption formats the message reported for an exempted name that
// is not a field of the target type. suggestion may be empty.
func UnknownExemption(field, target, suggestion string) string {
	msg := fmt.Sprintf("unknown exempted property %q of %s", field, target)
	if suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", suggestion)
	}

	return msg
}

// NoTarget is the message for an annotated function that has no parameter
// of its result type and therefore is not checked.
func NoTarget() string {
	return "not checked: no parameter has the result type"
}
