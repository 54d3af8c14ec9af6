package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddBySeverity(t *testing.T) {
	var d Diagnostics
	d.AddError(CodeInvalidConfig, "bad")
	d.AddWarning(CodeMissingAssignments, "missing")
	d.AddInfo("note", "fyi")

	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddError(CodeInvalidConfig, "first")
	d.AddError(CodeInvalidConfig, "second")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[invalid_config] first; [invalid_config] second", err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning(CodeMissingAssignments, "a")
	b.AddWarning(CodeMissingAssignments, "b")
	b.AddError(CodeInvalidExemption, "c")

	a.Merge(b)
	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Errors, 1)
}

func TestDiagnostics_AllSortedByPosition(t *testing.T) {
	var d Diagnostics
	d.Add(Diagnostic{Severity: DiagnosticWarning, Message: "b2", Position: token.Position{Filename: "b.go", Line: 2, Column: 1}})
	d.Add(Diagnostic{Severity: DiagnosticError, Message: "a9", Position: token.Position{Filename: "a.go", Line: 9, Column: 1}})
	d.Add(Diagnostic{Severity: DiagnosticWarning, Message: "a3", Position: token.Position{Filename: "a.go", Line: 3, Column: 6}})
	d.Add(Diagnostic{Severity: DiagnosticInfo, Message: "none"})

	var msgs []string
	for _, diag := range d.All() {
		msgs = append(msgs, diag.Message)
	}

	assert.Equal(t, []string{"none", "a3", "a9", "b2"}, msgs)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:     CodeMissingAssignments,
		Message:  "missing assigned properties: Foo",
		Function: "Map",
		Position: token.Position{Filename: "m.go", Line: 4, Column: 6},
	}
	assert.Equal(t, "m.go:4:6 Map: [missing_assignments] missing assigned properties: Foo", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "missing assigned properties: Coolio, Foo, Bar, Grandpa",
		MissingAssignments([]string{"Coolio", "Foo", "Bar", "Grandpa"}))

	assert.Equal(t, `unknown exempted property "Grandpaa" of p.Target; did you mean "Grandpa"?`,
		UnknownExemption("Grandpaa", "p.Target", "Grandpa"))
	assert.Equal(t, `unknown exempted property "Zzz" of p.Target`,
		UnknownExemption("Zzz", "p.Target", ""))
}
