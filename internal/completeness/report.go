package completeness

import (
	"go/token"
	"go/types"

	"mapcheck/internal/common"
	"mapcheck/internal/diagnostic"
)

// TargetTypeName returns the target type qualified by its package name,
// or the type literal for unnamed types.
func (r *FuncResult) TargetTypeName() string {
	if !r.TargetType.IsZero() {
		return r.TargetType.Short()
	}

	return types.TypeString(r.Target.Var.Type(), func(p *types.Package) string { return p.Name() })
}

// Diagnostics converts the report into diagnostics positioned at the
// function names: a warning per function with missing fields, a warning
// per unknown exemption and an info per annotated function that was not
// checked for lack of a target.
func (r *Report) Diagnostics(fset *token.FileSet) diagnostic.Diagnostics {
	var out diagnostic.Diagnostics

	for _, decl := range r.Skipped {
		out.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticInfo,
			Code:     diagnostic.CodeNoTarget,
			Message:  diagnostic.NoTarget(),
			Position: fset.Position(decl.Name.Pos()),
			Function: common.FuncName(decl),
		})
	}

	for _, res := range r.Checked {
		pos := fset.Position(res.Decl.Name.Pos())
		target := res.TargetTypeName()

		if len(res.Missing) > 0 {
			out.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     diagnostic.CodeMissingAssignments,
				Message:  diagnostic.MissingAssignments(res.Missing),
				Position: pos,
				Function: res.Name,
				Target:   target,
				Fields:   res.Missing,
			})
		}

		for _, u := range res.Unknown {
			out.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     diagnostic.CodeUnknownExemption,
				Message:  diagnostic.UnknownExemption(u.Name, target, u.Suggestion),
				Position: pos,
				Function: res.Name,
				Target:   target,
				Fields:   []string{u.Name},
			})
		}
	}

	return out
}
