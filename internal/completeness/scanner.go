package completeness

import (
	"go/ast"
	"go/token"

	"mapcheck/internal/common"
)

// AssignedSet is the set of field names assigned on the target, in the
// order they were first seen.
type AssignedSet struct {
	names common.OrderedSet
}

// Has reports whether name was assigned.
func (s *AssignedSet) Has(name string) bool {
	return s.names.Has(name)
}

// Len returns the number of distinct assigned names.
func (s *AssignedSet) Len() int {
	return s.names.Len()
}

// Names returns the assigned names in order.
func (s *AssignedSet) Names() []string {
	return s.names.Items()
}

// ScanAssignments collects the fields assigned through the variable named
// target by the top-level statements of body. A statement counts when it
// is an assignment (=, +=, ...; not :=) and one of its left-hand sides is
// target.Field. Nested blocks are not entered.
func ScanAssignments(body *ast.BlockStmt, target string) *AssignedSet {
	set := &AssignedSet{}
	if body == nil || target == "" || target == "_" {
		return set
	}

	for _, stmt := range body.List {
		assign, ok := stmt.(*ast.AssignStmt)
		if !ok || assign.Tok == token.DEFINE {
			continue
		}

		for _, lhs := range assign.Lhs {
			if name, ok := fieldOf(lhs, target); ok {
				set.names.Add(name)
			}
		}
	}

	return set
}

// fieldOf matches expr against ident.Field with ident spelled target.
func fieldOf(expr ast.Expr, target string) (string, bool) {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}

	id, ok := sel.X.(*ast.Ident)
	if !ok || id.Name != target {
		return "", false
	}

	return sel.Sel.Name, true
}
