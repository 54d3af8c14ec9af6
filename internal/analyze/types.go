package analyze

import (
	"go/types"
	"strings"

	"mapcheck/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/app/dto"
	Name    string // e.g., "User"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the TypeID qualified by the package alias only (e.g. "dto.User").
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// IsZero reports whether the TypeID is empty (unnamed type).
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// Matches reports whether s names this type, either fully qualified
// ("example.com/app/dto.User"), by package suffix ("dto.User") or by
// name only ("User").
func (t TypeID) Matches(s string) bool {
	if t.IsZero() || s == "" {
		return false
	}

	lastDot := strings.LastIndex(s, ".")
	if lastDot < 0 {
		return s == t.Name
	}

	pkgStr, name := s[:lastDot], s[lastDot+1:]
	if name != t.Name || pkgStr == "" {
		return false
	}

	return t.PkgPath == pkgStr || strings.HasSuffix(t.PkgPath, "/"+pkgStr)
}

// TypeIDOf returns the TypeID of t after dereferencing a single pointer.
// Unnamed types yield the zero TypeID.
func TypeIDOf(t types.Type) TypeID {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	named, ok := t.(*types.Named)
	if !ok {
		return TypeID{}
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return TypeID{Name: obj.Name()}
	}

	return TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
}

// Member describes a struct field reachable from a type.
type Member struct {
	Name          string     // Go field name
	Field         *types.Var // The field object
	DeclaringType TypeID     // Type whose struct declares the field (zero for unnamed structs)
	Path          []string   // Embedded field names the member is promoted through, outermost first
	Index         int        // Field index in the declaring struct
	Exported      bool       // Whether the field is exported
	Embedded      bool       // Whether the field is embedded (anonymous)
	Expanded      bool       // Embedded field whose struct members were enumerated
}

// CoveredBy reports whether assigning (or exempting) any of names accounts
// for this member: either the member itself or one of the embedded fields
// it is promoted through.
func (m *Member) CoveredBy(names map[string]struct{}) bool {
	if _, ok := names[m.Name]; ok {
		return true
	}

	for _, p := range m.Path {
		if _, ok := names[p]; ok {
			return true
		}
	}

	return false
}

// accessibleFrom reports whether the field can be assigned from code in pkg.
func (m *Member) accessibleFrom(pkg *types.Package) bool {
	if m.Exported || pkg == nil {
		return true
	}

	fp := m.Field.Pkg()

	return fp != nil && fp.Path() == pkg.Path()
}

// key identifies the member by its full embedding path.
func (m *Member) key() string {
	return strings.Join(append(append([]string{}, m.Path...), m.Name), ".")
}
