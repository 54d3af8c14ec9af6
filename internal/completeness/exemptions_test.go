package completeness

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapcheck/internal/directive"
	"mapcheck/internal/srctest"
)

func annotation(t *testing.T, args string) *directive.Annotation {
	t.Helper()

	parsed, err := directive.ParseArgs(args)
	require.NoError(t, err)

	return &directive.Annotation{Name: directive.Default, Args: parsed}
}

func TestExemptions(t *testing.T) {
	tests := []struct {
		args string
		want []string
	}{
		{"", nil},
		{"()", nil},
		{`("Grandpa")`, []string{"Grandpa"}},
		{`("Grandpa", "Foo")`, []string{"Grandpa", "Foo"}},
		{`([]string{"A", "B"})`, []string{"A", "B"}},
		{`([]string{})`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			got, err := Exemptions(annotation(t, tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExemptions_NilAnnotation(t *testing.T) {
	got, err := Exemptions(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExemptions_Errors(t *testing.T) {
	tests := []struct {
		args string
		want error
	}{
		{`(Grandpa)`, ErrUnsupportedExemption},
		{`([]string{"A"}, "B")`, ErrUnsupportedExemption},
		{`([]string{"A"}, []string{"B"})`, ErrUnsupportedExemption},
		{`(map[string]int{})`, ErrUnsupportedExemption},
		{`(1)`, ErrMalformedExemption},
		{`("A", 2)`, ErrMalformedExemption},
		{`([]string{"A", B})`, ErrMalformedExemption},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			_, err := Exemptions(annotation(t, tt.args))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

const targetSrc = `package p

type T struct{ A int }

type Alias = T

func One(a T, b *T) *T { return b }
func Two(a, b T) T { return a }
func WithErr(in string, out *T) (*T, error) { return out, nil }
func Pair(a *T) (*T, *T) { return a, a }
func None() *T { return nil }
func Mismatch(a T) *T { return &a }
func Aliased(a Alias) T { return a }
func Variadic(a ...T) []T { return a }
`

func signature(t *testing.T, pkg *srctest.Package, name string) *types.Signature {
	t.Helper()

	obj := pkg.Types.Scope().Lookup(name)
	require.NotNil(t, obj)

	return obj.Type().(*types.Signature)
}

func TestResolveTarget(t *testing.T) {
	pkg := srctest.Load(t, targetSrc)

	tests := []struct {
		fn    string
		name  string
		index int
		ok    bool
	}{
		{"One", "b", 1, true},
		{"Two", "b", 1, true},
		{"WithErr", "out", 1, true},
		{"Pair", "", 0, false},
		{"None", "", 0, false},
		{"Mismatch", "", 0, false},
		{"Aliased", "a", 0, true},
		{"Variadic", "a", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			target, ok := ResolveTarget(signature(t, pkg, tt.fn))
			require.Equal(t, tt.ok, ok)

			if ok {
				assert.Equal(t, tt.name, target.Name)
				assert.Equal(t, tt.index, target.Index)
			}
		})
	}
}

func parseBody(t *testing.T, body string) *ast.BlockStmt {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "body.go", "package p\nfunc f() {\n"+body+"\n}\n", 0)
	require.NoError(t, err)

	return f.Decls[0].(*ast.FuncDecl).Body
}

func TestScanAssignments(t *testing.T) {
	body := parseBody(t, `
	dst.A = 1
	dst.B, other.C = 2, 3
	dst.C += 4
	dst.A = 5
	x := dst
	x.D = 6
	dst.E.F = 7
	(dst).G = 8
	if true {
		dst.H = 9
	}
	for range 3 {
		dst.I = 10
	}
	dst.J++
	`)

	set := ScanAssignments(body, "dst")
	assert.Equal(t, []string{"A", "B", "C"}, set.Names())
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has("B"))
	assert.False(t, set.Has("D"))
	assert.False(t, set.Has("E"))
	assert.False(t, set.Has("H"))
}

func TestScanAssignments_NoTarget(t *testing.T) {
	body := parseBody(t, "_.A = 1")

	assert.Zero(t, ScanAssignments(body, "_").Len())
	assert.Zero(t, ScanAssignments(body, "").Len())
	assert.Zero(t, ScanAssignments(nil, "dst").Len())
}
