// Package srctest type-checks Go source snippets for tests.
package srctest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"mapcheck/internal/common"
)

// Package is a parsed and type-checked single-file package.
type Package struct {
	Fset  *token.FileSet
	File  *ast.File
	Info  *types.Info
	Types *types.Package
}

// Load parses and type-checks src as the file "src.go" of a package.
// The test fails on any parse or type error.
func Load(t testing.TB, src string) *Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return &Package{Fset: fset, File: file, Info: info, Types: pkg}
}

// Type returns the type declared as name at package scope.
func (p *Package) Type(t testing.TB, name string) types.Type {
	t.Helper()

	obj := p.Types.Scope().Lookup(name)
	require.NotNil(t, obj, "type %s not declared", name)

	return obj.Type()
}

// Func returns the function declaration named name. Methods are looked up
// as "Recv.Name".
func (p *Package) Func(t testing.TB, name string) *ast.FuncDecl {
	t.Helper()

	for _, decl := range p.File.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}

		if common.FuncName(fd) == name {
			return fd
		}
	}

	require.FailNow(t, "function not declared", name)

	return nil
}
