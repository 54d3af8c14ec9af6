package common

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet(t *testing.T) {
	var s OrderedSet
	assert.False(t, s.Has("a"))
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Add("b"))
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("b"))

	assert.True(t, s.Has("a"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"b", "a"}, s.Items())

	items := s.Items()
	items[0] = "changed"
	assert.Equal(t, []string{"b", "a"}, s.Items())
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]int{1, 2}))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "dto", PkgAlias("example.com/app/dto"))
	assert.Equal(t, "", PkgAlias(""))
}

func TestFuncName(t *testing.T) {
	src := `package p

type T struct{}
type G[K any] struct{}

func Free() {}
func (T) Value() {}
func (t *T) Pointer() {}
func (g *G[K]) Generic() {}
`
	file, err := parser.ParseFile(token.NewFileSet(), "p.go", src, 0)
	require.NoError(t, err)

	var names []string
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			names = append(names, FuncName(fd))
		}
	}

	assert.Equal(t, []string{"Free", "T.Value", "T.Pointer", "G.Generic"}, names)
}
