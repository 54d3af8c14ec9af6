package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"strings"
)

// Default is the directive name marking mapping functions.
const Default = "mapcheck:complete"

// ErrSyntax is returned when the text following the directive name is not
// a Go argument list.
var ErrSyntax = errors.New("invalid directive syntax")

//go:generate go tool stringer -type=ArgKind -trimprefix=Arg -output=argkind_string.go

// ArgKind tags the shape of a directive argument.
type ArgKind int

const (
	ArgUnsupported ArgKind = iota // anything that is neither a literal nor a slice literal
	ArgScalar                     // basic literal: "A", 1, 'x'
	ArgArray                      // slice or array literal: []string{"A", "B"}
)

// Argument is one argument of a directive.
type Argument struct {
	Kind  ArgKind
	Value constant.Value // set for ArgScalar
	Elems []Argument     // set for ArgArray
	Text  string         // source text of the argument
}

// String returns the source text of the argument.
func (a Argument) String() string {
	return a.Text
}

// Annotation is a directive found in a doc comment.
type Annotation struct {
	Name string
	Pos  token.Pos // position of the comment carrying the directive
	Args []Argument
}

// HasMarker reports whether doc contains the directive name, with or
// without arguments. It does not look at the arguments.
func HasMarker(doc *ast.CommentGroup, name string) bool {
	_, _, ok := find(doc, name)
	return ok
}

// Parse returns the first directive called name in doc with its parsed
// arguments. It returns nil and no error when doc has no such directive.
func Parse(doc *ast.CommentGroup, name string) (*Annotation, error) {
	c, rest, ok := find(doc, name)
	if !ok {
		return nil, nil
	}

	args, err := ParseArgs(rest)
	if err != nil {
		return nil, fmt.Errorf("//%s%s: %w", name, rest, err)
	}

	return &Annotation{Name: name, Pos: c.Slash, Args: args}, nil
}

// find locates the directive comment and returns the text after its name.
func find(doc *ast.CommentGroup, name string) (*ast.Comment, string, bool) {
	if doc == nil || name == "" {
		return nil, "", false
	}

	prefix := "//" + name
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, prefix) {
			continue
		}

		rest := c.Text[len(prefix):]
		if rest == "" || rest[0] == '(' || rest[0] == ' ' || rest[0] == '\t' {
			return c, rest, true
		}
	}

	return nil, "", false
}

// ParseArgs parses the text following a directive name. Empty (or blank)
// text and "()" yield no arguments; otherwise the text must be a
// parenthesised Go argument list.
func ParseArgs(text string) ([]Argument, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	if !strings.HasPrefix(text, "(") {
		return nil, fmt.Errorf("%w: expected '(' after directive name", ErrSyntax)
	}

	expr, err := parser.ParseExpr("_" + text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return nil, fmt.Errorf("%w: not an argument list", ErrSyntax)
	}

	if id, ok := call.Fun.(*ast.Ident); !ok || id.Name != "_" {
		return nil, fmt.Errorf("%w: unexpected text after argument list", ErrSyntax)
	}

	if call.Ellipsis.IsValid() {
		return nil, fmt.Errorf("%w: '...' is not allowed", ErrSyntax)
	}

	src := "_" + text
	args := make([]Argument, 0, len(call.Args))
	for _, e := range call.Args {
		args = append(args, toArgument(e, src))
	}

	return collapseScalars(args), nil
}

// toArgument converts an argument expression. src is the text the
// expression was parsed from (positions are 1-based offsets into it).
func toArgument(e ast.Expr, src string) Argument {
	arg := Argument{Kind: ArgUnsupported, Text: exprText(e, src)}

	switch x := e.(type) {
	case *ast.BasicLit:
		v := constant.MakeFromLiteral(x.Value, x.Kind, 0)
		if v.Kind() == constant.Unknown {
			return arg
		}

		arg.Kind = ArgScalar
		arg.Value = v

	case *ast.CompositeLit:
		if _, ok := x.Type.(*ast.ArrayType); !ok {
			return arg
		}

		arg.Kind = ArgArray
		arg.Elems = make([]Argument, 0, len(x.Elts))
		for _, el := range x.Elts {
			arg.Elems = append(arg.Elems, toArgument(el, src))
		}

	case *ast.ParenExpr:
		inner := toArgument(x.X, src)
		inner.Text = arg.Text

		return inner
	}

	return arg
}

// collapseScalars folds two or more scalar arguments into one array
// argument, the way a variadic parameter receives them.
func collapseScalars(args []Argument) []Argument {
	if len(args) < 2 {
		return args
	}

	texts := make([]string, 0, len(args))
	for _, a := range args {
		if a.Kind != ArgScalar {
			return args
		}

		texts = append(texts, a.Text)
	}

	return []Argument{{
		Kind:  ArgArray,
		Elems: args,
		Text:  "{" + strings.Join(texts, ", ") + "}",
	}}
}

func exprText(e ast.Expr, src string) string {
	start, end := int(e.Pos())-1, int(e.End())-1
	if start < 0 || end > len(src) || start > end {
		return ""
	}

	return src[start:end]
}
