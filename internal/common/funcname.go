package common

import "go/ast"

// FuncName returns "Name" for functions and "Recv.Name" for methods,
// with pointer and type parameters stripped from the receiver.
func FuncName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}

	recv := fd.Recv.List[0].Type
	for {
		switch r := recv.(type) {
		case *ast.StarExpr:
			recv = r.X
		case *ast.ParenExpr:
			recv = r.X
		case *ast.IndexExpr:
			recv = r.X
		case *ast.IndexListExpr:
			recv = r.X
		case *ast.Ident:
			return r.Name + "." + fd.Name.Name
		default:
			return fd.Name.Name
		}
	}
}
