// Package analyze provides package loading and struct member enumeration.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to load the packages under check, and walks struct types through
// their embedded fields to list every field a mapping has to assign.
//
// Key types:
//   - TypeID: package import path + type name
//   - Member: a struct field, tagged with the type declaring it and the
//     chain of embedded fields it is promoted through
//   - Loader: go/packages loader used by the command line tool
package analyze
