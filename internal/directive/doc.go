// Package directive recognizes the comment directive that marks mapping
// functions and parses its arguments.
//
// A mapping function opts into completeness checking with a line in its
// doc comment:
//
//	//mapcheck:complete
//	//mapcheck:complete("CreatedAt")
//	//mapcheck:complete("CreatedAt", "UpdatedAt")
//	//mapcheck:complete([]string{"CreatedAt", "UpdatedAt"})
//
// Recognition (HasMarker) is purely textual and cheap. Argument parsing
// (Parse) turns the parenthesised list into Arguments tagged as Scalar or
// Array; anything else is tagged Unsupported and left for the caller to
// reject. Like a variadic ...string parameter, two or more scalar arguments
// are collapsed into a single Array argument.
package directive
