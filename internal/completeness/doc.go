// Package completeness checks that mapping functions assign every field
// of the value they populate.
//
// A mapping function copies data from a source into a pre-existing target
// and returns that target:
//
//	//mapcheck:complete("Audit")
//	func ToDTO(src *store.Order, dst *dto.Order) *dto.Order {
//		dst.ID = src.ID
//		dst.Status = string(src.Status)
//		return dst
//	}
//
// The check runs in two stages. Select keeps the declarations whose doc
// comment carries the directive, by text only. CheckFunc then resolves the
// target parameter (the last parameter whose type is identical to the
// result type), reads the exempted names from the directive arguments,
// enumerates the target's fields including promoted ones, and removes every
// field assigned by a top-level `target.Field = ...` statement. What is
// left is reported.
//
// Only top-level assignment statements count; assignments inside if, for,
// switch or nested blocks, through other variables, or via composite
// literals are not seen.
package completeness
