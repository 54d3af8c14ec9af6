// Package mapper is the runtime side of mapcheck: a small interface for
// mapping functions and an explicit registry of them.
//
// Mapping functions fill a pre-existing target from a source and return it.
// Annotate them with //mapcheck:complete so the analyzer verifies that
// every target field is assigned:
//
//	//mapcheck:complete("UpdatedAt")
//	func OrderToDTO(src *Order, dst *OrderDTO) *OrderDTO {
//		dst.ID = src.ID
//		return dst
//	}
//
//	func init() {
//		mapper.MustRegister(mapper.Default, "order", mapper.Func[*Order, *OrderDTO](OrderToDTO))
//	}
package mapper

// Mapper copies a source into a target and returns the target.
type Mapper[S, T any] interface {
	Map(src S, dst T) T
}

// Func adapts a plain function to Mapper.
type Func[S, T any] func(src S, dst T) T

// Map calls f.
func (f Func[S, T]) Map(src S, dst T) T {
	return f(src, dst)
}
