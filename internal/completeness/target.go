package completeness

import (
	"go/types"
)

// Target is the parameter a mapping function populates and returns.
type Target struct {
	Var   *types.Var
	Name  string
	Index int // position in the parameter list
}

// ReturnType returns the type a mapping function hands back: its only
// result, or the first of two results when the second is error.
func ReturnType(sig *types.Signature) (types.Type, bool) {
	res := sig.Results()
	switch res.Len() {
	case 1:
		return res.At(0).Type(), true
	case 2:
		if types.Identical(res.At(1).Type(), errorType) {
			return res.At(0).Type(), true
		}
	}

	return nil, false
}

var errorType = types.Universe.Lookup("error").Type()

// ResolveTarget returns the last parameter whose type is identical to the
// return type. ok is false when there is none.
func ResolveTarget(sig *types.Signature) (target Target, ok bool) {
	ret, ok := ReturnType(sig)
	if !ok {
		return Target{}, false
	}

	params := sig.Params()
	for i := params.Len() - 1; i >= 0; i-- {
		p := params.At(i)
		if types.Identical(p.Type(), ret) {
			return Target{Var: p, Name: p.Name(), Index: i}, true
		}
	}

	return Target{}, false
}
