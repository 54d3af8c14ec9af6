package completeness

import (
	"fmt"
	"go/constant"

	"mapcheck/internal/common"
	"mapcheck/internal/directive"
)

// Exemptions returns the field names a directive exempts from the check.
//
//   - no directive, or no arguments: none
//   - one array argument: its elements, which must all be strings
//   - one scalar argument: that value, which must be a string
//   - anything else fails with ErrUnsupportedExemption
func Exemptions(a *directive.Annotation) ([]string, error) {
	if a == nil || common.IsEmpty(a.Args) {
		return nil, nil
	}

	if !common.IsSingle(a.Args) {
		return nil, fmt.Errorf("%w: %d arguments, want a single string or []string", ErrUnsupportedExemption, len(a.Args))
	}

	arg := a.Args[0]
	switch arg.Kind {
	case directive.ArgArray:
		out := make([]string, 0, len(arg.Elems))
		for _, el := range arg.Elems {
			s, err := stringValue(el)
			if err != nil {
				return nil, err
			}

			out = append(out, s)
		}

		return out, nil

	case directive.ArgScalar:
		s, err := stringValue(arg)
		if err != nil {
			return nil, err
		}

		return []string{s}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExemption, arg)
	}
}

func stringValue(arg directive.Argument) (string, error) {
	if arg.Kind != directive.ArgScalar || arg.Value == nil || arg.Value.Kind() != constant.String {
		return "", fmt.Errorf("%w: %s is not a string", ErrMalformedExemption, arg)
	}

	return constant.StringVal(arg.Value), nil
}
