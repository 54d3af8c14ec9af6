package basic

type Base struct {
	Coolio int
}

type Target struct {
	Base
	Foo     string
	Bar     int
	Grandpa any
}

type Source struct {
	Foo string
	Bar int
}

//mapcheck:complete("Grandpa")
func Scenario(src Source, dst *Target) *Target { // want "missing assigned properties: Coolio, Bar"
	dst.Foo = src.Foo
	return dst
}

//mapcheck:complete("Grandpa")
func Complete(src Source, dst *Target) *Target {
	dst.Coolio = 1
	dst.Foo = src.Foo
	dst.Bar = src.Bar
	return dst
}

//mapcheck:complete
func Nothing(src Source, dst *Target) *Target { // want "missing assigned properties: Coolio, Foo, Bar, Grandpa"
	return dst
}

//mapcheck:complete([]string{"Coolio", "Grandpa"})
func Conditional(src Source, dst *Target) *Target { // want "missing assigned properties: Bar"
	dst.Foo = src.Foo
	if src.Bar > 0 {
		dst.Bar = src.Bar
	}
	return dst
}

//mapcheck:complete("Base", "Grandpa")
func EmbeddedExempt(src Source, dst *Target) *Target {
	dst.Foo = src.Foo
	dst.Bar = src.Bar
	return dst
}

//mapcheck:complete("Foo", "Bar", "Grandpa")
func EmbeddedAssigned(dst *Target) *Target {
	dst.Base = Base{Coolio: 1}
	return dst
}

//mapcheck:complete("Fo", "Coolio", "Grandpa")
func Typo(src Source, dst *Target) *Target { // want `unknown exempted property "Fo" of basic\.Target; did you mean "Foo"\?`
	dst.Foo = src.Foo
	dst.Bar = src.Bar
	return dst
}

//mapcheck:complete("Coolio", "Grandpa")
func WithError(src Source, dst *Target) (*Target, error) { // want "missing assigned properties: Bar"
	dst.Foo = src.Foo
	return dst, nil
}

//mapcheck:complete
func NoTarget(src Source) int {
	return src.Bar
}

func Unmarked(src Source, dst *Target) *Target {
	return dst
}

// Mapper maps sources onto targets.
type Mapper struct{}

// Map copies src into dst.
//
//mapcheck:complete("Coolio", "Grandpa")
func (Mapper) Map(src Source, dst *Target) *Target { // want "missing assigned properties: Foo"
	dst.Bar = src.Bar
	return dst
}
