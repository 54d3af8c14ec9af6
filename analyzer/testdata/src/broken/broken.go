package broken

type Target struct {
	Foo string
	Bar int
}

//mapcheck:complete(Foo)
func Unsupported(dst *Target) *Target {
	dst.Bar = 1
	return dst
}

//mapcheck:complete
func Reported(dst *Target) *Target {
	dst.Foo = "x"
	return dst
}
