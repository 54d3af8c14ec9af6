package withtests

type Target struct {
	A int
	B int
}

//mapcheck:complete
func Fill(dst *Target) *Target {
	dst.A = 1
	dst.B = 2
	return dst
}
