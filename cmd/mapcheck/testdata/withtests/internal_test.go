package withtests

//mapcheck:complete
func fillA(dst *Target) *Target {
	dst.A = 1
	return dst
}
