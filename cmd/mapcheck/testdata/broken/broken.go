package broken

type Target struct {
	Name string
}

//mapcheck:complete(Name)
func Fill(dst *Target) *Target {
	return dst
}
