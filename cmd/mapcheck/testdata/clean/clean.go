package clean

type Target struct {
	Name  string
	Count int
}

//mapcheck:complete("Count")
func Fill(name string, dst *Target) *Target {
	dst.Name = name
	return dst
}

//mapcheck:complete
func Count(dst Target) int {
	return dst.Count
}
