package custom

import "time"

type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Target struct {
	Audit
	ID   int
	Name string
}

//dto:mapped
func ToTarget(id int, dst *Target) *Target { // want "missing assigned properties: Name"
	dst.ID = id
	return dst
}

//mapcheck:complete
func DefaultDirectiveIsIgnored(dst *Target) *Target {
	return dst
}
