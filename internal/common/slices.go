package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// OrderedSet is an insertion-ordered set of strings.
// The zero value is ready to use.
type OrderedSet struct {
	items []string
	index map[string]struct{}
}

// Add inserts s if it is not present yet. It reports whether s was added.
func (o *OrderedSet) Add(s string) bool {
	if o.index == nil {
		o.index = make(map[string]struct{})
	}

	if _, ok := o.index[s]; ok {
		return false
	}

	o.index[s] = struct{}{}
	o.items = append(o.items, s)

	return true
}

// Has reports whether s is in the set.
func (o *OrderedSet) Has(s string) bool {
	_, ok := o.index[s]
	return ok
}

// Len returns the number of elements.
func (o *OrderedSet) Len() int {
	return len(o.items)
}

// Items returns a copy of the elements in insertion order.
func (o *OrderedSet) Items() []string {
	return append([]string(nil), o.items...)
}
