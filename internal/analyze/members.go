package analyze

import (
	"go/types"
	"strings"
)

// frame is one struct on the embedding walk stack.
type frame struct {
	st    *types.Struct
	owner TypeID
	obj   *types.TypeName // nil for unnamed structs
	path  []string
	next  int          // next field to inspect for embedding
	walk  map[int]bool // indices of embedded fields that were descended into
}

// structOf returns the struct underlying t after dereferencing a single
// pointer, together with its identity. It returns nil for non-struct types.
func structOf(t types.Type) (*types.Struct, TypeID, *types.TypeName) {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return nil, TypeID{}, nil
	}

	var obj *types.TypeName
	if named, ok := t.(*types.Named); ok {
		obj = named.Origin().Obj()
	}

	return st, TypeIDOf(t), obj
}

// Members returns every field of t, including the ones promoted through
// embedded structs. Members of an embedded struct come before the fields
// of the struct embedding it, so the deepest ancestor is listed first and
// t's own fields last. Embedded fields are visited in declaration order.
//
// A named type already on the current embedding chain is not entered again
// (type Node struct{ *Node }); the embedded field is then reported as a
// plain member. Same-named fields at different levels are all returned.
//
// t may be a pointer to a struct. Non-struct types have no members.
func Members(t types.Type) []Member {
	root, id, obj := structOf(t)
	if root == nil {
		return nil
	}

	onPath := map[*types.TypeName]bool{}
	if obj != nil {
		onPath[obj] = true
	}

	var out []Member

	stack := []*frame{{st: root, owner: id, obj: obj, walk: map[int]bool{}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if child := top.descend(onPath); child != nil {
			stack = append(stack, child)
			continue
		}

		for i := range top.st.NumFields() {
			f := top.st.Field(i)
			out = append(out, Member{
				Name:          f.Name(),
				Field:         f,
				DeclaringType: top.owner,
				Path:          top.path,
				Index:         i,
				Exported:      f.Exported(),
				Embedded:      f.Embedded(),
				Expanded:      top.walk[i],
			})
		}

		if top.obj != nil {
			delete(onPath, top.obj)
		}

		stack = stack[:len(stack)-1]
	}

	return out
}

// descend advances the frame cursor to the next embedded struct field that
// can be entered and returns the frame for it, or nil once all fields were seen.
func (f *frame) descend(onPath map[*types.TypeName]bool) *frame {
	for f.next < f.st.NumFields() {
		field := f.st.Field(f.next)
		idx := f.next
		f.next++

		if !field.Embedded() {
			continue
		}

		st, owner, obj := structOf(field.Type())
		if st == nil || (obj != nil && onPath[obj]) {
			continue
		}

		if obj != nil {
			onPath[obj] = true
		}

		f.walk[idx] = true

		path := make([]string, 0, len(f.path)+1)
		path = append(path, f.path...)
		path = append(path, field.Name())

		return &frame{st: st, owner: owner, obj: obj, path: path, walk: map[int]bool{}}
	}

	return nil
}

// Properties filters members down to the checkable ones as seen from code
// in pkg: blank fields are dropped, unexported fields of other packages are
// dropped, and an embedded struct field is dropped when at least one of the
// members promoted through it is kept (those members are checked instead).
// A nil pkg keeps every non-blank field.
func Properties(members []Member, pkg *types.Package) []Member {
	kept := make([]bool, len(members))
	below := map[string]int{}

	for i := range members {
		m := &members[i]
		if m.Name == "_" || !m.accessibleFrom(pkg) {
			continue
		}

		if m.Expanded && below[m.key()] > 0 {
			continue
		}

		kept[i] = true

		for j := range m.Path {
			below[strings.Join(m.Path[:j+1], ".")]++
		}
	}

	out := make([]Member, 0, len(members))
	for i := range members {
		if kept[i] {
			out = append(out, members[i])
		}
	}

	return out
}

// Names returns the member names in order.
func Names(members []Member) []string {
	out := make([]string, len(members))
	for i := range members {
		out[i] = members[i].Name
	}

	return out
}
