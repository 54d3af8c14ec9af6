package mapper

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type base struct {
	Coolio int
}

type source struct {
	base
	Foo     string
	Bar     int
	Grandpa any
}

type target struct {
	base
	Foo     string
	Bar     int
	Grandpa any
}

//mapcheck:complete("Grandpa")
func sourceToTarget(src source, dst *target) *target {
	dst.Coolio = src.Coolio
	dst.Foo = src.Foo
	dst.Bar = src.Bar
	return dst
}

type upper struct{}

//mapcheck:complete
func (upper) Map(src string, dst *target) *target {
	dst.base = base{Coolio: len(src)}
	dst.Foo = src
	dst.Bar = 0
	dst.Grandpa = nil
	return dst
}

func TestFunc_Map(t *testing.T) {
	var m Mapper[source, *target] = Func[source, *target](sourceToTarget)

	dst := &target{Grandpa: "kept"}
	got := m.Map(source{base: base{Coolio: 7}, Foo: "foo", Bar: 12, Grandpa: "dropped"}, dst)

	assert.Same(t, dst, got)
	assert.Equal(t, &target{base: base{Coolio: 7}, Foo: "foo", Bar: 12, Grandpa: "kept"}, got)
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, Register(r, "source", Mapper[source, *target](Func[source, *target](sourceToTarget))))
	require.NoError(t, Register[string, *target](r, "string", upper{}))

	m, ok := Lookup[source, *target](r)
	require.True(t, ok)
	assert.Equal(t, "x", m.Map(source{Foo: "x"}, &target{}).Foo)

	s, ok := Lookup[string, *target](r)
	require.True(t, ok)
	assert.Equal(t, 3, s.Map("abc", &target{}).Coolio)

	_, ok = Lookup[source, target](r)
	assert.False(t, ok)

	assert.Equal(t, 2, r.Len())
}

func TestRegistry_Duplicates(t *testing.T) {
	r := NewRegistry()
	MustRegister[string, *target](r, "string", upper{})

	err := Register[string, *target](r, "other", upper{})
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), `"string"`)

	err = Register(r, "string", Mapper[source, *target](Func[source, *target](sourceToTarget)))
	require.ErrorIs(t, err, ErrDuplicate)

	assert.Panics(t, func() { MustRegister[string, *target](r, "again", upper{}) })
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_NilMapper(t *testing.T) {
	r := NewRegistry()
	require.Error(t, Register[string, *target](r, "nil", nil))
	assert.Zero(t, r.Len())
}

func TestMap(t *testing.T) {
	r := NewRegistry()
	MustRegister[string, *target](r, "string", upper{})

	got, err := Map(r, "hello", &target{})
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Foo)

	_, err = Map(r, 42, &target{})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "int -> *mapper.target")
}

func TestRegistry_Entries(t *testing.T) {
	r := NewRegistry()
	MustRegister[string, *target](r, "string", upper{})
	MustRegister(r, "source", Mapper[source, *target](Func[source, *target](sourceToTarget)))

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "string", entries[0].Name)
	assert.Equal(t, "string: string -> *mapper.target", entries[0].String())
	assert.Equal(t, "source: mapper.source -> *mapper.target", entries[1].String())
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	r := NewRegistry()
	MustRegister[string, *target](r, "string", upper{})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			m, ok := Lookup[string, *target](r)
			assert.True(t, ok)
			assert.Equal(t, "go", m.Map("go", &target{}).Foo)
		}()
	}

	wg.Wait()
}
