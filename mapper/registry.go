package mapper

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrDuplicate is returned when a mapper is registered twice for the
	// same source and target types, or under a name already in use.
	ErrDuplicate = errors.New("mapper already registered")

	// ErrNotFound is returned when no mapper is registered for a type pair.
	ErrNotFound = errors.New("mapper not registered")
)

// Default is the process-wide registry.
var Default = NewRegistry()

// Entry describes one registered mapper.
type Entry struct {
	Name   string
	Source reflect.Type
	Target reflect.Type

	mapper any
}

// String returns "name: Source -> Target".
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s -> %s", e.Name, e.Source, e.Target)
}

type pairKey struct {
	src, dst reflect.Type
}

// Registry holds mappers keyed by source and target type.
// Registration normally happens from init functions; lookups are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byPair  map[pairKey]int
	byName  map[string]int
	entries []Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byPair: make(map[pairKey]int),
		byName: make(map[string]int),
	}
}

// Register adds m under name. Names and type pairs are unique.
func Register[S, T any](r *Registry, name string, m Mapper[S, T]) error {
	if m == nil {
		return fmt.Errorf("register %q: nil mapper", name)
	}

	key := pairKey{src: reflect.TypeFor[S](), dst: reflect.TypeFor[T]()}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.byPair[key]; ok {
		return fmt.Errorf("%w: %s -> %s as %q", ErrDuplicate, key.src, key.dst, r.entries[i].Name)
	}

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicate, name)
	}

	r.byPair[key] = len(r.entries)
	r.byName[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Source: key.src, Target: key.dst, mapper: m})

	return nil
}

// MustRegister is Register that panics on error.
func MustRegister[S, T any](r *Registry, name string, m Mapper[S, T]) {
	if err := Register(r, name, m); err != nil {
		panic(err)
	}
}

// Lookup returns the mapper registered for S and T.
func Lookup[S, T any](r *Registry) (Mapper[S, T], bool) {
	key := pairKey{src: reflect.TypeFor[S](), dst: reflect.TypeFor[T]()}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byPair[key]
	if !ok {
		return nil, false
	}

	m, ok := r.entries[i].mapper.(Mapper[S, T])

	return m, ok
}

// Map looks up the mapper for S and T and applies it.
func Map[S, T any](r *Registry, src S, dst T) (T, error) {
	m, ok := Lookup[S, T](r)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s -> %s", ErrNotFound, reflect.TypeFor[S](), reflect.TypeFor[T]())
	}

	return m.Map(src, dst), nil
}

// Entries returns the registered mappers in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Entry(nil), r.entries...)
}

// Len returns the number of registered mappers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
