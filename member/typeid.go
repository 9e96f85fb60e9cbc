package member

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "mirror/member"
	Name    string // e.g., "Field"
}

// TypeIDOf returns the identifier of t, looking through one pointer.
// Unnamed types are identified by their type string.
func TypeIDOf(t reflect.Type) TypeID {
	t = deref(t)
	if t == nil {
		return TypeID{}
	}

	if t.Name() == "" {
		return TypeID{Name: t.String()}
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeRegistry maps type identifiers to runtime types, so that types can be
// referred to by name in profiles and source directives.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[TypeID]reflect.Type
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[TypeID]reflect.Type)}
}

// Register adds t (pointer stripped) under its TypeID.
func (r *TypeRegistry) Register(t reflect.Type) (TypeID, error) {
	t = deref(t)
	if t == nil {
		return TypeID{}, fmt.Errorf("cannot register nil type")
	}

	id := TypeIDOf(t)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.types[id]; ok && existing != t {
		return id, fmt.Errorf("type %s already registered as a different type", id)
	}

	r.types[id] = t

	return id, nil
}

// RegisterType registers T with r.
func RegisterType[T any](r *TypeRegistry) (TypeID, error) {
	return r.Register(reflect.TypeFor[T]())
}

// Lookup returns the type registered under id.
func (r *TypeRegistry) Lookup(id TypeID) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[id]

	return t, ok
}

// LookupName resolves the "pkgpath.Name" form produced by TypeID.String.
func (r *TypeRegistry) LookupName(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, t := range r.types {
		if id.String() == name {
			return t, true
		}
	}

	return nil, false
}

// IDs returns the registered identifiers in string order.
func (r *TypeRegistry) IDs() []TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TypeID, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b TypeID) int {
		return cmp.Compare(a.String(), b.String())
	})

	return ids
}
