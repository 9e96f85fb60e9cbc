// Package annotation attaches metadata to methods and finds it again
// through embedding.
//
// Go has no method annotations, so they are registered at run time,
// either in code with Annotate or from //mirror: comment directives loaded
// from source with LoadDirectives and Bind.
package annotation

import (
	"reflect"
	"slices"
	"sync"

	"mirror/member"
)

type key struct {
	typ    reflect.Type
	method string
}

// Registry maps (type, method) pairs to annotation values.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[key][]any
}

// Default is the process-wide registry.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[key][]any)}
}

// Annotate attaches a to the method of t (or of the type t points to).
func (r *Registry) Annotate(t reflect.Type, method string, a any) {
	if t == nil || a == nil {
		return
	}

	k := key{typ: base(t), method: method}

	r.mu.Lock()
	r.entries[k] = append(r.entries[k], a)
	r.mu.Unlock()
}

// Annotations returns the annotations attached to the method of t, in
// registration order.
func (r *Registry) Annotations(t reflect.Type, method string) []any {
	if t == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries[key{typ: base(t), method: method}])
}

// Annotate attaches a to the method of t in the default registry.
func Annotate(t reflect.Type, method string, a any) { Default.Annotate(t, method, a) }

// Lookup returns the first annotation of type A attached to the method of t.
func Lookup[A any](r *Registry, t reflect.Type, method string) (A, bool) {
	for _, a := range r.Annotations(t, method) {
		if v, ok := a.(A); ok {
			return v, true
		}
	}

	var zero A

	return zero, false
}

func base(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}

// Locate finds an annotation of type A for m in the default registry.
func Locate[A any](m *member.Method) (A, bool) {
	return LocateIn[A](Default, m)
}

// LocateIn searches the declaring type of m, then every embedded type
// depth-first, for a method equivalent to m carrying an annotation of
// type A. The first one found wins.
func LocateIn[A any](r *Registry, m *member.Method) (A, bool) {
	a, ok := r.locate(m, func(a any) bool {
		_, ok := a.(A)
		return ok
	})
	if !ok {
		var zero A
		return zero, false
	}

	return a.(A), true
}

func (r *Registry) locate(m *member.Method, keep func(any) bool) (any, bool) {
	if m == nil {
		return nil, false
	}

	seen := make(map[reflect.Type]bool)

	var search func(t reflect.Type) (any, bool)
	search = func(t reflect.Type) (any, bool) {
		t = base(t)
		if seen[t] {
			return nil, false
		}

		seen[t] = true

		if own, ok := member.MethodOf(t, m.Name()); ok && member.Equivalent(m, own) {
			for _, a := range r.Annotations(t, m.Name()) {
				if keep(a) {
					return a, true
				}
			}
		}

		if t.Kind() != reflect.Struct {
			return nil, false
		}

		for i := range t.NumField() {
			if sf := t.Field(i); sf.Anonymous {
				if a, ok := search(sf.Type); ok {
					return a, true
				}
			}
		}

		return nil, false
	}

	return search(m.DeclaringType())
}
