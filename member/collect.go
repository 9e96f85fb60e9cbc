package member

import (
	"reflect"
	"slices"
	"sync/atomic"
)

// AccessPolicy decides whether a member may be exposed.
// Members it refuses are silently left out of collections.
type AccessPolicy func(Member) bool

var (
	accessPolicy atomic.Pointer[AccessPolicy]
	generation   atomic.Uint64
)

// SetAccessPolicy installs the policy consulted by every collection.
// A nil policy allows every member.
func SetAccessPolicy(p AccessPolicy) {
	if p == nil {
		accessPolicy.Store(nil)
	} else {
		accessPolicy.Store(&p)
	}

	generation.Add(1)
}

// Generation changes whenever the result of a collection may have changed:
// on constructor registration and on access policy changes.
func Generation() uint64 {
	return generation.Load()
}

func allowed(m Member) bool {
	p := accessPolicy.Load()

	return p == nil || (*p)(m)
}

// Collect enumerates the members of the given kind for t.
func Collect(kind Kind, t reflect.Type) []Member {
	switch kind {
	case KindField:
		return CollectFields(t)
	case KindMethod:
		return CollectMethods(t)
	case KindConstructor:
		return CollectConstructors(t)
	default:
		return nil
	}
}

// CollectFields enumerates the fields of the struct type t (or the struct
// t points to): own fields in declaration order, then the fields of every
// embedded struct depth-first. Other types have no fields.
func CollectFields(t reflect.Type) []Member {
	if t == nil {
		return nil
	}

	w := walker{owner: deref(t)}

	var into []Member
	w.fields(w.owner, nil, &into)

	return into
}

// CollectMethods enumerates the methods of t: its method set (the pointer
// method set for named non-pointer types), then the method sets of
// embedded types depth-first, then embedded interfaces. A method that is
// equivalent to one collected from an earlier type is hidden by it.
func CollectMethods(t reflect.Type) []Member {
	if t == nil {
		return nil
	}

	w := walker{owner: t}

	var found []*Method
	w.methods(t, nil, &found)

	into := make([]Member, len(found))
	for i, m := range found {
		into[i] = m
	}

	return into
}

// CollectConstructors returns the constructors registered for t (or the
// type t points to). Constructors are not inherited through embedding.
func CollectConstructors(t reflect.Type) []Member {
	if t == nil {
		return nil
	}

	var into []Member
	for _, c := range registered(deref(t)) {
		if allowed(c) {
			into = append(into, c)
		}
	}

	return into
}

type walker struct {
	owner reflect.Type
	stack []reflect.Type // types on the current embedding path
}

func (w *walker) enter(t reflect.Type) bool {
	if slices.Contains(w.stack, t) {
		return false
	}

	w.stack = append(w.stack, t)

	return true
}

func (w *walker) leave() {
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *walker) fields(t reflect.Type, path []int, into *[]Member) {
	t = deref(t)
	if t.Kind() != reflect.Struct || !w.enter(t) {
		return
	}
	defer w.leave()

	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}

		if f := newField(w.owner, t, sf, path); allowed(f) {
			*into = append(*into, f)
		}
	}

	for i := range t.NumField() {
		if sf := t.Field(i); sf.Anonymous {
			w.fields(sf.Type, slices.Concat(path, []int{i}), into)
		}
	}
}

func (w *walker) methods(t reflect.Type, path []int, into *[]*Method) {
	base := deref(t)
	if !w.enter(base) {
		return
	}
	defer w.leave()

	set := methodSet(t)
	before := len(*into)

outer:
	for i := range set.NumMethod() {
		m := newMethod(w.owner, set, set.Method(i), path)

		for _, other := range (*into)[:before] {
			if other.mods.Has(Exported) && Equivalent(other, m) {
				continue outer
			}
		}

		if allowed(m) {
			*into = append(*into, m)
		}
	}

	if base.Kind() != reflect.Struct {
		return
	}

	var ifaces []int

	for i := range base.NumField() {
		sf := base.Field(i)
		if !sf.Anonymous {
			continue
		}

		if sf.Type.Kind() == reflect.Interface {
			ifaces = append(ifaces, i)
			continue
		}

		w.methods(sf.Type, slices.Concat(path, []int{i}), into)
	}

	for _, i := range ifaces {
		w.methods(base.Field(i).Type, slices.Concat(path, []int{i}), into)
	}
}

// Equivalent reports whether b is the same method as a for override
// purposes: same name, identical parameter types and pairwise compatible
// result types. Result types are compatible when one is assignable to the
// other.
func Equivalent(a, b *Method) bool {
	if a.Name() != b.Name() ||
		a.mods.Has(Variadic) != b.mods.Has(Variadic) ||
		!slices.Equal(a.in, b.in) ||
		len(a.out) != len(b.out) {
		return false
	}

	for i := range a.out {
		x, y := a.out[i], b.out[i]
		if x != y && !y.AssignableTo(x) && !x.AssignableTo(y) {
			return false
		}
	}

	return true
}
