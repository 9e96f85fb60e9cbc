package clone

import (
	"reflect"
	"unsafe"
)

// identity is the reference identity of a non-nil pointer, map or slice.
// Slices are identified by their window on the backing array, so two
// slices of the same array with different bounds are distinct objects.
type identity struct {
	typ reflect.Type
	ptr unsafe.Pointer
	len int
	cap int
}

func identityOf(v reflect.Value) (identity, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return identity{}, false
		}

		return identity{typ: v.Type(), ptr: v.UnsafePointer()}, true

	case reflect.Slice:
		if v.IsNil() {
			return identity{}, false
		}

		return identity{typ: v.Type(), ptr: v.UnsafePointer(), len: v.Len(), cap: v.Cap()}, true

	default:
		return identity{}, false
	}
}

// allocateUninitialized returns a new zero object of type t: a pointer to
// a zero value, a slice of n zero elements or an empty map sized for n
// entries. No constructor or initializer runs.
func allocateUninitialized(t reflect.Type, n int) reflect.Value {
	switch t.Kind() {
	case reflect.Pointer:
		return reflect.New(t.Elem())
	case reflect.Slice:
		return reflect.MakeSlice(t, n, n)
	case reflect.Map:
		return reflect.MakeMapWithSize(t, n)
	default:
		panic("clone: cannot allocate " + t.String())
	}
}

// size is the element count of a slice or map, zero otherwise.
func size(v reflect.Value) int {
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Map {
		return v.Len()
	}

	return 0
}
