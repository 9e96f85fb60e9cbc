package member

import (
	"fmt"
	"reflect"
)

// CreateInstance returns a new *T for t (pointer types are dereferenced once).
// The first registered constructor that takes no arguments is preferred;
// without one the instance is the zero value, allocated without running
// any construction logic.
func CreateInstance(t reflect.Type) (reflect.Value, error) {
	t = deref(t)
	if t == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil type", ErrArgumentType)
	}

	for _, c := range registered(t) {
		if len(c.in) > 0 || c.mods.Has(Variadic) {
			continue
		}

		v, err := c.Call(nil)
		if err != nil {
			return reflect.Value{}, err
		}

		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				break
			}

			return v, nil
		}

		p := reflect.New(t)
		p.Elem().Set(v)

		return p, nil
	}

	return reflect.New(t), nil
}
