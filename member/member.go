package member

import (
	"errors"
	"fmt"
	"reflect"
)

// Member is a field, method or constructor descriptor.
// Descriptors are immutable once created.
type Member interface {
	Kind() Kind
	Name() string
	DeclaringType() reflect.Type
	Modifiers() Modifier
	String() string
}

var (
	ErrNoReceiver     = errors.New("member requires a receiver")
	ErrNilReceiver    = errors.New("receiver is nil")
	ErrReceiverType   = errors.New("receiver has the wrong type")
	ErrNotAddressable = errors.New("receiver is not addressable")
	ErrArgumentCount  = errors.New("wrong number of arguments")
	ErrArgumentType   = errors.New("argument is not assignable")
	ErrPanic          = errors.New("panic during reflective call")
)

// recoverInto turns a panic into an error wrapping ErrPanic.
// It must be deferred directly.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = fmt.Errorf("%w: %w", ErrPanic, e)
			return
		}

		*err = fmt.Errorf("%w: %v", ErrPanic, r)
	}
}

// deref returns t without one level of pointer indirection.
func deref(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}

	return t
}

// nilable reports whether the zero value of t is nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// ValueFor converts an argument into a value assignable to t.
// A nil argument becomes the zero value of nilable types.
func ValueFor(arg any, t reflect.Type) (reflect.Value, error) {
	if v, ok := arg.(reflect.Value); ok {
		return Assignable(v, t)
	}

	return Assignable(reflect.ValueOf(arg), t)
}

// Assignable checks that v can be stored in a location of type t.
func Assignable(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		if nilable(t) {
			return reflect.Zero(t), nil
		}

		return reflect.Value{}, fmt.Errorf("%w: nil to %s", ErrArgumentType, t)
	}

	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrArgumentType, v.Type(), t)
	}

	return v, nil
}

// typeName renders t with its package alias the way it is written in source.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
