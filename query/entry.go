package query

import (
	"fmt"
	"reflect"

	"mirror/member"
)

// FieldsOf queries the fields of t. Pointer types are dereferenced once.
func FieldsOf(t reflect.Type) *Fields {
	return &Fields{s: newSelection[*member.Field](member.KindField, t)}
}

// FieldsFor queries the fields of T.
func FieldsFor[T any]() *Fields { return FieldsOf(reflect.TypeFor[T]()) }

// FieldsOn queries the fields of the exact runtime type of x and binds x.
func FieldsOn(x any) *Fields {
	t, err := typeOf(x)
	if err != nil {
		return &Fields{s: &selection[*member.Field]{kind: member.KindField, mode: Only, err: err}}
	}

	return FieldsOf(t).On(x)
}

// StaticFields queries the fields of t in the static context.
func StaticFields(t reflect.Type) *Fields { return FieldsOf(t).Static() }

// MethodsOf queries the methods of t.
func MethodsOf(t reflect.Type) *Methods {
	return &Methods{s: newSelection[*member.Method](member.KindMethod, t)}
}

// MethodsFor queries the methods of T.
func MethodsFor[T any]() *Methods { return MethodsOf(reflect.TypeFor[T]()) }

// MethodsOn queries the methods of the exact runtime type of x and binds x.
func MethodsOn(x any) *Methods {
	t, err := typeOf(x)
	if err != nil {
		return &Methods{s: &selection[*member.Method]{kind: member.KindMethod, mode: Only, err: err}}
	}

	return MethodsOf(t).On(x)
}

// StaticMethods queries the methods of t in the static context.
func StaticMethods(t reflect.Type) *Methods { return MethodsOf(t).Static() }

// ConstructorsOf queries the constructors registered for t.
func ConstructorsOf(t reflect.Type) *Constructors {
	return &Constructors{s: newSelection[*member.Constructor](member.KindConstructor, t)}
}

// ConstructorsFor queries the constructors registered for T.
func ConstructorsFor[T any]() *Constructors { return ConstructorsOf(reflect.TypeFor[T]()) }

// StaticConstructors queries the constructors of t in the static context.
func StaticConstructors(t reflect.Type) *Constructors { return ConstructorsOf(t).Static() }

func typeOf(x any) (reflect.Type, error) {
	v, ok := x.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(x)
	}

	if !v.IsValid() {
		return nil, fmt.Errorf("%w: nil receiver", ErrInvalidArgument)
	}

	return v.Type(), nil
}
