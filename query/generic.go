package query

import (
	"fmt"
	"reflect"
)

// As converts the result of a terminal operation to R. A nil result
// becomes the zero value of R.
func As[R any](v any, err error) (R, error) {
	var zero R

	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("%w: result %T is not %s", ErrInvalidArgument, v, reflect.TypeFor[R]())
	}

	return r, nil
}

// GetAs reads the selected field as R.
func GetAs[R any](q *Fields) (R, error) {
	return As[R](q.Get())
}

// InvokeAs calls the selected method and returns its first result as R.
func InvokeAs[R any](q *Methods, args ...any) (R, error) {
	return As[R](q.Invoke(args...))
}

// New builds a T with the first registered constructor of T that returns
// something assignable to T and accepts args. T is usually a pointer type.
func New[T any](args ...any) (T, error) {
	t := reflect.TypeFor[T]()

	return As[T](ConstructorsOf(t).Returning(t).Accepting(args...).First().Invoke(args...))
}
