package query

import (
	"reflect"

	"mirror/member"
)

// Fields is a query over struct fields.
type Fields struct {
	s *selection[*member.Field]
}

func (q *Fields) with(s *selection[*member.Field]) *Fields {
	if s == q.s {
		return q
	}

	return &Fields{s: s}
}

// ByName keeps the fields with the given name.
func (q *Fields) ByName(name string) *Fields { return q.with(q.s.byName(name)) }

// WithModifiers keeps the fields carrying every flag of mask.
func (q *Fields) WithModifiers(mask member.Modifier) *Fields {
	return q.with(q.s.withModifiers(mask))
}

// WithoutModifiers keeps the fields carrying none of the flags of mask.
func (q *Fields) WithoutModifiers(mask member.Modifier) *Fields {
	return q.with(q.s.withoutModifiers(mask))
}

// Filter keeps the fields satisfying keep.
func (q *Fields) Filter(keep func(*member.Field) bool) *Fields {
	return q.with(q.s.filter(keep))
}

// WithTag keeps the fields whose struct tag has the given key.
func (q *Fields) WithTag(key string) *Fields {
	return q.Filter(func(f *member.Field) bool {
		_, ok := f.Tag().Lookup(key)
		return ok
	})
}

// AssignableTo keeps the fields whose values can be assigned to t.
func (q *Fields) AssignableTo(t reflect.Type) *Fields {
	return q.Filter(func(f *member.Field) bool {
		return t != nil && f.Type().AssignableTo(t)
	})
}

func (q *Fields) Mode(mode SelectionMode) *Fields { return q.with(q.s.setMode(mode)) }
func (q *Fields) First() *Fields                  { return q.Mode(First) }
func (q *Fields) Only() *Fields                   { return q.Mode(Only) }
func (q *Fields) All() *Fields                    { return q.Mode(All) }

// Freeze makes the query immutable and returns it.
func (q *Fields) Freeze() *Fields { return q.with(q.s.freeze()) }

// Static binds the static context: fields then have no receiver.
func (q *Fields) Static() *Fields { return q.with(q.s.bind(reflect.Value{})) }

// On binds x as the receiver. Setting requires x to be a pointer.
func (q *Fields) On(x any) *Fields { return q.with(q.s.on(x)) }

func (q *Fields) Err() error                   { return q.s.err }
func (q *Fields) Len() int                     { return len(q.s.matching) }
func (q *Fields) Members() []*member.Field     { return q.s.members() }
func (q *Fields) SelectionMode() SelectionMode { return q.s.mode }
func (q *Fields) Frozen() bool                 { return q.s.frozen }
func (q *Fields) String() string               { return "Fields" + q.s.String() }

// Dump renders the matching descriptors for debugging.
func (q *Fields) Dump() string { return q.s.dump() }

// GetValue reads the selected field. All is not supported.
func (q *Fields) GetValue() (reflect.Value, error) {
	if q.s.err == nil && q.s.mode == All {
		return reflect.Value{}, ErrUnsupportedSelection
	}

	f, err := q.s.resolve()
	if err != nil {
		return reflect.Value{}, err
	}

	v, err := f.Get(q.s.receiver)
	if err != nil {
		return reflect.Value{}, failed(f, "get", err)
	}

	return v, nil
}

// Get reads the selected field. All is not supported.
func (q *Fields) Get() (any, error) {
	v, err := q.GetValue()
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// Set writes value into the selected field, or into every matching field
// under All. A nil value stores the zero value of nilable field types.
//
// Unexported fields are written by bypassing reflection's read-only flag.
// The write is not synchronized with other goroutines accessing the field.
func (q *Fields) Set(value any) error {
	if q.s.err != nil {
		return q.s.err
	}

	v, ok := value.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(value)
	}

	if q.s.mode == All {
		for _, f := range q.s.matching {
			if err := f.Set(q.s.receiver, v); err != nil {
				return failed(f, "set", err)
			}
		}

		return nil
	}

	f, err := q.s.resolve()
	if err != nil {
		return err
	}

	return failed(f, "set", f.Set(q.s.receiver, v))
}

// EachValue reads every matching field, regardless of the selection mode,
// and passes its value to fn. It stops at the first error.
func (q *Fields) EachValue(fn func(*member.Field, reflect.Value) error) error {
	if q.s.err != nil {
		return q.s.err
	}

	for _, f := range q.s.matching {
		v, err := f.Get(q.s.receiver)
		if err != nil {
			return failed(f, "get", err)
		}

		if err := fn(f, v); err != nil {
			return err
		}
	}

	return nil
}

// Each passes the value of every matching field to fn.
func (q *Fields) Each(fn func(any) error) error {
	return q.EachValue(func(_ *member.Field, v reflect.Value) error {
		return fn(v.Interface())
	})
}

// EachField passes every matching descriptor to fn.
func (q *Fields) EachField(fn func(*member.Field) error) error {
	if q.s.err != nil {
		return q.s.err
	}

	for _, f := range q.s.matching {
		if err := fn(f); err != nil {
			return err
		}
	}

	return nil
}
