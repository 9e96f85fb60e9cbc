package query

import (
	"reflect"
	"slices"

	"mirror/member"
)

// Methods is a query over methods.
//
// Without a bound receiver, or in the static context, methods are called
// as method expressions: the first argument is the receiver.
type Methods struct {
	s *selection[*member.Method]
}

func (q *Methods) with(s *selection[*member.Method]) *Methods {
	if s == q.s {
		return q
	}

	return &Methods{s: s}
}

// ByName keeps the methods with the given name.
func (q *Methods) ByName(name string) *Methods { return q.with(q.s.byName(name)) }

// WithModifiers keeps the methods carrying every flag of mask.
func (q *Methods) WithModifiers(mask member.Modifier) *Methods {
	return q.with(q.s.withModifiers(mask))
}

// WithoutModifiers keeps the methods carrying none of the flags of mask.
func (q *Methods) WithoutModifiers(mask member.Modifier) *Methods {
	return q.with(q.s.withoutModifiers(mask))
}

// Filter keeps the methods satisfying keep.
func (q *Methods) Filter(keep func(*member.Method) bool) *Methods {
	return q.with(q.s.filter(keep))
}

// WithParams keeps the methods whose parameter types, receiver excluded,
// are exactly params.
func (q *Methods) WithParams(params ...reflect.Type) *Methods {
	return q.Filter(func(m *member.Method) bool {
		return slices.Equal(m.Params(), params)
	})
}

// Accepting keeps the methods that can be called with args.
func (q *Methods) Accepting(args ...any) *Methods {
	return q.Filter(func(m *member.Method) bool { return m.Accepts(args...) })
}

func (q *Methods) Mode(mode SelectionMode) *Methods { return q.with(q.s.setMode(mode)) }
func (q *Methods) First() *Methods                  { return q.Mode(First) }
func (q *Methods) Only() *Methods                   { return q.Mode(Only) }
func (q *Methods) All() *Methods                    { return q.Mode(All) }

// Freeze makes the query immutable and returns it.
func (q *Methods) Freeze() *Methods { return q.with(q.s.freeze()) }

// Static binds the static context.
func (q *Methods) Static() *Methods { return q.with(q.s.bind(reflect.Value{})) }

// On binds x as the receiver.
func (q *Methods) On(x any) *Methods { return q.with(q.s.on(x)) }

func (q *Methods) Err() error                   { return q.s.err }
func (q *Methods) Len() int                     { return len(q.s.matching) }
func (q *Methods) Members() []*member.Method    { return q.s.members() }
func (q *Methods) SelectionMode() SelectionMode { return q.s.mode }
func (q *Methods) Frozen() bool                 { return q.s.frozen }
func (q *Methods) String() string               { return "Methods" + q.s.String() }

// Dump renders the matching descriptors for debugging.
func (q *Methods) Dump() string { return q.s.dump() }

// InvokeValues calls the selected method and returns all of its results.
// Under All every matching method is called in order and the results of
// the last call are returned.
func (q *Methods) InvokeValues(args ...any) ([]reflect.Value, error) {
	_, out, err := q.invoke(args)
	return out, err
}

// Invoke calls the selected method and returns its first result, or nil
// when the method only returns an error or nothing.
func (q *Methods) Invoke(args ...any) (any, error) {
	m, out, err := q.invoke(args)
	if err != nil || m == nil {
		return nil, err
	}

	return firstResult(out, m.Modifiers()), nil
}

func (q *Methods) invoke(args []any) (*member.Method, []reflect.Value, error) {
	if q.s.err != nil {
		return nil, nil, q.s.err
	}

	if q.s.mode == All {
		var (
			last *member.Method
			out  []reflect.Value
		)

		for _, m := range q.s.matching {
			res, err := m.Call(q.s.receiver, args)
			if err != nil {
				return nil, nil, failed(m, "invoke", err)
			}

			last, out = m, res
		}

		return last, out, nil
	}

	m, err := q.s.resolve()
	if err != nil {
		return nil, nil, err
	}

	out, err := m.Call(q.s.receiver, args)
	if err != nil {
		return nil, nil, failed(m, "invoke", err)
	}

	return m, out, nil
}

// Each calls every matching method with args, regardless of the selection
// mode, and passes its first result to fn. It stops at the first error.
func (q *Methods) Each(fn func(any) error, args ...any) error {
	if q.s.err != nil {
		return q.s.err
	}

	for _, m := range q.s.matching {
		out, err := m.Call(q.s.receiver, args)
		if err != nil {
			return failed(m, "invoke", err)
		}

		if err := fn(firstResult(out, m.Modifiers())); err != nil {
			return err
		}
	}

	return nil
}

// EachMethod passes every matching descriptor to fn.
func (q *Methods) EachMethod(fn func(*member.Method) error) error {
	if q.s.err != nil {
		return q.s.err
	}

	for _, m := range q.s.matching {
		if err := fn(m); err != nil {
			return err
		}
	}

	return nil
}

// firstResult returns the first non-error result of a call.
func firstResult(out []reflect.Value, mods member.Modifier) any {
	if mods.Has(member.Fallible) {
		out = out[:len(out)-1]
	}

	if len(out) == 0 {
		return nil
	}

	return out[0].Interface()
}
