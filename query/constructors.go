package query

import (
	"reflect"
	"slices"

	"mirror/member"
)

// Constructors is a query over the constructors registered for a type.
// A bound receiver is accepted for symmetry and ignored on invocation.
type Constructors struct {
	s *selection[*member.Constructor]
}

func (q *Constructors) with(s *selection[*member.Constructor]) *Constructors {
	if s == q.s {
		return q
	}

	return &Constructors{s: s}
}

// ByName keeps the constructors whose function has the given name.
func (q *Constructors) ByName(name string) *Constructors { return q.with(q.s.byName(name)) }

// WithModifiers keeps the constructors carrying every flag of mask.
func (q *Constructors) WithModifiers(mask member.Modifier) *Constructors {
	return q.with(q.s.withModifiers(mask))
}

// WithoutModifiers keeps the constructors carrying none of the flags of mask.
func (q *Constructors) WithoutModifiers(mask member.Modifier) *Constructors {
	return q.with(q.s.withoutModifiers(mask))
}

// Filter keeps the constructors satisfying keep.
func (q *Constructors) Filter(keep func(*member.Constructor) bool) *Constructors {
	return q.with(q.s.filter(keep))
}

// WithParams keeps the constructors whose parameter types are exactly params.
func (q *Constructors) WithParams(params ...reflect.Type) *Constructors {
	return q.Filter(func(c *member.Constructor) bool {
		return slices.Equal(c.Params(), params)
	})
}

// Accepting keeps the constructors that can be called with args.
func (q *Constructors) Accepting(args ...any) *Constructors {
	return q.Filter(func(c *member.Constructor) bool { return c.Accepts(args...) })
}

// Returning keeps the constructors whose result is assignable to t.
func (q *Constructors) Returning(t reflect.Type) *Constructors {
	return q.Filter(func(c *member.Constructor) bool {
		return t != nil && c.Result().AssignableTo(t)
	})
}

func (q *Constructors) Mode(mode SelectionMode) *Constructors { return q.with(q.s.setMode(mode)) }
func (q *Constructors) First() *Constructors                  { return q.Mode(First) }
func (q *Constructors) Only() *Constructors                   { return q.Mode(Only) }
func (q *Constructors) All() *Constructors                    { return q.Mode(All) }

// Freeze makes the query immutable and returns it.
func (q *Constructors) Freeze() *Constructors { return q.with(q.s.freeze()) }

// Static binds the static context, the natural one for constructors.
func (q *Constructors) Static() *Constructors { return q.with(q.s.bind(reflect.Value{})) }

// On binds x as the receiver.
func (q *Constructors) On(x any) *Constructors { return q.with(q.s.on(x)) }

func (q *Constructors) Err() error                     { return q.s.err }
func (q *Constructors) Len() int                       { return len(q.s.matching) }
func (q *Constructors) Members() []*member.Constructor { return q.s.members() }
func (q *Constructors) SelectionMode() SelectionMode   { return q.s.mode }
func (q *Constructors) Frozen() bool                   { return q.s.frozen }
func (q *Constructors) String() string                 { return "Constructors" + q.s.String() }

// Dump renders the matching descriptors for debugging.
func (q *Constructors) Dump() string { return q.s.dump() }

// InvokeValue calls the selected constructor and returns the new instance.
// Under All every matching constructor is called in order and the last
// instance is returned.
func (q *Constructors) InvokeValue(args ...any) (reflect.Value, error) {
	if q.s.err != nil {
		return reflect.Value{}, q.s.err
	}

	if q.s.mode == All {
		var last reflect.Value

		for _, c := range q.s.matching {
			v, err := c.Call(args)
			if err != nil {
				return reflect.Value{}, failed(c, "construct", err)
			}

			last = v
		}

		return last, nil
	}

	c, err := q.s.resolve()
	if err != nil {
		return reflect.Value{}, err
	}

	v, err := c.Call(args)
	if err != nil {
		return reflect.Value{}, failed(c, "construct", err)
	}

	return v, nil
}

// Invoke calls the selected constructor and returns the new instance.
func (q *Constructors) Invoke(args ...any) (any, error) {
	v, err := q.InvokeValue(args...)
	if err != nil || !v.IsValid() {
		return nil, err
	}

	return v.Interface(), nil
}

// EachConstructor passes every matching descriptor to fn.
func (q *Constructors) EachConstructor(fn func(*member.Constructor) error) error {
	if q.s.err != nil {
		return q.s.err
	}

	for _, c := range q.s.matching {
		if err := fn(c); err != nil {
			return err
		}
	}

	return nil
}
