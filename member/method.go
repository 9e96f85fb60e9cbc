package member

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

var errorType = reflect.TypeFor[error]()

// Method describes a method reachable from an owner type.
type Method struct {
	owner  reflect.Type // type the method was collected for
	recv   reflect.Type // type whose method set holds the method
	method reflect.Method
	path   []int // index path from owner to the embedded field holding recv
	in     []reflect.Type
	out    []reflect.Type
	mods   Modifier
}

// methodSet returns the type whose method set is walked for t: the pointer
// type for named non-pointer non-interface types, t otherwise.
func methodSet(t reflect.Type) reflect.Type {
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && t.Name() != "" {
		return reflect.PointerTo(t)
	}

	return t
}

func newMethod(owner, recv reflect.Type, m reflect.Method, path []int) *Method {
	ft := m.Type

	// Interface methods have no receiver parameter.
	first := 1
	if recv.Kind() == reflect.Interface {
		first = 0
	}

	in := make([]reflect.Type, 0, ft.NumIn())
	for i := first; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}

	out := make([]reflect.Type, 0, ft.NumOut())
	for i := range ft.NumOut() {
		out = append(out, ft.Out(i))
	}

	mods := Exported
	if len(path) > 0 {
		mods |= Promoted
	}

	if recv.Kind() == reflect.Pointer {
		if _, ok := recv.Elem().MethodByName(m.Name); !ok {
			mods |= PointerReceiver
		}
	}

	if ft.IsVariadic() {
		mods |= Variadic
	}

	if len(out) > 0 && out[len(out)-1] == errorType {
		mods |= Fallible
	}

	return &Method{
		owner:  owner,
		recv:   recv,
		method: m,
		path:   slices.Clone(path),
		in:     in,
		out:    out,
		mods:   mods,
	}
}

// MethodOf returns the descriptor of the named method in the method set of t.
func MethodOf(t reflect.Type, name string) (*Method, bool) {
	if t == nil {
		return nil, false
	}

	set := methodSet(t)

	m, ok := set.MethodByName(name)
	if !ok {
		return nil, false
	}

	return newMethod(t, set, m, nil), true
}

func (m *Method) Kind() Kind          { return KindMethod }
func (m *Method) Name() string        { return m.method.Name }
func (m *Method) Modifiers() Modifier { return m.mods }

// DeclaringType returns the receiver type without pointer indirection.
func (m *Method) DeclaringType() reflect.Type { return deref(m.recv) }

// Owner returns the type the method was collected for.
func (m *Method) Owner() reflect.Type { return m.owner }

// Receiver returns the type whose method set holds the method.
func (m *Method) Receiver() reflect.Type { return m.recv }

// Params returns the parameter types, receiver excluded.
func (m *Method) Params() []reflect.Type { return slices.Clone(m.in) }

// Results returns the result types.
func (m *Method) Results() []reflect.Type { return slices.Clone(m.out) }

// Path returns the index path from the owner to the embedded field holding the receiver.
func (m *Method) Path() []int { return slices.Clone(m.path) }

func (m *Method) String() string {
	return fmt.Sprintf("(%s) %s%s", typeName(m.recv), m.method.Name, signature(m.in, m.out, m.mods.Has(Variadic)))
}

// Call invokes the method on recv. When recv is the zero Value the method
// is used as a method expression and args[0] is the receiver.
func (m *Method) Call(recv reflect.Value, args []any) (results []reflect.Value, err error) {
	defer recoverInto(&err)

	if !recv.IsValid() {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoReceiver, m)
		}

		if v, ok := args[0].(reflect.Value); ok {
			recv = v
		} else {
			recv = reflect.ValueOf(args[0])
		}

		args = args[1:]
	}

	recv, err = m.receiver(recv)
	if err != nil {
		return nil, err
	}

	in, err := prepareArgs(m.in, m.mods.Has(Variadic), args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m, err)
	}

	var fn reflect.Value
	if m.recv.Kind() == reflect.Interface {
		fn = recv.MethodByName(m.method.Name)
		if !fn.IsValid() {
			return nil, fmt.Errorf("%w: %s has no method %s", ErrReceiverType, recv.Type(), m.method.Name)
		}
	} else {
		fn = m.method.Func
		in = append([]reflect.Value{recv}, in...)
	}

	results = fn.Call(in)

	return results, resultError(results, m.mods)
}

// Accepts reports whether args, receiver excluded, fit the parameters.
func (m *Method) Accepts(args ...any) bool {
	_, err := prepareArgs(m.in, m.mods.Has(Variadic), args)

	return err == nil
}

// receiver walks from recv along the embedding path and adapts the result
// to the receiver type of the method.
func (m *Method) receiver(recv reflect.Value) (reflect.Value, error) {
	if len(m.path) > 0 && recv.Kind() == reflect.Struct && !recv.CanAddr() {
		tmp := reflect.New(recv.Type()).Elem()
		tmp.Set(recv)
		recv = tmp
	}

	for _, i := range m.path {
		for recv.Kind() == reflect.Pointer || recv.Kind() == reflect.Interface {
			if recv.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilReceiver, m)
			}

			recv = recv.Elem()
		}

		if recv.Kind() != reflect.Struct || i >= recv.NumField() {
			return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrReceiverType, recv.Type(), m)
		}

		recv = expose(recv.Field(i))
	}

	if m.recv.Kind() == reflect.Interface {
		if recv.Kind() == reflect.Interface {
			if recv.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilReceiver, m)
			}

			recv = recv.Elem()
		}

		return recv, nil
	}

	if recv.Kind() == reflect.Interface && !recv.IsNil() {
		recv = recv.Elem()
	}

	switch {
	case recv.Type() == m.recv:
		// Value methods promoted to the pointer set dereference the receiver.
		if recv.Kind() == reflect.Pointer && recv.IsNil() && !m.mods.Has(PointerReceiver) {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilReceiver, m)
		}

		return recv, nil

	case recv.Type() == m.recv.Elem() && m.recv.Kind() == reflect.Pointer:
		if recv.CanAddr() {
			return expose(recv).Addr(), nil
		}

		// Pointer methods on a value operate on a private copy.
		p := reflect.New(recv.Type())
		p.Elem().Set(recv)

		return p, nil

	case recv.Kind() == reflect.Pointer && recv.Type().Elem() == m.recv:
		if recv.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilReceiver, m)
		}

		return recv.Elem(), nil

	default:
		return reflect.Value{}, fmt.Errorf("%w: %s is not %s", ErrReceiverType, recv.Type(), m.recv)
	}
}

// prepareArgs converts call arguments to values matching params.
func prepareArgs(params []reflect.Type, variadic bool, args []any) ([]reflect.Value, error) {
	fixed := len(params)
	if variadic {
		fixed--
	}

	if len(args) < fixed || (!variadic && len(args) != fixed) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArgumentCount, len(params), len(args))
	}

	in := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = params[i]
		} else {
			pt = params[fixed].Elem()
		}

		v, err := ValueFor(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}

		in = append(in, v)
	}

	return in, nil
}

// resultError extracts the trailing error result of a fallible call.
func resultError(results []reflect.Value, mods Modifier) error {
	if !mods.Has(Fallible) || len(results) == 0 {
		return nil
	}

	last := results[len(results)-1]
	if last.IsNil() {
		return nil
	}

	return last.Interface().(error)
}

func signature(in, out []reflect.Type, variadic bool) string {
	var b strings.Builder

	b.WriteByte('(')

	for i, t := range in {
		if i > 0 {
			b.WriteString(", ")
		}

		if variadic && i == len(in)-1 {
			b.WriteString("..." + typeName(t.Elem()))
			continue
		}

		b.WriteString(typeName(t))
	}

	b.WriteByte(')')

	switch len(out) {
	case 0:
	case 1:
		b.WriteString(" " + typeName(out[0]))
	default:
		b.WriteString(" (")

		for i, t := range out {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(typeName(t))
		}

		b.WriteByte(')')
	}

	return b.String()
}
