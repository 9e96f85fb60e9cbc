package member

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"sync"
	"unicode"

	"mirror/utils"
)

var (
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
)

// Constructor describes a function registered as a constructor of a type.
type Constructor struct {
	typ      reflect.Type // constructed type, pointer stripped
	fn       reflect.Value
	pkgAlias string
	funcName string
	in       []reflect.Type
	out      reflect.Type
	mods     Modifier
}

// ParseConstructor inspects fn and returns its constructor descriptor.
//
// Supports functions shaped like:
//   - func(args...) T
//   - func(args...) *T
//   - func(args...) (T, error)
//   - func(args...) (*T, error)
func ParseConstructor(fn any) (*Constructor, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, ErrConstructorIsNotAFunction
	}

	fnType := fnVal.Type()

	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return nil, ErrIsNotAConstructor
		}
	default:
		return nil, ErrIsNotAConstructor
	}

	out := fnType.Out(0)
	if out.Kind() == reflect.Pointer && out.Elem().Kind() == reflect.Pointer {
		return nil, ErrDoublePointer
	}

	if out.Kind() == reflect.Interface {
		return nil, fmt.Errorf("%w: returns interface %s", ErrIsNotAConstructor, out)
	}

	// Function names look like "path/to/pkg.Name" or "pkg.Name.func1".
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(utils.Second(path.Split(fnPC.Name())), ".", 2))

	in := make([]reflect.Type, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		in = append(in, fnType.In(i))
	}

	mods := Static
	if r := []rune(name); len(r) > 0 && unicode.IsUpper(r[0]) {
		mods |= Exported
	}

	if fnType.IsVariadic() {
		mods |= Variadic
	}

	if fnType.NumOut() == 2 {
		mods |= Fallible
	}

	return &Constructor{
		typ:      deref(out),
		fn:       fnVal,
		pkgAlias: alias,
		funcName: name,
		in:       in,
		out:      out,
		mods:     mods,
	}, nil
}

func (c *Constructor) Kind() Kind                  { return KindConstructor }
func (c *Constructor) Name() string                { return c.funcName }
func (c *Constructor) DeclaringType() reflect.Type { return c.typ }
func (c *Constructor) Modifiers() Modifier         { return c.mods }

// PackageAlias returns the last element of the defining package path.
func (c *Constructor) PackageAlias() string { return c.pkgAlias }

// Result returns the first result type of the function, T or *T.
func (c *Constructor) Result() reflect.Type { return c.out }

// Params returns the parameter types.
func (c *Constructor) Params() []reflect.Type { return slices.Clone(c.in) }

func (c *Constructor) String() string {
	var out []reflect.Type

	out = append(out, c.out)
	if c.mods.Has(Fallible) {
		out = append(out, errorType)
	}

	return fmt.Sprintf("%s.%s%s", c.pkgAlias, c.funcName, signature(c.in, out, c.mods.Has(Variadic)))
}

// Call invokes the constructor and returns its first result.
func (c *Constructor) Call(args []any) (v reflect.Value, err error) {
	defer recoverInto(&err)

	in, err := prepareArgs(c.in, c.mods.Has(Variadic), args)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%s: %w", c, err)
	}

	results := c.fn.Call(in)
	if err := resultError(results, c.mods); err != nil {
		return reflect.Value{}, err
	}

	return results[0], nil
}

// Accepts reports whether args fit the parameters.
func (c *Constructor) Accepts(args ...any) bool {
	_, err := prepareArgs(c.in, c.mods.Has(Variadic), args)

	return err == nil
}

type constructorRegistry struct {
	mu     sync.RWMutex
	byType map[reflect.Type][]*Constructor
}

var constructors = &constructorRegistry{
	byType: make(map[reflect.Type][]*Constructor),
}

// RegisterConstructor declares fn as a constructor of the type it returns.
// Registering the same function twice for a type is a no-op.
func RegisterConstructor(fn any) error {
	c, err := ParseConstructor(fn)
	if err != nil {
		return err
	}

	constructors.mu.Lock()
	defer constructors.mu.Unlock()

	for _, existing := range constructors.byType[c.typ] {
		if existing.fn.Pointer() == c.fn.Pointer() && existing.out == c.out {
			return nil
		}
	}

	constructors.byType[c.typ] = append(constructors.byType[c.typ], c)
	generation.Add(1)

	return nil
}

// MustRegisterConstructor is like RegisterConstructor but panics on error.
// It is meant for package initialization.
func MustRegisterConstructor(fn any) {
	if err := RegisterConstructor(fn); err != nil {
		panic(err)
	}
}

// registered returns the constructors of t in registration order.
func registered(t reflect.Type) []*Constructor {
	constructors.mu.RLock()
	defer constructors.mu.RUnlock()

	return slices.Clone(constructors.byType[t])
}
