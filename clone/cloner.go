package clone

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"mirror/member"
	"mirror/query"
)

// Cloner copies object graphs. It is immutable and safe for concurrent use.
type Cloner struct {
	objects map[identity]struct{}
	types   map[reflect.Type]struct{}
	kinds   map[reflect.Kind]struct{}
	log     *zap.Logger

	templates sync.Map // reflect.Type -> *template
	walks     sync.Map // reflect.Type -> bool
}

// template is the frozen query over the fields a clone copies: every
// non-promoted field, so embedded structs are copied as a whole.
type template struct {
	generation uint64
	fields     *query.Fields
}

func (c *Cloner) fields(t reflect.Type) *query.Fields {
	gen := member.Generation()

	if v, ok := c.templates.Load(t); ok {
		if tpl := v.(*template); tpl.generation == gen {
			return tpl.fields
		}
	}

	tpl := &template{
		generation: gen,
		fields:     query.FieldsOf(t).WithoutModifiers(member.Promoted).Freeze(),
	}
	c.templates.Store(t, tpl)

	return tpl.fields
}

// copyFields copies every field of the struct src into dst, which must be
// addressable, passing each value through conv.
func (c *Cloner) copyFields(dst, src reflect.Value, conv func(reflect.Value) (reflect.Value, error)) error {
	return c.fields(src.Type()).On(src).EachValue(func(f *member.Field, v reflect.Value) error {
		v, err := conv(v)
		if err != nil {
			return err
		}

		return f.Set(dst, v)
	})
}

// protected reports whether v must be shared rather than cloned.
func (c *Cloner) protected(v reflect.Value) bool {
	if _, ok := c.kinds[v.Kind()]; ok {
		return true
	}

	t := v.Type()
	if _, ok := c.types[t]; ok {
		return true
	}

	if t.Kind() == reflect.Pointer {
		if _, ok := c.types[t.Elem()]; ok {
			return true
		}
	}

	if id, ok := identityOf(v); ok {
		_, ok = c.objects[id]
		return ok
	}

	return false
}

// needsWalk reports whether values of t may hold references, so that
// copying them by assignment would share state with the original.
func (c *Cloner) needsWalk(t reflect.Type) bool {
	if v, ok := c.walks.Load(t); ok {
		return v.(bool)
	}

	var walk bool

	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		walk = true
	case reflect.Array:
		walk = t.Len() > 0 && c.needsWalk(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if c.needsWalk(t.Field(i).Type) {
				walk = true
				break
			}
		}
	}

	c.walks.Store(t, walk)

	return walk
}

// ShallowClone copies the object x refers to and shares everything that
// object references. Nil and protected values are returned as is, and so
// are values without identity, which are copies already.
func (c *Cloner) ShallowClone(x any) (any, error) {
	v, ok := x.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(x)
	}

	if _, ok := identityOf(v); !ok || c.protected(v) {
		return x, nil
	}

	var out reflect.Value

	switch v.Kind() {
	case reflect.Pointer:
		out = allocateUninitialized(v.Type(), 0)

		if v.Elem().Kind() == reflect.Struct {
			err := c.copyFields(out, v.Elem(), func(fv reflect.Value) (reflect.Value, error) { return fv, nil })
			if err != nil {
				return nil, fmt.Errorf("shallow clone %s: %w", v.Type(), err)
			}
		} else {
			out.Elem().Set(v.Elem())
		}

	case reflect.Slice:
		out = allocateUninitialized(v.Type(), v.Len())
		reflect.Copy(out, v)

	case reflect.Map:
		out = allocateUninitialized(v.Type(), v.Len())

		for it := v.MapRange(); it.Next(); {
			out.SetMapIndex(it.Key(), it.Value())
		}
	}

	c.log.Debug("shallow clone", zap.Stringer("type", v.Type()))

	if _, ok := x.(reflect.Value); ok {
		return out, nil
	}

	return out.Interface(), nil
}

// DeepClone copies every object reachable from x, except protected ones,
// which the clone shares with the original. Sharing and cycles are
// preserved. On error no partial clone is returned.
//
// A reflect.Value argument yields a reflect.Value result.
func (c *Cloner) DeepClone(x any) (any, error) {
	v, ok := x.(reflect.Value)
	if !ok {
		v = reflect.ValueOf(x)
	}

	if !v.IsValid() {
		return x, nil
	}

	g := &graph{c: c, copies: make(map[identity]reflect.Value)}

	out, err := g.clone(v)
	if err != nil {
		return nil, fmt.Errorf("deep clone %s: %w", v.Type(), err)
	}

	c.log.Debug("deep clone",
		zap.Stringer("type", v.Type()),
		zap.Int("objects", len(g.pairs)))

	if _, ok := x.(reflect.Value); ok {
		return out, nil
	}

	return out.Interface(), nil
}

// Deep returns a deep clone of x.
func Deep[T any](c *Cloner, x T) (T, error) {
	out, err := c.DeepClone(x)
	if err != nil {
		var zero T
		return zero, err
	}

	t, _ := out.(T)

	return t, nil
}

// Shallow returns a shallow clone of x.
func Shallow[T any](c *Cloner, x T) (T, error) {
	out, err := c.ShallowClone(x)
	if err != nil {
		var zero T
		return zero, err
	}

	t, _ := out.(T)

	return t, nil
}
