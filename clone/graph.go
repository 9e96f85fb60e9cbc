package clone

import (
	"reflect"

	"mirror/member"
)

// graph holds the state of one deep clone.
type graph struct {
	c      *Cloner
	copies map[identity]reflect.Value
	pairs  []pair // allocation order
}

type pair struct {
	orig, dup reflect.Value
}

// clone runs both phases: allocate a copy of every reachable object, then
// fill the copies with the original contents, redirecting references.
func (g *graph) clone(root reflect.Value) (reflect.Value, error) {
	if err := g.visit(root); err != nil {
		return reflect.Value{}, err
	}

	for _, p := range g.pairs {
		if err := g.link(p.orig, p.dup); err != nil {
			return reflect.Value{}, err
		}
	}

	return g.redirect(root)
}

// visit allocates copies of the objects reachable from v.
func (g *graph) visit(v reflect.Value) error {
	if !v.IsValid() || !g.c.needsWalk(v.Type()) || g.c.protected(v) {
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		id, ok := identityOf(v)
		if !ok {
			return nil
		}

		if _, seen := g.copies[id]; seen {
			return nil
		}

		cp := allocateUninitialized(v.Type(), size(v))
		g.copies[id] = cp
		g.pairs = append(g.pairs, pair{orig: v, dup: cp})

		return g.visitContents(v)

	case reflect.Struct:
		return g.c.fields(v.Type()).On(v).EachValue(func(_ *member.Field, fv reflect.Value) error {
			return g.visit(fv)
		})

	case reflect.Array:
		for i := range v.Len() {
			if err := g.visit(v.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Interface:
		if !v.IsNil() {
			return g.visit(v.Elem())
		}
	}

	return nil
}

func (g *graph) visitContents(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer:
		return g.visit(v.Elem())

	case reflect.Slice:
		for i := range v.Len() {
			if err := g.visit(v.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Map:
		for it := v.MapRange(); it.Next(); {
			if err := g.visit(it.Key()); err != nil {
				return err
			}

			if err := g.visit(it.Value()); err != nil {
				return err
			}
		}
	}

	return nil
}

// link fills the copy of one object.
func (g *graph) link(orig, cp reflect.Value) error {
	switch orig.Kind() {
	case reflect.Pointer:
		return g.assign(cp.Elem(), orig.Elem())

	case reflect.Slice:
		for i := range orig.Len() {
			if err := g.assign(cp.Index(i), orig.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Map:
		for it := orig.MapRange(); it.Next(); {
			k, err := g.redirect(it.Key())
			if err != nil {
				return err
			}

			v, err := g.redirect(it.Value())
			if err != nil {
				return err
			}

			cp.SetMapIndex(k, v)
		}
	}

	return nil
}

// assign stores the redirected src into the settable dst. Structs are
// filled in place.
func (g *graph) assign(dst, src reflect.Value) error {
	if src.Kind() == reflect.Struct && g.c.needsWalk(src.Type()) && !g.c.protected(src) {
		return g.c.copyFields(dst, src, g.redirect)
	}

	v, err := g.redirect(src)
	if err != nil {
		return err
	}

	dst.Set(v)

	return nil
}

// redirect returns v with every reference replaced by its copy. Values
// holding no references are returned unchanged.
func (g *graph) redirect(v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() || !g.c.needsWalk(v.Type()) || g.c.protected(v) {
		return v, nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if id, ok := identityOf(v); ok {
			if cp, ok := g.copies[id]; ok {
				return cp, nil
			}
		}

		return v, nil

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		if err := g.c.copyFields(out, v, g.redirect); err != nil {
			return reflect.Value{}, err
		}

		return out, nil

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			if err := g.assign(out.Index(i), v.Index(i)); err != nil {
				return reflect.Value{}, err
			}
		}

		return out, nil

	case reflect.Interface:
		if v.IsNil() {
			return v, nil
		}

		elem, err := g.redirect(v.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out := reflect.New(v.Type()).Elem()
		out.Set(elem)

		return out, nil
	}

	return v, nil
}
