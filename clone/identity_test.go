package clone

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityOf(t *testing.T) {
	backing := []int{1, 2, 3}
	m := map[string]int{}
	x := 1

	tests := []struct {
		name string
		v    any
		ok   bool
	}{
		{name: "pointer", v: &x, ok: true},
		{name: "map", v: m, ok: true},
		{name: "slice", v: backing, ok: true},
		{name: "nil pointer", v: (*int)(nil)},
		{name: "nil map", v: map[string]int(nil)},
		{name: "nil slice", v: []int(nil)},
		{name: "struct", v: struct{ P *int }{&x}},
		{name: "int", v: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := identityOf(reflect.ValueOf(tt.v))
			assert.Equal(t, tt.ok, ok)
		})
	}

	a, _ := identityOf(reflect.ValueOf(backing))
	b, _ := identityOf(reflect.ValueOf(backing[:2]))
	c, _ := identityOf(reflect.ValueOf(backing[:3]))

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)

	p1, _ := identityOf(reflect.ValueOf(&x))
	p2, _ := identityOf(reflect.ValueOf(&x))
	assert.Equal(t, p1, p2)
}

func TestAllocateUninitialized(t *testing.T) {
	p := allocateUninitialized(reflect.TypeFor[*string](), 0)
	assert.Equal(t, "", p.Elem().Interface())

	s := allocateUninitialized(reflect.TypeFor[[]int](), 3)
	assert.Equal(t, []int{0, 0, 0}, s.Interface())
	assert.Equal(t, 3, s.Cap())

	m := allocateUninitialized(reflect.TypeFor[map[string]int](), 4)
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.IsNil())

	assert.Panics(t, func() { allocateUninitialized(reflect.TypeFor[int](), 0) })
}

func TestNeedsWalk(t *testing.T) {
	c := NewBuilder().Build()

	type flat struct {
		A int
		B [4]string
	}

	type linked struct {
		Next *linked
	}

	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), false},
		{reflect.TypeFor[string](), false},
		{reflect.TypeFor[flat](), false},
		{reflect.TypeFor[[0]*int](), false},
		{reflect.TypeFor[func()](), false},
		{reflect.TypeFor[chan int](), false},
		{reflect.TypeFor[linked](), true},
		{reflect.TypeFor[[2]*int](), true},
		{reflect.TypeFor[any](), true},
		{reflect.TypeFor[map[int]int](), true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.needsWalk(tt.typ), tt.typ.String())
	}
}
