package member_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirror/member"
)

type point struct{ X, Y int }

func newPoint() point                     { return point{} }
func NewPointAt(x, y int) *point          { return &point{X: x, Y: y} }
func parsePoint(s string) (*point, error) { return nil, errors.New("cannot parse " + s) }
func pointOf(values ...int) point         { return point{X: len(values)} }
func doublePointer() **point              { panic("not implemented") }
func anyPoint() fmt.Stringer              { panic("not implemented") }
func twoPoints() (point, point)           { panic("not implemented") }
func noResult()                           { panic("not implemented") }

func ExampleParseConstructor() {
	for _, fn := range []any{newPoint, NewPointAt, parsePoint, pointOf} {
		c, err := member.ParseConstructor(fn)
		fmt.Println(err, c.PackageAlias(), c.Name(), c.DeclaringType().Name(), c.Result().Kind(), c.Modifiers())
	}

	for _, fn := range []any{42, doublePointer, anyPoint, twoPoints, noResult} {
		_, err := member.ParseConstructor(fn)
		fmt.Println(err)
	}

	// Output:
	// <nil> member_test newPoint point struct static
	// <nil> member_test NewPointAt point ptr exported|static
	// <nil> member_test parsePoint point ptr fallible|static
	// <nil> member_test pointOf point struct variadic|static
	// provided constructor is not a function
	// constructor function does not support double pointers
	// provided function is not a recognizable constructor: returns interface fmt.Stringer
	// provided function is not a recognizable constructor
	// provided function is not a recognizable constructor
}

func TestConstructor_Call(t *testing.T) {
	at, err := member.ParseConstructor(NewPointAt)
	require.NoError(t, err)

	v, err := at.Call([]any{1, 2})
	require.NoError(t, err)
	assert.Equal(t, &point{X: 1, Y: 2}, v.Interface())

	_, err = at.Call([]any{1})
	assert.ErrorIs(t, err, member.ErrArgumentCount)

	parse, err := member.ParseConstructor(parsePoint)
	require.NoError(t, err)

	_, err = parse.Call([]any{"1,2"})
	assert.EqualError(t, err, "cannot parse 1,2")

	assert.Equal(t, "member_test.parsePoint(string) (*member_test.point, error)", parse.String())
}

type registered struct{ n int }

func newRegistered() *registered      { return &registered{n: 1} }
func newRegisteredN(n int) registered { return registered{n: n} }

func TestRegisterConstructor(t *testing.T) {
	before := member.Generation()

	require.NoError(t, member.RegisterConstructor(newRegistered))
	require.NoError(t, member.RegisterConstructor(newRegisteredN))
	require.NoError(t, member.RegisterConstructor(newRegistered))

	assert.Equal(t, before+2, member.Generation())

	ctors := member.CollectConstructors(reflect.TypeFor[*registered]())
	assert.Equal(t, []string{"newRegistered", "newRegisteredN"}, names(ctors))

	for _, c := range ctors {
		assert.True(t, c.Modifiers().Has(member.Static))
		assert.Equal(t, reflect.TypeFor[registered](), c.DeclaringType())
	}

	assert.ErrorIs(t, member.RegisterConstructor("nope"), member.ErrConstructorIsNotAFunction)
	assert.Panics(t, func() { member.MustRegisterConstructor(doublePointer) })
}

type widget struct{ ready bool }

type gadget struct{ ready bool }

func newWidget() widget { return widget{ready: true} }

func TestCreateInstance(t *testing.T) {
	member.MustRegisterConstructor(newWidget)

	v, err := member.CreateInstance(reflect.TypeFor[*widget]())
	require.NoError(t, err)
	assert.Equal(t, &widget{ready: true}, v.Interface())

	v, err = member.CreateInstance(reflect.TypeFor[gadget]())
	require.NoError(t, err)
	assert.Equal(t, &gadget{}, v.Interface())

	_, err = member.CreateInstance(nil)
	assert.Error(t, err)
}
