package member_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirror/member"
)

func fieldNamed(t *testing.T, typ reflect.Type, name string) *member.Field {
	t.Helper()

	for _, m := range member.CollectFields(typ) {
		if m.Name() == name {
			return m.(*member.Field)
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", typ, name)

	return nil
}

func TestField_SetUnexportedThroughPointer(t *testing.T) {
	d := &derived{base: base{ID: 1, name: "a"}}
	f := fieldNamed(t, reflect.TypeFor[derived](), "name")

	require.NoError(t, f.Set(reflect.ValueOf(d), reflect.ValueOf("b")))
	assert.Equal(t, "b", d.name)

	v, err := f.Get(reflect.ValueOf(*d))
	require.NoError(t, err)
	assert.Equal(t, "b", v.Interface())
}

func TestField_GetPromotedExported(t *testing.T) {
	f := fieldNamed(t, reflect.TypeFor[derived](), "ID")

	v, err := f.Get(reflect.ValueOf(derived{base: base{ID: 42}}))
	require.NoError(t, err)
	assert.Equal(t, 42, v.Interface())
}

func TestField_Errors(t *testing.T) {
	f := fieldNamed(t, reflect.TypeFor[derived](), "Title")

	tests := []struct {
		name string
		recv reflect.Value
		val  reflect.Value
		want error
	}{
		{"no receiver", reflect.Value{}, reflect.ValueOf("x"), member.ErrNoReceiver},
		{"nil pointer", reflect.ValueOf((*derived)(nil)), reflect.ValueOf("x"), member.ErrNilReceiver},
		{"wrong type", reflect.ValueOf(&square{}), reflect.ValueOf("x"), member.ErrReceiverType},
		{"not addressable", reflect.ValueOf(derived{}), reflect.ValueOf("x"), member.ErrNotAddressable},
		{"wrong value type", reflect.ValueOf(&derived{}), reflect.ValueOf(1), member.ErrArgumentType},
		{"nil to string", reflect.ValueOf(&derived{}), reflect.Value{}, member.ErrArgumentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, f.Set(tt.recv, tt.val), tt.want)
		})
	}
}

func TestField_NilEmbeddedPointer(t *testing.T) {
	f := fieldNamed(t, reflect.TypeFor[outer](), "X")

	_, err := f.Get(reflect.ValueOf(outer{}))
	require.Error(t, err)

	v, err := f.Get(reflect.ValueOf(outer{inner: &inner{X: 7}}))
	require.NoError(t, err)
	assert.Equal(t, 7, v.Interface())
}

func TestField_SetNilIntoPointer(t *testing.T) {
	n := &node{node: &node{}, Val: 1}
	f := fieldNamed(t, reflect.TypeFor[node](), "node")

	require.NoError(t, f.Set(reflect.ValueOf(n), reflect.Value{}))
	assert.Nil(t, n.node)
}

func TestValueFor(t *testing.T) {
	v, err := member.ValueFor(nil, reflect.TypeFor[error]())
	require.NoError(t, err)
	assert.True(t, v.IsNil())

	v, err = member.ValueFor(reflect.ValueOf(3), reflect.TypeFor[any]())
	require.NoError(t, err)
	assert.Equal(t, 3, v.Interface())

	_, err = member.ValueFor("x", reflect.TypeFor[int]())
	assert.ErrorIs(t, err, member.ErrArgumentType)
}
