package member

import (
	"fmt"
	"reflect"
	"slices"
	"unsafe"
)

// Field describes a struct field reachable from an owner type.
type Field struct {
	owner     reflect.Type // struct type the index path starts at
	declaring reflect.Type // struct type that declares the field
	field     reflect.StructField
	index     []int
	mods      Modifier
}

func newField(owner, declaring reflect.Type, sf reflect.StructField, path []int) *Field {
	index := append(slices.Clone(path), sf.Index...)

	var mods Modifier
	if sf.IsExported() {
		mods |= Exported
	}

	if sf.Anonymous {
		mods |= Embedded
	}

	if len(path) > 0 {
		mods |= Promoted
	}

	return &Field{
		owner:     owner,
		declaring: declaring,
		field:     sf,
		index:     index,
		mods:      mods,
	}
}

func (f *Field) Kind() Kind                  { return KindField }
func (f *Field) Name() string                { return f.field.Name }
func (f *Field) DeclaringType() reflect.Type { return f.declaring }
func (f *Field) Modifiers() Modifier         { return f.mods }

// Owner returns the struct type the field was collected for.
func (f *Field) Owner() reflect.Type { return f.owner }

// Type returns the declared value type of the field.
func (f *Field) Type() reflect.Type { return f.field.Type }

// Tag returns the struct tag of the field.
func (f *Field) Tag() reflect.StructTag { return f.field.Tag }

// Index returns a copy of the index path from the owner type.
func (f *Field) Index() []int { return slices.Clone(f.index) }

// StructField returns the reflect descriptor of the field.
func (f *Field) StructField() reflect.StructField { return f.field }

func (f *Field) String() string {
	return fmt.Sprintf("%s.%s %s", typeName(f.declaring), f.field.Name, typeName(f.field.Type))
}

// Get reads the field from recv, which must be the owner struct or a
// pointer to it. Unexported fields are readable; the returned value never
// carries the read-only flag, so it can be stored elsewhere.
func (f *Field) Get(recv reflect.Value) (v reflect.Value, err error) {
	defer recoverInto(&err)

	recv, err = f.receiver(recv)
	if err != nil {
		return reflect.Value{}, err
	}

	if !recv.CanAddr() {
		tmp := reflect.New(recv.Type()).Elem()
		tmp.Set(recv)
		recv = tmp
	}

	v, err = recv.FieldByIndexErr(f.index)
	if err != nil {
		return reflect.Value{}, err
	}

	return expose(v), nil
}

// Set writes val into the field of recv. The receiver must be addressable,
// that is a pointer to the owner struct or a value reached through one.
//
// Unexported fields are written through an alias of their storage that
// bypasses the read-only flag. The write is a plain memory store: other
// goroutines accessing the same field concurrently observe it without any
// synchronization.
func (f *Field) Set(recv, val reflect.Value) (err error) {
	defer recoverInto(&err)

	recv, err = f.receiver(recv)
	if err != nil {
		return err
	}

	target, err := recv.FieldByIndexErr(f.index)
	if err != nil {
		return err
	}

	if !target.CanAddr() {
		return fmt.Errorf("%w: cannot set %s", ErrNotAddressable, f)
	}

	val, err = Assignable(val, f.field.Type)
	if err != nil {
		return err
	}

	expose(target).Set(val)

	return nil
}

// receiver dereferences recv down to the owner struct.
func (f *Field) receiver(recv reflect.Value) (reflect.Value, error) {
	if !recv.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoReceiver, f)
	}

	for recv.Type() != f.owner {
		switch recv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if recv.IsNil() {
				return reflect.Value{}, fmt.Errorf("%w: %s", ErrNilReceiver, f)
			}

			recv = recv.Elem()
		default:
			return reflect.Value{}, fmt.Errorf("%w: %s is not %s", ErrReceiverType, recv.Type(), f.owner)
		}
	}

	return recv, nil
}

// expose strips the read-only flag that reflect puts on values obtained
// through unexported fields. Non-addressable values are returned unchanged.
func expose(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}
