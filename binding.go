package property

import (
	"reflect"

	"github.com/ygrebnov/property/constants"
	"github.com/ygrebnov/property/internal/core"
)

// Getter reads the current value of an attribute from obj.
// It reports false when the backing value is absent (for example, deleted).
type Getter[T, V any] func(obj *T) (V, bool)

// Setter stores value as the attribute's backing value in obj.
type Setter[T, V any] func(obj *T, value V)

// Deleter removes the attribute's backing value from obj.
type Deleter[T any] func(obj *T)

// Binding is one managed attribute of type V on struct type T.
// It is created by Define and shared by every instance of T.
type Binding[T, V any] struct {
	table     *core.Table
	name      string
	doc       string
	valueType reflect.Type

	get Getter[T, V]
	set Setter[T, V]
	del Deleter[T]
}

func (b *Binding[T, V]) Name() string { return b.name }

func (b *Binding[T, V]) Doc() string { return b.doc }

// ValueType returns the static type V, even when V is an interface.
func (b *Binding[T, V]) ValueType() reflect.Type { return b.valueType }

// Capabilities reports which access operations the binding allows.
func (b *Binding[T, V]) Capabilities() Capability {
	c := CanGet
	if b.set != nil {
		c |= CanSet
	}
	if b.del != nil {
		c |= CanDelete
	}
	return c
}

// ReadOnly reports whether the binding exposes only a getter.
func (b *Binding[T, V]) ReadOnly() bool { return b.Capabilities() == CanGet }

func (b *Binding[T, V]) Writable() bool { return b.set != nil }

func (b *Binding[T, V]) Deletable() bool { return b.del != nil }

// AttachSetter adds a setter to a binding defined without one.
// It fails with ErrConfiguration when fn is nil, a setter is already attached,
// or the class has been sealed.
func (b *Binding[T, V]) AttachSetter(fn Setter[T, V]) error {
	return b.table.Update(b.name, constants.OpAttachSetter, func() error {
		return b.attachSetter(fn)
	})
}

// AttachDeleter adds a deleter to a binding defined without one.
// It fails with ErrConfiguration when fn is nil, a deleter is already attached,
// or the class has been sealed.
func (b *Binding[T, V]) AttachDeleter(fn Deleter[T]) error {
	return b.table.Update(b.name, constants.OpAttachDeleter, func() error {
		return b.attachDeleter(fn)
	})
}

func (b *Binding[T, V]) attachSetter(fn Setter[T, V]) error {
	switch {
	case fn == nil:
		return core.Misconfigured(b.table.Type(), b.name, constants.OpAttachSetter, constants.ReasonMissingSetter)
	case b.set != nil:
		return core.Misconfigured(b.table.Type(), b.name, constants.OpAttachSetter, constants.ReasonSetterAttached)
	}
	b.set = fn
	return nil
}

func (b *Binding[T, V]) attachDeleter(fn Deleter[T]) error {
	switch {
	case fn == nil:
		return core.Misconfigured(b.table.Type(), b.name, constants.OpAttachDeleter, constants.ReasonMissingDeleter)
	case b.del != nil:
		return core.Misconfigured(b.table.Type(), b.name, constants.OpAttachDeleter, constants.ReasonDeleterAttached)
	}
	b.del = fn
	return nil
}

// Get invokes the getter on obj. It fails with ErrAttributeUnavailable when
// the getter reports the backing value absent.
// The first access through a binding seals its class.
func (b *Binding[T, V]) Get(obj *T) (V, error) {
	var zero V
	if obj == nil {
		return zero, core.NilObject(b.table.Type(), b.name, constants.OpGet)
	}
	b.table.Seal()

	v, ok := b.get(obj)
	if !ok {
		return zero, core.Unavailable(b.table.Type(), b.name, constants.OpGet, constants.ReasonValueAbsent)
	}
	return v, nil
}

// Set invokes the setter on obj. It fails with ErrReadOnly, leaving obj
// untouched, when no setter is attached.
func (b *Binding[T, V]) Set(obj *T, value V) error {
	if obj == nil {
		return core.NilObject(b.table.Type(), b.name, constants.OpSet)
	}
	b.table.Seal()

	if b.set == nil {
		return core.ReadOnly(b.table.Type(), b.name, constants.OpSet, b.Capabilities().String())
	}
	b.set(obj, value)
	return nil
}

// Delete invokes the deleter on obj. It fails with ErrReadOnly, leaving obj
// untouched, when no deleter is attached.
func (b *Binding[T, V]) Delete(obj *T) error {
	if obj == nil {
		return core.NilObject(b.table.Type(), b.name, constants.OpDelete)
	}
	b.table.Seal()

	if b.del == nil {
		return core.ReadOnly(b.table.Type(), b.name, constants.OpDelete, b.Capabilities().String())
	}
	b.del(obj)
	return nil
}

// accessor adapts a Binding to core.Accessor for name-based dispatch.
type accessor[T, V any] struct {
	b *Binding[T, V]
}

func (a accessor[T, V]) Name() string            { return a.b.name }
func (a accessor[T, V]) ValueType() reflect.Type { return a.b.valueType }
func (a accessor[T, V]) Doc() string             { return a.b.doc }
func (a accessor[T, V]) CanSet() bool            { return a.b.set != nil }
func (a accessor[T, V]) CanDelete() bool         { return a.b.del != nil }

func (a accessor[T, V]) GetAny(obj any) (any, error) {
	return a.b.Get(obj.(*T))
}

func (a accessor[T, V]) SetAny(obj any, value any) error {
	// A binding without a setter rejects every value, well-typed or not.
	if a.b.set == nil {
		return core.ReadOnly(a.b.table.Type(), a.b.name, constants.OpSet, a.b.Capabilities().String())
	}
	v, ok := assign[V](value)
	if !ok {
		return core.ValueTypeMismatch(a.b.table.Type(), a.b.name, constants.OpSet, a.b.valueType, reflect.TypeOf(value))
	}
	return a.b.Set(obj.(*T), v)
}

func (a accessor[T, V]) DeleteAny(obj any) error {
	return a.b.Delete(obj.(*T))
}

// assign converts a dynamically typed value to V.
// Accepted: values of type V, values assignable to V, and nil for nillable V.
func assign[V any](value any) (V, bool) {
	if v, ok := value.(V); ok {
		return v, true
	}

	var zero V
	want := reflect.TypeOf((*V)(nil)).Elem()
	if value == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, true
		default:
			return zero, false
		}
	}

	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(want) {
		return zero, false
	}
	return rv.Convert(want).Interface().(V), true
}
