package property

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/property/constants"
	"github.com/ygrebnov/property/errors"
	"github.com/ygrebnov/property/internal/core"
)

// Class is the set of attribute bindings declared for struct type T.
// Bindings are added with Define while the class is open; the first access
// through the class (or an explicit Seal) ends the definition phase.
// A Class is shared by all instances of T; the values live in the instances.
// Only NewClass creates a usable Class; access through a zero Class fails
// with ErrConfiguration.
type Class[T any] struct {
	table *core.Table
}

// NewClass creates an open Class for the struct type T.
func NewClass[T any]() (*Class[T], error) {
	// The zero value of *T is never dereferenced.
	var zero *T
	typ := reflect.TypeOf(zero).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldObjectType, typ.String()),
		)
	}
	return &Class[T]{table: core.NewTable(typ)}, nil
}

// Seal ends the definition phase: Define, AttachSetter and AttachDeleter
// fail afterwards. Sealing is idempotent and happens implicitly on first access.
func (c *Class[T]) Seal() {
	if c.usable() {
		c.table.Seal()
	}
}

func (c *Class[T]) Sealed() bool { return c.usable() && c.table.Sealed() }

// Names returns the bound attribute names in definition order.
func (c *Class[T]) Names() []string {
	if !c.usable() {
		return nil
	}
	return c.table.Names()
}

func (c *Class[T]) usable() bool { return c != nil && c.table != nil }

// check rejects access through a zero Class and nil objects.
func (c *Class[T]) check(obj *T, name, op string) error {
	if !c.usable() {
		return core.Misconfigured(reflect.TypeOf((*T)(nil)).Elem(), name, op, constants.ReasonNilClass)
	}
	if obj == nil {
		return core.NilObject(c.table.Type(), name, op)
	}
	return nil
}

// Get returns the value of attribute name on obj.
func (c *Class[T]) Get(obj *T, name string) (any, error) {
	if err := c.check(obj, name, constants.OpGet); err != nil {
		return nil, err
	}
	return c.table.Get(obj, name)
}

// Set stores value through the setter bound to name. value must be
// assignable to the binding's value type.
func (c *Class[T]) Set(obj *T, name string, value any) error {
	if err := c.check(obj, name, constants.OpSet); err != nil {
		return err
	}
	return c.table.Set(obj, name, value)
}

// Delete removes the backing value of attribute name through its deleter.
func (c *Class[T]) Delete(obj *T, name string) error {
	if err := c.check(obj, name, constants.OpDelete); err != nil {
		return err
	}
	return c.table.Delete(obj, name)
}

// Info describes one binding of a class.
type Info struct {
	Name         string
	ValueType    reflect.Type
	Capabilities Capability
	Doc          string
}

// Lookup returns the description of the binding named name.
func (c *Class[T]) Lookup(name string) (Info, bool) {
	if !c.usable() {
		return Info{}, false
	}
	a, ok := c.table.Lookup(name)
	if !ok {
		return Info{}, false
	}
	return infoOf(a), true
}

// Describe lists every binding in definition order.
func (c *Class[T]) Describe() []Info {
	names := c.Names()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		if a, ok := c.table.Lookup(name); ok {
			infos = append(infos, infoOf(a))
		}
	}
	return infos
}

func infoOf(a core.Accessor) Info {
	caps := CanGet
	if a.CanSet() {
		caps |= CanSet
	}
	if a.CanDelete() {
		caps |= CanDelete
	}
	return Info{
		Name:         a.Name(),
		ValueType:    a.ValueType(),
		Capabilities: caps,
		Doc:          a.Doc(),
	}
}

// GetAs is Get with the result converted to V. It fails with ErrValueType
// when the binding's values are not of type V.
func GetAs[V, T any](c *Class[T], obj *T, name string) (V, error) {
	var zero V
	v, err := c.Get(obj, name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(V)
	if !ok {
		return zero, core.ValueTypeMismatch(
			c.table.Type(), name, constants.OpGet,
			reflect.TypeOf((*V)(nil)).Elem(), reflect.TypeOf(v),
		)
	}
	return typed, nil
}
