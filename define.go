package property

import (
	"reflect"

	"github.com/ygrebnov/property/constants"
	"github.com/ygrebnov/property/internal/core"
)

// Define registers a binding named name on class c.
//
// getter is required. setter and deleter may be nil, in which case the
// capability can still be attached later with AttachSetter or AttachDeleter,
// as long as the class has not been sealed. Supplying all three here and
// attaching them one by one produce the same binding.
//
// Define fails with ErrConfiguration if c is nil, name is empty, getter is
// nil, name is already bound on c, or c is sealed.
func Define[T, V any](
	c *Class[T],
	name string,
	getter Getter[T, V],
	setter Setter[T, V],
	deleter Deleter[T],
	opts ...Option,
) (*Binding[T, V], error) {
	if c == nil || c.table == nil {
		return nil, core.Misconfigured(reflect.TypeOf((*T)(nil)).Elem(), name, constants.OpDefine, constants.ReasonNilClass)
	}
	typ := c.table.Type()
	if name == "" {
		return nil, core.Misconfigured(typ, name, constants.OpDefine, constants.ReasonEmptyName)
	}
	if getter == nil {
		return nil, core.Misconfigured(typ, name, constants.OpDefine, constants.ReasonMissingGetter)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := &Binding[T, V]{
		table: c.table,
		name:  name,
		doc:   o.doc,
		// Capture the static type of V even when V is an interface.
		valueType: reflect.TypeOf((*V)(nil)).Elem(),
		get:       getter,
	}
	if setter != nil {
		if err := b.attachSetter(setter); err != nil {
			return nil, err
		}
	}
	if deleter != nil {
		if err := b.attachDeleter(deleter); err != nil {
			return nil, err
		}
	}

	if err := c.table.Add(accessor[T, V]{b: b}); err != nil {
		return nil, err
	}
	return b, nil
}

// MustDefine is like Define but panics on error. It is meant for package-level
// class definitions where a failure is a programming error.
func MustDefine[T, V any](
	c *Class[T],
	name string,
	getter Getter[T, V],
	setter Setter[T, V],
	deleter Deleter[T],
	opts ...Option,
) *Binding[T, V] {
	b, err := Define(c, name, getter, setter, deleter, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Option configures a binding at definition time.
type Option func(*options)

type options struct {
	doc string
}

// WithDoc sets the binding's documentation string, reported by Describe.
func WithDoc(doc string) Option {
	return func(o *options) { o.doc = doc }
}
