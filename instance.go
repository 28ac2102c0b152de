package property

import (
	"github.com/ygrebnov/property/constants"
)

// Instance is a struct pointer viewed through its Class, so attributes can be
// accessed by name without passing the object around.
type Instance[T any] struct {
	class *Class[T]
	obj   *T
}

// Instance binds obj to c. It fails with ErrNilObject when obj is nil.
func (c *Class[T]) Instance(obj *T) (*Instance[T], error) {
	if err := c.check(obj, "", constants.OpBind); err != nil {
		return nil, err
	}
	return &Instance[T]{class: c, obj: obj}, nil
}

func (i *Instance[T]) Object() *T { return i.obj }

func (i *Instance[T]) Class() *Class[T] { return i.class }

func (i *Instance[T]) Get(name string) (any, error) { return i.class.Get(i.obj, name) }

func (i *Instance[T]) Set(name string, value any) error { return i.class.Set(i.obj, name, value) }

func (i *Instance[T]) Delete(name string) error { return i.class.Delete(i.obj, name) }
