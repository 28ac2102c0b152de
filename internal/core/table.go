package core

import (
	"reflect"
	"slices"
	"sync"

	"github.com/ygrebnov/property/constants"
)

// Accessor is the type-erased view of a single binding stored in a Table.
// obj is always a non-nil pointer to the table's struct type.
type Accessor interface {
	Name() string
	ValueType() reflect.Type
	Doc() string
	CanSet() bool
	CanDelete() bool
	GetAny(obj any) (any, error)
	SetAny(obj any, value any) error
	DeleteAny(obj any) error
}

// Table maps attribute names to accessors for one struct type.
// It is open for definitions until sealed; once sealed it is read-only.
type Table struct {
	mu        sync.RWMutex
	typ       reflect.Type
	accessors map[string]Accessor
	order     []string // definition order
	sealed    bool
}

// NewTable creates an empty, open Table for typ.
func NewTable(typ reflect.Type) *Table {
	return &Table{
		typ:       typ,
		accessors: make(map[string]Accessor),
	}
}

func (t *Table) Type() reflect.Type {
	return t.typ
}

// Add registers a under a.Name(). It fails if the table is sealed or the
// name is already bound.
func (t *Table) Add(a Accessor) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	name := a.Name()
	if t.sealed {
		return Misconfigured(t.typ, name, constants.OpDefine, constants.ReasonSealed)
	}
	if _, exists := t.accessors[name]; exists {
		return Misconfigured(t.typ, name, constants.OpDefine, constants.ReasonDuplicateName)
	}

	t.accessors[name] = a
	t.order = append(t.order, name)
	return nil
}

// Update runs fn under the write lock, provided the table is still open.
// Bindings use it to attach capabilities after registration.
func (t *Table) Update(name, op string, fn func() error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sealed {
		return Misconfigured(t.typ, name, op, constants.ReasonSealed)
	}
	return fn()
}

// Seal ends the definition phase. It is idempotent.
func (t *Table) Seal() {
	t.mu.Lock()
	t.sealed = true
	t.mu.Unlock()
}

func (t *Table) Sealed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sealed
}

func (t *Table) Lookup(name string) (Accessor, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, ok := t.accessors[name]
	return a, ok
}

// Names returns bound attribute names in definition order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.order)
}

// Get dispatches to the getter bound to name.
func (t *Table) Get(obj any, name string) (any, error) {
	a, err := t.resolve(name, constants.OpGet)
	if err != nil {
		return nil, err
	}
	return a.GetAny(obj)
}

// Set dispatches to the setter bound to name.
func (t *Table) Set(obj any, name string, value any) error {
	a, err := t.resolve(name, constants.OpSet)
	if err != nil {
		return err
	}
	return a.SetAny(obj, value)
}

// Delete dispatches to the deleter bound to name.
func (t *Table) Delete(obj any, name string) error {
	a, err := t.resolve(name, constants.OpDelete)
	if err != nil {
		return err
	}
	return a.DeleteAny(obj)
}

// resolve seals the table and returns the accessor bound to name.
func (t *Table) resolve(name, op string) (Accessor, error) {
	t.Seal()
	a, ok := t.Lookup(name)
	if !ok {
		return nil, Unavailable(t.typ, name, op, constants.ReasonNotBound)
	}
	return a, nil
}
