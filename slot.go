package property

// Slot holds a backing value together with an explicit present/absent marker,
// so that "deleted" can be told apart from a zero value.
// The zero Slot is absent.
type Slot[V any] struct {
	value   V
	present bool
}

// NewSlot returns a present Slot holding v.
func NewSlot[V any](v V) Slot[V] {
	return Slot[V]{value: v, present: true}
}

// Get returns the held value and whether it is present.
func (s *Slot[V]) Get() (V, bool) {
	return s.value, s.present
}

func (s *Slot[V]) Set(v V) {
	s.value = v
	s.present = true
}

// Clear marks the slot absent and drops the held value.
func (s *Slot[V]) Clear() {
	var zero V
	s.value = zero
	s.present = false
}

func (s *Slot[V]) IsSet() bool { return s.present }

// SlotGetter returns a Getter reading the slot selected by field.
func SlotGetter[T, V any](field func(obj *T) *Slot[V]) Getter[T, V] {
	return func(obj *T) (V, bool) { return field(obj).Get() }
}

// SlotSetter returns a Setter writing the slot selected by field.
func SlotSetter[T, V any](field func(obj *T) *Slot[V]) Setter[T, V] {
	return func(obj *T, v V) { field(obj).Set(v) }
}

// SlotDeleter returns a Deleter clearing the slot selected by field.
func SlotDeleter[T, V any](field func(obj *T) *Slot[V]) Deleter[T] {
	return func(obj *T) { field(obj).Clear() }
}

// Value returns a Getter over a plain field. The value is always present.
func Value[T, V any](field func(obj *T) V) Getter[T, V] {
	return func(obj *T) (V, bool) { return field(obj), true }
}
