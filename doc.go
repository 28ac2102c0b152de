// Package property provides computed attributes for Go structs: named
// attributes whose reads, writes and deletes are routed through callbacks
// declared once per type.
//
// A Class[T] holds the bindings of struct type T. Each binding has a required
// getter and an optional setter and deleter; which ones are present decides
// whether the attribute is read-only, read/write or read/write/delete.
//
//	type Tips struct {
//		a string
//		b property.Slot[string]
//	}
//
//	tips, _ := property.NewClass[Tips]()
//	property.MustDefine(tips, "a", property.Value(func(t *Tips) string { return t.a }), nil, nil)
//
//	b := property.MustDefine(tips, "b", property.SlotGetter(func(t *Tips) *property.Slot[string] { return &t.b }), nil, nil)
//	_ = b.AttachSetter(property.SlotSetter(func(t *Tips) *property.Slot[string] { return &t.b }))
//	_ = b.AttachDeleter(property.SlotDeleter(func(t *Tips) *property.Slot[string] { return &t.b }))
//
// Bindings can be declared incrementally, as above, or all at once by passing
// the setter and deleter to Define. The first access through a class seals it;
// no binding can be added or extended afterwards.
//
// Errors wrap one of the categories in package errors: ErrConfiguration for
// bad definitions, ErrReadOnly for a missing setter or deleter and
// ErrAttributeUnavailable for unbound or deleted attributes.
package property
