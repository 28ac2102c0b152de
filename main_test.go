package property

import (
	"errors"
	"strings"
	"testing"

	"github.com/ygrebnov/keys"

	propertyerrors "github.com/ygrebnov/property/errors"
)

// tips is the fixture type used across tests: a is a plain field exposed
// read-only, b and c are slot-backed read/write/delete attributes.
type tips struct {
	a string
	b Slot[string]
	c Slot[string]
}

func newTips() *tips {
	return &tips{a: "A", b: NewSlot("B"), c: NewSlot("C")}
}

func fieldB(p *tips) *Slot[string] { return &p.b }

func fieldC(p *tips) *Slot[string] { return &p.c }

func getA(p *tips) (string, bool) { return p.a, true }

// newTipsClass defines a (read-only), b (incremental) and c (one-shot).
func newTipsClass(t *testing.T) (*Class[tips], *Binding[tips, string], *Binding[tips, string], *Binding[tips, string]) {
	t.Helper()

	c, err := NewClass[tips]()
	if err != nil {
		t.Fatalf("NewClass error: %v", err)
	}

	a, err := Define(c, "a", getA, nil, nil)
	if err != nil {
		t.Fatalf("Define(a) error: %v", err)
	}

	b, err := Define(c, "b", SlotGetter(fieldB), nil, nil)
	if err != nil {
		t.Fatalf("Define(b) error: %v", err)
	}
	if err := b.AttachSetter(SlotSetter(fieldB)); err != nil {
		t.Fatalf("AttachSetter(b) error: %v", err)
	}
	if err := b.AttachDeleter(SlotDeleter(fieldB)); err != nil {
		t.Fatalf("AttachDeleter(b) error: %v", err)
	}

	cc, err := Define(c, "c", SlotGetter(fieldC), SlotSetter(fieldC), SlotDeleter(fieldC),
		WithDoc("if specified, the getter's doc is overwritten by this."))
	if err != nil {
		t.Fatalf("Define(c) error: %v", err)
	}

	return c, a, b, cc
}

// assertErrorHas checks the sentinel of err and the "key: value" pairs
// rendered by errorc.
func assertErrorHas(t *testing.T, err, wantSentinel error, kv map[keys.Key]string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, wantSentinel) {
		t.Fatalf("expected sentinel %v, got %v", wantSentinel, err)
	}
	msg := err.Error()
	for k, v := range kv {
		needle := string(k) + ": " + v
		if !strings.Contains(msg, needle) {
			t.Fatalf("expected %q in error, got %q", needle, msg)
		}
	}
}

func reasonIs(reason string) map[keys.Key]string {
	return map[keys.Key]string{propertyerrors.ErrorFieldReason: reason}
}
