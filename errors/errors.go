package errors

import (
	"github.com/ygrebnov/errorc"
	"github.com/ygrebnov/keys"

	"github.com/ygrebnov/property/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Error categories. Every error returned by the property packages wraps exactly
// one of these; use errors.Is to match.
var (
	// ErrConfiguration is returned while defining a class: invalid or duplicate
	// declarations, or changes after the class has been sealed.
	ErrConfiguration = namespace.NewError("invalid attribute definition")
	// ErrReadOnly is returned by set or delete when the binding lacks the
	// corresponding capability. The backing value is left untouched.
	ErrReadOnly = namespace.NewError("attribute is read-only")
	// ErrAttributeUnavailable is returned by get for an unbound name or a
	// binding whose backing value is currently absent.
	ErrAttributeUnavailable = namespace.NewError("attribute unavailable")
	ErrValueType            = namespace.NewError("value type mismatch")
	ErrNilObject            = namespace.NewError("nil object")
	ErrNotStruct            = namespace.NewError("class type must be a struct")
)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentAttribute keys.Segment = "attribute"
)

func newKey(name string, segments ...keys.Segment) keys.Key {
	return keys.New(name, keys.WithSegments(constants.ErrorFieldNamespace), keys.WithSegments(segments...))
}

// Exported structured error field keys
var (
	ErrorFieldAttributeName = newKey("name", keySegmentAttribute)         // property.attribute.name
	ErrorFieldValueType     = newKey("value_type", keySegmentAttribute)   // property.attribute.value_type
	ErrorFieldGivenType     = newKey("given_type", keySegmentAttribute)   // property.attribute.given_type
	ErrorFieldCapabilities  = newKey("capabilities", keySegmentAttribute) // property.attribute.capabilities
)

var (
	ErrorFieldObjectType = newKey("object_type")
	ErrorFieldOp         = newKey("op")
	ErrorFieldReason     = newKey("reason")
)
