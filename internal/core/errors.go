package core

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/property/errors"
)

// Misconfigured reports an invalid definition of attribute name on typ.
func Misconfigured(typ reflect.Type, name, op, reason string) error {
	return errorc.With(
		errors.ErrConfiguration,
		errorc.String(errors.ErrorFieldObjectType, typeName(typ)),
		errorc.String(errors.ErrorFieldAttributeName, name),
		errorc.String(errors.ErrorFieldOp, op),
		errorc.String(errors.ErrorFieldReason, reason),
	)
}

// Unavailable reports a get (or set/delete) on an attribute that cannot be read.
func Unavailable(typ reflect.Type, name, op, reason string) error {
	return errorc.With(
		errors.ErrAttributeUnavailable,
		errorc.String(errors.ErrorFieldObjectType, typeName(typ)),
		errorc.String(errors.ErrorFieldAttributeName, name),
		errorc.String(errors.ErrorFieldOp, op),
		errorc.String(errors.ErrorFieldReason, reason),
	)
}

// ReadOnly reports a set or delete on a binding without that capability.
func ReadOnly(typ reflect.Type, name, op, capabilities string) error {
	return errorc.With(
		errors.ErrReadOnly,
		errorc.String(errors.ErrorFieldObjectType, typeName(typ)),
		errorc.String(errors.ErrorFieldAttributeName, name),
		errorc.String(errors.ErrorFieldOp, op),
		errorc.String(errors.ErrorFieldCapabilities, capabilities),
	)
}

// ValueTypeMismatch reports a dynamically typed value that V cannot hold.
func ValueTypeMismatch(typ reflect.Type, name, op string, want, got reflect.Type) error {
	return errorc.With(
		errors.ErrValueType,
		errorc.String(errors.ErrorFieldObjectType, typeName(typ)),
		errorc.String(errors.ErrorFieldAttributeName, name),
		errorc.String(errors.ErrorFieldOp, op),
		errorc.String(errors.ErrorFieldValueType, typeName(want)),
		errorc.String(errors.ErrorFieldGivenType, typeName(got)),
	)
}

// NilObject reports an operation attempted on a nil instance.
func NilObject(typ reflect.Type, name, op string) error {
	return errorc.With(
		errors.ErrNilObject,
		errorc.String(errors.ErrorFieldObjectType, typeName(typ)),
		errorc.String(errors.ErrorFieldAttributeName, name),
		errorc.String(errors.ErrorFieldOp, op),
	)
}

func typeName(typ reflect.Type) string {
	if typ == nil {
		return "<nil>"
	}
	return typ.String()
}
