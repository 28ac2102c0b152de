package constants

const Namespace = "property"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Operation names reported in error context.
const (
	OpDefine        = "define"
	OpAttachSetter  = "attach_setter"
	OpAttachDeleter = "attach_deleter"
	OpGet           = "get"
	OpSet           = "set"
	OpDelete        = "delete"
	OpBind          = "bind"
)

// Reasons reported with ErrConfiguration and ErrAttributeUnavailable.
const (
	ReasonNilClass        = "nil class"
	ReasonEmptyName       = "empty attribute name"
	ReasonMissingGetter   = "missing getter"
	ReasonMissingSetter   = "nil setter"
	ReasonMissingDeleter  = "nil deleter"
	ReasonDuplicateName   = "attribute already bound"
	ReasonSetterAttached  = "setter already attached"
	ReasonDeleterAttached = "deleter already attached"
	ReasonSealed          = "class definition is sealed"
	ReasonNotBound        = "no binding for attribute"
	ReasonValueAbsent     = "backing value is absent"
)

// Capability names as rendered by property.Capability.String.
const (
	CapabilityNone            = "none"
	CapabilityReadOnly        = "read-only"
	CapabilityReadWrite       = "read/write"
	CapabilityReadDelete      = "read/delete"
	CapabilityReadWriteDelete = "read/write/delete"
)
