package property

import "github.com/ygrebnov/property/constants"

// Capability is the set of access operations a binding allows.
type Capability uint8

const (
	CanGet Capability = 1 << iota
	CanSet
	CanDelete
)

// Has reports whether every operation in o is allowed by c.
func (c Capability) Has(o Capability) bool { return c&o == o }

func (c Capability) String() string {
	switch c {
	case CanGet:
		return constants.CapabilityReadOnly
	case CanGet | CanSet:
		return constants.CapabilityReadWrite
	case CanGet | CanDelete:
		return constants.CapabilityReadDelete
	case CanGet | CanSet | CanDelete:
		return constants.CapabilityReadWriteDelete
	default:
		return constants.CapabilityNone
	}
}
