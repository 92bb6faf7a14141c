package boxed

import (
	"bytes"

	"github.com/google/uuid"
)

// UUID is a boxed RFC 4122 identifier.
type UUID uuid.UUID

// NewUUID returns a random (version 4) UUID.
func NewUUID() UUID {
	return UUID(uuid.New())
}

// ParseUUID parses the textual forms accepted by uuid.Parse.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID(u), nil
}

func (u UUID) Kind() Kind     { return KindUUID }
func (u UUID) String() string { return "Uuid(" + uuid.UUID(u).String() + ")" }
func (u UUID) Hash() uint32   { return hashBytes(u[:]) }

func (u UUID) Equals(other Value) bool {
	o, ok := other.(UUID)
	return ok && o == u
}

// Compare orders UUIDs bytewise.
func (u UUID) Compare(other Value) (Ordering, error) {
	o, ok := other.(UUID)
	if !ok {
		return Equal, Mismatch("compare", KindUUID, kindOf(other))
	}
	return Ordering(bytes.Compare(u[:], o[:])), nil
}

// Unbox returns the payload as a uuid.UUID.
func (u UUID) Unbox() (any, error) { return uuid.UUID(u), nil }
