package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized
// through one of the constructor functions. It is returned when validating a
// zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is a value object that represents a universally unique identifier.
// It wraps the github.com/google/uuid implementation so the domain model does
// not depend on the library directly.
//
// The zero value of UUID is invalid and must be constructed using NewUUID or
// UUIDFromString. UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	id := kernel.NewUUID()
//
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is the primary way to
// create identifiers for orders and activity entries.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation. It is typically
// used when reconstructing entities from persistence or when parsing
// identifiers arriving from external systems.
//
// Returns an error if the string is not a valid UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard textual representation of the UUID
// ("xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"). It implements fmt.Stringer and is
// used when serializing identifiers to JSON and when logging.
func (u UUID) String() string {
	return u.id.String()
}

// MarshalText implements encoding.TextMarshaler so UUIDs serialize to their
// standard textual form in JSON.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The parsed UUID must be
// valid and non-zero.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := UUIDFromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// IsEqual compares two UUIDs by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID was created through a constructor. The zero
// UUID (all zero bytes) is considered unconstructed and invalid.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
