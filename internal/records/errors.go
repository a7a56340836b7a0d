package records

import "errors"

var (
	// ErrUnknownType is returned when a decoded record names an unsupported type.
	ErrUnknownType = errors.New("unknown record type")
	// ErrMalformedRecord is returned when a decoded record is missing a
	// required field or carries a field its type does not allow.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidAddress is returned when an address cannot be represented as
	// a DNS resource record.
	ErrInvalidAddress = errors.New("invalid address")
)
