package hashing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithm is returned when no digest provider exists for the requested algorithm.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// ErrInvalidObjectType is returned for type tags that are not Git object types.
	ErrInvalidObjectType = errors.New("invalid object type")

	// ErrEncoding is wrapped by every EncodingError.
	ErrEncoding = errors.New("content not representable as UTF-8")
)

// EncodingError reports text input that cannot be converted to bytes under the assumed encoding.
type EncodingError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: invalid byte sequence at offset %d", ErrEncoding, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}
