package objects

import "github.com/KostasZigo/gitsha/internal/hashing"

// Object represents any Git object that can be identified by its hash
type Object interface {
	// Type returns the tag framed in front of the content
	Type() hashing.ObjectType

	// Hash returns the hex identifier of the object
	Hash() string

	// Data returns the complete object data including header
	// Format: "<type> <size>\0<content>"
	Data() []byte
}
