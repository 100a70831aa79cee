// Package hashing computes Git object identifiers: the digest of an object's
// type tag, byte length and content, rendered as lowercase hex.
package hashing

import (
	"crypto"
	_ "crypto/sha1"
	_ "crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/KostasZigo/gitsha/internal/constants"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
	TagObjectType    ObjectType = "tag"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType, CommitObjectType, TagObjectType:
		return true
	default:
		return false
	}
}

// Algorithm names the digest used to identify objects.
type Algorithm string

const (
	// SHA1 is Git's default object format.
	SHA1 Algorithm = "sha1"

	// SHA256 is Git's sha256 object format. Objects are framed identically.
	SHA256 Algorithm = "sha256"
)

var providers = map[Algorithm]crypto.Hash{
	SHA1:   crypto.SHA1,
	SHA256: crypto.SHA256,
}

// ParseAlgorithm resolves an algorithm name to a usable Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(name)
	if _, err := algo.provider(); err != nil {
		return "", err
	}
	return algo, nil
}

func (a Algorithm) provider() (crypto.Hash, error) {
	h, ok := providers[a]
	if !ok || !h.Available() {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
	return h, nil
}

// Size returns the raw digest length in bytes, or 0 for unknown algorithms.
func (a Algorithm) Size() int {
	h, err := a.provider()
	if err != nil {
		return 0
	}
	return h.Size()
}

// HexSize returns the length of the rendered identifier.
func (a Algorithm) HexSize() int {
	return hex.EncodedLen(a.Size())
}

// Frame builds the hashed representation of an object.
// format: "<type> <size>\0<content>", size being the byte length of content
func Frame(objectType ObjectType, content []byte) []byte {
	size := strconv.Itoa(len(content))

	framed := make([]byte, 0, len(objectType)+len(size)+2+len(content))
	framed = append(framed, string(objectType)...)
	framed = append(framed, constants.HeaderSeparator)
	framed = append(framed, size...)
	framed = append(framed, constants.NullByte)
	return append(framed, content...)
}

// HashObject calculates the SHA-1 identifier for an object of the given type.
func HashObject(objectType ObjectType, content []byte) (string, error) {
	return HashObjectWith(SHA1, objectType, content)
}

// HashObjectWith calculates the identifier for an object using algo.
// Each digest byte is encoded as two hex digits so leading zero bytes survive.
func HashObjectWith(algo Algorithm, objectType ObjectType, content []byte) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("%w: %q - hash not computed", ErrInvalidObjectType, string(objectType))
	}

	provider, err := algo.provider()
	if err != nil {
		return "", err
	}

	digest := provider.New()
	if _, err := digest.Write(Frame(objectType, content)); err != nil {
		return "", fmt.Errorf("failed to write %s object to %s digest: %w", objectType, algo, err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// HashBlob calculates the SHA-1 identifier for file content.
func HashBlob(content []byte) (string, error) {
	return HashObject(BlobObjectType, content)
}

// HashText hashes text after checking it is valid UTF-8.
func HashText(objectType ObjectType, text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", &EncodingError{Offset: invalidOffset(text)}
	}
	return HashObject(objectType, []byte(text))
}

func invalidOffset(text string) int {
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size <= 1 {
				return i
			}
		}
	}
	return len(text)
}
