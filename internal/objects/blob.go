package objects

import (
	"fmt"

	"github.com/KostasZigo/gitsha/internal/hashing"
)

// Blob is raw file content addressed by its SHA-1 identifier.
type Blob struct {
	content []byte
	hash    string
}

var _ Object = (*Blob)(nil)

func NewBlob(content []byte) (*Blob, error) {
	hash, err := hashing.HashBlob(content)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hash for blob: %w", err)
	}
	return &Blob{
		content: content,
		hash:    hash,
	}, nil
}

func (b *Blob) Type() hashing.ObjectType {
	return hashing.BlobObjectType
}

func (b *Blob) Hash() string {
	return b.hash
}

func (b *Blob) Content() []byte {
	return b.content
}

// Size is the byte length written in the header.
func (b *Blob) Size() int {
	return len(b.content)
}

func (b *Blob) Header() string {
	return fmt.Sprintf("%s %d\x00", b.Type(), b.Size())
}

func (b *Blob) Data() []byte {
	return hashing.Frame(b.Type(), b.content)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{hash: %s, size: %d bytes}", b.hash, b.Size())
}
