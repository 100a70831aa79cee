package objects

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KostasZigo/gitsha/internal/hashing"
)

// createBlob creates blob from content and fails test on error.
func createBlob(t *testing.T, content []byte) *Blob {
	t.Helper()

	blob, err := NewBlob(content)
	require.NoError(t, err, "Failed to create blob")

	return blob
}

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := hashing.HashObject(hashing.BlobObjectType, content)
	require.NoError(t, err, "Hash computation failed")
	require.Equal(t, expectedHash, blob.Hash())
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	require.Equal(t, len(expectedContent), blob.Size(), "size mismatch")
	require.Equal(t, string(expectedContent), string(blob.Content()), "content mismatch")
}
