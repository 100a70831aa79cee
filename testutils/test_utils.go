package testutils

import (
	"crypto/rand"
	"testing"
)

// RandomBytes generates n random bytes
func RandomBytes(n int) []byte {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return bytes
}

// AssertHexDigest checks that hash is exactly length lowercase hex characters.
// Fails the test on any uppercase letter, non-hex character or length mismatch.
func AssertHexDigest(t *testing.T, hash string, length int) {
	t.Helper()

	if len(hash) != length {
		t.Errorf("Expected %d-char hash, got %d chars: %q", length, len(hash), hash)
		return
	}

	for i, c := range hash {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			t.Errorf("Expected lowercase hex digit at index %d of %q, got %q", i, hash, c)
			return
		}
	}
}
