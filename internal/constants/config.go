package constants

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	RootCmdName = "gitsha"
)

// DefaultContent is the literal gitsha hashes as a blob.
const DefaultContent = "foobar\n"

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40

	// SHA256ByteLength is byte length of SHA-256 hash (32 bytes).
	SHA256ByteLength = 32

	// SHA256StringLength is hex string length of SHA-256 hash (64 characters).
	SHA256StringLength = 64
)

// Object format constants.
const (
	// HeaderSeparator separates the type tag from the decimal size ("blob 7").
	HeaderSeparator = ' '

	// NullByte separates header from content in Git objects.
	NullByte = '\x00'
)
