package models

// -----------------------------------------------------------------------------

// CodePage converts text to and from a single-byte character encoding.
type CodePage interface {
	// Name returns the code page name.
	Name() string

	// Encode converts text into one byte per character. It fails if a character has no
	// representation in the code page.
	Encode(text string) ([]byte, error)
	// Decode converts bytes back into text. It fails if a byte value is undefined in the
	// code page.
	Decode(data []byte) (string, error)
}
