package models

import (
	"log/slog"
)

// -----------------------------------------------------------------------------

// Framing selects how plaintext bytes are laid out into 64-bit blocks.
type Framing int

const (
	// FramingZeroStrip zero-pads the last block and, on decryption, drops every zero byte
	// found in the decrypted stream.
	FramingZeroStrip Framing = iota

	// FramingLength zero-pads the last block and appends a trailer block holding the
	// plaintext length, so embedded zero bytes survive a round trip.
	FramingLength
)

// -----------------------------------------------------------------------------

// Cipher is the minimal interface that must be implemented by all ciphers.
type Cipher interface {
	// KeyLen returns the length of the key used by the cipher.
	KeyLen() int
	// BlockSize returns the size, in bytes, of a cipher block.
	BlockSize() int

	// Encrypt encrypts the given plaintext using the cipher.
	Encrypt(plaintext []byte) ([]byte, error)
	// Decrypt decrypts the given ciphertext using the cipher.
	Decrypt(ciphertext []byte) ([]byte, error)

	// Destroy zeroes the key material held by the cipher. The cipher cannot be used afterward.
	Destroy()
}

// CipherOptions carries the settings an engine needs when it is instantiated from a key.
type CipherOptions struct {
	// Block framing used by Encrypt and Decrypt.
	Framing Framing

	// If set, keys whose bytes do not have odd parity are rejected.
	VerifyKeyParity bool

	// Maximum number of goroutines used to transform the blocks of a single message. Values
	// below 2 process blocks sequentially.
	Parallelism int

	// Optional logger. Key material is never logged.
	Logger *slog.Logger
}
