package textdes

import (
	"errors"

	"github.com/mxmauro/textdes/codec"
	"github.com/mxmauro/textdes/crypto/ciphers/des_ecb"
	"github.com/mxmauro/textdes/crypto/des"
)

// -----------------------------------------------------------------------------

var (
	// ErrKeyFormat is returned when a key is not 64 bits long or, if parity verification is
	// enabled, one of its bytes has even parity.
	ErrKeyFormat = des.ErrKeyFormat

	// ErrBlockFormat is returned when ciphertext cannot be split in 64-bit blocks or a round
	// key sequence is malformed.
	ErrBlockFormat = des.ErrBlockFormat

	// ErrEncoding is returned when text cannot be represented in the code page or decrypted
	// bytes cannot be mapped back to characters.
	ErrEncoding = codec.ErrEncoding

	// ErrDestroyed is returned when a destroyed cipher is used.
	ErrDestroyed = des_ecb.ErrDestroyed

	ErrInvalidMessage  = errors.New("invalid message")
	ErrInvalidKeyShare = errors.New("invalid key share")
)
