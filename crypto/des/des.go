// Package des implements the DES key schedule, the 16-round Feistel network and the
// generation of odd-parity keys. Blocks are handled as uint64 words whose most
// significant bit is bit 1 of the standard tables.
package des

import (
	"errors"

	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

const (
	// KeySize is the size of a key in bytes, parity bits included.
	KeySize = 8

	// BlockSize is the size of a cipher block in bytes.
	BlockSize = 8

	// Rounds is the number of Feistel rounds and round keys.
	Rounds = 16
)

// -----------------------------------------------------------------------------

var (
	// ErrKeyFormat is returned when a key is not 64 bits long or fails the parity check.
	ErrKeyFormat = errors.New("invalid key format")

	// ErrBlockFormat is returned when a block is not 64 bits long or a round key sequence is
	// not made of 16 entries of 48 bits.
	ErrBlockFormat = errors.New("invalid block format")
)

// -----------------------------------------------------------------------------

func keySizeError(size int) error {
	return util.NewExtendedErrorf(ErrKeyFormat, "key must be %d bytes long, got %d", KeySize, size)
}

func blockSizeError(size int) error {
	return util.NewExtendedErrorf(ErrBlockFormat, "block must be %d bytes long, got %d", BlockSize, size)
}
