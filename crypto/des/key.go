package des

import (
	"io"
	"math/bits"

	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

// GenerateKey creates a random 64-bit key. Each byte holds 7 random bits followed by a
// parity bit that makes the byte's population count odd.
func GenerateKey(r io.Reader) ([]byte, error) {
	key := make([]byte, KeySize)

	_, err := io.ReadFull(r, key)
	if err != nil {
		util.SafeZeroMem(key)
		return nil, util.NewExtendedError(err, "unable to generate key")
	}

	for idx := range key {
		key[idx] = withParity(key[idx] & 0x7F)
	}

	// Done
	return key, nil
}

// SetParity rewrites the least significant bit of every key byte so each byte has odd
// parity.
func SetParity(key []byte) {
	for idx := range key {
		key[idx] = withParity(key[idx] >> 1)
	}
}

// CheckParity verifies the key is 64 bits long and every byte has odd parity.
func CheckParity(key []byte) error {
	if len(key) != KeySize {
		return keySizeError(len(key))
	}
	for idx, b := range key {
		if bits.OnesCount8(b)%2 == 0 {
			return util.NewExtendedErrorf(ErrKeyFormat, "key byte #%d has even parity", idx)
		}
	}
	return nil
}

func withParity(v uint8) uint8 {
	if bits.OnesCount8(v)%2 == 0 {
		return (v << 1) | 1
	}
	return v << 1
}
