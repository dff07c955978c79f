package des

import (
	"encoding/binary"

	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

// RoundKeys is an ordered sequence of 48-bit round keys.
type RoundKeys []uint64

// -----------------------------------------------------------------------------

// DeriveRoundKeys computes the sixteen round keys of the given 64-bit key, in encryption
// order.
func DeriveRoundKeys(key []byte) (RoundKeys, error) {
	if len(key) != KeySize {
		return nil, keySizeError(len(key))
	}

	k := binary.BigEndian.Uint64(key)

	// Parity bits are dropped here.
	c := uint32(permute(k, 64, keyInitialPermutationC[:]))
	d := uint32(permute(k, 64, keyInitialPermutationD[:]))

	rk := make(RoundKeys, Rounds)
	for round := 0; round < Rounds; round++ {
		c = rotateLeft28(c, keyShifts[round])
		d = rotateLeft28(d, keyShifts[round])

		rk[round] = permute((uint64(c)<<28)|uint64(d), 56, keyFinalPermutation[:])
	}

	// Done
	return rk, nil
}

// Reverse returns a new sequence with the round keys in decryption order.
func (rk RoundKeys) Reverse() RoundKeys {
	rev := make(RoundKeys, len(rk))
	for idx, k := range rk {
		rev[len(rk)-1-idx] = k
	}
	return rev
}

// Validate checks the sequence holds exactly 16 keys of 48 bits.
func (rk RoundKeys) Validate() error {
	if len(rk) != Rounds {
		return util.NewExtendedErrorf(ErrBlockFormat, "expected %d round keys, got %d", Rounds, len(rk))
	}
	for idx, k := range rk {
		if k&^mask48 != 0 {
			return util.NewExtendedErrorf(ErrBlockFormat, "round key #%d is wider than 48 bits", idx)
		}
	}
	return nil
}

// Zeroize clears the round keys.
func (rk RoundKeys) Zeroize() {
	util.SafeZeroUint64s(rk)
}
