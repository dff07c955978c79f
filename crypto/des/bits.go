package des

import (
	"encoding/binary"
)

// -----------------------------------------------------------------------------

const (
	mask28 = (uint32(1) << 28) - 1
	mask48 = (uint64(1) << 48) - 1
)

// -----------------------------------------------------------------------------

// permute builds an output word of len(table) bits. Output bit i takes the value of input
// bit table[i], both counted from the most significant end.
func permute(in uint64, inWidth uint, table []uint8) uint64 {
	var out uint64

	for _, pos := range table {
		out = (out << 1) | ((in >> (inWidth - uint(pos))) & 1)
	}
	return out
}

func rotateLeft28(v uint32, n uint) uint32 {
	return ((v << n) | (v >> (28 - n))) & mask28
}

// BlockFromBytes packs 8 bytes into a block, first byte most significant.
func BlockFromBytes(b []byte) (uint64, error) {
	if len(b) != BlockSize {
		return 0, blockSizeError(len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// BlockToBytes unpacks a block into 8 bytes, most significant first.
func BlockToBytes(block uint64) []byte {
	buf := make([]byte, BlockSize)
	binary.BigEndian.PutUint64(buf, block)
	return buf
}
