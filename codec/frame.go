package codec

import (
	"encoding/binary"
	"errors"

	"github.com/mxmauro/textdes/crypto/des"
	"github.com/mxmauro/textdes/models"
	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

// ErrFramingNotSupported is returned when a framing mode is not implemented by the codec.
var ErrFramingNotSupported = errors.New("framing not supported")

// -----------------------------------------------------------------------------

// Pack splits data into big-endian 64-bit blocks. The last block is zero-padded on the
// right. Empty data yields no data blocks.
func Pack(data []byte, framing models.Framing) ([]uint64, error) {
	if framing != models.FramingZeroStrip && framing != models.FramingLength {
		return nil, ErrFramingNotSupported
	}

	count := (len(data) + des.BlockSize - 1) / des.BlockSize
	blocks := make([]uint64, count, count+1)

	for idx := range blocks {
		var buf [des.BlockSize]byte

		copy(buf[:], data[idx*des.BlockSize:])
		blocks[idx] = binary.BigEndian.Uint64(buf[:])
	}

	if framing == models.FramingLength {
		blocks = append(blocks, uint64(len(data)))
	}

	// Done
	return blocks, nil
}

// Unpack reverses Pack. With FramingZeroStrip every zero byte is removed, wherever it
// appears in the stream.
func Unpack(blocks []uint64, framing models.Framing) ([]byte, error) {
	switch framing {
	case models.FramingZeroStrip:
		out := make([]byte, 0, len(blocks)*des.BlockSize)
		for _, block := range blocks {
			for shift := 56; shift >= 0; shift -= 8 {
				if b := byte(block >> uint(shift)); b != 0 {
					out = append(out, b)
				}
			}
		}
		return out, nil

	case models.FramingLength:
		if len(blocks) == 0 {
			return nil, util.NewExtendedError(des.ErrBlockFormat, "missing length trailer")
		}
		dataBlocks := blocks[:len(blocks)-1]
		length := blocks[len(blocks)-1]
		// The trailer must fall within the last data block, or be zero with no data blocks.
		n := uint64(len(dataBlocks))
		if length > n*des.BlockSize || (n > 0 && length <= (n-1)*des.BlockSize) {
			return nil, util.NewExtendedErrorf(des.ErrBlockFormat, "length trailer %d does not match %d data blocks", length, len(dataBlocks))
		}

		return BlocksToBytes(dataBlocks)[:length], nil
	}

	return nil, ErrFramingNotSupported
}

// BlocksToBytes concatenates blocks in big-endian order.
func BlocksToBytes(blocks []uint64) []byte {
	out := make([]byte, len(blocks)*des.BlockSize)
	for idx, block := range blocks {
		binary.BigEndian.PutUint64(out[idx*des.BlockSize:], block)
	}
	return out
}

// BytesToBlocks splits raw ciphertext into blocks. The length must be a multiple of the
// block size.
func BytesToBlocks(data []byte) ([]uint64, error) {
	if len(data)%des.BlockSize != 0 {
		return nil, util.NewExtendedErrorf(des.ErrBlockFormat, "data length %d is not a multiple of %d", len(data), des.BlockSize)
	}

	blocks := make([]uint64, len(data)/des.BlockSize)
	for idx := range blocks {
		blocks[idx] = binary.BigEndian.Uint64(data[idx*des.BlockSize:])
	}
	return blocks, nil
}
