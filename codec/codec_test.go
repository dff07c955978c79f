package codec_test

import (
	"testing"

	"github.com/mxmauro/textdes/codec"
	"github.com/mxmauro/textdes/crypto/des"
	"github.com/mxmauro/textdes/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

// -----------------------------------------------------------------------------

func TestWindows1251(t *testing.T) {
	data, err := codec.Windows1251.Encode("Привет, world!")
	require.NoError(t, err)
	require.Len(t, data, 14)
	require.Equal(t, byte(0xCF), data[0]) // 'П'

	text, err := codec.Windows1251.Decode(data)
	require.NoError(t, err)
	require.Equal(t, "Привет, world!", text)
}

func TestWindows1251Unmappable(t *testing.T) {
	_, err := codec.Windows1251.Encode("snow ☃")
	require.ErrorIs(t, err, codec.ErrEncoding)

	_, err = codec.Windows1251.Encode("bad \xff utf8")
	require.ErrorIs(t, err, codec.ErrEncoding)
}

func TestWindows1251UndefinedByte(t *testing.T) {
	// 0x98 has no assignment in Windows-1251.
	_, err := codec.Windows1251.Decode([]byte{'a', 0x98, 'b'})
	require.ErrorIs(t, err, codec.ErrEncoding)
}

func TestOtherCodePage(t *testing.T) {
	cp := codec.NewCodePage(charmap.ISO8859_1)
	data, err := cp.Encode("café")
	require.NoError(t, err)
	require.Equal(t, []byte{'c', 'a', 'f', 0xE9}, data)
	require.NotEmpty(t, cp.Name())
}

func TestPackPadding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []uint64
	}{
		{"empty", nil, []uint64{}},
		{"one_byte", []byte{0xAB}, []uint64{0xAB00000000000000}},
		{"exact_block", []byte("ABCDEFGH"), []uint64{0x4142434445464748}},
		{"block_and_a_half", []byte("ABCDEFGHIJ"), []uint64{0x4142434445464748, 0x494A000000000000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := codec.Pack(tt.data, models.FramingZeroStrip)
			require.NoError(t, err)
			require.Equal(t, tt.want, blocks)

			data, err := codec.Unpack(blocks, models.FramingZeroStrip)
			require.NoError(t, err)
			require.Equal(t, len(tt.data), len(data))
		})
	}
}

func TestUnpackDropsEveryZeroByte(t *testing.T) {
	blocks := []uint64{0x4100420000430000, 0x0000000000000044}
	data, err := codec.Unpack(blocks, models.FramingZeroStrip)
	require.NoError(t, err)
	require.Equal(t, []byte("ABCD"), data)
}

func TestLengthFraming(t *testing.T) {
	payload := []byte{'a', 0, 'b', 0, 0, 0, 0, 0, 'c', 0}

	blocks, err := codec.Pack(payload, models.FramingLength)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	require.Equal(t, uint64(len(payload)), blocks[2])

	data, err := codec.Unpack(blocks, models.FramingLength)
	require.NoError(t, err)
	require.Equal(t, payload, data)

	blocks, err = codec.Pack(nil, models.FramingLength)
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, blocks)
	data, err = codec.Unpack(blocks, models.FramingLength)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestLengthFramingCorrupt(t *testing.T) {
	_, err := codec.Unpack(nil, models.FramingLength)
	require.ErrorIs(t, err, des.ErrBlockFormat)

	_, err = codec.Unpack([]uint64{0x4142434445464748, 9}, models.FramingLength)
	require.ErrorIs(t, err, des.ErrBlockFormat)

	_, err = codec.Unpack([]uint64{0x4142434445464748, 0x4142434445464748, 3}, models.FramingLength)
	require.ErrorIs(t, err, des.ErrBlockFormat)

	_, err = codec.Unpack([]uint64{0x4142434445464748, 0}, models.FramingLength)
	require.ErrorIs(t, err, des.ErrBlockFormat)

	// Trailers close to 2^64 must not wrap around.
	for _, length := range []uint64{^uint64(0), ^uint64(0) - 2, ^uint64(0) - 7} {
		_, err = codec.Unpack([]uint64{length}, models.FramingLength)
		require.ErrorIs(t, err, des.ErrBlockFormat)

		_, err = codec.Unpack([]uint64{0x4142434445464748, length}, models.FramingLength)
		require.ErrorIs(t, err, des.ErrBlockFormat)
	}
}

func TestUnsupportedFraming(t *testing.T) {
	_, err := codec.Pack([]byte("x"), models.Framing(99))
	require.ErrorIs(t, err, codec.ErrFramingNotSupported)

	_, err = codec.Unpack([]uint64{1}, models.Framing(99))
	require.ErrorIs(t, err, codec.ErrFramingNotSupported)
}

func TestBytesToBlocks(t *testing.T) {
	blocks, err := codec.BytesToBlocks([]byte("ABCDEFGHabcdefgh"))
	require.NoError(t, err)
	require.Equal(t, []uint64{0x4142434445464748, 0x6162636465666768}, blocks)
	require.Equal(t, []byte("ABCDEFGHabcdefgh"), codec.BlocksToBytes(blocks))

	_, err = codec.BytesToBlocks([]byte("ABC"))
	require.ErrorIs(t, err, des.ErrBlockFormat)
}
