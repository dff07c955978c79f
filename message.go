package textdes

import (
	"encoding/hex"

	bstd "github.com/deneonet/benc/std"
	"github.com/mxmauro/textdes/codec"
	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

// Message is a sequence of 64-bit ciphertext blocks. Each block is encrypted on its own.
type Message []uint64

// -----------------------------------------------------------------------------

// MessageFromBytes splits raw ciphertext into blocks. The length must be a multiple of 8.
func MessageFromBytes(data []byte) (Message, error) {
	blocks, err := codec.BytesToBlocks(data)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// MessageFromHex parses the output of Message.String.
func MessageFromHex(s string) (Message, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, util.NewExtendedErrorf(ErrInvalidMessage, "invalid hex string: %v", err)
	}
	return MessageFromBytes(data)
}

// DeserializeMessage decodes a message produced by Message.Serialize.
func DeserializeMessage(buf []byte) (Message, error) {
	var count uint32

	bufSize := len(buf)
	if bufSize < bstd.SizeUint16()+bstd.SizeUint32() {
		return nil, ErrInvalidMessage
	}

	// Deserialize data.
	ofs, version, err := bstd.UnmarshalUint16(0, buf)
	if err != nil {
		return nil, ErrInvalidMessage
	}
	switch version {
	case 1:
		ofs, count, err = bstd.UnmarshalUint32(ofs, buf)
		if err != nil {
			return nil, ErrInvalidMessage
		}
		if uint64(bufSize-ofs) != uint64(count)*uint64(bstd.SizeUint64()) {
			return nil, ErrInvalidMessage
		}

		msg := make(Message, count)
		for idx := range msg {
			ofs, msg[idx], err = bstd.UnmarshalUint64(ofs, buf)
			if err != nil {
				return nil, ErrInvalidMessage
			}
		}

		// Check if we reached the end of the buffer.
		if ofs != bufSize {
			return nil, ErrInvalidMessage
		}

		// Done
		return msg, nil
	}

	return nil, util.NewExtendedErrorf(ErrInvalidMessage, "unsupported message version %d", version)
}

// Serialize encodes the message in a versioned binary form.
func (m Message) Serialize() []byte {
	bufSize := bstd.SizeUint16() + bstd.SizeUint32() + len(m)*bstd.SizeUint64()
	buf := make([]byte, bufSize)

	ofs := bstd.MarshalUint16(0, buf, messageVersion)
	ofs = bstd.MarshalUint32(ofs, buf, uint32(len(m)))
	for _, block := range m {
		ofs = bstd.MarshalUint64(ofs, buf, block)
	}

	// Done
	return buf
}

// Bytes returns the raw ciphertext, blocks concatenated most significant byte first.
func (m Message) Bytes() []byte {
	return codec.BlocksToBytes(m)
}

// String returns the raw ciphertext in hexadecimal.
func (m Message) String() string {
	return hex.EncodeToString(m.Bytes())
}
