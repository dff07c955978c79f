package textdes

import (
	"encoding/binary"
	"errors"
	"hash/fnv"

	bstd "github.com/deneonet/benc/std"
	"github.com/mxmauro/shamir"
	"github.com/mxmauro/textdes/crypto/des"
	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

// SplitKey splits a key into the given number of shares. Any `threshold` of them are
// enough to rebuild it with CombineKey.
func SplitKey(key []byte, shares int, threshold int) ([][]byte, error) {
	if len(key) != des.KeySize {
		return nil, util.NewExtendedErrorf(ErrKeyFormat, "key must be %d bytes long, got %d", des.KeySize, len(key))
	}
	err := validateSplitParameters(shares, threshold)
	if err != nil {
		return nil, err
	}

	envelope := serializeKeyEnvelope(key)
	if shares == 1 {
		split := make([][]byte, 1)
		split[0] = envelope
		return split, nil
	}
	defer util.SafeZeroMem(envelope)

	// Split the key using the Shamir algorithm.
	split, err := shamir.Split(envelope, shares, threshold)
	if err != nil {
		util.SafeZeroMemArray(split)
		return nil, util.NewExtendedError(err, "unable to split key")
	}

	// Done
	return split, nil
}

// CombineKey rebuilds a key from the shares returned by SplitKey.
func CombineKey(shares [][]byte) ([]byte, error) {
	var envelope []byte
	var err error

	switch len(shares) {
	case 0:
		return nil, errors.New("no key shares provided")
	case 1:
		envelope = cloneBytes(shares[0])
	default:
		envelope, err = shamir.Combine(shares)
		if err != nil {
			return nil, util.NewExtendedError(err, "unable to combine key shares")
		}
	}
	defer util.SafeZeroMem(envelope)

	return deserializeKeyEnvelope(envelope)
}

// DestroyKeyShares zeroes the shares returned by SplitKey once they are no longer needed.
func DestroyKeyShares(shares [][]byte) {
	util.SafeZeroMemArray(shares)
}

func serializeKeyEnvelope(key []byte) []byte {
	bufSize := bstd.SizeUint16() + bstd.SizeBytes(key) + bstd.SizeUint32()
	buf := make([]byte, bufSize)

	ofs := bstd.MarshalUint16(0, buf, keyShareVersion)
	ofs = bstd.MarshalBytes(ofs, buf, key)
	_ = bstd.MarshalUint32(ofs, buf, keyChecksum(key))

	// Done
	return buf
}

func deserializeKeyEnvelope(buf []byte) ([]byte, error) {
	var key []byte
	var checksum uint32

	if len(buf) <= bstd.SizeUint16() {
		return nil, ErrInvalidKeyShare
	}

	ofs, version, err := bstd.UnmarshalUint16(0, buf)
	if err != nil {
		return nil, ErrInvalidKeyShare
	}
	switch version {
	case 1:
		ofs, key, err = bstd.UnmarshalBytesCopied(ofs, buf)
		if err != nil {
			return nil, ErrInvalidKeyShare
		}
		ofs, checksum, err = bstd.UnmarshalUint32(ofs, buf)
		if err != nil {
			util.SafeZeroMem(key)
			return nil, ErrInvalidKeyShare
		}

	default:
		return nil, ErrInvalidKeyShare
	}

	// Check if we reached the end of the buffer and the key is intact.
	if ofs != len(buf) || len(key) != des.KeySize || checksum != keyChecksum(key) {
		util.SafeZeroMem(key)
		return nil, ErrInvalidKeyShare
	}

	// Done
	return key, nil
}

func keyChecksum(key []byte) uint32 {
	var ver [2]byte

	binary.LittleEndian.PutUint16(ver[:], keyShareVersion)

	h := fnv.New32a()
	_, _ = h.Write(ver[:])
	_, _ = h.Write(key)
	return h.Sum32()
}
