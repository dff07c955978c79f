package des_ecb

import (
	"io"
	"log/slog"
	"sync"

	"github.com/mxmauro/textdes/codec"
	"github.com/mxmauro/textdes/crypto/des"
	"github.com/mxmauro/textdes/models"
	"github.com/mxmauro/textdes/util"
	"golang.org/x/sync/errgroup"
)

// -----------------------------------------------------------------------------

type desEcbCipher struct {
	mtx sync.RWMutex

	encryptRK des.RoundKeys
	decryptRK des.RoundKeys
	framing   models.Framing
	parallel  int
	logger    *slog.Logger
	destroyed bool
}

// -----------------------------------------------------------------------------

// GenerateKey generates a new odd-parity DES key.
func GenerateKey(r io.Reader) ([]byte, error) {
	return des.GenerateKey(r)
}

// NewFromKey creates a new DES-ECB cipher object from the given key.
func NewFromKey(key []byte, opts models.CipherOptions) (models.Cipher, error) {
	if opts.VerifyKeyParity {
		if err := des.CheckParity(key); err != nil {
			return nil, err
		}
	}
	if opts.Framing != models.FramingZeroStrip && opts.Framing != models.FramingLength {
		return nil, codec.ErrFramingNotSupported
	}

	rk, err := des.DeriveRoundKeys(key)
	if err != nil {
		return nil, util.NewExtendedError(err, "failed to create cipher")
	}

	// Create a cipher object.
	c := &desEcbCipher{
		encryptRK: rk,
		decryptRK: rk.Reverse(),
		framing:   opts.Framing,
		parallel:  opts.Parallelism,
		logger:    util.LoggerOrDiscard(opts.Logger),
	}

	// Done.
	return c, nil
}

// KeyLen returns the length of the key used by the DES-ECB cipher.
func (c *desEcbCipher) KeyLen() int {
	return des.KeySize
}

// BlockSize returns the DES block size.
func (c *desEcbCipher) BlockSize() int {
	return des.BlockSize
}

// Encrypt frames the plaintext into blocks and encrypts each one independently. The
// output is the concatenation of the ciphertext blocks.
func (c *desEcbCipher) Encrypt(plaintext []byte) ([]byte, error) {
	blocks, err := codec.Pack(plaintext, c.framing)
	if err != nil {
		return nil, err
	}

	c.mtx.RLock()
	defer c.mtx.RUnlock()

	if c.destroyed {
		return nil, ErrDestroyed
	}

	err = c.transformAll(blocks, c.encryptRK)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("blocks encrypted", slog.Int("blocks", len(blocks)), slog.Int("bytes", len(plaintext)))

	// Done.
	return codec.BlocksToBytes(blocks), nil
}

// Decrypt decrypts each ciphertext block and removes the framing.
func (c *desEcbCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	blocks, err := codec.BytesToBlocks(ciphertext)
	if err != nil {
		c.logger.Warn("rejected ciphertext", slog.Int("bytes", len(ciphertext)))
		return nil, err
	}

	c.mtx.RLock()
	if c.destroyed {
		c.mtx.RUnlock()
		return nil, ErrDestroyed
	}
	err = c.transformAll(blocks, c.decryptRK)
	c.mtx.RUnlock()
	if err != nil {
		return nil, err
	}
	c.logger.Debug("blocks decrypted", slog.Int("blocks", len(blocks)))

	plaintext, err := codec.Unpack(blocks, c.framing)
	util.SafeZeroUint64s(blocks)
	if err != nil {
		return nil, err
	}

	// Done.
	return plaintext, nil
}

// Destroy zeroes the round keys.
func (c *desEcbCipher) Destroy() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.encryptRK.Zeroize()
	c.decryptRK.Zeroize()
	c.destroyed = true
}

// transformAll replaces every block in place. Blocks are independent, so with parallelism
// enabled each goroutine owns a contiguous range of indexes.
func (c *desEcbCipher) transformAll(blocks []uint64, rk des.RoundKeys) error {
	if c.parallel < 2 || len(blocks) < 2 {
		for idx, block := range blocks {
			out, err := des.Transform(block, rk)
			if err != nil {
				return err
			}
			blocks[idx] = out
		}
		return nil
	}

	workers := c.parallel
	if workers > len(blocks) {
		workers = len(blocks)
	}
	chunk := (len(blocks) + workers - 1) / workers

	g := errgroup.Group{}
	g.SetLimit(workers)
	for start := 0; start < len(blocks); start += chunk {
		part := blocks[start:min(start+chunk, len(blocks))]
		g.Go(func() error {
			for idx, block := range part {
				out, err := des.Transform(block, rk)
				if err != nil {
					return err
				}
				part[idx] = out
			}
			return nil
		})
	}
	return g.Wait()
}
