// Package textdes encrypts text with a DES Feistel cipher in ECB mode. Text is converted to
// bytes through a single-byte code page, laid out in zero-padded 64-bit blocks and every
// block is encrypted on its own.
package textdes

import (
	"crypto/rand"
	"io"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/mxmauro/textdes/codec"
	"github.com/mxmauro/textdes/crypto/ciphers"
	"github.com/mxmauro/textdes/crypto/des"
	"github.com/mxmauro/textdes/models"
	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

// TextCipher encrypts and decrypts text with a single key.
type TextCipher struct {
	mtx sync.RWMutex

	engine   string
	key      []byte
	cipher   models.Cipher
	codePage models.CodePage
	logger   *slog.Logger
}

// Options configure the TextCipher parameters.
type Options struct {
	// Encryption engine. Defaults to "des-ecb".
	Engine string

	// A 64-bit key. If nil, a new odd-parity key is generated.
	Key []byte

	// An optional random number generator reader used for key generation. If nil, crypto/rand.Reader
	// is used.
	RandomGeneratorReader io.Reader

	// Code page used to convert text to bytes. Defaults to Windows-1251.
	CodePage models.CodePage

	// Block framing. Defaults to zero stripping.
	Framing models.Framing

	// Reject keys whose bytes do not all have odd parity.
	VerifyKeyParity bool

	// Maximum number of goroutines used per message. Values below 2 disable parallelism.
	Parallelism int

	// Optional logger.
	Logger *slog.Logger
}

// -----------------------------------------------------------------------------

// New creates a new text cipher.
func New(opts Options) (*TextCipher, error) {
	var key []byte
	var err error

	engine := opts.Engine
	if len(engine) == 0 {
		engine = ciphers.DefaultEngine
	}
	if !ciphers.IsEngineSupported(engine) {
		return nil, ciphers.ErrEngineNotSupported
	}

	rg := opts.RandomGeneratorReader
	if rg == nil {
		rg = rand.Reader
	}

	codePage := opts.CodePage
	if codePage == nil {
		codePage = codec.Windows1251
	}

	logger := util.LoggerOrDiscard(opts.Logger)

	// Get or create the key.
	if opts.Key != nil {
		key = cloneBytes(opts.Key)
	} else {
		key, err = ciphers.GenerateKey(engine, rg)
		if err != nil {
			return nil, err
		}
		logger.Debug("key generated", slog.String("engine", engine))
	}

	// Create the engine.
	cipher, err := ciphers.NewFromKey(engine, key, models.CipherOptions{
		Framing:         opts.Framing,
		VerifyKeyParity: opts.VerifyKeyParity,
		Parallelism:     opts.Parallelism,
		Logger:          logger,
	})
	if err != nil {
		util.SafeZeroMem(key)
		logger.Warn("key rejected", slog.String("engine", engine), slog.String("error", err.Error()))
		return nil, err
	}
	if cipher.BlockSize() != des.BlockSize {
		cipher.Destroy()
		util.SafeZeroMem(key)
		return nil, util.NewExtendedError(ErrBlockFormat, "engine block size is not 64 bits")
	}

	tc := TextCipher{
		engine:   engine,
		key:      key,
		cipher:   cipher,
		codePage: codePage,
		logger:   logger,
	}

	// Done
	return &tc, nil
}

// Encode converts the text to bytes with the code page, frames them into blocks and
// encrypts every block.
func Encode(text string, key []byte) (Message, error) {
	if key == nil {
		// Never fall back to a generated key here.
		key = []byte{}
	}
	tc, err := New(Options{
		Key: key,
	})
	if err != nil {
		return nil, err
	}
	defer tc.Destroy()

	return tc.Encode(text)
}

// Decode decrypts every block and converts the remaining bytes back to text. Zero bytes are
// discarded wherever they appear.
func Decode(msg Message, key []byte) (string, error) {
	if key == nil {
		// Never fall back to a generated key here.
		key = []byte{}
	}
	tc, err := New(Options{
		Key: key,
	})
	if err != nil {
		return "", err
	}
	defer tc.Destroy()

	return tc.Decode(msg)
}

// Engine returns the name of the encryption engine in use.
func (tc *TextCipher) Engine() string {
	return tc.engine
}

// CodePage returns the code page in use.
func (tc *TextCipher) CodePage() models.CodePage {
	return tc.codePage
}

// Key returns a copy of the key.
func (tc *TextCipher) Key() []byte {
	tc.mtx.RLock()
	defer tc.mtx.RUnlock()

	return cloneBytes(tc.key)
}

// Encode encrypts the given text.
func (tc *TextCipher) Encode(text string) (Message, error) {
	data, err := tc.codePage.Encode(text)
	if err != nil {
		tc.logger.Warn("text rejected", slog.String("code_page", tc.codePage.Name()), slog.String("error", err.Error()))
		return nil, err
	}
	defer util.SafeZeroMem(data)

	tc.mtx.RLock()
	defer tc.mtx.RUnlock()

	if tc.cipher == nil {
		return nil, ErrDestroyed
	}

	ciphertext, err := tc.cipher.Encrypt(data)
	if err != nil {
		return nil, err
	}

	msg, err := MessageFromBytes(ciphertext)
	if err != nil {
		return nil, err
	}
	tc.logger.Debug("text encoded", slog.Int("chars", utf8.RuneCountInString(text)), slog.Int("blocks", len(msg)))

	// Done
	return msg, nil
}

// Decode decrypts the given message.
func (tc *TextCipher) Decode(msg Message) (string, error) {
	tc.mtx.RLock()
	defer tc.mtx.RUnlock()

	if tc.cipher == nil {
		return "", ErrDestroyed
	}

	plaintext, err := tc.cipher.Decrypt(msg.Bytes())
	if err != nil {
		return "", err
	}
	defer util.SafeZeroMem(plaintext)

	text, err := tc.codePage.Decode(plaintext)
	if err != nil {
		tc.logger.Warn("decrypted bytes rejected", slog.String("code_page", tc.codePage.Name()), slog.String("error", err.Error()))
		return "", err
	}
	tc.logger.Debug("text decoded", slog.Int("blocks", len(msg)), slog.Int("chars", utf8.RuneCountInString(text)))

	// Done
	return text, nil
}

// Destroy zeroes the key material. All memory is zeroed and the cipher cannot be used
// afterward.
func (tc *TextCipher) Destroy() {
	tc.mtx.Lock()
	defer tc.mtx.Unlock()

	if tc.cipher != nil {
		tc.cipher.Destroy()
		tc.cipher = nil
	}
	util.SafeZeroMem(tc.key)
	tc.key = nil
}
