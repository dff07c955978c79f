package ciphers_test

import (
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/mxmauro/textdes/crypto/ciphers"
	"github.com/mxmauro/textdes/models"
)

// -----------------------------------------------------------------------------

func TestDefaultEngine(t *testing.T) {
	if !ciphers.IsEngineSupported(ciphers.DefaultEngine) {
		t.Fatal("default engine not registered")
	}

	t.Log("Generating key for default engine...")
	key, err := ciphers.GenerateKey(ciphers.DefaultEngine, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Creating cipher...")
	c, err := ciphers.NewFromKey(ciphers.DefaultEngine, key, models.CipherOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer c.Destroy()
	if c.KeyLen() != len(key) {
		t.Fatal("key length mismatch")
	}
}

func TestUnknownEngine(t *testing.T) {
	_, err := ciphers.GenerateKey("rot13", rand.Reader)
	if !errors.Is(err, ciphers.ErrEngineNotSupported) {
		t.Fatal("unexpected error:", err)
	}
	_, err = ciphers.NewFromKey("rot13", nil, models.CipherOptions{})
	if !errors.Is(err, ciphers.ErrEngineNotSupported) {
		t.Fatal("unexpected error:", err)
	}
}

func TestRegisterEngine(t *testing.T) {
	genKey := func(_ io.Reader) ([]byte, error) {
		return []byte{1}, nil
	}
	newFromKey := func(_ []byte, _ models.CipherOptions) (models.Cipher, error) {
		return nil, errors.New("not implemented")
	}

	if err := ciphers.RegisterEngine("", genKey, newFromKey); err == nil {
		t.Fatal("empty engine name accepted")
	}
	if err := ciphers.RegisterEngine("test-engine", nil, newFromKey); err == nil {
		t.Fatal("nil key generator accepted")
	}
	if err := ciphers.RegisterEngine(ciphers.DefaultEngine, genKey, newFromKey); err == nil {
		t.Fatal("duplicated engine accepted")
	}
	if err := ciphers.RegisterEngine("test-engine", genKey, newFromKey); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, name := range ciphers.SupportedEngines() {
		if name == "test-engine" {
			found = true
		}
	}
	if !found {
		t.Fatal("registered engine not listed")
	}
}
