package textdes_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/mxmauro/textdes"
)

// -----------------------------------------------------------------------------

var (
	textbookKey = []byte{0x13, 0x34, 0x57, 0x79, 0x9B, 0xBC, 0xDF, 0xF1}

	plaintextSample = "Съешь же ещё этих мягких французских булок, да выпей чаю. The quick brown fox!"
)

// -----------------------------------------------------------------------------

func createTextCipher(t *testing.T, opts textdes.Options) *textdes.TextCipher {
	tc, err := textdes.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return tc
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func containsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}
