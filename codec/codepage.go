// Package codec converts text to bytes through a single-byte code page and lays bytes out
// into 64-bit cipher blocks.
package codec

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mxmauro/textdes/models"
	"github.com/mxmauro/textdes/util"
	"golang.org/x/text/encoding/charmap"
)

// -----------------------------------------------------------------------------

// ErrEncoding is returned when a character or a byte has no mapping in the code page.
var ErrEncoding = errors.New("encoding error")

// Windows1251 is the default code page.
var Windows1251 = NewCodePage(charmap.Windows1251)

// -----------------------------------------------------------------------------

type charmapCodePage struct {
	cm *charmap.Charmap
}

// -----------------------------------------------------------------------------

// NewCodePage wraps a single-byte charmap.
func NewCodePage(cm *charmap.Charmap) models.CodePage {
	return &charmapCodePage{
		cm: cm,
	}
}

func (cp *charmapCodePage) Name() string {
	return cp.cm.String()
}

func (cp *charmapCodePage) Encode(text string) ([]byte, error) {
	buf := make([]byte, 0, len(text))

	pos := 0
	for ofs, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[ofs:]); size <= 1 {
				return nil, util.NewExtendedErrorf(ErrEncoding, "invalid UTF-8 sequence at character #%d", pos)
			}
		}
		b, ok := cp.cm.EncodeRune(r)
		if !ok {
			return nil, util.NewExtendedErrorf(ErrEncoding, "character %q at #%d is not representable in %s", r, pos, cp.Name())
		}
		buf = append(buf, b)
		pos += 1
	}

	// Done
	return buf, nil
}

func (cp *charmapCodePage) Decode(data []byte) (string, error) {
	sb := strings.Builder{}
	sb.Grow(len(data))

	for idx, b := range data {
		r := cp.cm.DecodeByte(b)
		if r == utf8.RuneError {
			return "", util.NewExtendedErrorf(ErrEncoding, "byte 0x%02X at #%d is undefined in %s", b, idx, cp.Name())
		}
		_, _ = sb.WriteRune(r)
	}

	// Done
	return sb.String(), nil
}
