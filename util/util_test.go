package util_test

import (
	"errors"
	"testing"

	"github.com/mxmauro/textdes/util"
)

// -----------------------------------------------------------------------------

func TestExtendedError(t *testing.T) {
	base := errors.New("base")
	err := util.NewExtendedError(util.NewExtendedErrorf(base, "inner %d", 1), "outer")

	if !errors.Is(err, base) {
		t.Fatal("wrapped error lost")
	}
	if err.Error() != "outer [err=inner 1] [err=base]" {
		t.Fatal("unexpected message:", err.Error())
	}
}

func TestSafeZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	util.SafeZeroMem(b)
	for _, v := range b {
		if v != 0 {
			t.Fatal("byte not zeroed")
		}
	}

	w := []uint64{1, 2, 3}
	util.SafeZeroUint64s(w)
	for _, v := range w {
		if v != 0 {
			t.Fatal("word not zeroed")
		}
	}

	a := [][]byte{{1, 2}, nil, {3, 4, 5}}
	util.SafeZeroMemArray(a)
	for _, row := range a {
		for _, v := range row {
			if v != 0 {
				t.Fatal("array byte not zeroed")
			}
		}
	}

	util.SafeZeroMem(nil)
	util.SafeZeroMemArray(nil)
	util.SafeZeroUint64s(nil)
}
