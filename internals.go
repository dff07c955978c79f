package textdes

import (
	"errors"
)

// -----------------------------------------------------------------------------

const (
	messageVersion  = 1
	keyShareVersion = 1
)

// -----------------------------------------------------------------------------

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

func validateSplitParameters(shares int, threshold int) error {
	if shares < 1 || shares > 255 || threshold < 1 || threshold > shares {
		return errors.New("invalid shares or threshold parameter")
	}
	return nil
}
