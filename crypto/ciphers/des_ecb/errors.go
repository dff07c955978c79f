package des_ecb

import (
	"errors"
)

// -----------------------------------------------------------------------------

// ErrDestroyed is returned when a destroyed cipher is used.
var ErrDestroyed = errors.New("cipher destroyed")
