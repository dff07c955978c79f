package des

// -----------------------------------------------------------------------------

// Transform runs the Feistel network over a single block using the round keys in the order
// given. Passing the reversed sequence of the same key inverts the transformation.
func Transform(block uint64, rk RoundKeys) (uint64, error) {
	if err := rk.Validate(); err != nil {
		return 0, err
	}
	return transform(block, rk), nil
}

// EncryptBlock encrypts a block with round keys in encryption order.
func EncryptBlock(block uint64, rk RoundKeys) (uint64, error) {
	return Transform(block, rk)
}

// DecryptBlock decrypts a block with round keys in encryption order. The sequence is
// reversed internally.
func DecryptBlock(block uint64, rk RoundKeys) (uint64, error) {
	return Transform(block, rk.Reverse())
}

// transform assumes rk was already validated.
func transform(block uint64, rk RoundKeys) uint64 {
	b := permute(block, 64, initialPermutation[:])

	l := uint32(b >> 32)
	r := uint32(b)
	for round := 0; round < Rounds; round++ {
		l, r = r, l^feistel(r, rk[round])
	}

	// The halves are swapped on output.
	return permute((uint64(r)<<32)|uint64(l), 64, finalPermutation[:])
}

func feistel(r uint32, k uint64) uint32 {
	x := permute(uint64(r), 32, expansion[:]) ^ k

	var s uint32
	for box := 0; box < 8; box++ {
		group := uint8(x>>(42-6*uint(box))) & 0x3F
		row := ((group >> 4) & 0x02) | (group & 0x01)
		col := (group >> 1) & 0x0F
		s = (s << 4) | uint32(sBoxes[box][row][col])
	}

	return uint32(permute(uint64(s), 32, roundPermutation[:]))
}
