package util

// -----------------------------------------------------------------------------

// SafeZeroMem zeros the given memory.
func SafeZeroMem(v []byte) {
	vLen := len(v)
	if vLen > 0 {
		v[0] = 0
		for ofs := 1; ofs < vLen; ofs *= 2 {
			copy(v[ofs:], v[:ofs])
		}
	}
}

// SafeZeroMemArray zeros the given memory array.
func SafeZeroMemArray(v [][]byte) {
	for idx := range v {
		SafeZeroMem(v[idx])
	}
}

// SafeZeroUint64s zeros a slice of words such as a round key sequence.
func SafeZeroUint64s(v []uint64) {
	vLen := len(v)
	if vLen > 0 {
		v[0] = 0
		for ofs := 1; ofs < vLen; ofs *= 2 {
			copy(v[ofs:], v[:ofs])
		}
	}
}
