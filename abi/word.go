package abi

// wordSize is the byte length of the atomic encoding unit.
const wordSize = 32

// padUint returns n as a left-padded big-endian word.
func padUint(n int) []byte {
	w := make([]byte, wordSize)
	v := uint64(n)
	for i := wordSize - 1; i >= wordSize-8; i-- {
		w[i] = byte(v)
		v >>= 8
	}
	return w
}

// padRight right-pads b with zero bytes to the next word boundary.
func padRight(b []byte) []byte {
	if len(b)%wordSize == 0 {
		return b
	}
	padded := make([]byte, ((len(b)+wordSize-1)/wordSize)*wordSize)
	copy(padded, b)
	return padded
}

// wordToInt interprets a word as a non-negative offset, length or count.
// It fails when the high 28 bytes are not zero: such a value can never
// reference a real position in any buffer.
func wordToInt(w [wordSize]byte) (int, bool) {
	for _, b := range w[:wordSize-4] {
		if b != 0 {
			return 0, false
		}
	}
	n := int(w[28])<<24 | int(w[29])<<16 | int(w[30])<<8 | int(w[31])
	return n, true
}
