package decswar

import (
	"math/bits"
)

// leadingZeros returns the number of '0' bytes at the start of b, checking
// eight bytes at a time while it can.
func leadingZeros(b []byte) int {
	n := 0
	for len(b)-n >= 8 {
		x := loadFull64(b[n:]) ^ asciiZeros64
		if x != 0 {
			return n + bits.TrailingZeros64(x)/8
		}
		n += 8
	}
	for n < len(b) && b[n] == '0' {
		n++
	}
	return n
}
