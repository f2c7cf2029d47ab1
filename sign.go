package decswar

// splitSign removes a leading '-' from b. A bare '-' is Empty, as is an empty
// b. '+' is not a sign and is left for the digit validator to reject.
func splitSign(b []byte) (digits []byte, neg bool, kind ErrorKind) {
	if len(b) == 0 {
		return nil, false, Empty
	}
	if b[0] != '-' {
		return b, false, 0
	}
	if len(b) == 1 {
		return nil, true, Empty
	}
	return b[1:], true, 0
}

// negate64 is the two's complement of mag. Truncating the result to a
// narrower width gives the two's complement in that width.
func negate64(mag uint64) uint64 { return ^mag + 1 }

func negate128(mag U128) U128 {
	v := U128{hi: ^mag.hi, lo: ^mag.lo + 1}
	if v.lo == 0 {
		v.hi++
	}
	return v
}
