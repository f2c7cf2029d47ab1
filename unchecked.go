package decswar

// The Unchecked functions skip digit validation and overflow classification.
// They are only for input the caller has already verified: an optional '-'
// (signed functions) followed by ASCII digits whose value fits the width.
//
// Any other input is a contract violation. Non-digit bytes and out-of-range
// values produce an unspecified result; more significant digits than the
// width can hold causes a panic. Empty input returns 0.

// ParseUint32Unchecked is ParseUint32 without validation.
func ParseUint32Unchecked(b []byte) uint32 {
	return uint32(magnitudeUnchecked[acc64](WidthUint32, b))
}

// ParseUint64Unchecked is ParseUint64 without validation.
func ParseUint64Unchecked(b []byte) uint64 {
	return uint64(magnitudeUnchecked[acc64](WidthUint64, b))
}

// ParseInt32Unchecked is ParseInt32 without validation.
func ParseInt32Unchecked(b []byte) int32 {
	return int32(parseSignedUnchecked64(WidthInt32, b))
}

// ParseInt64Unchecked is ParseInt64 without validation.
func ParseInt64Unchecked(b []byte) int64 {
	return parseSignedUnchecked64(WidthInt64, b)
}

// ParseU128Unchecked is ParseU128 without validation.
func ParseU128Unchecked(b []byte) U128 {
	return magnitudeUnchecked[U128](WidthUint128, b)
}

// ParseI128Unchecked is ParseI128 without validation.
func ParseI128Unchecked(b []byte) I128 {
	if len(b) > 0 && b[0] == '-' {
		return negate128(magnitudeUnchecked[U128](WidthInt128, b[1:])).AsI128()
	}
	return magnitudeUnchecked[U128](WidthInt128, b).AsI128()
}

func parseSignedUnchecked64(w Width, b []byte) int64 {
	if len(b) > 0 && b[0] == '-' {
		return int64(negate64(uint64(magnitudeUnchecked[acc64](w, b[1:]))))
	}
	return int64(magnitudeUnchecked[acc64](w, b))
}
