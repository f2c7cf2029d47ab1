package decswar

// Every checked parse function accepts an optional leading '-' (signed
// widths only) followed by one or more ASCII digits, with any number of
// leading zeros. The returned error is always a *ParseError.

func parseUnsigned64(w Width, b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, newParseError(Empty, w, b)
	}
	mag, kind := magnitude[acc64](w, b, false)
	if kind != 0 {
		return 0, newParseError(kind, w, b)
	}
	return uint64(mag), nil
}

func parseSigned64(w Width, b []byte) (int64, error) {
	digits, neg, kind := splitSign(b)
	if kind != 0 {
		return 0, newParseError(kind, w, b)
	}
	mag, kind := magnitude[acc64](w, digits, neg)
	if kind != 0 {
		return 0, newParseError(kind, w, b)
	}
	if neg {
		return int64(negate64(uint64(mag))), nil
	}
	return int64(mag), nil
}

// ParseUint8 parses an unsigned decimal that fits in a uint8.
func ParseUint8(b []byte) (uint8, error) {
	v, err := parseUnsigned64(WidthUint8, b)
	return uint8(v), err
}

// ParseUint16 parses an unsigned decimal that fits in a uint16.
func ParseUint16(b []byte) (uint16, error) {
	v, err := parseUnsigned64(WidthUint16, b)
	return uint16(v), err
}

// ParseUint32 parses an unsigned decimal that fits in a uint32.
func ParseUint32(b []byte) (uint32, error) {
	v, err := parseUnsigned64(WidthUint32, b)
	return uint32(v), err
}

// ParseUint64 parses an unsigned decimal that fits in a uint64.
func ParseUint64(b []byte) (uint64, error) {
	return parseUnsigned64(WidthUint64, b)
}

// ParseInt8 parses an optionally negative decimal that fits in an int8.
func ParseInt8(b []byte) (int8, error) {
	v, err := parseSigned64(WidthInt8, b)
	return int8(v), err
}

// ParseInt16 parses an optionally negative decimal that fits in an int16.
func ParseInt16(b []byte) (int16, error) {
	v, err := parseSigned64(WidthInt16, b)
	return int16(v), err
}

// ParseInt32 parses an optionally negative decimal that fits in an int32.
func ParseInt32(b []byte) (int32, error) {
	v, err := parseSigned64(WidthInt32, b)
	return int32(v), err
}

// ParseInt64 parses an optionally negative decimal that fits in an int64.
func ParseInt64(b []byte) (int64, error) {
	return parseSigned64(WidthInt64, b)
}

// ParseU128 parses an unsigned decimal of up to 39 significant digits.
func ParseU128(b []byte) (U128, error) {
	if len(b) == 0 {
		return U128{}, newParseError(Empty, WidthUint128, b)
	}
	mag, kind := magnitude[U128](WidthUint128, b, false)
	if kind != 0 {
		return U128{}, newParseError(kind, WidthUint128, b)
	}
	return mag, nil
}

// ParseI128 parses a signed decimal of up to 39 significant digits.
func ParseI128(b []byte) (I128, error) {
	digits, neg, kind := splitSign(b)
	if kind != 0 {
		return I128{}, newParseError(kind, WidthInt128, b)
	}
	mag, kind := magnitude[U128](WidthInt128, digits, neg)
	if kind != 0 {
		return I128{}, newParseError(kind, WidthInt128, b)
	}
	if neg {
		mag = negate128(mag)
	}
	return mag.AsI128(), nil
}

// ParseUnsigned parses b as an unsigned integer of width w. The result is
// widened to a U128 but is always within w's range. It panics if w is
// signed.
func ParseUnsigned(w Width, b []byte) (U128, error) {
	w.mustValid()
	if w.signed {
		panic("decswar: ParseUnsigned called with signed width " + w.String())
	}
	if w.bits == 128 {
		return ParseU128(b)
	}
	v, err := parseUnsigned64(w, b)
	return U128{lo: v}, err
}

// ParseSigned parses b as a signed integer of width w. The result is
// sign-extended to an I128 but is always within w's range. It panics if w is
// unsigned.
func ParseSigned(w Width, b []byte) (I128, error) {
	w.mustValid()
	if !w.signed {
		panic("decswar: ParseSigned called with unsigned width " + w.String())
	}
	if w.bits == 128 {
		return ParseI128(b)
	}
	v, err := parseSigned64(w, b)
	return I128From64(v), err
}
