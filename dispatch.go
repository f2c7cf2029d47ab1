package decswar

import (
	"math/bits"
)

// accumulator is the running value a digit span is folded into. acc64 serves
// every width up to 64 bits; U128 serves the 128-bit widths.
type accumulator[A any] interface {
	// fold returns a*weight + v, and false if that does not fit in A.
	fold(weight, v uint64) (A, bool)

	// wrap returns a*weight + v modulo the size of A.
	wrap(weight, v uint64) A

	wide() U128
}

type acc64 uint64

func (a acc64) fold(weight, v uint64) (acc64, bool) {
	hi, lo := bits.Mul64(uint64(a), weight)
	sum, carry := bits.Add64(lo, v, 0)
	return acc64(sum), hi|carry == 0
}

func (a acc64) wrap(weight, v uint64) acc64 { return a*acc64(weight) + acc64(v) }

func (a acc64) wide() U128 { return U128{lo: uint64(a)} }

func (u U128) fold(weight, v uint64) (U128, bool) { return u.MulAdd64(weight, v) }

func (u U128) wrap(weight, v uint64) U128 {
	return u.Mul(U128{lo: weight}).Add(U128{lo: v})
}

func (u U128) wide() U128 { return u }

// decodeDigits folds b into an A, 16 bytes at a time while at least 16
// remain, then at most one group each of 8, 4, 2 and 1 bytes. Every group is
// validated before it is decoded. Once a fold overflows the remaining groups
// are still validated so that a later non-digit takes precedence.
func decodeDigits[A accumulator[A]](b []byte) (acc A, kind ErrorKind) {
	var ok, overflow bool

	for len(b) >= 16 {
		r := load128(b)
		if !allDigits128(r) {
			return acc, NonDecimal
		}
		if acc, ok = acc.fold(1e16, decode16(r)); !ok {
			overflow = true
		}
		b = b[16:]
	}

	if len(b) >= 8 {
		r := loadFull64(b)
		if !allDigits(r) {
			return acc, NonDecimal
		}
		if acc, ok = acc.fold(1e8, decode8(r)); !ok {
			overflow = true
		}
		b = b[8:]
	}

	if len(b) >= 4 {
		r := loadFull32(b)
		if !allDigits(r) {
			return acc, NonDecimal
		}
		if acc, ok = acc.fold(1e4, decode4(r)); !ok {
			overflow = true
		}
		b = b[4:]
	}

	if len(b) >= 2 {
		r := load16(b[:2])
		if !allDigits(r) {
			return acc, NonDecimal
		}
		if acc, ok = acc.fold(100, decode2(r)); !ok {
			overflow = true
		}
		b = b[2:]
	}

	if len(b) == 1 {
		d := b[0] - '0'
		if d > 9 {
			return acc, NonDecimal
		}
		if acc, ok = acc.fold(10, uint64(d)); !ok {
			overflow = true
		}
	}

	if overflow {
		return acc, Overflow
	}
	return acc, 0
}

// decodeDigitsUnchecked is decodeDigits without validation or overflow
// detection.
func decodeDigitsUnchecked[A accumulator[A]](b []byte) (acc A) {
	for len(b) >= 16 {
		acc = acc.wrap(1e16, decode16(load128(b)))
		b = b[16:]
	}
	if len(b) >= 8 {
		acc = acc.wrap(1e8, decode8(loadFull64(b)))
		b = b[8:]
	}
	if len(b) >= 4 {
		acc = acc.wrap(1e4, decode4(loadFull32(b)))
		b = b[4:]
	}
	if len(b) >= 2 {
		acc = acc.wrap(100, decode2(load16(b[:2])))
		b = b[2:]
	}
	if len(b) == 1 {
		acc = acc.wrap(10, uint64(b[0]&0x0f))
	}
	return acc
}

// magnitude strips the leading zeros from digits and decodes the rest as the
// absolute value of a number of width w.
func magnitude[A accumulator[A]](w Width, digits []byte, neg bool) (mag A, kind ErrorKind) {
	digits = digits[leadingZeros(digits):]
	n := len(digits)
	if n == 0 {
		return mag, 0
	}
	if n > int(w.digits) {
		return mag, Overflow
	}

	mag, kind = decodeDigits[A](digits)
	if kind == Overflow && neg {
		kind = NegOverflow
	}
	if kind != 0 {
		return mag, kind
	}

	if n == int(w.digits) {
		kind = w.classify(mag.wide(), neg)
	}
	return mag, kind
}

func magnitudeUnchecked[A accumulator[A]](w Width, digits []byte) A {
	digits = digits[leadingZeros(digits):]
	if len(digits) > int(w.digits) {
		panic("decswar: unchecked " + w.String() + " input has too many digits")
	}
	return decodeDigitsUnchecked[A](digits)
}
