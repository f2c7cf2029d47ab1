package decswar

import (
	"math/big"
	"strconv"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)

	// maxDecimalDigits is the longest digit run any width can accept.
	maxDecimalDigits = 39
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}

	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
)

// pow10 holds every power of ten representable in a uint64.
var pow10 = [20]uint64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// Width describes one of the integer types a decimal can be parsed into.
// The zero value is not a valid Width; use one of the Width* variables.
type Width struct {
	bits   uint8
	signed bool

	// digits is the boundary digit count: the length at which max (or
	// minAbs) is first reachable. Shorter inputs can never overflow.
	digits uint8

	max    U128
	minAbs U128
}

var (
	WidthUint8   = Width{bits: 8, digits: 3, max: U128{lo: 1<<8 - 1}}
	WidthUint16  = Width{bits: 16, digits: 5, max: U128{lo: 1<<16 - 1}}
	WidthUint32  = Width{bits: 32, digits: 10, max: U128{lo: 1<<32 - 1}}
	WidthUint64  = Width{bits: 64, digits: 20, max: U128{lo: maxUint64}}
	WidthUint128 = Width{bits: 128, digits: 39, max: MaxU128}

	WidthInt8   = Width{bits: 8, signed: true, digits: 3, max: U128{lo: 1<<7 - 1}, minAbs: U128{lo: 1 << 7}}
	WidthInt16  = Width{bits: 16, signed: true, digits: 5, max: U128{lo: 1<<15 - 1}, minAbs: U128{lo: 1 << 15}}
	WidthInt32  = Width{bits: 32, signed: true, digits: 10, max: U128{lo: 1<<31 - 1}, minAbs: U128{lo: 1 << 31}}
	WidthInt64  = Width{bits: 64, signed: true, digits: 19, max: U128{lo: maxInt64}, minAbs: U128{lo: 1 << 63}}
	WidthInt128 = Width{bits: 128, signed: true, digits: 39, max: maxI128AsU128, minAbs: minI128AsAbsU128}
)

// Bits returns the size of the integer type in bits.
func (w Width) Bits() int { return int(w.bits) }

// Signed reports whether the width has a negative range.
func (w Width) Signed() bool { return w.signed }

// MaxDigits returns the number of significant digits in the width's largest
// magnitude. Inputs with more significant digits always overflow.
func (w Width) MaxDigits() int { return int(w.digits) }

// Max returns the largest positive value of the width.
func (w Width) Max() U128 { return w.max }

// MinAbs returns the absolute value of the width's minimum, which is zero for
// unsigned widths.
func (w Width) MinAbs() U128 { return w.minAbs }

func (w Width) String() string {
	switch {
	case w.bits == 0:
		return "invalid"
	case w.signed && w.bits == 128:
		return "i128"
	case w.bits == 128:
		return "u128"
	case w.signed:
		return "int" + strconv.Itoa(int(w.bits))
	default:
		return "uint" + strconv.Itoa(int(w.bits))
	}
}

func (w Width) mustValid() {
	if w.bits == 0 {
		panic("decswar: invalid width")
	}
}
