package decswar

import (
	"bytes"
	"strconv"
	"strings"
)

// Decimal is an exact fixed-point value: Coef * 10^-Scale.
type Decimal struct {
	Coef  I128
	Scale int
}

// float64Pow10 holds the powers of ten that are exact in a float64.
var float64Pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// float32Pow10 holds the powers of ten that are exact in a float32.
var float32Pow10 = [...]float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() float64 {
	f := scaleFloat(d.Coef.absU128(), d.Scale, 64)
	if d.Coef.Sign() < 0 {
		f = -f
	}
	return f
}

// Float32 returns the nearest float32 to d.
func (d Decimal) Float32() float32 {
	mag := d.Coef.absU128()
	var f float32
	if mag.hi == 0 && mag.lo <= 1<<24 && d.Scale >= 0 && d.Scale < len(float32Pow10) {
		f = float32(mag.lo) / float32Pow10[d.Scale]
	} else {
		f = float32(scaleFloat(mag, d.Scale, 32))
	}
	if d.Coef.Sign() < 0 {
		f = -f
	}
	return f
}

// scaleFloat returns mag * 10^-scale rounded to bitSize. Coefficients of up to
// 53 bits with a scale the exact powers cover take one division; everything
// else is rounded by strconv.
func scaleFloat(mag U128, scale int, bitSize int) float64 {
	if bitSize == 64 && mag.hi == 0 && mag.lo <= 1<<53 && scale >= 0 && scale < len(float64Pow10) {
		return float64(mag.lo) / float64Pow10[scale]
	}

	var buf [64]byte
	var b []byte
	if mag.hi == 0 {
		b = strconv.AppendUint(buf[:0], mag.lo, 10)
	} else {
		b = append(buf[:0], mag.String()...)
	}
	b = append(b, 'e')
	b = strconv.AppendInt(b, -int64(scale), 10)

	// Out of range results come back as 0 or +Inf, the nearest value.
	f, _ := strconv.ParseFloat(string(b), bitSize)
	return f
}

func (d Decimal) String() string {
	s := d.Coef.absU128().String()
	var sb strings.Builder
	if d.Coef.Sign() < 0 {
		sb.WriteByte('-')
	}
	if d.Scale <= 0 {
		sb.WriteString(s)
		return sb.String()
	}
	if pad := d.Scale - len(s) + 1; pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	sb.WriteString(s[:len(s)-d.Scale])
	sb.WriteByte('.')
	sb.WriteString(s[len(s)-d.Scale:])
	return sb.String()
}

// ParseFloat64 parses b as a fixed-point decimal and scales it to a float64.
func (p *Parser) ParseFloat64(b []byte) (float64, error) {
	d, err := p.ParseDecimal(b)
	if err != nil {
		return 0, err
	}
	return d.Float64(), nil
}

// ParseFloat32 is ParseFloat64 rounded to a float32.
func (p *Parser) ParseFloat32(b []byte) (float32, error) {
	d, err := p.ParseDecimal(b)
	if err != nil {
		return 0, err
	}
	return d.Float32(), nil
}

// ParseDecimal parses an optional '-', digits, at most one '.', and more
// digits. There must be at least one digit on one side of the point, so
// ".5" and "5." are accepted but "." is Empty. The coefficient may have up to
// 39 significant digits and is classified against the int128 range.
func (p *Parser) ParseDecimal(b []byte) (Decimal, error) {
	digits, neg, kind := splitSign(b)
	if kind != 0 {
		return Decimal{}, newParseError(kind, WidthInt128, b)
	}

	point, kind := p.locatePoint(digits)
	if kind != 0 {
		return Decimal{}, newParseError(kind, WidthInt128, b)
	}

	if point < 0 {
		mag, kind := magnitude[U128](WidthInt128, digits, neg)
		if kind != 0 {
			return Decimal{}, newParseError(kind, WidthInt128, b)
		}
		return newDecimal(mag, neg, 0), nil
	}

	if len(digits) == 1 {
		return Decimal{}, newParseError(Empty, WidthInt128, b)
	}

	var mag U128
	if len(digits) <= 8 {
		mag, kind = shortCoefficient(digits, point)
	} else {
		mag, kind = longCoefficient(digits, point, neg)
	}
	if kind != 0 {
		return Decimal{}, newParseError(kind, WidthInt128, b)
	}
	return newDecimal(mag, neg, len(digits)-point-1), nil
}

// locatePoint returns the index of the decimal point in digits, or -1 if
// there is none.
func (p *Parser) locatePoint(digits []byte) (int, ErrorKind) {
	switch {
	case p.fracLen < 0:
		return bytes.IndexByte(digits, '.'), 0

	case p.fracLen == 0:
		if digits[len(digits)-1] == '.' {
			return len(digits) - 1, 0
		}
		return -1, 0

	default:
		point := len(digits) - p.fracLen - 1
		if point < 0 || digits[point] != '.' {
			return -1, NonDecimal
		}
		return point, 0
	}
}

func newDecimal(mag U128, neg bool, scale int) Decimal {
	if neg {
		mag = negate128(mag)
	}
	return Decimal{Coef: mag.AsI128(), Scale: scale}
}

// shortCoefficient decodes up to seven digits and a point, all of which fit
// in one register. The point's lane is squeezed out by shifting the lanes
// above it down by one.
func shortCoefficient(digits []byte, point int) (U128, ErrorKind) {
	r := load64(digits)
	below := laneMask64(point)
	r = (r & below) | ((r >> 8) &^ below)

	n := len(digits) - 1
	if !allDigits(r | asciiZeros64&^laneMask64(n)) {
		return U128{}, NonDecimal
	}
	return U128{lo: decodeShort(r, n)}, 0
}

// longCoefficient copies the digits either side of the point into a buffer
// and decodes them as one integer. Leading zeros are dropped first, including
// those after the point when the integer part is zero.
func longCoefficient(digits []byte, point int, neg bool) (U128, ErrorKind) {
	whole, frac := digits[:point], digits[point+1:]
	whole = whole[leadingZeros(whole):]
	if len(whole) == 0 {
		frac = frac[leadingZeros(frac):]
	}
	n := len(whole) + len(frac)
	if n > maxDecimalDigits {
		return U128{}, Overflow
	}

	var buf [maxDecimalDigits]byte
	copy(buf[copy(buf[:], whole):], frac)
	return magnitude[U128](WidthInt128, buf[:n], neg)
}
