package decswar

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. It is the result type of the 128-bit
// unsigned parsers and the widened result of ParseUnsigned.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	out, err = ParseU128([]byte(s))
	if KindOf(err) == Overflow {
		return MaxU128, false, nil
	} else if err != nil {
		return out, false, err
	}
	return out, true, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("decswar: unsupported bit size")
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u == zeroU128 {
		return "0"
	}
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	return (float64(u.hi) * wrapUint64Float) + float64(u.lo)
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// AsUint64 truncates the U128 to fit in a uint64. See IsUint64() if you want
// to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

// Mul returns the product of u and n. Overflow wraps.
func (u U128) Mul(n U128) (dest U128) {
	hi, lo := bits.Mul64(u.lo, n.lo)
	dest.lo = lo
	dest.hi = hi + u.hi*n.lo + u.lo*n.hi
	return dest
}

// MulAdd64 returns u*m + a, and false if the result does not fit in 128
// bits. The returned value is meaningless when ok is false.
func (u U128) MulAdd64(m, a uint64) (v U128, ok bool) {
	hh, hl := bits.Mul64(u.hi, m)
	lh, ll := bits.Mul64(u.lo, m)

	var c1, c2, c3 uint64
	v.hi, c1 = bits.Add64(hl, lh, 0)
	v.lo, c2 = bits.Add64(ll, a, 0)
	v.hi, c3 = bits.Add64(v.hi, 0, c2)
	return v, hh|c1|c3 == 0
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU128(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("decswar: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := ParseU128(bts)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
