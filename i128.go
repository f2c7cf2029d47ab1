package decswar

import (
	"fmt"
	"math/big"
)

// I128 is a signed 128-bit two's complement integer. It is the result type
// of the 128-bit signed parsers and the widened result of ParseSigned.
type I128 struct {
	hi uint64
	lo uint64
}

const signBit = 0x8000000000000000

// I128FromString creates an I128 from a decimal string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromString(s string) (out I128, accurate bool, err error) {
	out, err = ParseI128([]byte(s))
	switch KindOf(err) {
	case 0:
		return out, true, nil
	case Overflow:
		if len(s) > 0 && s[0] == '-' {
			return MinI128, false, nil
		}
		return MaxI128, false, nil
	case NegOverflow:
		return MinI128, false, nil
	default:
		return out, false, err
	}
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

// I128From64 sign-extends v.
func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

// I128FromBigInt creates an I128 from a big.Int. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	mag, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if mag.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return mag.AsI128(), accurate
	}
	if mag.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return negate128(mag).AsI128(), accurate
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	if i.hi&signBit == 0 {
		return i.AsU128().String()
	}
	return "-" + i.absU128().String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	i.AsU128().IntoBigInt(b)
	if neg {
		b.Xor(b, maxBigU128).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// absU128 returns the magnitude of i. Unlike Abs, MinI128 has a
// representable result.
func (i I128) absU128() U128 {
	if i.hi&signBit != 0 {
		return negate128(i.AsU128())
	}
	return i.AsU128()
}

func (i I128) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		return -i.absU128().AsFloat64()
	}
	return i.AsU128().AsFloat64()
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Neg returns -i. -MinI128 overflows to MinI128.
func (i I128) Neg() I128 {
	return negate128(i.AsU128()).AsI128()
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) LessThan(n I128) bool {
	return i.Cmp(n) < 0
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseI128(bts)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("decswar: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := ParseI128(bts)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
