package decswar

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

const minInt64 = -1 << 63

var i64 = I128From64

func randI128(scratch []byte) I128 {
	rand.Read(scratch)
	i := I128{}
	i.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		i.hi = binary.LittleEndian.Uint64(scratch[8:])
	}
	if scratch[1]%2 == 1 {
		i = i.Neg()
	}
	return i
}

func TestI128AsFloat64(t *testing.T) {
	for _, tc := range []struct {
		a   I128
		out float64
	}{
		{i128s("-120"), -120},
		{i64(minInt64), -9223372036854775808},
		{MinI128, -170141183460469231731687303715884105728},
		{MaxI128, 170141183460469231731687303715884105727},
	} {
		t.Run(fmt.Sprintf("float64(%s)", tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsFloat64())
		})
	}
}

func TestI128AsInt64(t *testing.T) {
	for idx, tc := range []struct {
		a   I128
		out int64
	}{
		{i64(-1), -1},
		{i64(minInt64), minInt64},
		{i64(maxInt64), maxInt64},
		{i128s("9223372036854775808"), minInt64},  // (maxInt64 + 1) overflows to min
		{i128s("-9223372036854775809"), maxInt64}, // (minInt64 - 1) underflows to max
	} {
		t.Run(fmt.Sprintf("%d/int64(%s)=%d", idx, tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			iv := tc.a.AsInt64()
			tt.MustEqual(tc.out, iv)
		})
	}
}

func TestI128Raw(t *testing.T) {
	for _, tc := range []struct {
		hi, lo uint64
		out    I128
	}{
		{0, 0, i64(0)},
		{0, 1, i64(1)},
		{maxUint64, maxUint64, i64(-1)},
		{signBit, 0, MinI128},
		{0x7FFFFFFFFFFFFFFF, maxUint64, MaxI128},
		{1, 0, i128s("18446744073709551616")},
	} {
		t.Run(fmt.Sprintf("%x,%x", tc.hi, tc.lo), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := I128FromRaw(tc.hi, tc.lo)
			tt.MustEqual(tc.out, v)
			hi, lo := v.Raw()
			tt.MustEqual(tc.hi, hi)
			tt.MustEqual(tc.lo, lo)
		})
	}
}

func TestI128Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   I128
		result int
	}{
		{i64(0), i64(0), 0},
		{i64(1), i64(0), 1},
		{i64(10), i64(9), 1},
		{i64(-1), i64(1), -1},
		{i64(1), i64(-1), 1},
		{MinI128, MaxI128, -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := tc.a.Cmp(tc.b)
			tt.MustEqual(tc.result, result)
			tt.MustEqual(result < 0, tc.a.LessThan(tc.b))
		})
	}
}

func TestI128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   I128
		acc bool
	}{
		{bigs("0"), i64(0), true},
		{bigs("-1"), i64(-1), true},
		{bigs("170141183460469231731687303715884105727"), MaxI128, true},
		{bigs("170141183460469231731687303715884105728"), MaxI128, false},
		{bigs("-170141183460469231731687303715884105728"), MinI128, true},
		{bigs("-170141183460469231731687303715884105729"), MinI128, false},
		{bigs("-18446744073709551616"), I128{hi: maxUint64}, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := I128FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestI128FromString(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out I128
		acc bool
		err bool
	}{
		{"-0", i64(0), true, false},
		{"-1", i64(-1), true, false},
		{"170141183460469231731687303715884105728", MaxI128, false, false},
		{"-170141183460469231731687303715884105729", MinI128, false, false},
		{"-9999999999999999999999999999999999999999", MinI128, false, false},
		{"9999999999999999999999999999999999999999", MaxI128, false, false},
		{"1x", I128{}, false, true},
		{"-", I128{}, false, true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, acc, err := I128FromString(tc.in)
			tt.MustEqual(tc.err, err != nil, "%v", err)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestI128IsInt64(t *testing.T) {
	for idx, tc := range []struct {
		a  I128
		is bool
	}{
		{i64(-1), true},
		{i64(minInt64), true},
		{i64(maxInt64), true},
		{i128s("9223372036854775808"), false},  // (maxInt64 + 1)
		{i128s("-9223372036854775809"), false}, // (minInt64 - 1)
	} {
		t.Run(fmt.Sprintf("%d/isint64(%s)=%v", idx, tc.a, tc.is), func(t *testing.T) {
			tt := assert.WrapTB(t)
			iv := tc.a.IsInt64()
			tt.MustEqual(tc.is, iv)
		})
	}
}

func TestI128Neg(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(0), i64(0)},
		{i64(-2), i64(2)},
		{i64(2), i64(-2)},

		// hi/lo carry:
		{I128{lo: 0xFFFFFFFFFFFFFFFF}, I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 1}},
		{I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 1}, I128{lo: 0xFFFFFFFFFFFFFFFF}},

		{i128s("18446744073709551616"), i128s("-18446744073709551616")},
		{i128s("-18446744073709551616"), i128s("18446744073709551616")},
		{i128s("-18446744073709551617"), i128s("18446744073709551617")},
		{I128{hi: 1, lo: 0}, I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 0x0}},

		// Negating MaxI128 should yield MinI128 + 1:
		{I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}, I128{hi: 0x8000000000000000, lo: 1}},

		// Negating MinI128 should yield MinI128:
		{I128{hi: 0x8000000000000000, lo: 0}, I128{hi: 0x8000000000000000, lo: 0}},
	} {
		t.Run(fmt.Sprintf("%d/-%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := tc.a.Neg()
			tt.MustAssert(tc.b.Equal(result))
		})
	}
}

func TestI128Sign(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(0, i64(0).Sign())
	tt.MustEqual(1, i64(1).Sign())
	tt.MustEqual(-1, i64(-1).Sign())
	tt.MustEqual(-1, MinI128.Sign())
	tt.MustAssert(i64(0).IsZero())
}

func TestI128StringRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < fuzzIterations; i++ {
		n := randI128(bts)
		tt.MustEqual(n.AsBigInt().String(), n.String())

		out, err := ParseI128([]byte(n.String()))
		tt.MustOK(err)
		tt.MustEqual(n, out)
	}
	tt.MustEqual("-170141183460469231731687303715884105728", MinI128.String())
}

func TestI128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	bts := make([]byte, 16)

	for i := 0; i < 5000; i++ {
		n := randI128(bts)

		bts, err := json.Marshal(n)
		tt.MustOK(err)

		var result I128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(n))
	}
}

func TestI128MarshalText(t *testing.T) {
	tt := assert.WrapTB(t)
	bts, err := MinI128.MarshalText()
	tt.MustOK(err)

	var result I128
	tt.MustOK(result.UnmarshalText(bts))
	tt.MustEqual(MinI128, result)
}
