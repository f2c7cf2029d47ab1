package decswar

import (
	"bytes"
	"fmt"
	"math/bits"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Every byte value in every lane, with every other lane holding a digit.
func TestBadLanesEveryByteEveryLane(t *testing.T) {
	tt := assert.WrapTB(t)

	for lane := 0; lane < 8; lane++ {
		for c := 0; c < 256; c++ {
			buf := []byte("01234567")
			buf[lane] = byte(c)

			r64 := load64(buf)
			m64 := badLanes(r64)
			if isDigit(byte(c)) {
				tt.MustEqual(uint64(0), m64, "lane %d byte %#x", lane, c)
			} else {
				tt.MustEqual(uint64(1)<<(uint(lane)*8), m64, "lane %d byte %#x", lane, c)
				tt.MustEqual(lane, bits.TrailingZeros64(m64)/8)
			}

			if lane < 4 {
				r32 := load32(buf[:4])
				tt.MustEqual(isDigit(byte(c)), allDigits(r32), "lane %d byte %#x", lane, c)
			}
			if lane < 2 {
				r16 := load16(buf[:2])
				tt.MustEqual(isDigit(byte(c)), allDigits(r16), "lane %d byte %#x", lane, c)
			}
		}
	}
}

func TestBadLanes128(t *testing.T) {
	tt := assert.WrapTB(t)
	for lane := 0; lane < 16; lane++ {
		for _, c := range []byte{'/', ':', 0, 0xff, '.', '-', '+', ' ', 0xb0, 0xb9} {
			buf := []byte("0123456789012345")
			buf[lane] = c
			tt.MustAssert(!allDigits128(load128(buf)), "lane %d byte %#x", lane, c)
		}
	}
	tt.MustAssert(allDigits128(load128([]byte("9876543210987654"))))
}

func TestBadLanesMultiple(t *testing.T) {
	tt := assert.WrapTB(t)
	r := load64([]byte("1a3b5c7d"))
	tt.MustEqual(uint64(0x0100010001000100), badLanes(r))
}

func TestIsDecimal(t *testing.T) {
	for _, tc := range []struct {
		in string
		ok bool
	}{
		{"", false},
		{"0", true},
		{"9", true},
		{"a", false},
		{"12", true},
		{"1234567", true},
		{"123456/", false},
		{"12345678", true},
		{"1234567:", false},
		{"123456789", true},
		{"12345678x", false},
		{"0123456789012345", true},
		{"01234567890123456789012345678901234567890", true},
		{"0123456789012345678901234567890123456789-", false},
		{"-1", false},
		{"+1", false},
		{"1.0", false},
		{" 1", false},
	} {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.ok, IsDecimal([]byte(tc.in)))
		})
	}
}

func TestIsDecimalRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := globalRNG

	buf := make([]byte, 48)
	for i := 0; i < fuzzIterations; i++ {
		n := rng.Intn(len(buf)) + 1
		b := buf[:n]
		for j := range b {
			b[j] = byte('0' + rng.Intn(10))
		}
		if rng.Intn(2) == 0 {
			b[rng.Intn(n)] = byte(rng.Intn(256))
		}

		exp := true
		for _, c := range b {
			exp = exp && isDigit(c)
		}
		tt.MustEqual(exp, IsDecimal(b), "%q", b)
	}
}

// The loaders must never look past the end of the slice they were given,
// even if the backing array continues.
func TestLoadStopsAtLength(t *testing.T) {
	tt := assert.WrapTB(t)
	backing := bytes.Repeat([]byte{0xff}, 32)
	for n := 0; n <= 16; n++ {
		copy(backing, "0123456789abcdef"[:n])
		b := backing[:n]

		if n <= 2 {
			tt.MustEqual(uint32(0), uint32(load16(b))>>(uint(n)*8), "n=%d", n)
		}
		if n <= 8 {
			r := load64(b)
			tt.MustEqual(uint64(0), r&^laneMask64(n), "n=%d", n)
		}
		r := load128(b)
		if n <= 8 {
			tt.MustEqual(uint64(0), r.hi)
		} else {
			tt.MustEqual(uint64(0), r.hi&^laneMask64(n-8), "n=%d", n)
		}
	}
}

func TestLeadingZeros(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out int
	}{
		{"", 0},
		{"0", 1},
		{"1", 0},
		{"0001", 3},
		{"00000000", 8},
		{"00000001", 7},
		{"000000000", 9},
		{"0000000000000000001", 18},
		{"00000000000000000000", 20},
		{"0x0", 1},
		{"-0", 0},
	} {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, leadingZeros([]byte(tc.in)))
		})
	}
}
