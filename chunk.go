package decswar

// combine folds each pair of adjacent groups in r into one group twice the
// size. low selects the more significant group of every pair (the one in the
// lower lanes); its partner sits shift bits above it. mul is 10 to the power
// of the group's digit count.
func combine[T register](r, low T, shift uint, mul T) T {
	return (r>>shift)&low + (r&low)*mul
}

// decode2 converts two ASCII digits.
func decode2(r uint16) uint64 {
	return uint64(combine(r, 0x000f, 8, 10))
}

// decode4 converts four ASCII digits.
func decode4(r uint32) uint64 {
	r = combine(r, 0x000f000f, 8, 10)
	r = combine(r, 0x000000ff, 16, 100)
	return uint64(r)
}

// decode8 converts eight ASCII digits.
func decode8(r uint64) uint64 {
	r = combine(r, 0x000f000f000f000f, 8, 10)
	r = combine(r, 0x000000ff000000ff, 16, 100)
	r = combine(r, 0x000000000000ffff, 32, 10000)
	return r
}

// decode16 converts sixteen ASCII digits. The first three rounds run on both
// halves; the last joins them.
func decode16(r U128) uint64 {
	return decode8(r.lo)*1e8 + decode8(r.hi)
}

// decodeShort converts the digits in the first n lanes of r, n <= 8. The
// unused lanes may hold anything; they are shifted out before combining so
// the n digits occupy the most significant end of the register.
func decodeShort(r uint64, n int) uint64 {
	return decode8(r << (uint(8-n) * 8))
}
