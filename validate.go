package decswar

// register is the set of fixed-width words bytes are packed into. 128-bit
// registers are handled as a pair of uint64 halves.
type register interface {
	~uint16 | ~uint32 | ~uint64
}

// badLanes returns a mask with bit 0 of every byte lane of r that is not an
// ASCII digit set, and every other bit clear.
//
// Even and odd byte lanes are spread into separate 16-bit slots so that each
// lane has a spare byte to carry into. Adding 0xC6 carries out of a lane iff
// it is above '9'; adding 0x30 to the lane's complement carries iff it is
// below '0'. Both carries land on bit 8 of the slot.
func badLanes[T register](r T) T {
	var (
		slot  = ^T(0) / 0xffff // 0x0001 in every 16-bit slot
		lanes = slot * 0x00ff
		above = slot * 0x00c6
		below = slot * 0x0030
		carry = slot * 0x0100
	)
	lo := r & lanes
	hi := (r >> 8) & lanes
	loBad := ((lo + above) | ((lo ^ lanes) + below)) & carry
	hiBad := ((hi + above) | ((hi ^ lanes) + below)) & carry
	return loBad>>8 | hiBad
}

// allDigits reports whether every lane of r holds '0'-'9'.
func allDigits[T register](r T) bool {
	return badLanes(r) == 0
}

func allDigits128(r U128) bool {
	return badLanes(r.lo)|badLanes(r.hi) == 0
}

// IsDecimal reports whether b is non-empty and consists only of the bytes
// '0' to '9'. It checks up to 16 bytes at a time.
func IsDecimal(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for len(b) >= 16 {
		if !allDigits128(load128(b)) {
			return false
		}
		b = b[16:]
	}
	if len(b) >= 8 {
		if !allDigits(loadFull64(b)) {
			return false
		}
		b = b[8:]
	}
	if len(b) == 0 {
		return true
	}
	// Fill the unused lanes with '0' so they pass.
	n := len(b)
	return allDigits(load64(b) | asciiZeros64&^laneMask64(n))
}

const asciiZeros64 = 0x3030303030303030
