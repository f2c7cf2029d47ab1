package decswar

import (
	"encoding/binary"
)

// The loaders below read up to one register's worth of bytes from b. Byte i
// of b lands in lane i, i.e. bits [8i, 8i+8), so the first input byte is the
// least significant lane. Lanes beyond len(b) are zero. Nothing outside b is
// read.

func load16(b []byte) uint16 {
	switch len(b) {
	case 0:
		return 0
	case 1:
		return uint16(b[0])
	}
	return binary.LittleEndian.Uint16(b)
}

func load32(b []byte) uint32 {
	if len(b) >= 4 {
		return loadFull32(b)
	}
	var buf [4]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint32(buf[:])
}

func load64(b []byte) uint64 {
	if len(b) >= 8 {
		return loadFull64(b)
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

func load128(b []byte) U128 {
	if len(b) >= 16 {
		return U128{lo: loadFull64(b), hi: loadFull64(b[8:])}
	}
	var buf [16]byte
	copy(buf[:], b)
	return U128{
		lo: binary.LittleEndian.Uint64(buf[:]),
		hi: binary.LittleEndian.Uint64(buf[8:]),
	}
}

// laneMask64 returns a mask covering the first n lanes of a 64-bit register.
func laneMask64(n int) uint64 {
	if n >= 8 {
		return maxUint64
	}
	return 1<<(uint(n)*8) - 1
}
