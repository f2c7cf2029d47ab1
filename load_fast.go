package decswar

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// directLoad is set when a full register can be read straight out of the
// slice: the host must be little endian and tolerate unaligned loads.
var directLoad = unalignedLoads && !cpu.IsBigEndian

// loadFull32 requires len(b) >= 4.
func loadFull32(b []byte) uint32 {
	_ = b[3]
	if directLoad {
		return *(*uint32)(unsafe.Pointer(unsafe.SliceData(b)))
	}
	return binary.LittleEndian.Uint32(b)
}

// loadFull64 requires len(b) >= 8.
func loadFull64(b []byte) uint64 {
	_ = b[7]
	if directLoad {
		return *(*uint64)(unsafe.Pointer(unsafe.SliceData(b)))
	}
	return binary.LittleEndian.Uint64(b)
}
