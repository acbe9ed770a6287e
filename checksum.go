package delta

import (
	"encoding/binary"
)

// Checksum computes the 32-bit checksum carried in a delta's trailer: the
// sum of the buffer read as big-endian 4-byte words, as if zero-padded to
// the next multiple of four. It detects corruption; it is in no sense a MAC.
func Checksum(data []byte) uint32 {
	var sum uint32

	aligned := len(data) &^ 3
	for i := 0; i < aligned; i += 4 {
		sum += binary.BigEndian.Uint32(data[i:])
	}

	switch tail := data[aligned:]; len(tail) {
	case 3:
		sum += uint32(tail[0])<<24 | uint32(tail[1])<<16 | uint32(tail[2])<<8
	case 2:
		sum += uint32(tail[0])<<24 | uint32(tail[1])<<16
	case 1:
		sum += uint32(tail[0]) << 24
	}

	return sum
}
