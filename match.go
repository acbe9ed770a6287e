package delta

import (
	"encoding/binary"
	"math/bits"
)

// matchForward returns the length of the common prefix of src and tgt.
//
// The bulk of the comparison runs sixteen bytes at a time as two 64-bit
// little-endian words: xor-ing matching words gives zero, and on the first
// nonzero word the trailing zero count locates the exact mismatching byte,
// since the lowest byte of the word holds the earliest byte of the buffer.
func matchForward(src, tgt []byte) int {
	max := len(src)
	if len(tgt) < max {
		max = len(tgt)
	}

	matched := 0
	for matched+16 <= max {
		x0 := binary.LittleEndian.Uint64(src[matched:]) ^ binary.LittleEndian.Uint64(tgt[matched:])
		x1 := binary.LittleEndian.Uint64(src[matched+8:]) ^ binary.LittleEndian.Uint64(tgt[matched+8:])

		if x0 != 0 {
			return matched + bits.TrailingZeros64(x0)/8
		}
		if x1 != 0 {
			return matched + 8 + bits.TrailingZeros64(x1)/8
		}

		matched += 16
	}

	for matched < max && src[matched] == tgt[matched] {
		matched++
	}

	return matched
}

// matchBackward returns the length of the common suffix of src and tgt,
// which is how far a verified match extends backwards from its start when
// the slices end just before it.
func matchBackward(src, tgt []byte) int {
	max := len(src)
	if len(tgt) < max {
		max = len(tgt)
	}

	matched := 0
	for matched < max && src[len(src)-1-matched] == tgt[len(tgt)-1-matched] {
		matched++
	}

	return matched
}
