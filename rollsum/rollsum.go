/*
Package rollsum provides the rolling hash the delta encoder scans with: an
adler-style pair of 16-bit sums over a fixed window, cheap to slide forward
one byte at a time.

It is inspired by the rolling checksum in rsync, but the internal values are
deliberately 16-bit and the composite is the 32-bit word (b<<16)|a, because
those exact values feed the source block index - a conformant implementation
must reproduce them bit for bit, including the mod-2^16 wraparound.

The hash is a scan accelerator, not a cryptographic digest. Callers are
expected to confirm any candidate it produces with a byte-exact comparison.
*/
package rollsum

import (
	"github.com/Redundancy/go-delta/circularbuffer"
)

// NewRollsum32 creates a rolling hash over a window of blockSize bytes.
// blockSize must be at least 2; the delta encoder always passes a power of
// two.
func NewRollsum32(blockSize int) *Rollsum32 {
	return &Rollsum32{
		blockSize: blockSize,
		window:    circularbuffer.NewRing(blockSize),
	}
}

// Rollsum32 is the rolling hash state. a is the plain sum of the window
// bytes, b the position-weighted sum z[0]*n + z[1]*(n-1) + ... + z[n-1]*1,
// both mod 2^16.
type Rollsum32 struct {
	blockSize int
	a, b      uint16
	window    *circularbuffer.Ring
}

// SetBlock primes the hash with a full window. block must be exactly
// blockSize bytes. After SetBlock, Sum32 equals Hash over the same bytes.
func (r *Rollsum32) SetBlock(block []byte) {
	r.a, r.b = 0, 0
	for _, c := range block {
		r.a += uint16(c)
		r.b += r.a
	}
	r.window.Fill(block)
}

// Roll slides the window forward by one byte, admitting c and dropping the
// oldest byte, in constant time.
func (r *Rollsum32) Roll(c byte) {
	old := uint16(r.window.Push(c))
	r.a += uint16(c) - old
	r.b += r.a - uint16(r.blockSize)*old
}

// Sum32 returns the composite 32-bit hash of the current window
func (r *Rollsum32) Sum32() uint32 {
	return uint32(r.a) | uint32(r.b)<<16
}

// BlockSize returns the window size the hash was created with
func (r *Rollsum32) BlockSize() int {
	return r.blockSize
}

// Hash is the one-shot form: it returns what Sum32 would return after
// SetBlock(block), without any state. The block indexer uses this.
func Hash(block []byte) uint32 {
	var a, b uint16
	for _, c := range block {
		a += uint16(c)
		b += a
	}
	return uint32(a) | uint32(b)<<16
}
