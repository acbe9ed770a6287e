/*
Package index provides the lookup structure the delta encoder probes while
scanning the target: a hash table over the non-overlapping blocks of the
source buffer.

The source is partitioned into N = len(src)/blockSize blocks of blockSize
bytes; block k starts at byte k*blockSize. Each block is filed under the slot
its rolling hash selects, with same-slot blocks kept on a chain that is
probed newest-first (the most recently inserted block, i.e. the highest
source offset, is returned first).

The index deliberately stores nothing but block numbers and never compares
bytes. Two different blocks can share a slot, and two different blocks can
even share a hash - the encoder confirms every candidate against the actual
source bytes before using it.
*/
package index

import (
	"github.com/Redundancy/go-delta/rollsum"
)

// BlockIndex is a built-once table mapping window hashes to candidate source
// blocks. landmark[slot] holds the head block of the slot's chain and
// collide[k] the block after k on its chain, with -1 terminating both.
type BlockIndex struct {
	blockSize int
	landmark  []int
	collide   []int
}

// Build indexes every blockSize-aligned block of src. src must be longer
// than blockSize so that at least one whole block exists.
func Build(src []byte, blockSize int) *BlockIndex {
	n := len(src) / blockSize

	// one backing array, chains in the first half and slots in the second
	table := make([]int, 2*n)
	for i := range table {
		table[i] = -1
	}

	ix := &BlockIndex{
		blockSize: blockSize,
		collide:   table[:n],
		landmark:  table[n:],
	}

	for k := 0; k < n; k++ {
		slot := rollsum.Hash(src[k*blockSize:(k+1)*blockSize]) % uint32(n)
		ix.collide[k] = ix.landmark[slot]
		ix.landmark[slot] = k
	}

	return ix
}

// Probe returns the newest block filed under the slot for hash h, or -1 if
// the slot is empty
func (ix *BlockIndex) Probe(h uint32) int {
	return ix.landmark[h%uint32(len(ix.landmark))]
}

// Next returns the block chained after block k, or -1 at the end of the
// chain
func (ix *BlockIndex) Next(k int) int {
	return ix.collide[k]
}

// Blocks returns the number of indexed blocks
func (ix *BlockIndex) Blocks() int {
	return len(ix.collide)
}

// BlockSize returns the block size the index was built with
func (ix *BlockIndex) BlockSize() int {
	return ix.blockSize
}
