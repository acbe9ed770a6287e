package index

import (
	"bytes"
	"testing"

	"github.com/Redundancy/go-delta/rollsum"
)

func TestThatEveryBlockAppearsOnExactlyOneChain(t *testing.T) {
	const blockSize = 4

	src := []byte("aaaabbbbccccddddaaaabbbb-tail-ignored")
	ix := Build(src, blockSize)

	seen := make(map[int]int)
	for _, head := range ix.landmark {
		for k := head; k >= 0; k = ix.Next(k) {
			seen[k]++
		}
	}

	if len(seen) != ix.Blocks() {
		t.Errorf("%v distinct blocks on chains, expected %v", len(seen), ix.Blocks())
	}

	for k, count := range seen {
		if count != 1 {
			t.Errorf("block %v appears on chains %v times", k, count)
		}
	}
}

func TestThatProbeFindsAnIndexedBlock(t *testing.T) {
	const blockSize = 4

	src := []byte("0123456789abcdefghij")
	ix := Build(src, blockSize)

	block := src[8:12]
	found := false

	for k := ix.Probe(rollsum.Hash(block)); k >= 0; k = ix.Next(k) {
		if bytes.Equal(src[k*blockSize:(k+1)*blockSize], block) {
			found = true
			break
		}
	}

	if !found {
		t.Error("indexed block was not reachable from its hash slot")
	}
}

func TestThatChainsAreProbedNewestFirst(t *testing.T) {
	const blockSize = 4

	// four identical blocks all land in the same slot
	src := bytes.Repeat([]byte("abcd"), 4)
	ix := Build(src, blockSize)

	k := ix.Probe(rollsum.Hash(src[:blockSize]))

	if k != 3 {
		t.Errorf("head of chain was block %v, expected the newest block 3", k)
	}

	for expected := 2; expected >= 0; expected-- {
		k = ix.Next(k)
		if k != expected {
			t.Errorf("chain continued with block %v, expected %v", k, expected)
		}
	}

	if ix.Next(0) != -1 {
		t.Error("chain did not terminate with -1")
	}
}

func TestThatTheTrailingPartialBlockIsNotIndexed(t *testing.T) {
	const blockSize = 8

	src := []byte("aaaaaaaabbb")
	ix := Build(src, blockSize)

	if ix.Blocks() != 1 {
		t.Errorf("indexed %v blocks, expected 1", ix.Blocks())
	}
}
