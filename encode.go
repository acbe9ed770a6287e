package delta

import (
	"bytes"

	"github.com/Redundancy/go-delta/index"
	"github.com/Redundancy/go-delta/rollsum"
	"github.com/Redundancy/go-delta/varint"
)

// Command stream operator bytes. Only these are ASCII: the counts, offsets
// and checksum around them are binary varints, so copying 12 bytes from
// offset 100 is the four bytes 0x0c '@' 0x64 ','.
const (
	opCopy    = '@'
	opInsert  = ':'
	opTrailer = ';'
	copyEnd   = ','
)

type encoder struct {
	src, tgt []byte
	window   int
	depth    int
	index    *index.BlockIndex
	out      []byte
}

// emitLiteralOnly handles sources no longer than one window, which are not
// indexed: no copy is ever emitted, so the delta is one insert of the target
func (e *encoder) emitLiteralOnly() []byte {
	e.putHeader()
	e.putInsert(e.tgt)
	e.putTrailer()
	return e.out
}

// run scans the target, emitting copy commands for the regions the block
// index can anchor in the source and insert commands for everything else.
//
// base is the number of target bytes already emitted. For each outer
// iteration the rolling hash is primed at base and slid forward a byte at a
// time; each position's hash selects a chain of candidate source blocks,
// every candidate is confirmed byte-exactly (the hash alone proves nothing)
// and then grown forwards and backwards as far as the buffers agree. The
// best affordable match wins; a match is affordable when it is at least as
// long as the commands that would encode it, so near-misses degrade into
// literals instead of bloating the delta.
func (e *encoder) run() []byte {
	e.putHeader()

	w := e.window
	hash := rollsum.NewRollsum32(w)
	base := 0

	for base+w < len(e.tgt) {
		hash.SetBlock(e.tgt[base : base+w])

		i := 0
		bestCnt, bestOfst, bestLitsz := 0, 0, 0

		for {
			limit := e.depth
			for k := e.index.Probe(hash.Sum32()); k >= 0 && limit > 0; k, limit = e.index.Next(k), limit-1 {
				iSrc := k * w
				y := base + i

				if !bytes.Equal(e.src[iSrc:iSrc+w], e.tgt[y:y+w]) {
					// hash collision, not a real match
					continue
				}

				forward := matchForward(e.src[iSrc+w:], e.tgt[y+w:])
				backward := matchBackward(e.src[:iSrc], e.tgt[base:y])

				cnt := backward + w + forward
				ofst := iSrc - backward
				litsz := i - backward

				// the copy must pay for its own framing
				cost := varint.Size(uint32(litsz)) +
					varint.Size(uint32(cnt)) +
					varint.Size(uint32(ofst)) + 3

				if cnt >= cost && cnt > bestCnt {
					bestCnt, bestOfst, bestLitsz = cnt, ofst, litsz
				}
			}

			if bestCnt > 0 {
				if bestLitsz > 0 {
					e.putInsert(e.tgt[base : base+bestLitsz])
					base += bestLitsz
				}
				e.putCopy(bestCnt, bestOfst)
				base += bestCnt
				break
			}

			if base+i+w >= len(e.tgt) {
				// end of the target with nothing matched
				e.putInsert(e.tgt[base:])
				base = len(e.tgt)
				break
			}

			hash.Roll(e.tgt[base+i+w])
			i++
		}
	}

	if base < len(e.tgt) {
		e.putInsert(e.tgt[base:])
	}

	e.putTrailer()
	return e.out
}

func (e *encoder) putHeader() {
	e.out = varint.Append(e.out, uint32(len(e.tgt)))
}

func (e *encoder) putInsert(literal []byte) {
	if len(literal) == 0 {
		return
	}
	e.out = varint.Append(e.out, uint32(len(literal)))
	e.out = append(e.out, opInsert)
	e.out = append(e.out, literal...)
}

func (e *encoder) putCopy(cnt, ofst int) {
	e.out = varint.Append(e.out, uint32(cnt))
	e.out = append(e.out, opCopy)
	e.out = varint.Append(e.out, uint32(ofst))
	e.out = append(e.out, copyEnd)
}

func (e *encoder) putTrailer() {
	e.out = varint.Append(e.out, Checksum(e.tgt))
	e.out = append(e.out, opTrailer)
}
