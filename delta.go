/*
go-delta is a binary delta codec: given two byte buffers, a source and a
target, Create produces a compact delta such that Apply(source, delta)
reconstructs the target byte for byte.

The wire format is derived from the Fossil SCM delta format. A delta is a
command stream: a header holding the target length, a body of copy commands
(spans taken from the source) and insert commands (literal bytes), and a
trailer carrying a checksum of the target. All integers use the compact
varint encoding in the varint package. A delta may additionally be wrapped
in a single Zstandard frame; Apply recognises wrapped deltas by the zstd
magic bytes and unwraps them transparently.

The codec is a pure function over immutable byte buffers. It performs no
I/O, keeps no state between calls, and is safe to run from any number of
goroutines as long as each call owns its own buffers. The Start* variants
dispatch the same computations onto a goroutine and deliver the result on a
channel, for callers that do not want to block.
*/
package delta

import (
	"github.com/Redundancy/go-delta/index"
)

const (
	// DefaultHashWindowSize is the span of the rolling hash window and the
	// source block size. The algorithm requires a power of two.
	DefaultHashWindowSize = 16

	// DefaultSearchDepth bounds how many candidate blocks are examined per
	// hash-chain walk, which bounds the worst case on pathological inputs
	DefaultSearchDepth = 64

	// deltaHeadroom is the extra capacity reserved beyond the target length
	// for the encoder's output. Copy commands never outgrow the bytes they
	// replace, and insert framing is bounded, so this is always enough.
	deltaHeadroom = 1024
)

// Options configures Create and Apply. The zero value (and a nil *Options)
// means all defaults.
type Options struct {
	// HashWindowSize is the rolling hash window and source block size.
	// It must be a power of two at least 2; anything else is silently
	// replaced with DefaultHashWindowSize.
	HashWindowSize int

	// SearchDepth is the maximum number of candidate source blocks examined
	// for each window position. Larger values can find better matches in
	// repetitive sources at the cost of encode time.
	SearchDepth int

	// Compressed asks Create to wrap the delta in a Zstandard frame.
	// On Apply it is advisory only: the decoder always auto-detects the
	// frame by its magic bytes.
	Compressed bool

	// VerifyChecksum makes Apply recompute the checksum of the produced
	// output and reject the delta on mismatch. The checksum is always
	// present in the delta either way.
	VerifyChecksum bool
}

func (o *Options) sanitized() Options {
	var opts Options
	if o != nil {
		opts = *o
	}

	if opts.HashWindowSize < 2 || !isPowerOfTwo(opts.HashWindowSize) {
		opts.HashWindowSize = DefaultHashWindowSize
	}

	if opts.SearchDepth <= 0 {
		opts.SearchDepth = DefaultSearchDepth
	}

	return opts
}

func isPowerOfTwo(v int) bool {
	return v&(v-1) == 0
}

// Create produces a delta that transforms source into target. It always
// succeeds: in the worst case the delta is a single insert of the whole
// target.
func Create(source, target []byte, opts *Options) ([]byte, error) {
	o := opts.sanitized()

	raw := createRaw(source, target, o.HashWindowSize, o.SearchDepth)

	if !o.Compressed {
		return raw, nil
	}

	return compress(raw)
}

// Apply reconstructs a target from source and a delta previously produced
// by Create. Compressed deltas are detected and unwrapped automatically.
func Apply(source, delta []byte, opts *Options) ([]byte, error) {
	o := opts.sanitized()

	body, err := unwrap(delta)
	if err != nil {
		return nil, err
	}

	return applyRaw(source, body, o.VerifyChecksum)
}

// createRaw runs the encoder over whole buffers and returns the bare
// command stream
func createRaw(source, target []byte, window, depth int) []byte {
	enc := encoder{
		src:    source,
		tgt:    target,
		window: window,
		depth:  depth,
		out:    make([]byte, 0, len(target)+deltaHeadroom),
	}

	if len(source) <= window {
		// a source of at most one window is not indexed, so no copy is
		// ever possible
		return enc.emitLiteralOnly()
	}

	enc.index = index.Build(source, window)
	return enc.run()
}
