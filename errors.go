package delta

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedDelta means the delta buffer does not parse as a command
	// stream: a bad varint, an unknown operator byte, a missing separator,
	// an unterminated stream, a trailer whose running total disagrees
	// with the declared target length, or (with Options.VerifyChecksum) a
	// trailer checksum that disagrees with the produced output.
	ErrMalformedDelta = errors.New("delta: malformed delta")

	// ErrSourceMismatch means a structurally valid command does not fit the
	// buffers it was applied to: a copy reaching outside the source, or a
	// command that would write past the declared target length.
	ErrSourceMismatch = errors.New("delta: delta does not match source")

	// ErrDecompression means the delta carried the Zstandard magic bytes
	// but the frame body was rejected by the decompressor.
	ErrDecompression = errors.New("delta: corrupt compressed delta")
)
