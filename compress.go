package delta

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// zstdMagic opens every Zstandard frame; its presence is how Apply decides a
// delta is wrapped. The sniff is on the magic alone: a buffer that happens
// to start with these four bytes gets a decompression attempt.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// compress wraps a raw command stream in a single zstd frame at the fastest
// level. The command stream is already compact; the wrapper mostly squeezes
// the literal inserts, so heavier levels rarely earn their cost.
func compress(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(raw, make([]byte, 0, len(raw))), nil
}

// unwrap returns the raw command stream behind a delta buffer, decompressing
// when the zstd magic is present and passing the buffer through untouched
// otherwise
func unwrap(delta []byte) ([]byte, error) {
	if !bytes.HasPrefix(delta, zstdMagic) {
		return delta, nil
	}

	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(delta, nil)
	if err != nil {
		return nil, errors.Wrap(ErrDecompression, err.Error())
	}

	return raw, nil
}
