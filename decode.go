package delta

import (
	"github.com/pkg/errors"

	"github.com/Redundancy/go-delta/varint"
)

// OutputSize returns the length of the target a delta reconstructs, read
// from the delta's header without applying it. Compressed deltas are
// unwrapped first.
func OutputSize(delta []byte) (int, error) {
	body, err := unwrap(delta)
	if err != nil {
		return 0, err
	}

	size, _, err := varint.Decode(body)
	if err != nil {
		return 0, errors.Wrap(ErrMalformedDelta, "unreadable target length header")
	}

	return int(size), nil
}

// applyRaw replays a bare command stream against source, producing the
// target in a single pass. Every bound is checked before the bytes move:
// a structurally broken stream surfaces ErrMalformedDelta, a well-formed
// stream that does not fit the given source surfaces ErrSourceMismatch.
func applyRaw(source, body []byte, verify bool) ([]byte, error) {
	limit32, n, err := varint.Decode(body)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedDelta, "unreadable target length header")
	}

	limit := int(limit32)
	pos := n
	out := make([]byte, limit)
	total := 0

	for pos < len(body) {
		cnt32, n, err := varint.Decode(body[pos:])
		if err != nil {
			return nil, errors.Wrap(ErrMalformedDelta, "unreadable command count")
		}
		pos += n
		cnt := int(cnt32)

		if pos >= len(body) {
			return nil, errors.Wrap(ErrMalformedDelta, "missing operator byte")
		}

		op := body[pos]
		pos++

		switch op {
		case opCopy:
			ofst32, n, err := varint.Decode(body[pos:])
			if err != nil {
				return nil, errors.Wrap(ErrMalformedDelta, "unreadable copy offset")
			}
			pos += n
			ofst := int(ofst32)

			if pos >= len(body) || body[pos] != copyEnd {
				return nil, errors.Wrap(ErrMalformedDelta, "copy command not terminated by ','")
			}
			pos++

			if total+cnt > limit {
				return nil, errors.Wrap(ErrSourceMismatch, "copy writes past the declared target length")
			}
			if ofst+cnt > len(source) {
				return nil, errors.Wrap(ErrSourceMismatch, "copy reads past the end of the source")
			}

			copy(out[total:], source[ofst:ofst+cnt])
			total += cnt

		case opInsert:
			if cnt > len(body)-pos {
				return nil, errors.Wrap(ErrMalformedDelta, "insert count exceeds the remaining delta")
			}
			if total+cnt > limit {
				return nil, errors.Wrap(ErrSourceMismatch, "insert writes past the declared target length")
			}

			copy(out[total:], body[pos:pos+cnt])
			pos += cnt
			total += cnt

		case opTrailer:
			if total != limit {
				return nil, errors.Wrapf(
					ErrMalformedDelta,
					"produced %v bytes but the header declared %v",
					total,
					limit,
				)
			}
			if verify && Checksum(out) != cnt32 {
				return nil, errors.Wrap(ErrMalformedDelta, "output checksum mismatch")
			}
			return out, nil

		default:
			return nil, errors.Wrapf(ErrMalformedDelta, "unknown operator 0x%02x", op)
		}
	}

	return nil, errors.Wrap(ErrMalformedDelta, "unterminated delta")
}
