package delta

import (
	"github.com/pkg/errors"

	"github.com/Redundancy/go-delta/varint"
)

// Analyze walks a delta without applying it and reports how many target
// bytes come from copy commands versus inline literals. The two always sum
// to the declared target length for a well-formed delta. Useful for judging
// how much of a target was actually found in its source.
func Analyze(delta []byte) (copied, inserted int, err error) {
	body, err := unwrap(delta)
	if err != nil {
		return 0, 0, err
	}

	_, n, err := varint.Decode(body)
	if err != nil {
		return 0, 0, errors.Wrap(ErrMalformedDelta, "unreadable target length header")
	}
	pos := n

	for pos < len(body) {
		cnt32, n, err := varint.Decode(body[pos:])
		if err != nil {
			return 0, 0, errors.Wrap(ErrMalformedDelta, "unreadable command count")
		}
		pos += n
		cnt := int(cnt32)

		if pos >= len(body) {
			return 0, 0, errors.Wrap(ErrMalformedDelta, "missing operator byte")
		}

		op := body[pos]
		pos++

		switch op {
		case opCopy:
			if _, n, err = varint.Decode(body[pos:]); err != nil {
				return 0, 0, errors.Wrap(ErrMalformedDelta, "unreadable copy offset")
			}
			pos += n

			if pos >= len(body) || body[pos] != copyEnd {
				return 0, 0, errors.Wrap(ErrMalformedDelta, "copy command not terminated by ','")
			}
			pos++
			copied += cnt

		case opInsert:
			if cnt > len(body)-pos {
				return 0, 0, errors.Wrap(ErrMalformedDelta, "insert count exceeds the remaining delta")
			}
			pos += cnt
			inserted += cnt

		case opTrailer:
			return copied, inserted, nil

		default:
			return 0, 0, errors.Wrapf(ErrMalformedDelta, "unknown operator 0x%02x", op)
		}
	}

	return 0, 0, errors.Wrap(ErrMalformedDelta, "unterminated delta")
}
