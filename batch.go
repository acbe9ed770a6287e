package delta

import (
	"github.com/pkg/errors"
)

// ApplyBatch applies a sequence of deltas in order, feeding each step's
// output to the next as its source. It is exactly a fold of Apply: the
// first failing delta halts the batch and its position is reported in the
// returned error.
func ApplyBatch(source []byte, deltas [][]byte, opts *Options) ([]byte, error) {
	current := source

	for i, d := range deltas {
		next, err := Apply(current, d, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "applying delta %v of %v", i, len(deltas))
		}
		current = next
	}

	return current, nil
}
