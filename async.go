package delta

// Result is delivered on the channels returned by the Start functions.
// Check Err before touching Data.
type Result struct {
	Data []byte
	Err  error
}

// StartCreate runs Create on its own goroutine and delivers the outcome on
// the returned channel. The channel is buffered, so the result is never
// lost even if the caller reads it late, and it is closed after delivery.
//
// The inputs must not be mutated until the result arrives.
func StartCreate(source, target []byte, opts *Options) <-chan Result {
	return dispatch(func() ([]byte, error) {
		return Create(source, target, opts)
	})
}

// StartApply is Apply dispatched onto a goroutine, with the same contract
// as StartCreate
func StartApply(source, delta []byte, opts *Options) <-chan Result {
	return dispatch(func() ([]byte, error) {
		return Apply(source, delta, opts)
	})
}

// StartApplyBatch is ApplyBatch dispatched onto a goroutine, with the same
// contract as StartCreate
func StartApplyBatch(source []byte, deltas [][]byte, opts *Options) <-chan Result {
	return dispatch(func() ([]byte, error) {
		return ApplyBatch(source, deltas, opts)
	})
}

func dispatch(op func() ([]byte, error)) <-chan Result {
	results := make(chan Result, 1)

	go func() {
		defer close(results)
		data, err := op()
		results <- Result{Data: data, Err: err}
	}()

	return results
}
