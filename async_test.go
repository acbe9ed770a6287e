package delta

import (
	"bytes"
	"testing"

	"github.com/hooklift/assert"
	"github.com/pkg/errors"
)

func TestThatStartCreateAndStartApplyAgreeWithTheBlockingForms(t *testing.T) {
	source := srand(30, 4096)
	target := append(srand(30, 4096)[:3000], srand(31, 500)...)

	blocking, err := Create(source, target, nil)
	assert.Ok(t, err)

	created := <-StartCreate(source, target, nil)
	assert.Ok(t, created.Err)
	assert.Cond(t, bytes.Equal(created.Data, blocking), "async create produced different bytes")

	applied := <-StartApply(source, created.Data, nil)
	assert.Ok(t, applied.Err)
	assert.Cond(t, bytes.Equal(applied.Data, target), "async apply did not reproduce the target")
}

func TestThatStartApplyDeliversErrors(t *testing.T) {
	result := <-StartApply([]byte("hello"), []byte("invalid delta data"), nil)
	assert.Cond(t, errors.Is(result.Err, ErrMalformedDelta), "expected ErrMalformedDelta, got %v", result.Err)
}

func TestThatStartApplyBatchComposes(t *testing.T) {
	v0 := srand(32, 1024)
	v1 := srand(33, 1024)
	v2 := srand(34, 1024)

	d1, err := Create(v0, v1, nil)
	assert.Ok(t, err)
	d2, err := Create(v1, v2, nil)
	assert.Ok(t, err)

	result := <-StartApplyBatch(v0, [][]byte{d1, d2}, nil)
	assert.Ok(t, result.Err)
	assert.Cond(t, bytes.Equal(result.Data, v2), "async batch did not reach the final version")
}

func TestThatTheResultChannelIsClosedAfterDelivery(t *testing.T) {
	results := StartCreate(nil, []byte("x"), nil)

	<-results

	if _, open := <-results; open {
		t.Error("result channel still open after delivery")
	}
}

func TestThatConcurrentCallsDoNotInterfere(t *testing.T) {
	source := srand(35, 8192)

	const workers = 8
	targets := make([][]byte, workers)
	channels := make([]<-chan Result, workers)

	for i := range channels {
		targets[i] = append(srand(35, 8192)[:4000], srand(int64(36+i), 1000)...)
		channels[i] = StartCreate(source, targets[i], nil)
	}

	for i, ch := range channels {
		created := <-ch
		assert.Ok(t, created.Err)

		applied, err := Apply(source, created.Data, nil)
		assert.Ok(t, err)
		assert.Cond(t, bytes.Equal(applied, targets[i]), "worker %d produced a wrong delta", i)
	}
}
