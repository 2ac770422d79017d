package emitter

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func TestEmitter_SubscribeAndEmit(t *testing.T) {
	e := New[int]()

	var got []int
	_, err := e.Subscribe(func(v int) { got = append(got, v) })
	require.NoError(t, err)

	e.Emit(1)
	e.Emit(2)

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, e.Len())
}

func TestEmitter_DeliveryOrder(t *testing.T) {
	e := New[string]()

	var got []string
	_, err := e.Subscribe(func(string) { got = append(got, "first") })
	require.NoError(t, err)
	second, err := e.Subscribe(func(string) { got = append(got, "second") })
	require.NoError(t, err)
	_, err = e.Subscribe(func(string) { got = append(got, "third") })
	require.NoError(t, err)

	e.Emit("x")
	assert.Equal(t, []string{"first", "second", "third"}, got)

	// Cancelling the middle subscription preserves the order of the rest.
	got = nil
	second.Cancel()
	e.Emit("y")
	assert.Equal(t, []string{"first", "third"}, got)
}

func TestEmitter_CancelIsIdempotent(t *testing.T) {
	e := New[int]()

	var count int
	sub, err := e.Subscribe(func(int) { count++ })
	require.NoError(t, err)

	e.Emit(1)
	sub.Cancel()
	sub.Cancel()
	e.Emit(2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, e.Len())
}

func TestEmitter_CancelFromCallback(t *testing.T) {
	e := New[int]()

	var count int
	var sub *Subscription
	sub, _ = e.Subscribe(func(int) {
		count++
		sub.Cancel()
	})

	e.Emit(1)
	e.Emit(2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, e.Len())
}

func TestEmitter_Close(t *testing.T) {
	e := New[int]()

	var count int
	_, err := e.Subscribe(func(int) { count++ })
	require.NoError(t, err)

	e.Close()
	e.Close() // idempotent

	e.Emit(1)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, e.Len())

	_, err = e.Subscribe(func(int) {})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestEmitter_RateLimit(t *testing.T) {
	e := New[int]()

	var limited, unlimited int
	_, err := e.Subscribe(func(int) { limited++ }, WithRateLimit(rate.Limit(0), 1))
	require.NoError(t, err)
	_, err = e.Subscribe(func(int) { unlimited++ }, WithRateLimit(rate.Inf, 0))
	require.NoError(t, err)

	e.Emit(1)
	e.Emit(2)
	e.Emit(3)

	// Burst of one and no refill: only the first delivery passes.
	assert.Equal(t, 1, limited)
	assert.Equal(t, 3, unlimited)
}

func TestEmitter_Concurrent(t *testing.T) {
	e := New[int]()

	var count atomic.Int64
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for i := range 100 {
				sub, err := e.Subscribe(func(int) { count.Add(1) })
				if err != nil {
					return err
				}
				e.Emit(i)
				sub.Cancel()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Each goroutine's own subscriber is live during its own emits.
	assert.GreaterOrEqual(t, count.Load(), int64(800))
	assert.Equal(t, 0, e.Len())
}

func TestEmitter_WithLogger(t *testing.T) {
	e := New[int](WithLogger(nil))

	_, err := e.Subscribe(func(int) {})
	require.NoError(t, err)
	e.Emit(1)

	assert.Equal(t, 1, e.Len())
}
