// Package emitter implements a minimal observer registry on top of a
// token-addressed bag.
//
// An Emitter holds subscriber callbacks in a tokenbag.Bag guarded by a
// single mutex; the mutex provides the external serialization the bag
// requires. Subscribe returns a Subscription whose Cancel presents the
// stored token back to the bag, so cancellation needs no callback
// equality and double cancellation is a no-op.
package emitter

import (
	"errors"
	"sync"

	"github.com/hupe1980/tokenbag"
)

// ErrClosed is returned when subscribing to a closed emitter.
var ErrClosed = errors.New("emitter is closed")

// Emitter dispatches values of type T to its current subscribers.
//
// All methods are safe for concurrent use.
type Emitter[T any] struct {
	mu     sync.Mutex // guards bag and closed
	bag    tokenbag.Bag[subscriber[T]]
	closed bool
	logger *Logger
}

// New creates a new emitter with no subscribers.
func New[T any](optFns ...Option) *Emitter[T] {
	o := applyOptions(optFns)
	return &Emitter[T]{
		logger: o.logger,
	}
}

// Subscription represents one active registration on an emitter.
type Subscription struct {
	cancel func()
}

// Cancel removes the registration from its emitter. Cancel is idempotent:
// the underlying token becomes stale after the first call and later calls
// are no-ops.
func (s *Subscription) Cancel() {
	s.cancel()
}

// Subscribe registers fn to receive every value passed to Emit. It
// returns ErrClosed if the emitter has been closed.
func (e *Emitter[T]) Subscribe(fn func(T), optFns ...SubscribeOption) (*Subscription, error) {
	so := applySubscribeOptions(optFns)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}

	tok := e.bag.Insert(subscriber[T]{fn: fn, limiter: so.limiter})
	e.logger.Debug("subscriber added", "subscribers", e.bag.Len())

	return &Subscription{
		cancel: func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.bag.Remove(tok)
		},
	}, nil
}

// Emit delivers v to every subscriber present when Emit is called, in
// subscription order. Callbacks run outside the lock, so a callback may
// subscribe or cancel without deadlocking; such changes take effect for
// later emits only.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	subs := make([]subscriber[T], 0, e.bag.Len())
	for s := range e.bag.Values() {
		subs = append(subs, s)
	}
	e.mu.Unlock()

	for _, s := range subs {
		if s.limiter != nil && !s.limiter.Allow() {
			e.logger.Debug("delivery dropped by rate limit")
			continue
		}
		s.fn(v)
	}
}

// Len returns the number of current subscribers.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.bag.Len()
}

// Close drops all subscribers. After Close, Emit is a no-op and Subscribe
// fails with ErrClosed. Close is idempotent.
func (e *Emitter[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.bag = tokenbag.Bag[subscriber[T]]{}
	e.logger.Debug("emitter closed")
}
