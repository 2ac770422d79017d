package emitter

import "golang.org/x/time/rate"

// subscriber pairs a callback with its optional delivery limiter.
type subscriber[T any] struct {
	fn      func(T)
	limiter *rate.Limiter // nil = unlimited
}
