package emitter

import "golang.org/x/time/rate"

type options struct {
	logger *Logger
}

// Option configures an Emitter.
type Option func(*options)

// WithLogger configures structured logging for subscription and delivery
// events. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

type subscribeOptions struct {
	limiter *rate.Limiter
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(*subscribeOptions)

// WithRateLimit drops deliveries to the subscription that exceed limit.
// Dropped values are skipped, never queued; burst controls how many
// deliveries may pass back to back.
func WithRateLimit(limit rate.Limit, burst int) SubscribeOption {
	return func(o *subscribeOptions) {
		o.limiter = rate.NewLimiter(limit, burst)
	}
}

func applySubscribeOptions(optFns []SubscribeOption) subscribeOptions {
	var o subscribeOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
