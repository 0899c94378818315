package broadcast

import "log/slog"

// Option configures a Producer.
type Option[T any] func(*Producer[T])

// WithLogger configures structured logging for the bus.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(p *Producer[T]) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithDeliveryHook registers fn to be called for every consumer a value is
// queued for. Hooks run once every consumer already holds the value, while
// the registry is held, so a hook must not call back into the bus: doing so
// panics with ErrReentrantAccess.
func WithDeliveryHook[T any](fn func(index uint64, v T)) Option[T] {
	return func(p *Producer[T]) {
		p.registry.onDeliver = fn
	}
}
