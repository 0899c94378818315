package broadcast

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/syncbus/core/logger"
)

// Producer is the single write side of a bus. It sends values to every
// subscribed consumer and creates new consumers.
//
// Example:
//
//	bus := broadcast.New[Value](10)
//	defer bus.Close()
//
//	rx := bus.Subscribe()
//	defer rx.Close()
//
//	bus.Send(ValueA)
//	bus.Send(ValueB)
//	values := rx.Poll() // [ValueA ValueB]
type Producer[T any] struct {
	registry *registry[T]
	id       string
	logger   *slog.Logger
	closed   bool
}

// New creates a bus and returns its producer. capacity is a preallocation
// hint for the consumer table and must be greater than 2; otherwise New
// panics with an error wrapping ErrInvalidCapacity.
func New[T any](capacity int, opts ...Option[T]) *Producer[T] {
	p := &Producer[T]{
		registry: newRegistry[T](capacity),
		id:       uuid.New().String(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.logger = p.logger.With(logger.Component("broadcast"), logger.BusID(p.id))
	p.logger.Debug("bus created", logger.Group("registry", slog.Int("capacity", capacity)))

	return p
}

// ID returns the bus identifier used in log records.
func (p *Producer[T]) ID() string {
	return p.id
}

// Subscribe registers a new consumer. It receives every value sent from now
// until it is closed. Indices increase strictly with each call.
//
// On a closed producer Subscribe returns a consumer that is already closed:
// it never receives values and its Index is meaningless.
func (p *Producer[T]) Subscribe() *Consumer[T] {
	if p.closed {
		p.logger.Debug("subscribe ignored", logger.Error(ErrProducerClosed))
		return &Consumer[T]{
			registry: p.registry,
			logger:   p.logger,
			closed:   true,
		}
	}

	index := p.registry.register()
	p.registry.retain()

	p.logger.Debug("consumer subscribed", logger.Subscriber(index), logger.Live(p.registry.live()))

	return &Consumer[T]{
		registry: p.registry,
		index:    index,
		logger:   p.logger,
	}
}

// Send appends v to the queue of every live consumer. It returns after all
// queues hold v. Sending with no consumers, or on a closed producer, is a no-op.
//
// T should be plain copyable data: the same value is queued for every consumer.
func (p *Producer[T]) Send(v T) {
	if p.closed {
		p.logger.Debug("send ignored", logger.Error(ErrProducerClosed))
		return
	}
	p.registry.broadcast(v)
}

// Subscribers returns the number of live consumers, or 0 once the producer is closed.
func (p *Producer[T]) Subscribers() int {
	if p.closed {
		return 0
	}
	return p.registry.live()
}

// Close releases the producer's share of the bus. Consumers keep their
// buffered values and can still poll them. Calling Close again is a no-op.
func (p *Producer[T]) Close() {
	if p.closed {
		return
	}
	p.closed = true

	if p.registry.release() {
		p.logger.Debug("registry released")
		return
	}
	p.logger.Debug("producer closed")
}
