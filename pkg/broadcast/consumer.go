package broadcast

import (
	"log/slog"

	"github.com/dmitrymomot/syncbus/core/logger"
)

// Consumer is a polling subscription to a bus.
//
// Go has no destructors: call Close when done with a consumer. A consumer
// that is never closed keeps its slot and its queue grows with every Send.
type Consumer[T any] struct {
	registry *registry[T]
	index    uint64
	logger   *slog.Logger
	closed   bool
}

// Index returns the consumer's identifier. Indices are never reused.
func (c *Consumer[T]) Index() uint64 {
	return c.index
}

// Poll returns all values sent since the previous Poll (or since Subscribe)
// and empties the queue. It never blocks; nil means nothing is pending.
func (c *Consumer[T]) Poll() []T {
	if c.closed {
		return nil
	}
	return c.registry.drain(c.index)
}

// Pending returns the number of queued values without consuming them.
func (c *Consumer[T]) Pending() int {
	if c.closed {
		return 0
	}
	return c.registry.pending(c.index)
}

// Each drains the queue and calls fn for every value in order.
// fn runs after the queue is drained, so it may send on the same bus.
func (c *Consumer[T]) Each(fn func(T)) int {
	values := c.Poll()
	for _, v := range values {
		fn(v)
	}
	return len(values)
}

// Closed reports whether Close has been called.
func (c *Consumer[T]) Closed() bool {
	return c.closed
}

// Close deregisters the consumer and releases its share of the bus.
// It works after the producer is closed. Calling Close again is a no-op.
func (c *Consumer[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true

	dropped := c.registry.pending(c.index)
	c.registry.deregister(c.index)

	c.logger.Debug("consumer unsubscribed",
		logger.Subscriber(c.index),
		logger.Pending(dropped),
		logger.Live(c.registry.live()),
	)

	if c.registry.release() {
		c.logger.Debug("registry released")
	}
}
