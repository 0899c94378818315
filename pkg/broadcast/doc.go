// Package broadcast provides a single-producer, multi-consumer polling bus.
//
// A Producer sends values; every Consumer subscribed at the time of a Send
// gets its own copy of the value appended to a private queue, which it
// drains with Poll as part of an update loop. Nothing blocks and nothing
// runs in the background.
//
// # Usage
//
//	bus := broadcast.New[Value](10)
//	defer bus.Close()
//
//	rx1 := bus.Subscribe()
//	defer rx1.Close()
//	rx2 := bus.Subscribe()
//	defer rx2.Close()
//
//	bus.Send(ValueA)
//	bus.Send(ValueB)
//
//	rx1.Poll() // [ValueA ValueB]
//	rx2.Poll() // [ValueA ValueB]
//	rx1.Poll() // []
//
// In a loop:
//
//	for running {
//		rx.Each(func(v Value) {
//			handle(v)
//		})
//		// ...
//	}
//
// # Values
//
// Values should be plain copyable data: small enums or structs of
// primitives. The same value is queued for every consumer, so pointers,
// slices and maps inside it would be shared between consumers.
//
// # Lifetime
//
// The bus state is shared by the producer and all consumers and is freed
// when the last of them is closed. Closing the producer does not affect
// consumers: they can still poll values sent before it was closed. Send on a
// closed producer is a no-op and Subscribe returns an already-closed
// consumer; neither panics.
//
// Go has no destructors, so a consumer must be closed explicitly (usually
// with defer). A consumer that is never closed keeps receiving values and
// its queue grows without bound. Close is idempotent.
//
// Consumer indices start at 0, increase with each Subscribe and are never
// reused, even after a consumer is closed.
//
// # Capacity
//
// New takes a capacity hint used to preallocate the consumer table. It is
// not a limit. The hint must be greater than 2; New panics with
// ErrInvalidCapacity otherwise. Validate untrusted input with
// ValidateCapacity first.
//
// # Concurrency
//
// A bus is meant for use from a single goroutine. Every operation takes an
// exclusive guard on the shared state and panics with ErrReentrantAccess if
// the guard is already held, for example when a delivery hook calls Send.
// The same guard turns accidental concurrent use into a panic instead of
// corrupted state. It is not a lock and does not make the bus safe for
// concurrent use.
//
// # Configuration
//
// Config can be populated from the environment (BROADCAST_CAPACITY) with
// the core/config package and passed to NewFromConfig.
package broadcast
