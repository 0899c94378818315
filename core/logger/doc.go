// Package logger provides slog attribute helpers with stable keys.
//
// Helpers return an empty slog.Attr for empty input (nil errors, empty IDs),
// which slog drops, so callers never need nil checks:
//
//	log.Debug("consumer unsubscribed",
//		logger.BusID(id),
//		logger.Subscriber(index),
//		logger.Pending(n),
//		logger.Error(err),
//	)
//
// # Keys
//
//   - bus_id, subscriber, live, pending: broadcast bus state
//   - error: a single error
//   - component: emitting component name
package logger
