package logger

import "log/slog"

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Debug("msg", logger.Error(err)) without explicit nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Bus
// ============================================================================

// BusID creates an attribute identifying a broadcast bus.
func BusID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("bus_id", id)
}

// Subscriber creates an attribute for a consumer index.
func Subscriber(index uint64) slog.Attr {
	return slog.Uint64("subscriber", index)
}

// Live creates an attribute for the number of registered consumers.
func Live(n int) slog.Attr {
	return slog.Int("live", n)
}

// Pending creates an attribute for the number of queued values.
func Pending(n int) slog.Attr {
	return slog.Int("pending", n)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

