package broadcast

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is the panic cause when a bus is created with a capacity hint of 2 or less.
	ErrInvalidCapacity = errors.New("capacity must be greater than 2")

	// ErrReentrantAccess is the panic cause when the registry is entered while another operation holds it.
	ErrReentrantAccess = errors.New("registry is already in use")

	// ErrProducerClosed is logged when Send or Subscribe is called on a closed producer.
	ErrProducerClosed = errors.New("producer is closed")
)

// MinCapacity is the smallest accepted capacity hint.
const MinCapacity = 3

// ValidateCapacity reports whether capacity is accepted by New.
// Use it to check untrusted input before construction, since New panics.
func ValidateCapacity(capacity int) error {
	if capacity < MinCapacity {
		return fmt.Errorf("broadcast: got %d: %w", capacity, ErrInvalidCapacity)
	}
	return nil
}
