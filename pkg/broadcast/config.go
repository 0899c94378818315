package broadcast

// DefaultCapacity is the capacity hint used when none is configured.
const DefaultCapacity = 10

// Config holds bus settings loadable from the environment.
type Config struct {
	// Capacity is a preallocation hint for the consumer table, not a limit.
	Capacity int `env:"BROADCAST_CAPACITY" envDefault:"10"`
}

// DefaultConfig returns the default bus settings.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
	}
}

// NewFromConfig creates a producer from cfg. A zero Capacity falls back to
// DefaultCapacity; any other value below MinCapacity panics like New.
func NewFromConfig[T any](cfg Config, opts ...Option[T]) *Producer[T] {
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return New(capacity, opts...)
}
