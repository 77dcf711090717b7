package engine

// Default queue sizing. The queue starts small and grows by at most
// DefaultQueueGrowthCap slots per reallocation, which bounds copy churn
// for sources with very large match counts.
const (
	DefaultInitialQueueCapacity = 16
	DefaultQueueGrowthCap       = 4096
)

// Config controls engine behavior.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.EnablePrefilter = false // always run the rolling scan
//	eng, err := engine.New(pairs, config)
type Config struct {
	// EnablePrefilter enables the Aho-Corasick containment check that
	// lets Replace skip the rolling scan when no key occurs in the
	// source at all. Results are identical either way.
	// Default: true
	EnablePrefilter bool

	// InitialQueueCapacity is the number of match slots preallocated per
	// Replace call. Must be >= 0.
	// Default: 16
	InitialQueueCapacity int

	// QueueGrowthCap caps the number of slots added when the match queue
	// grows: the queue grows by min(current capacity, QueueGrowthCap).
	// Must be >= 1.
	// Default: 4096
	QueueGrowthCap int

	// NullTerminate allocates one extra byte after the output and sets it
	// to 0. The returned slice keeps the logical length; the terminator
	// sits in the spare capacity byte.
	// Default: false
	NullTerminate bool
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:      true,
		InitialQueueCapacity: DefaultInitialQueueCapacity,
		QueueGrowthCap:       DefaultQueueGrowthCap,
	}
}

// validate reports whether the configuration is usable.
func (c Config) validate() error {
	if c.InitialQueueCapacity < 0 || c.QueueGrowthCap < 1 {
		return ErrInvalidConfig
	}
	return nil
}
