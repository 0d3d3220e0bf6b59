package tokenizer

// Config controls Tokenizer behavior and resource limits.
//
// Configuration options affect:
//   - N-best search resource limits (A* frontier cap)
//   - Whether a per-call Lattice is drawn from a pool or freshly allocated
//
// Example:
//
//	config := tokenizer.DefaultConfig()
//	config.MaxHeapSize = 100_000
//	tok, err := tokenizer.New(da, vocabStore, surfaceIndex, costMatrix, charDef, config)
type Config struct {
	// MaxHeapSize caps the A* frontier size during NBestPaths search
	// (spec.md §5/§7's ResourceExhausted class). 0 means unbounded.
	// Default: 200_000
	MaxHeapSize int

	// PoolLattices enables drawing the per-call *lattice.Lattice from a
	// sync.Pool instead of allocating one per Tokenize call.
	// Default: true
	PoolLattices bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxHeapSize:  200_000,
		PoolLattices: true,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxHeapSize: 0 (unbounded) or >= 1,000
func (c Config) Validate() error {
	if c.MaxHeapSize != 0 && c.MaxHeapSize < 1_000 {
		return &ConfigError{
			Field:   "MaxHeapSize",
			Message: "must be 0 (unbounded) or at least 1,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "tokenizer: invalid config: " + e.Field + ": " + e.Message
}
