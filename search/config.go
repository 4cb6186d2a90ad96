package search

// Config controls how a Finder picks its search strategy.
//
// The zero value is not useful. Start from DefaultConfig and adjust:
//
//	config := search.DefaultConfig()
//	config.EnablePrefilter = false // plain Two-Way
//	f, err := search.NewFinderWithConfig(pattern, config)
type Config struct {
	// EnablePrefilter enables the rare byte prefilter in forward search.
	// The prefilter still switches itself off within a call when it
	// stops skipping enough bytes.
	// Default: true
	EnablePrefilter bool

	// PrefilterMaxRank is the highest byte frequency rank (0..255, see
	// simd.ByteRank) the rarest needle byte may have for the prefilter to
	// be built. Needles made only of very common bytes gain nothing from it.
	// Default: 250
	PrefilterMaxRank int

	// RabinKarpMaxHaystack is the haystack length below which the rolling
	// hash search is used instead of Two-Way. Zero disables it.
	// Default: 64
	RabinKarpMaxHaystack int
}

// DefaultConfig returns the configuration used by NewFinder and
// NewFinderReverse.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:      true,
		PrefilterMaxRank:     250,
		RabinKarpMaxHaystack: 64,
	}
}

// Validate checks that every parameter is in range.
//
// Valid ranges:
//   - PrefilterMaxRank: 0 to 255
//   - RabinKarpMaxHaystack: 0 to 4096
func (c Config) Validate() error {
	if c.EnablePrefilter && (c.PrefilterMaxRank < 0 || c.PrefilterMaxRank > 255) {
		return &ConfigError{
			Field:   "PrefilterMaxRank",
			Message: "must be between 0 and 255",
		}
	}
	if c.RabinKarpMaxHaystack < 0 || c.RabinKarpMaxHaystack > 4096 {
		return &ConfigError{
			Field:   "RabinKarpMaxHaystack",
			Message: "must be between 0 and 4096",
		}
	}
	return nil
}
