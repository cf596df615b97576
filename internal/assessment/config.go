package assessment

// Config holds the readiness thresholds. The defaults reproduce the
// observed behavior of the source system; they have no clinical
// derivation and exist as named constants precisely so a domain expert
// can revisit them.
type Config struct {
	// MinResponses is the minimum total response count before diagnosis.
	MinResponses int

	// MinPerArea is the minimum number of detailed responses required in
	// each assessment area.
	MinPerArea int
}

// DefaultConfig returns the standard readiness thresholds.
func DefaultConfig() Config {
	return Config{
		MinResponses: 8,
		MinPerArea:   2,
	}
}
