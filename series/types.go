package series

// Default term counts.
const (
	// DefaultPiTerms is the conventional term count for Pi.
	DefaultPiTerms = 100_000_000

	// DefaultAtanTerms is the conventional term count for Atan.
	DefaultAtanTerms = 10_000_000
)
