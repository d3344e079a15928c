package montecarlo

// Default sample counts.
const (
	// DefaultPiSamples is the conventional sample count for Pi.
	DefaultPiSamples = 4_000_000

	// DefaultIntegralSamples is the conventional sample count for Integral.
	DefaultIntegralSamples = 10_000_000
)

// Estimate is the outcome of a hit-or-miss Monte Carlo run.
//
// Fields:
//   - Value   — the estimate itself.
//   - Hits    — number of samples that fell in the counted region.
//   - Samples — total number of samples drawn.
//   - StdErr  — binomial standard error of Value, scale·sqrt(p(1−p)/Samples)
//     with p = Hits/Samples. It shrinks like 1/√Samples.
type Estimate struct {
	Value   float64
	Hits    int
	Samples int
	StdErr  float64
}

// IntegralEstimate extends Estimate with the bounding box used by
// EstimateIntegral and a count of contract violations.
//
//   - YMin, YMax  — min/max of fn(a), fn(b): the vertical sampling range.
//   - OutOfRange  — sampled fn(x) values outside [YMin, YMax] (NaN included).
//     A non-zero count means fn broke the endpoint-extremum contract and
//     Value is not a valid estimate of the integral.
type IntegralEstimate struct {
	Estimate
	YMin       float64
	YMax       float64
	OutOfRange int
}

// Estimator is a single Monte Carlo run parameterized by options.
// Trials calls it once per trial with that trial's RNG stream.
type Estimator func(opts ...Option) (float64, error)

// Summary aggregates the values produced by Trials.
type Summary struct {
	Values []float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}
