package series

import "fmt"

// Pi approximates π with the Leibniz formula
//
//	π = 4 · Σ_{k=0}^{n−1} (−1)^k / (2k+1) = 4 · (1 − 1/3 + 1/5 − 1/7 + …)
//
// using exactly n terms (denominators 1, 3, …, 2n−1). The result is
// deterministic and its error shrinks like 1/n: partial sums alternate
// around π, overshooting for odd n and undershooting for even n.
//
// Complexity: O(n) time, O(1) memory.
//
// Errors:
//   - ErrNonPositiveTerms — n <= 0.
func Pi(n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("Pi: n=%d: %w", n, ErrNonPositiveTerms)
	}

	var (
		quarter float64
		sign    = 1.0
	)
	for k := 0; k < n; k++ {
		quarter += sign / float64(2*k+1)
		sign = -sign
	}
	return 4 * quarter, nil
}
