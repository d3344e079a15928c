// Package series approximates π and arctan with alternating power series,
// plus the closed-form arctangent addition identity.
//
// 🚀 What is in here?
//
//	  • Pi       — Leibniz formula, 4·(1 − 1/3 + 1/5 − …), n terms.
//	  • Atan     — Leibniz–Madhava series x − x³/3 + x⁵/5 − …, |x| < 1.
//	  • AddAtan  — arctan(x0) + arctan(x1) = arctan((x0+x1)/(1−x0·x1)),
//	               evaluated with math.Atan (it does not use Atan).
//
// All three are deterministic, allocation-free and single-threaded.
// Invalid inputs return sentinel errors that wrap ErrInvalidArgument.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/approx/series"
//
//	pi, err := series.Pi(series.DefaultPiTerms)
//	a, err := series.Atan(0.5, 10_000)
//	s, err := series.AddAtan(0.3, 0.4)
//
// Convergence:
//
//   - Pi:   error ≈ 1/n.
//   - Atan: error ≤ |x|^(2n+1)/(2n+1); slow near |x| = 1.
package series
