package series

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root class of every validation failure reported
// by this package. All other sentinels wrap it.
var ErrInvalidArgument = errors.New("series: invalid argument")

// ErrNonPositiveTerms indicates a term count n <= 0; an empty partial sum
// is not an approximation of anything.
var ErrNonPositiveTerms = fmt.Errorf("%w: term count must be positive", ErrInvalidArgument)

// ErrOutOfDomain indicates Atan was called with x outside the open
// interval (−1, 1), where the Leibniz–Madhava series is not used.
var ErrOutOfDomain = fmt.Errorf("%w: x must lie in (-1, 1)", ErrInvalidArgument)

// ErrPole indicates AddAtan(1, 1): the identity's denominator 1 − x0·x1
// is zero.
var ErrPole = fmt.Errorf("%w: inputs cannot both equal 1", ErrInvalidArgument)
