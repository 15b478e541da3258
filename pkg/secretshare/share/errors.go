package share

import "errors"

var (
	// ErrInconsistent is returned when the splitter finds a pre-existing
	// assignment that contradicts the secret being split: an AND gate's
	// known children don't sum to the target, a recovered threshold
	// polynomial disagrees with the target at x=0, or a freshly drawn
	// random value collides with an existing assignment for the same key.
	ErrInconsistent = errors.New("share: inconsistent pre-assignment")

	// ErrShapeMismatch indicates that a grouped part's values slice length
	// disagrees with the number of occurrences of its name in the formula.
	// This signals a bug in the splitter's bookkeeping, not a caller error.
	ErrShapeMismatch = errors.New("share: part shape does not match occurrence count")
)
