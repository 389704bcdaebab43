package searchspace

import "errors"

var (
	// ErrAmbiguousSpecification is returned when a range supplies both a
	// fixed value and a floor/ceiling pair.
	ErrAmbiguousSpecification = errors.New("range specifies both a fixed value and floor/ceiling bounds")

	// ErrIncompleteRange is returned when only one of floor/ceiling is
	// supplied, or neither form is present at all.
	ErrIncompleteRange = errors.New("range must specify either a fixed value or both floor and ceiling")

	// ErrInvertedBounds is returned when floor exceeds ceiling.
	ErrInvertedBounds = errors.New("range floor exceeds ceiling")

	// ErrIncompleteSpace is returned when a subject-level search space
	// leaves fields unset. Subject-level spaces are complete records, not
	// deltas over the program-level restriction.
	ErrIncompleteSpace = errors.New("subject-level search space must set every field")

	// ErrUnknownGCMode is returned for a collector mode outside the known
	// set.
	ErrUnknownGCMode = errors.New("unknown gc_mode")

	// ErrDuplicateGCMode is returned when the same collector mode is
	// listed twice in one search space.
	ErrDuplicateGCMode = errors.New("duplicate gc_mode entry")
)
