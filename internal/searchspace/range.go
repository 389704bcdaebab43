package searchspace

import (
	"iter"

	"github.com/vk/jvmtune/internal/config"
)

// ValidatedRange is an Int64Range that passed Validate. It carries plain
// values instead of pointers so expansion never has to re-check shape.
type ValidatedRange struct {
	fixed    bool
	value    int64
	floor    int64
	ceiling  int64
	stepSize int64 // 0 means unsteppable
}

// Fixed reports whether the range is a single fixed value.
func (v ValidatedRange) Fixed() bool { return v.fixed }

// Validate checks the shape of an Int64Range: exactly one of {value} or
// {floor, ceiling} must be present, and floor
// must not exceed ceiling. A step_size on a fixed value is ignored, not
// an error.
func Validate(r config.Int64Range) (ValidatedRange, error) {
	hasValue := r.Value != nil
	hasFloor := r.Floor != nil
	hasCeiling := r.Ceiling != nil

	if hasValue && (hasFloor || hasCeiling) {
		return ValidatedRange{}, ErrAmbiguousSpecification
	}
	if hasValue {
		return ValidatedRange{fixed: true, value: *r.Value}, nil
	}
	if !hasFloor || !hasCeiling {
		return ValidatedRange{}, ErrIncompleteRange
	}
	if *r.Floor > *r.Ceiling {
		return ValidatedRange{}, ErrInvertedBounds
	}

	v := ValidatedRange{floor: *r.Floor, ceiling: *r.Ceiling}
	if r.StepSize != nil && *r.StepSize > 0 {
		v.stepSize = *r.StepSize
	}
	return v, nil
}

// Expand returns the ordered candidate sequence for the range. The
// sequence is lazy and restartable: iterating it twice yields identical
// values.
//
// A fixed value yields itself. A steppable range yields floor,
// floor+step, ... up to the last term not exceeding ceiling. A range
// without a usable step is a sampling range rather than an enumeration,
// so it yields just its two endpoints (one, if they coincide); callers
// wanting intermediate samples draw from [floor, ceiling] themselves.
func (v ValidatedRange) Expand() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		switch {
		case v.fixed:
			yield(v.value)
		case v.stepSize > 0:
			for n := v.floor; ; n += v.stepSize {
				if !yield(n) {
					return
				}
				// ceiling-n is non-negative here, so this cannot wrap
				// even when ceiling sits near the int64 maximum.
				if v.ceiling-n < v.stepSize {
					return
				}
			}
		default:
			if !yield(v.floor) {
				return
			}
			if v.ceiling != v.floor {
				yield(v.ceiling)
			}
		}
	}
}

// Candidates is a convenience that validates and expands in one call,
// materialising the sequence.
func Candidates(r config.Int64Range) ([]int64, error) {
	v, err := Validate(r)
	if err != nil {
		return nil, err
	}
	var out []int64
	for n := range v.Expand() {
		out = append(out, n)
	}
	return out, nil
}
