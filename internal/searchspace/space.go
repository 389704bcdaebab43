package searchspace

import (
	"fmt"

	"github.com/vk/jvmtune/internal/config"
)

// ValidateSpace checks every range field of a search space and its
// collector mode list. With requireComplete set (the subject-level
// contract) every field of the record, boolean toggles included, must be
// explicitly present.
//
// Mutual exclusivity between listed collector modes is deliberately not
// checked here: several modes may coexist in a search space, and only
// the downstream candidate generator, which emits one command line per
// trial, enforces a single active mode.
func ValidateSpace(s *config.JvmSearchSpace, requireComplete bool) error {
	if s == nil {
		if requireComplete {
			return ErrIncompleteSpace
		}
		return nil
	}

	for _, f := range s.RangeFields() {
		if f.Range == nil {
			if requireComplete {
				return fmt.Errorf("field %q: %w", f.Name, ErrIncompleteSpace)
			}
			continue
		}
		if _, err := Validate(*f.Range); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	if requireComplete {
		for _, f := range s.BoolFields() {
			if !f.Set {
				return fmt.Errorf("field %q: %w", f.Name, ErrIncompleteSpace)
			}
		}
		if len(s.GCModes) == 0 {
			return fmt.Errorf("field %q: %w", "gc_mode", ErrIncompleteSpace)
		}
	}

	seen := make(map[config.GCMode]struct{}, len(s.GCModes))
	for _, mode := range s.GCModes {
		if !knownGCMode(mode) {
			return fmt.Errorf("%w: %q", ErrUnknownGCMode, mode)
		}
		if _, dup := seen[mode]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateGCMode, mode)
		}
		seen[mode] = struct{}{}
	}

	return nil
}

func knownGCMode(mode config.GCMode) bool {
	for _, known := range config.KnownGCModes {
		if mode == known {
			return true
		}
	}
	return false
}
