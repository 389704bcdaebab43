package resolver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyConfiguration is returned when the tree is structurally
	// hollow: a program without clusters, or a cluster without groups.
	ErrEmptyConfiguration = errors.New("empty configuration")

	// ErrMissingRequiredField is returned when a scope-mandatory scalar
	// is unset at every scope level.
	ErrMissingRequiredField = errors.New("required field unset at every scope")

	// ErrNegativeCount is returned for negative subject or
	// default-subject counts.
	ErrNegativeCount = errors.New("count must not be negative")

	// ErrInvalidDefaultSubjectCount is returned when a group declares
	// more baseline subjects than it has active subjects.
	ErrInvalidDefaultSubjectCount = errors.New("number_of_default_subjects exceeds active subject count")

	// ErrUnknownSubjectCount is returned when number_of_subjects is 0,
	// the group lists no explicit subjects, and no external count was
	// supplied for it.
	ErrUnknownSubjectCount = errors.New("subject count is externally defined but none was supplied")

	// ErrSubjectIndexOutOfRange is returned when a subject override pins
	// itself to an index outside the active subject set.
	ErrSubjectIndexOutOfRange = errors.New("subject_index outside active subject set")

	// ErrDuplicateSubjectIndex is returned when two overrides claim the
	// same subject slot.
	ErrDuplicateSubjectIndex = errors.New("duplicate subject_index")
)

// ScopePath pinpoints where in the tree an error was detected. Subject
// is -1 when the error is not tied to a single subject; empty strings
// mean the level was not reached.
type ScopePath struct {
	Cluster string
	Group   string
	Subject int64
	Field   string
}

func (p ScopePath) String() string {
	parts := []string{}
	if p.Cluster != "" {
		parts = append(parts, "cluster "+strconv.Quote(p.Cluster))
	}
	if p.Group != "" {
		parts = append(parts, "group "+strconv.Quote(p.Group))
	}
	if p.Subject >= 0 {
		parts = append(parts, "subject "+strconv.FormatInt(p.Subject, 10))
	}
	if p.Field != "" {
		parts = append(parts, "field "+strconv.Quote(p.Field))
	}
	if len(parts) == 0 {
		return "program"
	}
	return strings.Join(parts, " > ")
}

// ScopeError wraps a validation failure with the scope path it was
// detected at, so callers can act on it without re-walking the tree.
type ScopeError struct {
	Path ScopePath
	Err  error
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ScopeError) Unwrap() error { return e.Err }

func scopeErr(path ScopePath, err error) error {
	return &ScopeError{Path: path, Err: err}
}
