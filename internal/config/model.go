package config

import "context"

// DefaultSubjectWarmupTimeout is the program-wide fallback for
// subject_warmup_timeout, in seconds, applied when no scope sets it.
const DefaultSubjectWarmupTimeout int64 = 300

// ProgramConfig is the root of the experiment configuration tree. It
// carries program-wide defaults that every inner scope may override.
type ProgramConfig struct {
	// User is the OS user the experiment runs as. No built-in default:
	// it must be set at some scope level or resolution fails.
	User *string

	// JvmSearchRestriction is the program-level search space. It acts as
	// the base search space for every experimental subject that does not
	// supply its own complete one.
	JvmSearchRestriction *JvmSearchSpace

	// NumberOfSubjects is the global default for the per-group subject
	// count. 0 means "all subjects", i.e. the count is supplied externally.
	NumberOfSubjects *int64

	// SubjectWarmupTimeout is the global warmup timeout in seconds.
	SubjectWarmupTimeout *int64

	// ExpSettingsFilesDir is where generated per-experiment settings files
	// are written by the orchestrator.
	ExpSettingsFilesDir *string

	Clusters []*ClusterConfig

	// Deprecated is round-tripped for compatibility with older producers.
	// It contributes nothing to resolution.
	Deprecated *DeprecatedMessageA
}

// ClusterConfig groups subject groups running on one cluster and carries
// cluster-wide defaults for them.
type ClusterConfig struct {
	Name string

	User                    *string
	NumberOfSubjects        *int64
	SubjectWarmupTimeout    *int64
	NumberOfDefaultSubjects *int64
	RestartCommand          *string
	ExpSettingsFilesDir     *string

	SubjectGroups []*SubjectGroupConfig
}

// SubjectGroupConfig is a named group of subjects sharing restart, warmup
// and user defaults.
type SubjectGroupConfig struct {
	Name string

	User *string

	// NumberOfSubjects selects how many subjects of the group take part.
	// 0 means all; otherwise the first N.
	NumberOfSubjects *int64

	// NumberOfDefaultSubjects is how many of the active subjects run
	// untuned as the scoring baseline.
	NumberOfDefaultSubjects *int64

	SubjectWarmupTimeout *int64
	RestartCommand       *string
	ExpSettingsFilesDir  *string

	// Subjects holds per-subject overrides. Entries apply positionally
	// unless they carry an explicit subject_index.
	Subjects []*ExtendedSubjectConfig
}

// ExtendedSubjectConfig is a per-subject override within a group.
type ExtendedSubjectConfig struct {
	// SubjectIndex pins this override to a specific subject slot. When
	// nil the entry applies to the slot matching its position in the list.
	SubjectIndex *int64

	// JvmParameters, when present, is a complete search space that fully
	// replaces the program-level restriction for this subject. Partial
	// specifications are rejected during resolution.
	JvmParameters *JvmSearchSpace
}

// DeprecatedMessageA is preserved verbatim if present and never
// interpreted. Kept only so older configurations keep loading.
type DeprecatedMessageA struct {
	ValueA string
	ValueB string
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it
	// into the format-agnostic program tree.
	Load(ctx context.Context, paths ...string) (*ProgramConfig, error)
}
