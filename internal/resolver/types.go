package resolver

import "github.com/vk/jvmtune/internal/config"

// ResolvedSubjectConfig is one fully-concrete, per-subject record. It is
// an independent value: nothing in it aliases the input tree.
type ResolvedSubjectConfig struct {
	Cluster          string `json:"cluster"`
	SubjectGroupName string `json:"subject_group_name"`
	SubjectIndex     int64  `json:"subject_index"`

	User string `json:"user"`

	// NumberOfSubjects is the effective active subject count of the
	// owning group, repeated on every record for the orchestrator's
	// convenience.
	NumberOfSubjects int64 `json:"number_of_subjects"`

	// SubjectWarmupTimeout is in seconds.
	SubjectWarmupTimeout int64 `json:"subject_warmup_timeout"`

	// IsBaseline marks subjects excluded from search-space mutation but
	// still scored for comparison.
	IsBaseline bool `json:"is_baseline"`

	// SearchSpace is nil for baseline subjects, and for experimental
	// subjects when neither the program restriction nor a subject-level
	// specification exists.
	SearchSpace *config.JvmSearchSpace `json:"search_space,omitempty"`

	RestartCommand      string `json:"restart_command,omitempty"`
	ExpSettingsFilesDir string `json:"exp_settings_files_dir,omitempty"`
}

// Options carries resolution inputs that live outside the configuration
// tree itself.
type Options struct {
	// ExternalSubjectCounts supplies the running-subject count for
	// groups whose effective number_of_subjects is 0 ("all subjects").
	// Keys are "<cluster>/<group>".
	ExternalSubjectCounts map[string]int64
}

// ExternalCountKey builds the ExternalSubjectCounts key for a group.
func ExternalCountKey(cluster, group string) string {
	return cluster + "/" + group
}
