// Package schema defines the HCL-specific block structures of an
// experiment configuration file. These structs exist purely for gohcl
// decoding; the hclloader package translates them into the
// format-agnostic config model.
package schema

// File is the top-level structure of a single configuration file. The
// program block may live in one file while additional cluster blocks are
// split across others; the loader stitches them together.
type File struct {
	Program  *Program   `hcl:"program,block"`
	Clusters []*Cluster `hcl:"cluster,block"`
}

// Program is the root `program` block carrying program-wide defaults.
type Program struct {
	User                 *string      `hcl:"user,optional"`
	NumberOfSubjects     *int64       `hcl:"number_of_subjects,optional"`
	SubjectWarmupTimeout *int64       `hcl:"subject_warmup_timeout,optional"`
	ExpSettingsFilesDir  *string      `hcl:"exp_settings_files_dir,optional"`
	JvmSearchRestriction *SearchSpace `hcl:"jvm_search_restriction,block"`
	Deprecated           *Deprecated  `hcl:"deprecated,block"`
	Clusters             []*Cluster   `hcl:"cluster,block"`
}

// Cluster is a `cluster "<name>"` block with cluster-wide defaults.
type Cluster struct {
	Name                    string          `hcl:"name,label"`
	User                    *string         `hcl:"user,optional"`
	NumberOfSubjects        *int64          `hcl:"number_of_subjects,optional"`
	SubjectWarmupTimeout    *int64          `hcl:"subject_warmup_timeout,optional"`
	NumberOfDefaultSubjects *int64          `hcl:"number_of_default_subjects,optional"`
	RestartCommand          *string         `hcl:"restart_command,optional"`
	ExpSettingsFilesDir     *string         `hcl:"exp_settings_files_dir,optional"`
	SubjectGroups           []*SubjectGroup `hcl:"subject_group,block"`
}

// SubjectGroup is a `subject_group "<name>"` block.
type SubjectGroup struct {
	Name                    string     `hcl:"name,label"`
	User                    *string    `hcl:"user,optional"`
	NumberOfSubjects        *int64     `hcl:"number_of_subjects,optional"`
	NumberOfDefaultSubjects *int64     `hcl:"number_of_default_subjects,optional"`
	SubjectWarmupTimeout    *int64     `hcl:"subject_warmup_timeout,optional"`
	RestartCommand          *string    `hcl:"restart_command,optional"`
	ExpSettingsFilesDir     *string    `hcl:"exp_settings_files_dir,optional"`
	Subjects                []*Subject `hcl:"subject,block"`
}

// Subject is a per-subject override block within a group.
type Subject struct {
	SubjectIndex  *int64       `hcl:"subject_index,optional"`
	JvmParameters *SearchSpace `hcl:"jvm_parameters,block"`
}

// Range is one tunable knob: either `value`, or `floor`/`ceiling` with
// an optional `step_size`. Shape validation happens downstream in the
// searchspace package, not during decoding.
type Range struct {
	Value    *int64 `hcl:"value,optional"`
	Floor    *int64 `hcl:"floor,optional"`
	Ceiling  *int64 `hcl:"ceiling,optional"`
	StepSize *int64 `hcl:"step_size,optional"`
}

// SearchSpace mirrors config.JvmSearchSpace, one block per range knob.
type SearchSpace struct {
	MinHeapSize *Range `hcl:"min_heap_size,block"`
	MaxHeapSize *Range `hcl:"max_heap_size,block"`
	NewSize     *Range `hcl:"new_size,block"`
	MaxNewSize  *Range `hcl:"max_new_size,block"`

	SurvivorRatio        *Range `hcl:"survivor_ratio,block"`
	NewRatio             *Range `hcl:"new_ratio,block"`
	MaxTenuringThreshold *Range `hcl:"max_tenuring_threshold,block"`
	MinHeapFreeRatio     *Range `hcl:"min_heap_free_ratio,block"`
	MaxHeapFreeRatio     *Range `hcl:"max_heap_free_ratio,block"`

	ParallelGCThreads              *Range `hcl:"parallel_gc_threads,block"`
	ConcGCThreads                  *Range `hcl:"conc_gc_threads,block"`
	MaxGCPauseMillis               *Range `hcl:"max_gc_pause_millis,block"`
	GCTimeRatio                    *Range `hcl:"gc_time_ratio,block"`
	InitiatingHeapOccupancyPercent *Range `hcl:"initiating_heap_occupancy_percent,block"`
	G1HeapRegionSize               *Range `hcl:"g1_heap_region_size,block"`

	MetaspaceSize         *Range `hcl:"metaspace_size,block"`
	MaxMetaspaceSize      *Range `hcl:"max_metaspace_size,block"`
	ReservedCodeCacheSize *Range `hcl:"reserved_code_cache_size,block"`
	ThreadStackSize       *Range `hcl:"thread_stack_size,block"`
	TLABSize              *Range `hcl:"tlab_size,block"`

	UseCompressedOops      *bool `hcl:"use_compressed_oops,optional"`
	UseLargePages          *bool `hcl:"use_large_pages,optional"`
	UseTLAB                *bool `hcl:"use_tlab,optional"`
	UseAdaptiveSizePolicy  *bool `hcl:"use_adaptive_size_policy,optional"`
	UseStringDeduplication *bool `hcl:"use_string_deduplication,optional"`

	GCModes []string `hcl:"gc_mode,optional"`
}

// Deprecated maps the legacy `deprecated` block. Round-tripped for
// compatibility with older producers, never interpreted.
type Deprecated struct {
	ValueA *string `hcl:"value_a,optional"`
	ValueB *string `hcl:"value_b,optional"`
}
