// Package yamlloader implements config.Loader for YAML experiment
// files. It exists for producers that emit configuration from other
// tooling, where YAML is easier to generate than HCL; both loaders
// produce the same format-agnostic model and share one validation path.
package yamlloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/jvmtune/internal/config"
	"github.com/vk/jvmtune/internal/ctxlog"
	"github.com/vk/jvmtune/internal/fsutil"
)

// Loader loads experiment configuration from .yaml/.yml files.
type Loader struct{}

// NewLoader returns a ready-to-use YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// yamlFile mirrors schema.File for YAML documents: an optional program
// mapping plus stray clusters appended to it.
type yamlFile struct {
	Program  *yamlProgram   `yaml:"program"`
	Clusters []*yamlCluster `yaml:"cluster"`
}

type yamlProgram struct {
	User                 *string          `yaml:"user"`
	NumberOfSubjects     *int64           `yaml:"number_of_subjects"`
	SubjectWarmupTimeout *int64           `yaml:"subject_warmup_timeout"`
	ExpSettingsFilesDir  *string          `yaml:"exp_settings_files_dir"`
	JvmSearchRestriction *yamlSearchSpace `yaml:"jvm_search_restriction"`
	Deprecated           *yamlDeprecated  `yaml:"deprecated"`
	Clusters             []*yamlCluster   `yaml:"cluster"`
}

type yamlCluster struct {
	Name                    string              `yaml:"name"`
	User                    *string             `yaml:"user"`
	NumberOfSubjects        *int64              `yaml:"number_of_subjects"`
	SubjectWarmupTimeout    *int64              `yaml:"subject_warmup_timeout"`
	NumberOfDefaultSubjects *int64              `yaml:"number_of_default_subjects"`
	RestartCommand          *string             `yaml:"restart_command"`
	ExpSettingsFilesDir     *string             `yaml:"exp_settings_files_dir"`
	SubjectGroups           []*yamlSubjectGroup `yaml:"subject_group"`
}

type yamlSubjectGroup struct {
	Name                    string         `yaml:"name"`
	User                    *string        `yaml:"user"`
	NumberOfSubjects        *int64         `yaml:"number_of_subjects"`
	NumberOfDefaultSubjects *int64         `yaml:"number_of_default_subjects"`
	SubjectWarmupTimeout    *int64         `yaml:"subject_warmup_timeout"`
	RestartCommand          *string        `yaml:"restart_command"`
	ExpSettingsFilesDir     *string        `yaml:"exp_settings_files_dir"`
	Subjects                []*yamlSubject `yaml:"subject"`
}

type yamlSubject struct {
	SubjectIndex  *int64           `yaml:"subject_index"`
	JvmParameters *yamlSearchSpace `yaml:"jvm_parameters"`
}

type yamlRange struct {
	Value    *int64 `yaml:"value"`
	Floor    *int64 `yaml:"floor"`
	Ceiling  *int64 `yaml:"ceiling"`
	StepSize *int64 `yaml:"step_size"`
}

type yamlSearchSpace struct {
	MinHeapSize *yamlRange `yaml:"min_heap_size"`
	MaxHeapSize *yamlRange `yaml:"max_heap_size"`
	NewSize     *yamlRange `yaml:"new_size"`
	MaxNewSize  *yamlRange `yaml:"max_new_size"`

	SurvivorRatio        *yamlRange `yaml:"survivor_ratio"`
	NewRatio             *yamlRange `yaml:"new_ratio"`
	MaxTenuringThreshold *yamlRange `yaml:"max_tenuring_threshold"`
	MinHeapFreeRatio     *yamlRange `yaml:"min_heap_free_ratio"`
	MaxHeapFreeRatio     *yamlRange `yaml:"max_heap_free_ratio"`

	ParallelGCThreads              *yamlRange `yaml:"parallel_gc_threads"`
	ConcGCThreads                  *yamlRange `yaml:"conc_gc_threads"`
	MaxGCPauseMillis               *yamlRange `yaml:"max_gc_pause_millis"`
	GCTimeRatio                    *yamlRange `yaml:"gc_time_ratio"`
	InitiatingHeapOccupancyPercent *yamlRange `yaml:"initiating_heap_occupancy_percent"`
	G1HeapRegionSize               *yamlRange `yaml:"g1_heap_region_size"`

	MetaspaceSize         *yamlRange `yaml:"metaspace_size"`
	MaxMetaspaceSize      *yamlRange `yaml:"max_metaspace_size"`
	ReservedCodeCacheSize *yamlRange `yaml:"reserved_code_cache_size"`
	ThreadStackSize       *yamlRange `yaml:"thread_stack_size"`
	TLABSize              *yamlRange `yaml:"tlab_size"`

	UseCompressedOops      *bool `yaml:"use_compressed_oops"`
	UseLargePages          *bool `yaml:"use_large_pages"`
	UseTLAB                *bool `yaml:"use_tlab"`
	UseAdaptiveSizePolicy  *bool `yaml:"use_adaptive_size_policy"`
	UseStringDeduplication *bool `yaml:"use_string_deduplication"`

	GCModes []string `yaml:"gc_mode"`
}

type yamlDeprecated struct {
	ValueA *string `yaml:"value_a"`
	ValueB *string `yaml:"value_b"`
}

// Load reads every .yaml/.yml file under the given paths and stitches
// them into one program tree, with the same one-program rule as the HCL
// loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.ProgramConfig, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtensions(path, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("failed to find config files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml config files found in %v", paths)
	}
	logger.Debug("Loading experiment configuration.", "files", len(files))

	var program *yamlProgram
	var programFile string
	var strayClusters []*yamlCluster

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		var parsed yamlFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		if parsed.Program != nil {
			if program != nil {
				return nil, fmt.Errorf("duplicate program mapping: defined in both %s and %s", programFile, file)
			}
			program = parsed.Program
			programFile = file
		}
		strayClusters = append(strayClusters, parsed.Clusters...)
	}

	if program == nil {
		return nil, fmt.Errorf("no program mapping found in %v", paths)
	}
	program.Clusters = append(program.Clusters, strayClusters...)

	return translateProgram(program), nil
}
