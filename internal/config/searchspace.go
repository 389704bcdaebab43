package config

// GCMode names one of the mutually-exclusive garbage collectors a trial
// may run with. Several modes may be listed in a search space; only one
// is active per generated command line, and picking it is the hypothesis
// generator's job, not ours.
type GCMode string

const (
	GCModeSerial     GCMode = "serial"
	GCModeParallel   GCMode = "parallel"
	GCModeG1         GCMode = "g1"
	GCModeZ          GCMode = "z"
	GCModeShenandoah GCMode = "shenandoah"
)

// KnownGCModes lists every recognised collector mode.
var KnownGCModes = []GCMode{GCModeSerial, GCModeParallel, GCModeG1, GCModeZ, GCModeShenandoah}

// Int64Range specifies a tunable numeric parameter as either a single
// fixed value or a floor/ceiling pair with an optional step. Exactly one
// of the two forms must be used; StepSize only means something in the
// range form. Constructed once from input data, immutable thereafter.
type Int64Range struct {
	Value    *int64 `json:"value,omitempty"`
	Floor    *int64 `json:"floor,omitempty"`
	Ceiling  *int64 `json:"ceiling,omitempty"`
	StepSize *int64 `json:"step_size,omitempty"`
}

// JvmSearchSpace is the set of JVM tuning knobs the hypothesis generator
// may mutate. It appears at program level as a global restriction and at
// subject level as a full specification: a subject-level space is a
// complete record, not a delta, so every field must be explicitly set
// there.
type JvmSearchSpace struct {
	// Heap geometry (megabytes unless noted).
	MinHeapSize *Int64Range `json:"min_heap_size,omitempty"`
	MaxHeapSize *Int64Range `json:"max_heap_size,omitempty"`
	NewSize     *Int64Range `json:"new_size,omitempty"`
	MaxNewSize  *Int64Range `json:"max_new_size,omitempty"`

	// Generation sizing ratios and promotion behaviour.
	SurvivorRatio        *Int64Range `json:"survivor_ratio,omitempty"`
	NewRatio             *Int64Range `json:"new_ratio,omitempty"`
	MaxTenuringThreshold *Int64Range `json:"max_tenuring_threshold,omitempty"`
	MinHeapFreeRatio     *Int64Range `json:"min_heap_free_ratio,omitempty"`
	MaxHeapFreeRatio     *Int64Range `json:"max_heap_free_ratio,omitempty"`

	// Collector threading and pacing.
	ParallelGCThreads              *Int64Range `json:"parallel_gc_threads,omitempty"`
	ConcGCThreads                  *Int64Range `json:"conc_gc_threads,omitempty"`
	MaxGCPauseMillis               *Int64Range `json:"max_gc_pause_millis,omitempty"`
	GCTimeRatio                    *Int64Range `json:"gc_time_ratio,omitempty"`
	InitiatingHeapOccupancyPercent *Int64Range `json:"initiating_heap_occupancy_percent,omitempty"`
	G1HeapRegionSize               *Int64Range `json:"g1_heap_region_size,omitempty"`

	// Off-heap sizing.
	MetaspaceSize         *Int64Range `json:"metaspace_size,omitempty"`
	MaxMetaspaceSize      *Int64Range `json:"max_metaspace_size,omitempty"`
	ReservedCodeCacheSize *Int64Range `json:"reserved_code_cache_size,omitempty"`
	ThreadStackSize       *Int64Range `json:"thread_stack_size,omitempty"`
	TLABSize              *Int64Range `json:"tlab_size,omitempty"`

	// Boolean toggles.
	UseCompressedOops      *bool `json:"use_compressed_oops,omitempty"`
	UseLargePages          *bool `json:"use_large_pages,omitempty"`
	UseTLAB                *bool `json:"use_tlab,omitempty"`
	UseAdaptiveSizePolicy  *bool `json:"use_adaptive_size_policy,omitempty"`
	UseStringDeduplication *bool `json:"use_string_deduplication,omitempty"`

	// GCModes lists the collector candidates for this space. Mutual
	// exclusivity is enforced per generated command line, downstream.
	GCModes []GCMode `json:"gc_mode,omitempty"`
}

// rangeFieldNames gives the canonical wire name of every range knob, in
// declaration order. Shared by completeness checks and error reporting.
var rangeFieldNames = []string{
	"min_heap_size",
	"max_heap_size",
	"new_size",
	"max_new_size",
	"survivor_ratio",
	"new_ratio",
	"max_tenuring_threshold",
	"min_heap_free_ratio",
	"max_heap_free_ratio",
	"parallel_gc_threads",
	"conc_gc_threads",
	"max_gc_pause_millis",
	"gc_time_ratio",
	"initiating_heap_occupancy_percent",
	"g1_heap_region_size",
	"metaspace_size",
	"max_metaspace_size",
	"reserved_code_cache_size",
	"thread_stack_size",
	"tlab_size",
}

var boolFieldNames = []string{
	"use_compressed_oops",
	"use_large_pages",
	"use_tlab",
	"use_adaptive_size_policy",
	"use_string_deduplication",
}

// RangeFields returns each range knob paired with its wire name, in a
// stable order. Nil entries are included so callers can detect them.
func (s *JvmSearchSpace) RangeFields() []struct {
	Name  string
	Range *Int64Range
} {
	ranges := []*Int64Range{
		s.MinHeapSize, s.MaxHeapSize, s.NewSize, s.MaxNewSize,
		s.SurvivorRatio, s.NewRatio, s.MaxTenuringThreshold,
		s.MinHeapFreeRatio, s.MaxHeapFreeRatio,
		s.ParallelGCThreads, s.ConcGCThreads, s.MaxGCPauseMillis,
		s.GCTimeRatio, s.InitiatingHeapOccupancyPercent, s.G1HeapRegionSize,
		s.MetaspaceSize, s.MaxMetaspaceSize, s.ReservedCodeCacheSize,
		s.ThreadStackSize, s.TLABSize,
	}
	out := make([]struct {
		Name  string
		Range *Int64Range
	}, len(ranges))
	for i, r := range ranges {
		out[i].Name = rangeFieldNames[i]
		out[i].Range = r
	}
	return out
}

// BoolFields returns each boolean knob paired with its wire name.
func (s *JvmSearchSpace) BoolFields() []struct {
	Name string
	Set  bool
} {
	bools := []*bool{
		s.UseCompressedOops, s.UseLargePages, s.UseTLAB,
		s.UseAdaptiveSizePolicy, s.UseStringDeduplication,
	}
	out := make([]struct {
		Name string
		Set  bool
	}, len(bools))
	for i, b := range bools {
		out[i].Name = boolFieldNames[i]
		out[i].Set = b != nil
	}
	return out
}

// Clone returns a deep copy so resolved records never alias the input
// tree.
func (s *JvmSearchSpace) Clone() *JvmSearchSpace {
	if s == nil {
		return nil
	}
	out := *s
	cloneRange := func(r *Int64Range) *Int64Range {
		if r == nil {
			return nil
		}
		c := Int64Range{
			Value:    cloneInt64(r.Value),
			Floor:    cloneInt64(r.Floor),
			Ceiling:  cloneInt64(r.Ceiling),
			StepSize: cloneInt64(r.StepSize),
		}
		return &c
	}
	out.MinHeapSize = cloneRange(s.MinHeapSize)
	out.MaxHeapSize = cloneRange(s.MaxHeapSize)
	out.NewSize = cloneRange(s.NewSize)
	out.MaxNewSize = cloneRange(s.MaxNewSize)
	out.SurvivorRatio = cloneRange(s.SurvivorRatio)
	out.NewRatio = cloneRange(s.NewRatio)
	out.MaxTenuringThreshold = cloneRange(s.MaxTenuringThreshold)
	out.MinHeapFreeRatio = cloneRange(s.MinHeapFreeRatio)
	out.MaxHeapFreeRatio = cloneRange(s.MaxHeapFreeRatio)
	out.ParallelGCThreads = cloneRange(s.ParallelGCThreads)
	out.ConcGCThreads = cloneRange(s.ConcGCThreads)
	out.MaxGCPauseMillis = cloneRange(s.MaxGCPauseMillis)
	out.GCTimeRatio = cloneRange(s.GCTimeRatio)
	out.InitiatingHeapOccupancyPercent = cloneRange(s.InitiatingHeapOccupancyPercent)
	out.G1HeapRegionSize = cloneRange(s.G1HeapRegionSize)
	out.MetaspaceSize = cloneRange(s.MetaspaceSize)
	out.MaxMetaspaceSize = cloneRange(s.MaxMetaspaceSize)
	out.ReservedCodeCacheSize = cloneRange(s.ReservedCodeCacheSize)
	out.ThreadStackSize = cloneRange(s.ThreadStackSize)
	out.TLABSize = cloneRange(s.TLABSize)
	out.UseCompressedOops = cloneBool(s.UseCompressedOops)
	out.UseLargePages = cloneBool(s.UseLargePages)
	out.UseTLAB = cloneBool(s.UseTLAB)
	out.UseAdaptiveSizePolicy = cloneBool(s.UseAdaptiveSizePolicy)
	out.UseStringDeduplication = cloneBool(s.UseStringDeduplication)
	out.GCModes = append([]GCMode(nil), s.GCModes...)
	return &out
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
