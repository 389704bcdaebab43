package searchspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/jvmtune/internal/config"
)

func b(v bool) *bool { return &v }

func fixed(v int64) *config.Int64Range {
	return &config.Int64Range{Value: &v}
}

// completeSpace builds a search space with every field explicitly set,
// satisfying the subject-level all-or-nothing contract.
func completeSpace() *config.JvmSearchSpace {
	return &config.JvmSearchSpace{
		MinHeapSize: fixed(512),
		MaxHeapSize: &config.Int64Range{Floor: i64(1024), Ceiling: i64(8192), StepSize: i64(1024)},
		NewSize:     fixed(256),
		MaxNewSize:  fixed(512),

		SurvivorRatio:        fixed(8),
		NewRatio:             fixed(2),
		MaxTenuringThreshold: &config.Int64Range{Floor: i64(1), Ceiling: i64(15), StepSize: i64(1)},
		MinHeapFreeRatio:     fixed(40),
		MaxHeapFreeRatio:     fixed(70),

		ParallelGCThreads:              &config.Int64Range{Floor: i64(2), Ceiling: i64(16), StepSize: i64(2)},
		ConcGCThreads:                  fixed(4),
		MaxGCPauseMillis:               &config.Int64Range{Floor: i64(50), Ceiling: i64(500), StepSize: i64(50)},
		GCTimeRatio:                    fixed(12),
		InitiatingHeapOccupancyPercent: fixed(45),
		G1HeapRegionSize:               fixed(4),

		MetaspaceSize:         fixed(128),
		MaxMetaspaceSize:      fixed(256),
		ReservedCodeCacheSize: fixed(240),
		ThreadStackSize:       fixed(1),
		TLABSize:              fixed(0),

		UseCompressedOops:      b(true),
		UseLargePages:          b(false),
		UseTLAB:                b(true),
		UseAdaptiveSizePolicy:  b(true),
		UseStringDeduplication: b(false),

		GCModes: []config.GCMode{config.GCModeG1, config.GCModeZ},
	}
}

func TestValidateSpace_NilSpace(t *testing.T) {
	t.Run("allowed when partial", func(t *testing.T) {
		assert.NoError(t, ValidateSpace(nil, false))
	})

	t.Run("rejected when completeness required", func(t *testing.T) {
		assert.ErrorIs(t, ValidateSpace(nil, true), ErrIncompleteSpace)
	})
}

func TestValidateSpace_CompleteRecordPasses(t *testing.T) {
	require.NoError(t, ValidateSpace(completeSpace(), true))
}

func TestValidateSpace_PartialProgramRestrictionPasses(t *testing.T) {
	// Program-level restrictions are deltas: unset fields mean "leave
	// the knob alone".
	s := &config.JvmSearchSpace{
		MaxHeapSize: &config.Int64Range{Floor: i64(1024), Ceiling: i64(4096)},
		GCModes:     []config.GCMode{config.GCModeG1},
	}
	assert.NoError(t, ValidateSpace(s, false))
}

func TestValidateSpace_InvalidRangeNamesField(t *testing.T) {
	s := completeSpace()
	s.MaxGCPauseMillis = &config.Int64Range{Floor: i64(500), Ceiling: i64(50)}

	err := ValidateSpace(s, true)
	require.ErrorIs(t, err, ErrInvertedBounds)
	assert.Contains(t, err.Error(), "max_gc_pause_millis")
}

func TestValidateSpace_IncompleteSubjectRecord(t *testing.T) {
	t.Run("missing range field", func(t *testing.T) {
		s := completeSpace()
		s.TLABSize = nil

		err := ValidateSpace(s, true)
		require.ErrorIs(t, err, ErrIncompleteSpace)
		assert.Contains(t, err.Error(), "tlab_size")
	})

	t.Run("missing bool field", func(t *testing.T) {
		s := completeSpace()
		s.UseLargePages = nil

		err := ValidateSpace(s, true)
		require.ErrorIs(t, err, ErrIncompleteSpace)
		assert.Contains(t, err.Error(), "use_large_pages")
	})

	t.Run("missing gc modes", func(t *testing.T) {
		s := completeSpace()
		s.GCModes = nil

		err := ValidateSpace(s, true)
		require.ErrorIs(t, err, ErrIncompleteSpace)
		assert.Contains(t, err.Error(), "gc_mode")
	})
}

func TestValidateSpace_GCModes(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		s := completeSpace()
		s.GCModes = []config.GCMode{"cms"}
		assert.ErrorIs(t, ValidateSpace(s, true), ErrUnknownGCMode)
	})

	t.Run("duplicate mode", func(t *testing.T) {
		s := completeSpace()
		s.GCModes = []config.GCMode{config.GCModeG1, config.GCModeG1}
		assert.ErrorIs(t, ValidateSpace(s, true), ErrDuplicateGCMode)
	})

	t.Run("several distinct modes coexist", func(t *testing.T) {
		// Mutual exclusivity is a per-command-line concern for the
		// candidate generator, not a schema error.
		s := completeSpace()
		s.GCModes = []config.GCMode{config.GCModeSerial, config.GCModeParallel, config.GCModeG1}
		assert.NoError(t, ValidateSpace(s, true))
	})
}
