package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_NilSpace(t *testing.T) {
	var s *JvmSearchSpace
	assert.Nil(t, s.Clone())
}

func TestClone_IsDeep(t *testing.T) {
	floor, ceiling := int64(1024), int64(8192)
	enabled := true
	s := &JvmSearchSpace{
		MaxHeapSize:   &Int64Range{Floor: &floor, Ceiling: &ceiling},
		UseLargePages: &enabled,
		GCModes:       []GCMode{GCModeG1, GCModeZ},
	}

	clone := s.Clone()
	require.Equal(t, s, clone)

	*s.MaxHeapSize.Floor = 1
	*s.UseLargePages = false
	s.GCModes[0] = GCModeSerial

	assert.Equal(t, int64(1024), *clone.MaxHeapSize.Floor)
	assert.True(t, *clone.UseLargePages)
	assert.Equal(t, GCModeG1, clone.GCModes[0])
}

func TestRangeFields_CoversEveryKnob(t *testing.T) {
	v := int64(1)
	s := &JvmSearchSpace{
		MinHeapSize: &Int64Range{Value: &v},
		TLABSize:    &Int64Range{Value: &v},
	}

	fields := s.RangeFields()
	require.Len(t, fields, len(rangeFieldNames))

	byName := map[string]*Int64Range{}
	for _, f := range fields {
		byName[f.Name] = f.Range
	}
	assert.NotNil(t, byName["min_heap_size"])
	assert.NotNil(t, byName["tlab_size"])
	assert.Nil(t, byName["max_heap_size"])
}

func TestBoolFields_TracksPresence(t *testing.T) {
	set := false
	s := &JvmSearchSpace{UseTLAB: &set}

	for _, f := range s.BoolFields() {
		if f.Name == "use_tlab" {
			// An explicit false is still "set": pointer fields keep
			// absence and zero value apart.
			assert.True(t, f.Set)
		} else {
			assert.False(t, f.Set, f.Name)
		}
	}
}
