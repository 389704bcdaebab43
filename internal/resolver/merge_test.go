package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverride(t *testing.T) {
	inner := int64(1)
	outer := int64(2)

	t.Run("innermost set value wins", func(t *testing.T) {
		assert.Equal(t, &inner, override(&inner, &outer))
	})

	t.Run("unset inner scope inherits", func(t *testing.T) {
		assert.Equal(t, &outer, override(nil, &outer))
	})

	t.Run("unset everywhere resolves to nil", func(t *testing.T) {
		assert.Nil(t, override[int64](nil, nil, nil))
	})
}

func TestOverrideOr(t *testing.T) {
	zero := int64(0)

	t.Run("fallback applies when no scope sets the field", func(t *testing.T) {
		assert.Equal(t, int64(300), overrideOr[int64](300, nil, nil))
	})

	t.Run("explicit zero beats the fallback", func(t *testing.T) {
		assert.Equal(t, int64(0), overrideOr(300, &zero, nil))
	})
}
