package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(30))

	for _, name := range []FontName{HUD, Title, Small} {
		assert.True(t, Loaded(name), name)
		assert.NotNil(t, name.Get())
	}
	assert.Greater(t, HUD.Get().Metrics().Height.Ceil(), Small.Get().Metrics().Height.Ceil())
}

func TestLoadFontWithSize_RejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
	assert.False(t, Loaded("broken"))
}

func TestGet_PanicsWhenMissing(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
