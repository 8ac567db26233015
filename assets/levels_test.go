package assets

import (
	"testing"

	"github.com/automoto/treasure-hunters/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLevels_AllValid(t *testing.T) {
	l, err := leveldata.NewLoader(LevelFS, LevelTable)
	require.NoError(t, err)
	require.Len(t, l.Table().Levels, 6)
	assert.NoError(t, l.Check())

	last := l.Table().Levels[5]
	assert.Equal(t, 6, last.Unlock, "finishing the last level ends the game")
}
