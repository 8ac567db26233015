package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults_MatchLevelGeometry(t *testing.T) {
	assert.Equal(t, 704, C.Height)
	assert.Equal(t, 448.0, ShellSightRange())
	assert.Equal(t, 960.0, BossSightRange())
}

func TestShellSightRequiresPlayerTallerThanShell(t *testing.T) {
	// a player standing on the same floor as a shell sits exactly
	// SightOffsetY above it only when the sprites differ by that much
	player := Sprites[SpritePlayerIdle].Height
	shell := Sprites[SpriteShellLeftIdle].Height
	assert.Equal(t, Shell.SightOffsetY, player-shell)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "fall", StateFall.String())
	assert.Equal(t, "unknown", StateID(42).String())
	assert.Equal(t, -1.0, DirectionLeft.Sign())
	assert.Equal(t, "right", DirectionRight.String())
}
