package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_LoopWrapsToFirstFrame(t *testing.T) {
	a := NewAnimation(2, 0.5)

	a.Update()
	assert.Equal(t, 0, a.Frame())
	a.Update()
	assert.Equal(t, 1, a.Frame())
	a.Update()
	assert.Equal(t, 1, a.Frame())
	a.Update()
	assert.Equal(t, 0, a.Frame())
	assert.Equal(t, 0.0, a.Index())
	assert.False(t, a.Done)
}

func TestAnimation_OneShotFinishes(t *testing.T) {
	a := NewOneShot(3, 0.5)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	assert.False(t, a.Done)
	a.Update()
	assert.True(t, a.Done)
	assert.Equal(t, 2, a.Frame())

	a.Update()
	assert.True(t, a.Done)
}

func TestAnimation_StaticNeverMoves(t *testing.T) {
	a := NewStatic(28, 7)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 7, a.Frame())
}

func TestAnimation_SwitchKeepsCursor(t *testing.T) {
	a := NewAnimation(6, 1)
	for i := 0; i < 4; i++ {
		a.Update()
	}
	assert.Equal(t, 4, a.Frame())

	a.SetFrames(1)
	assert.Equal(t, 0, a.Frame(), "out of range cursor reads as first frame")
	a.Update()
	assert.Equal(t, 0.0, a.Index())
}
