package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_OverlapsIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 64, H: 64}

	assert.True(t, a.Overlaps(Rect{X: 63, Y: 63, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 64, Y: 0, W: 10, H: 10}), "touching right edge")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 64, W: 10, H: 10}), "touching bottom edge")
	assert.True(t, a.Overlaps(Rect{X: 10, Y: 10, W: 1, H: 1}), "contained")
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 10, W: 0, H: 0}), "empty rect")
}

func TestRect_Centers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 51, H: 33}
	assert.Equal(t, 35.0, r.CenterX())
	assert.Equal(t, 36.0, r.CenterY())
	assert.Equal(t, 61.0, r.Right())
	assert.Equal(t, 53.0, r.Bottom())
}

func TestStep_TruncatesTowardZero(t *testing.T) {
	assert.Equal(t, 100.0, Step(100, 0.8))
	assert.Equal(t, 101.0, Step(100, 1.6))
	assert.Equal(t, 84.0, Step(100, -15.2))
	assert.Equal(t, -1.0, Step(0, -1.5))
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name       string
		dirX, dirY float64
		want       int
	}{
		{"rising is jump", 1, -0.1, 2},
		{"falling past one is fall", 0, 1.6, 3},
		{"small downward drift still grounded", 1, 0.8, 1},
		{"exactly one is not fall", 0, 1, 0},
		{"moving left runs", -1, 0, 1},
		{"still is idle", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.dirX, tc.dirY))
		})
	}
}

func TestWaveAlpha(t *testing.T) {
	for _, ms := range []int64{0, 1, 2, 3, 4, 5, 6, 500, 1234} {
		want := float32(0)
		if math.Sin(float64(ms)) >= 0 {
			want = 1
		}
		assert.Equal(t, want, WaveAlpha(ms), "ms=%d", ms)
	}
	assert.Equal(t, float32(1), WaveAlpha(0))
	assert.Equal(t, float32(0), WaveAlpha(4)) // sin(4) < 0
}
