// Package gamemath holds the pure geometry and integration helpers of the
// simulation. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + math.Floor(r.W/2) }
func (r Rect) CenterY() float64 { return r.Y + math.Floor(r.H/2) }

// Overlaps reports whether the rects share interior area. Touching edges
// do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Step adds a fractional delta to an integral coordinate, dropping the
// fraction toward zero like an integer rect does.
func Step(pos, delta float64) float64 {
	return math.Trunc(pos + delta)
}

// Status derives the movement status from a velocity: 0 idle, 1 run,
// 2 jump, 3 fall. Callers map it onto their own state type.
func Status(dirX, dirY float64) int {
	switch {
	case dirY < 0:
		return 2
	case dirY > 1:
		return 3
	case dirX != 0:
		return 1
	default:
		return 0
	}
}

// WaveAlpha is the invincibility blink: fully opaque while sin(nowMs) is
// non-negative, fully transparent otherwise.
func WaveAlpha(nowMs int64) float32 {
	if math.Sin(float64(nowMs)) >= 0 {
		return 1
	}
	return 0
}
