// Package animations steps frame cursors. It knows nothing about images;
// callers index their own frame slices with Frame.
package animations

// Animation is a fractional cursor over Frames frames. Each Update moves
// it by Speed; a looping animation wraps to the first frame on overflow
// and a one-shot animation sets Done instead.
type Animation struct {
	Frames  int
	Speed   float64
	OneShot bool
	Done    bool
	index   float64
}

func NewAnimation(frames int, speed float64) *Animation {
	return &Animation{Frames: frames, Speed: speed}
}

func NewOneShot(frames int, speed float64) *Animation {
	return &Animation{Frames: frames, Speed: speed, OneShot: true}
}

// NewStatic returns a cursor parked on frame, used for tiles cut from a
// sheet.
func NewStatic(frames, frame int) *Animation {
	return &Animation{Frames: frames, index: float64(frame)}
}

func (a *Animation) Update() {
	if a.Done || a.Speed == 0 {
		return
	}
	a.index += a.Speed
	if int(a.index) >= a.Frames {
		if a.OneShot {
			a.Done = true
			a.index = float64(a.Frames - 1)
			return
		}
		a.index = 0
	}
}

// Frame returns the current frame number. A cursor left past the end by
// a switch to a shorter sequence reads as the first frame.
func (a *Animation) Frame() int {
	f := int(a.index)
	if f < 0 || f >= a.Frames {
		return 0
	}
	return f
}

// Index is the raw fractional cursor.
func (a *Animation) Index() float64 {
	return a.index
}

// SetFrames switches to a sequence of a different length. The cursor keeps
// its position.
func (a *Animation) SetFrames(n int) {
	a.Frames = n
}
