// Package clock provides the millisecond time source used by every timed
// window in the simulation (invincibility, reload, input delay).
package clock

import "time"

// Clock returns a monotonic timestamp in milliseconds.
type Clock interface {
	Now() int64
}

// Real measures milliseconds since it was created.
type Real struct {
	start time.Time
}

func NewReal() *Real {
	return &Real{start: time.Now()}
}

func (r *Real) Now() int64 {
	return time.Since(r.start).Milliseconds()
}

// Manual only moves when told to. Tests use it to step through timers.
type Manual struct {
	ms int64
}

func NewManual(start int64) *Manual {
	return &Manual{ms: start}
}

func (m *Manual) Now() int64 {
	return m.ms
}

// Advance moves the clock forward by ms milliseconds.
func (m *Manual) Advance(ms int64) {
	m.ms += ms
}

// Set jumps the clock to an absolute timestamp.
func (m *Manual) Set(ms int64) {
	m.ms = ms
}
