package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	c := NewManual(100)
	assert.Equal(t, int64(100), c.Now())

	c.Advance(499)
	assert.Equal(t, int64(599), c.Now())

	c.Set(10)
	assert.Equal(t, int64(10), c.Now())
}

func TestReal_IsMonotonic(t *testing.T) {
	c := NewReal()
	first := c.Now()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, c.Now(), first+1)
}
