package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	c := NewManual()
	assert.Equal(t, time.Duration(0), c.Now())

	c.Advance(16 * time.Millisecond)
	c.Advance(-time.Second)
	assert.Equal(t, 16*time.Millisecond, c.Now())
}

func TestTicker(t *testing.T) {
	c := NewTicker(time.Second / 60)
	first := c.Now()
	second := c.Now()
	assert.Equal(t, time.Second/60, second-first)
}

func TestSystemIsMonotonic(t *testing.T) {
	c := NewSystem()
	a := c.Now()
	b := c.Now()
	assert.GreaterOrEqual(t, b, a)
}
