package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleIntroZoomsThenFades(t *testing.T) {
	ti := NewTitleIntro(1.2)
	assert.Equal(t, float32(2.5), ti.Scale)

	for i := 0; i < 36; i++ {
		ti.Update(1.0 / 60)
	}
	assert.InDelta(t, 1, ti.Scale, 1e-2)
	assert.Equal(t, float32(1), ti.Alpha)
	assert.False(t, ti.Done())

	for i := 0; i < 50; i++ {
		ti.Update(1.0 / 60)
	}
	assert.True(t, ti.Done())
	assert.InDelta(t, 0, ti.Alpha, 1e-3)
}
