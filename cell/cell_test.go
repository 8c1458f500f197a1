package cell

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	assert.Equal(t, None, Of(Empty))
	assert.Equal(t, Cyan, Of(1))
	assert.Equal(t, Red, Of(7))
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, Of(42).NRGBA())
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, Of(-3).NRGBA())
}

func TestTint_NRGBA(t *testing.T) {
	assert.Zero(t, None.NRGBA().A)
	for tint := Cyan; tint <= Red; tint++ {
		assert.Equal(t, uint8(0xff), tint.NRGBA().A, "tint %d should be opaque", tint)
	}
}
