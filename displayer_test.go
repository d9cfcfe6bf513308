package glowbit_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/tinyfont"

	"github.com/glowbit-dev/glowbit"
)

func TestDisplayerSize(t *testing.T) {
	m, _ := newTestMatrix(t, 1, 2)
	w, h := m.Size()
	assert.Equal(t, int16(16), w)
	assert.Equal(t, int16(8), h)
}

func TestDisplayerSetPixel(t *testing.T) {
	m, _ := newTestMatrix(t, 1, 1)
	m.SetPixel(2, 3, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
	assert.Equal(t, glowbit.Colour(0x112233), m.GetXY(2, 3))

	// Off-canvas pixels clip; fonts may draw past the edge.
	m.SetPixel(-1, 0, color.RGBA{R: 0xFF})
	m.SetPixel(8, 0, color.RGBA{R: 0xFF})
	assert.Equal(t, glowbit.Colour(0), m.GetXY(7, 0))
}

func TestDisplayerPushesFrame(t *testing.T) {
	m, sim := newTestMatrix(t, 1, 1)
	before := sim.Frames()
	require.NoError(t, m.Display())
	assert.Equal(t, before+1, sim.Frames())
}

func TestTinyfontWriteLine(t *testing.T) {
	m, _ := newTestMatrix(t, 1, 2)
	tinyfont.WriteLine(m, &tinyfont.Org01, 0, 6, "Hi", color.RGBA{R: 0xFF, A: 0xFF})

	lit := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.GetXY(x, y) != 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0, "tinyfont rendered nothing")
}
