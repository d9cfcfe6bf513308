package glowbit

import "image/color"

// Matrix implements tinygo.org/x/drivers.Displayer, so tinyfont and friends
// can render straight onto a GlowBit matrix:
//
//	tinyfont.WriteLine(m, &freemono.Regular9pt7b, 0, 7, "hi", color.RGBA{R: 255})
//	m.Display()

// Size reports the canvas dimensions.
func (m *Matrix) Size() (x, y int16) {
	return int16(m.width), int16(m.height)
}

// SetPixel writes one pixel through the clipped setter; the alpha channel is
// ignored.
func (m *Matrix) SetPixel(x, y int16, c color.RGBA) {
	m.SetXYClip(int(x), int(y), RGB(c.R, c.G, c.B))
}

// Display shows the current buffer.
func (m *Matrix) Display() error {
	return m.Show()
}
