package glowbit

// DrawLine draws a straight line from (x0,y0) to (x1,y1) with integer
// Bresenham stepping. Steep lines swap the x/y roles and every line is walked
// from its lower-x end. Off-canvas pixels are clipped, not wrapped.
func (m *Matrix) DrawLine(x0, y0, x1, y1 int, c Colour) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx >> 1

	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			m.SetXYClip(y0, x0, c)
		} else {
			m.SetXYClip(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// DrawTriangle draws the outline of the triangle (x0,y0)-(x1,y1)-(x2,y2).
func (m *Matrix) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Colour) {
	m.DrawLine(x0, y0, x1, y1, c)
	m.DrawLine(x1, y1, x2, y2, c)
	m.DrawLine(x2, y2, x0, y0, c)
}

// DrawRect draws the outline of the rectangle with corners (x0,y0) and
// (x1,y1). Edges clip like DrawLine.
func (m *Matrix) DrawRect(x0, y0, x1, y1 int, c Colour) {
	m.DrawLine(x0, y0, x1, y0, c)
	m.DrawLine(x1, y0, x1, y1, c)
	m.DrawLine(x1, y1, x0, y1, c)
	m.DrawLine(x0, y1, x0, y0, c)
}

// FillRect fills the rectangle with corners (x0,y0) and (x1,y1), inclusive.
// Unlike the line and circle primitives it writes through the wrapping
// setter, so off-canvas regions wrap around instead of clipping.
func (m *Matrix) FillRect(x0, y0, x1, y1 int, c Colour) {
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			m.SetXY(x, y, c)
		}
	}
}

// DrawCircle draws a circle of radius r centred on (x0,y0) with the midpoint
// algorithm, emitting the eight-way symmetric points through the clipped
// setter.
func (m *Matrix) DrawCircle(x0, y0, r int, c Colour) {
	f := 1 - r
	ddfX := 1
	ddfY := -2 * r
	x := 0
	y := r

	m.SetXYClip(x0, y0+r, c)
	m.SetXYClip(x0, y0-r, c)
	m.SetXYClip(x0+r, y0, c)
	m.SetXYClip(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddfY += 2
			f += ddfY
		}
		x++
		ddfX += 2
		f += ddfX
		m.SetXYClip(x0+x, y0+y, c)
		m.SetXYClip(x0-x, y0+y, c)
		m.SetXYClip(x0+x, y0-y, c)
		m.SetXYClip(x0-x, y0-y, c)
		m.SetXYClip(x0+y, y0+x, c)
		m.SetXYClip(x0-y, y0+x, c)
		m.SetXYClip(x0+y, y0-x, c)
		m.SetXYClip(x0-y, y0-x, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
