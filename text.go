package glowbit

// TextScrollOpts positions one scrolling text line.
type TextScrollOpts struct {
	X, Y     int
	Colour   Colour // default white
	BgColour Colour
	AutoShow bool // show the frame after every UpdateTextScroll
}

// TextScroll is one line of text travelling right to left across the canvas.
// It holds only its own scroll position; pixels land in the owning matrix's
// buffer during UpdateTextScroll.
type TextScroll struct {
	x, y     int
	colour   Colour
	bgColour Colour
	text     string
}

// DrawChar blits an 8x8 glyph with its top-left corner at (px,py), adding the
// colour into every set pixel. Columns falling outside the canvas are
// skipped; rows are trusted to fit, matching the unchecked buffer contract.
func (m *Matrix) DrawChar(ch byte, px, py int, c Colour) {
	if px < -7 || px > m.width {
		return
	}
	glyph := m.font(ch)
	maxCol := 8
	if m.width-px < maxCol {
		maxCol = m.width - px
	}
	minCol := 0
	x := px
	if x < 0 {
		minCol = -x
		x = 0
	}
	for col := minCol; col < maxCol; col++ {
		dat := glyph[col]
		for row := 0; row < 8; row++ {
			if dat>>uint(row)&1 == 1 {
				m.buf[m.remap(x, py+row)] += c
			}
		}
		x++
	}
}

// PrintTextWrap draws a string starting at (x,y), wrapping to the next
// 8-pixel row at the right edge. Characters that would start below the last
// full row are dropped.
func (m *Matrix) PrintTextWrap(text string, x, y int, c Colour) {
	px, py := x, y
	for i := 0; i < len(text); i++ {
		if py < m.height-7 {
			m.DrawChar(text[i], px, py, c)
		}
		px += 8
		if px+1 >= m.width {
			py += 8
			if x < 0 {
				px = 0
			} else {
				px = x
			}
		}
	}
}

// AddTextScroll queues a line of scrolling text. The line starts just off the
// right edge and removes itself once it has fully scrolled off the left.
func (m *Matrix) AddTextScroll(text string, o TextScrollOpts) {
	if o.Colour == 0 {
		o.Colour = 0xFFFFFF
	}
	m.scrolls = append(m.scrolls, &TextScroll{
		x:        -m.width - o.X,
		y:        o.Y,
		colour:   o.Colour,
		bgColour: o.BgColour,
		text:     text,
	})
	m.autoShowText = o.AutoShow
}

// Scrolling reports whether any scroll lines are still live.
func (m *Matrix) Scrolling() bool { return len(m.scrolls) > 0 }

// UpdateTextScroll advances every scroll line one column: the line's 8-row
// band is refilled with its background (wrapping fill, like the rectangle
// primitive), the characters are redrawn one column further left, and lines
// that have fully exited are removed after the pass.
func (m *Matrix) UpdateTextScroll() error {
	for _, line := range m.scrolls {
		m.FillRect(0, line.y, m.width, line.y+7, line.bgColour)
		for i := 0; i < len(line.text); i++ {
			m.DrawChar(line.text[i], -line.x+8*i, line.y, line.colour)
		}
		line.x++
	}

	live := m.scrolls[:0]
	for _, line := range m.scrolls {
		if line.x == 8*len(line.text) {
			continue
		}
		live = append(live, line)
	}
	m.scrolls = live

	if m.autoShowText {
		return m.Show()
	}
	return nil
}

// ScrollText queues text and blocks until it has scrolled fully across,
// showing every frame.
func (m *Matrix) ScrollText(text string, o TextScrollOpts) error {
	o.AutoShow = true
	m.AddTextScroll(text, o)
	for m.Scrolling() {
		if err := m.UpdateTextScroll(); err != nil {
			return err
		}
	}
	return nil
}
