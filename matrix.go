package glowbit

// Matrix is a 2D GlowBit display: a Device plus immutable geometry and the
// remap function encoding physical tiling and wiring.
type Matrix struct {
	*Device
	width, height int
	remap         RemapFunc
	scrolls       []*TextScroll
	autoShowText  bool
	font          GlyphFunc
}

// Matrix4x4Opts configures a chain of 4x4 matrix tiles.
type Matrix4x4Opts struct {
	Tiles        int // default 1, chained horizontally
	Transport    Transport
	Brightness   float64
	RateLimitFPS int // <=0 falls back to 30
	ColorOrder   string
	Remap        RemapFunc // wiring override
}

// NewMatrix4x4 builds a tiles*4 wide, 4 high matrix.
func NewMatrix4x4(o Matrix4x4Opts) (*Matrix, error) {
	if o.Tiles <= 0 {
		o.Tiles = 1
	}
	remap := o.Remap
	if remap == nil {
		remap = Remap4x4
	}
	d, err := newDevice(o.Tiles*16, o.Transport, o.Brightness, o.RateLimitFPS, 30, o.ColorOrder)
	if err != nil {
		return nil, err
	}
	return &Matrix{
		Device: d,
		width:  o.Tiles * 4,
		height: 4,
		remap:  remap,
		font:   defaultGlyphs,
	}, nil
}

// Matrix8x8Opts configures a tiled grid of 8x8 matrices.
type Matrix8x8Opts struct {
	TileRows     int // default 1
	TileCols     int // default 1
	Transport    Transport
	Brightness   float64
	RateLimitFPS int // <=0 uses CharactersPerSecond, then 30
	// CharactersPerSecond expresses the rate limit as scrolling speed: each
	// character is 8 columns, so the FPS becomes 8x this value.
	CharactersPerSecond int
	ColorOrder          string
	Remap               RemapFunc // wiring override
	Font                GlyphFunc // glyph table override for text drawing
}

// NewMatrix8x8 builds a tileCols*8 wide, tileRows*8 high matrix.
func NewMatrix8x8(o Matrix8x8Opts) (*Matrix, error) {
	if o.TileRows <= 0 {
		o.TileRows = 1
	}
	if o.TileCols <= 0 {
		o.TileCols = 1
	}
	fps := o.RateLimitFPS
	if fps <= 0 && o.CharactersPerSecond > 0 {
		fps = o.CharactersPerSecond * 8
	}
	remap := o.Remap
	if remap == nil {
		remap = Remap8x8(o.TileRows, o.TileCols)
	}
	font := o.Font
	if font == nil {
		font = defaultGlyphs
	}
	d, err := newDevice(o.TileRows*o.TileCols*64, o.Transport, o.Brightness, fps, 30, o.ColorOrder)
	if err != nil {
		return nil, err
	}
	return &Matrix{
		Device: d,
		width:  o.TileCols * 8,
		height: o.TileRows * 8,
		remap:  remap,
		font:   font,
	}, nil
}

// Width reports the logical canvas width in LEDs.
func (m *Matrix) Width() int { return m.width }

// Height reports the logical canvas height in LEDs.
func (m *Matrix) Height() int { return m.height }

// mod wraps v into [0,n), including negative v.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// SetXY writes the LED at (x,y). Coordinates outside the canvas wrap around:
// a dot just off the right edge appears along the left edge.
func (m *Matrix) SetXY(x, y int, c Colour) {
	m.buf[m.remap(mod(x, m.width), mod(y, m.height))] = c
}

// SetXYNow writes with wrap-around and immediately shows the frame.
func (m *Matrix) SetXYNow(x, y int, c Colour) error {
	m.SetXY(x, y, c)
	return m.Show()
}

// SetXYClip writes the LED at (x,y), discarding the write if the coordinate
// is outside the canvas.
func (m *Matrix) SetXYClip(x, y int, c Colour) {
	if x >= 0 && y >= 0 && x < m.width && y < m.height {
		m.buf[m.remap(x, y)] = c
	}
}

// AddXY sums c onto the LED at (x,y) with wrap-around. The same channel
// overflow caveat as Add applies.
func (m *Matrix) AddXY(x, y int, c Colour) {
	i := m.remap(mod(x, m.width), mod(y, m.height))
	m.buf[i] += c
}

// AddXYClip sums c onto the LED at (x,y), discarding out-of-canvas writes.
func (m *Matrix) AddXYClip(x, y int, c Colour) {
	if x >= 0 && y >= 0 && x < m.width && y < m.height {
		m.buf[m.remap(x, y)] += c
	}
}

// GetXY reads the LED at (x,y). Not bounds checked.
func (m *Matrix) GetXY(x, y int) Colour {
	return m.buf[m.remap(x, y)]
}
