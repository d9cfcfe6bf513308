package glowbit

import (
	"math"

	"github.com/rs/zerolog/log"
)

// resolveMap picks the configured colour map: an explicit function wins,
// otherwise the name is resolved with solid as the fallback colour.
func resolveMap(cm ColourMap, name string, solid Colour) ColourMap {
	if cm != nil {
		return cm
	}
	return MapByName(name, solid)
}

// Graph1DOpts configures a linear bar graph on a 1D device. Zero values take
// the documented defaults.
type Graph1DOpts struct {
	MinValue, MaxValue float64 // value range, default [0,255]
	MinIndex, MaxIndex int     // LED extent, default [0,7]
	Colour             Colour  // solid colour, default white
	ColourMapName      string  // "Solid" or "Rainbow"
	ColourMap          ColourMap
	AutoShow           bool // show the frame after every update
}

// Graph1D maps a scalar value onto a filled run of LEDs along the strip.
type Graph1D struct {
	minIndex, maxIndex int
	m, offset          float64
	cmap               ColourMap
	autoShow           bool
}

// NewGraph1D precomputes the value-to-index scale for a stick graph.
func NewGraph1D(o Graph1DOpts) *Graph1D {
	if o.MaxValue == 0 && o.MinValue == 0 {
		o.MaxValue = 255
	}
	if o.MaxIndex == 0 {
		o.MaxIndex = 7
	}
	if o.Colour == 0 {
		o.Colour = 0xFFFFFF
	}
	m := float64(o.MaxIndex-o.MinIndex) / (o.MaxValue - o.MinValue)
	return &Graph1D{
		minIndex: o.MinIndex,
		maxIndex: o.MaxIndex,
		m:        m,
		offset:   float64(o.MinIndex) - m*o.MinValue,
		cmap:     resolveMap(o.ColourMap, o.ColourMapName, o.Colour),
		autoShow: o.AutoShow,
	}
}

// UpdateGraph1D redraws the graph extent for the current value: LEDs up to
// the scaled index are written through the colour map, the rest of the extent
// is zeroed.
func (d *Device) UpdateGraph1D(g *Graph1D, value float64) error {
	i := int(g.m*value + g.offset)
	for idx := g.minIndex; idx <= i; idx++ {
		d.Set(idx, g.cmap(idx, g.minIndex, g.maxIndex))
	}
	start := i + 1
	if start < g.minIndex {
		start = g.minIndex
	}
	for idx := start; idx <= g.maxIndex; idx++ {
		d.Set(idx, 0)
	}
	if g.autoShow {
		return d.Show()
	}
	return nil
}

// Graph1DXYOpts configures a directional bar graph on a matrix.
type Graph1DXYOpts struct {
	OriginX, OriginY   int     // bar origin, default (0,7)
	Length             int     // bar extent in LEDs, default 8
	Direction          string  // "Up", "Down", "Left" or "Right"; default Up
	MinValue, MaxValue float64 // value range, default [0,255]
	Colour             Colour
	ColourMapName      string
	ColourMap          ColourMap
	AutoShow           bool
}

// Graph1DXY maps a scalar value onto a bar growing from an origin in one of
// the four axis directions.
type Graph1DXY struct {
	originX, originY int
	length           int
	vertical         bool
	inc              int
	minValue         float64
	m                float64
	cmap             ColourMap
	autoShow         bool
}

// NewGraph1DXY precomputes the scale and direction for a matrix bar graph.
// An unrecognized direction logs a diagnostic and falls back to Up.
func NewGraph1DXY(o Graph1DXYOpts) *Graph1DXY {
	if o.OriginY == 0 && o.OriginX == 0 && o.Length == 0 {
		o.OriginY = 7
	}
	if o.Length == 0 {
		o.Length = 8
	}
	if o.MaxValue == 0 && o.MinValue == 0 {
		o.MaxValue = 255
	}
	if o.Colour == 0 {
		o.Colour = 0xFFFFFF
	}

	g := &Graph1DXY{
		originX:  o.OriginX,
		originY:  o.OriginY,
		length:   o.Length,
		minValue: o.MinValue,
		m:        float64(o.Length) / (o.MaxValue - o.MinValue),
		cmap:     resolveMap(o.ColourMap, o.ColourMapName, o.Colour),
		autoShow: o.AutoShow,
	}
	switch o.Direction {
	case "Up", "":
		g.vertical, g.inc = true, -1 // y decreases towards the top
	case "Down":
		g.vertical, g.inc = true, 1
	case "Left":
		g.vertical, g.inc = false, -1
	case "Right":
		g.vertical, g.inc = false, 1
	default:
		log.Warn().Str("direction", o.Direction).Msg("invalid graph direction, defaulting to Up")
		g.vertical, g.inc = true, -1
	}
	return g
}

// UpdateGraph1DXY redraws the bar for the current value. Cells within the
// scaled fill count go through the colour map, the remainder of the bar is
// zeroed. Writes wrap like SetXY.
func (m *Matrix) UpdateGraph1DXY(g *Graph1DXY, value float64) error {
	filled := int(g.m * (value - g.minValue))
	n := 0
	if g.vertical {
		last := g.originY + g.inc*g.length - 1
		for idxY := g.originY; n < g.length; idxY += g.inc {
			if n < filled {
				m.SetXY(g.originX, idxY, g.cmap(idxY, g.originY, last))
			} else {
				m.SetXY(g.originX, idxY, 0)
			}
			n++
		}
	} else {
		last := g.originX + g.inc*g.length - 1
		for idxX := g.originX; n < g.length; idxX += g.inc {
			if n < filled {
				m.SetXY(idxX, g.originY, g.cmap(idxX, g.originX, last))
			} else {
				m.SetXY(idxX, g.originY, 0)
			}
			n++
		}
	}
	if g.autoShow {
		return m.Show()
	}
	return nil
}

// Graph2DOpts configures a rolling 2D graph region on a matrix.
type Graph2DOpts struct {
	MinValue, MaxValue float64 // value range, default [0,255]
	OriginX, OriginY   int     // lower-left corner of the region, default (0,7)
	Width, Height      int     // region extent, default 8x8
	Colour             Colour
	BgColour           Colour // background fill, default black
	ColourMapName      string
	ColourMap          ColourMap
	AutoShow           bool
	Bars               bool // draw filled bars instead of single dots
}

// Graph2D scrolls a rolling series of values across a rectangular region,
// newest value at the right edge.
type Graph2D struct {
	originX, originY int
	width, height    int
	bgColour         Colour
	m, offset        float64
	bars             bool
	cmap             ColourMap
	autoShow         bool
	data             []float64
}

// NewGraph2D precomputes the vertical scale for a rolling matrix graph.
func NewGraph2D(o Graph2DOpts) *Graph2D {
	if o.MaxValue == 0 && o.MinValue == 0 {
		o.MaxValue = 255
	}
	if o.Width == 0 {
		o.Width = 8
	}
	if o.Height == 0 {
		o.Height = 8
	}
	if o.OriginY == 0 && o.OriginX == 0 {
		o.OriginY = 7
	}
	if o.Colour == 0 {
		o.Colour = 0xFFFFFF
	}
	m := float64(1-o.Height) / (o.MaxValue - o.MinValue)
	return &Graph2D{
		originX:  o.OriginX,
		originY:  o.OriginY,
		width:    o.Width,
		height:   o.Height,
		bgColour: o.BgColour,
		m:        m,
		offset:   float64(o.OriginY) - m*o.MinValue,
		bars:     o.Bars,
		cmap:     resolveMap(o.ColourMap, o.ColourMapName, o.Colour),
		autoShow: o.AutoShow,
	}
}

// AddData pushes a new value onto the front of the rolling series, dropping
// the oldest once the region width is exceeded.
func (g *Graph2D) AddData(value float64) {
	g.data = append([]float64{value}, g.data...)
	if len(g.data) > g.width {
		g.data = g.data[:g.width]
	}
}

// UpdateGraph2D redraws the whole graph region: the background is refilled
// with the wrapping rectangle fill, then each series value is plotted from
// the right edge leftwards, as a bar or a single dot.
func (m *Matrix) UpdateGraph2D(g *Graph2D) error {
	x := g.originX + g.width - 1
	m.FillRect(g.originX, g.originY-g.height+1, g.originX+g.width-1, g.originY, g.bgColour)
	for _, value := range g.data {
		y := int(math.Round(g.m*value + g.offset))
		if g.bars {
			for idx := y; idx <= g.originY; idx++ {
				if x >= g.originX && x < g.originX+g.width && idx <= g.originY && idx > g.originY-g.height {
					m.Set(m.remap(x, idx), g.cmap(idx, g.originY, g.originY+g.height-1))
				}
			}
		} else if x >= g.originX && x < g.originX+g.width && y <= g.originY && y > g.originY-g.height {
			m.Set(m.remap(x, y), g.cmap(y-g.originY, g.originY, g.originY+g.height-1))
		}
		x--
	}
	if g.autoShow {
		return m.Show()
	}
	return nil
}
