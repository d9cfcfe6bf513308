package glowbit

import "github.com/rs/zerolog/log"

// Colour is a packed 32-bit GlowBit colour value: 0x00RRGGBB. Each channel is
// 8 bits and the most significant byte is reserved and kept zero for any
// colour produced by this package.
type Colour uint32

const (
	redOffset   = 16
	greenOffset = 8
	blueOffset  = 0
)

// RGB packs three 8-bit channels into a Colour. Inputs are assumed to already
// be in [0,255]; no validation is performed.
func RGB(r, g, b uint8) Colour {
	return Colour(uint32(r)<<redOffset | uint32(g)<<greenOffset | uint32(b)<<blueOffset)
}

func channel(c Colour, off uint) uint8 {
	return uint8((uint32(c) >> off) & 0xFF)
}

// R returns the red channel.
func (c Colour) R() uint8 { return channel(c, redOffset) }

// G returns the green channel.
func (c Colour) G() uint8 { return channel(c, greenOffset) }

// B returns the blue channel.
func (c Colour) B() uint8 { return channel(c, blueOffset) }

// RGB unpacks the three channels of a Colour.
func (c Colour) RGB() (r, g, b uint8) {
	return c.R(), c.G(), c.B()
}

// Wheel maps a colour wheel position to a pure hue. pos is taken modulo 255;
// 0 and 255 both map to pure red, with a smooth red-green-blue-red transition
// in between. The three linear segments break at 85 and 170.
func Wheel(pos int) Colour {
	pos %= 255
	if pos < 0 {
		pos += 255
	}
	if pos < 85 {
		return Colour(uint32(255-pos*3)<<redOffset | uint32(pos*3)<<greenOffset)
	}
	if pos < 170 {
		pos -= 85
		return Colour(uint32(255-pos*3)<<greenOffset | uint32(pos*3))
	}
	pos -= 170
	return Colour(uint32(pos*3)<<redOffset | uint32(255-pos*3))
}

// ColourMap produces a colour for a cell of a graph or pulse. index is the
// cell being coloured, minIndex and maxIndex the extent it is mapped over.
// Custom maps must be total over [minIndex, maxIndex].
type ColourMap func(index, minIndex, maxIndex int) Colour

// SolidMap returns a ColourMap which ignores its arguments and always yields c.
func SolidMap(c Colour) ColourMap {
	return func(index, minIndex, maxIndex int) Colour {
		return c
	}
}

// RainbowMap spreads the full colour wheel between minIndex and maxIndex.
func RainbowMap(index, minIndex, maxIndex int) Colour {
	if maxIndex == minIndex {
		return Wheel(0)
	}
	return Wheel((index - minIndex) * 255 / (maxIndex - minIndex))
}

// MapByName resolves a colour map by its configuration name. Unknown names
// log a diagnostic and fall back to a solid map of the supplied colour.
func MapByName(name string, solid Colour) ColourMap {
	switch name {
	case "Solid", "":
		return SolidMap(solid)
	case "Rainbow":
		return RainbowMap
	default:
		log.Warn().Str("colourMap", name).Msg("unknown colour map, defaulting to Solid")
		return SolidMap(solid)
	}
}
