// Package glowbit drives GlowBit addressable RGB LED displays: sticks,
// rainbows, triangles and tiled 4x4/8x8 matrices. Drawing calls mutate an
// in-memory colour buffer only; a frame becomes visible when Show pushes the
// brightness-scaled, wire-ordered buffer through the configured Transport.
package glowbit

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrHardware marks a transport fault reported while pushing a frame. Flushes
// are never retried; timing-sensitive bit streams cannot resume safely after
// a partial transmission.
var ErrHardware = errors.New("glowbit: hardware transport fault")

// Transport is the LED output capability. Implementations live in the
// transport package (SPI NRZ bit stream, console renderer, simulator, and a
// WS2812 bit-bang backend on bare-metal builds); callers may supply their own.
//
// PushFrame receives 3*count bytes already scaled and reordered to the wire
// order the backend was configured for.
type Transport interface {
	Begin(count int) error
	PushFrame(frame []byte) error
	Close() error
}

// discardTransport is the default sink when no transport is injected. It keeps
// the library usable headless; hardware callers wire transport.Detect instead.
type discardTransport struct{}

func (discardTransport) Begin(count int) error        { return nil }
func (discardTransport) PushFrame(frame []byte) error { return nil }
func (discardTransport) Close() error                 { return nil }

const defaultBrightness = 20

// StickOpts configures a 1D GlowBit stick.
type StickOpts struct {
	LEDs         int     // LED count, default 8
	Transport    Transport
	Brightness   float64 // <=1.0 is a fraction of full scale, >1.0 a raw 0-255 value; 0 selects the default
	RateLimitFPS int     // <=0 falls back to 30
	ColorOrder   string  // wire channel order, default GRB
}

// NewStick builds a 1D stick device.
func NewStick(o StickOpts) (*Device, error) {
	if o.LEDs <= 0 {
		o.LEDs = 8
	}
	return newDevice(o.LEDs, o.Transport, o.Brightness, o.RateLimitFPS, 30, o.ColorOrder)
}

// RainbowOpts configures a GlowBit rainbow arc.
type RainbowOpts struct {
	LEDs         int // default 13
	Transport    Transport
	Brightness   float64
	RateLimitFPS int // <=0 falls back to 60
	ColorOrder   string
}

// Rainbow is a 13-LED arc addressed either linearly or by angle.
type Rainbow struct {
	*Device
}

// NewRainbow builds a rainbow arc and draws an initial red-to-purple sweep.
func NewRainbow(o RainbowOpts) (*Rainbow, error) {
	if o.LEDs <= 0 {
		o.LEDs = 13
	}
	if o.Brightness == 0 {
		o.Brightness = 40
	}
	d, err := newDevice(o.LEDs, o.Transport, o.Brightness, o.RateLimitFPS, 60, o.ColorOrder)
	if err != nil {
		return nil, err
	}
	r := &Rainbow{Device: d}
	if err := r.DrawRainbow(0); err != nil {
		return nil, err
	}
	return r, nil
}

// SetAngle lights the LED closest to the given angle in degrees, where 0 is
// the left-most LED and each LED spans 15 degrees.
func (r *Rainbow) SetAngle(angle int, c Colour) {
	r.Set(angle/15, c)
}

// DrawRainbow paints the full arc with the colour wheel, offset rotating the
// phase, and shows the frame.
func (r *Rainbow) DrawRainbow(offset int) error {
	phase := offset
	for i := 0; i < r.LEDCount(); i++ {
		r.Set(i, Wheel(phase%255))
		phase += 17 // red to purple across 13 LEDs
	}
	return r.Show()
}

// TriangleOpts configures a chain of GlowBit triangle modules.
type TriangleOpts struct {
	Triangles    int // module count, default 1
	LEDsPerTri   int // default 6
	Transport    Transport
	Brightness   float64
	RateLimitFPS int // <=0 falls back to 100
	ColorOrder   string
}

// Triangle is a chain of triangle modules sharing one buffer.
type Triangle struct {
	*Device
	ledsPerTri int
}

// NewTriangle builds a triangle chain.
func NewTriangle(o TriangleOpts) (*Triangle, error) {
	if o.Triangles <= 0 {
		o.Triangles = 1
	}
	if o.LEDsPerTri <= 0 {
		o.LEDsPerTri = 6
	}
	d, err := newDevice(o.Triangles*o.LEDsPerTri, o.Transport, o.Brightness, o.RateLimitFPS, 100, o.ColorOrder)
	if err != nil {
		return nil, err
	}
	return &Triangle{Device: d, ledsPerTri: o.LEDsPerTri}, nil
}

// FillTri sets every LED of the tri'th module in the buffer.
func (t *Triangle) FillTri(tri int, c Colour) {
	base := t.ledsPerTri * tri
	for i := base; i < base+t.ledsPerTri; i++ {
		t.Set(i, c)
	}
}

// newDevice allocates the buffer, binds the transport and blanks the display.
func newDevice(count int, tr Transport, brightness float64, fps, fallbackFPS int, order string) (*Device, error) {
	if tr == nil {
		log.Debug().Int("leds", count).Msg("no transport configured, frames will be discarded")
		tr = discardTransport{}
	}
	if err := tr.Begin(count); err != nil {
		return nil, fmt.Errorf("glowbit: transport begin: %w", err)
	}
	d := &Device{
		buf:   make([]Colour, count),
		frame: make([]byte, count*3),
		tr:    tr,
		clock: newFrameClock(fps, fallbackFPS, monotonicMillis),
	}
	d.setOrder(order)
	if brightness == 0 {
		brightness = defaultBrightness
	}
	d.SetBrightness(brightness)
	if err := d.Blank(); err != nil {
		return nil, err
	}
	return d, nil
}
