package glowbit

import "math/rand"

// Device owns the flat pixel buffer for one LED chain: one Colour per
// physical LED in wire order. Buffer mutation never touches the transport;
// Show performs the only hardware I/O.
//
// A Device is single-owner state. Concurrent mutation from multiple
// goroutines is the caller's responsibility to serialize.
type Device struct {
	buf        []Colour
	frame      []byte // flush scratch, 3 bytes per LED in wire order
	brightness uint8
	order      wireOrder
	tr         Transport
	clock      frameClock
	pulses     []*Pulse
}

// LEDCount reports the fixed buffer length.
func (d *Device) LEDCount() int { return len(d.buf) }

// Set writes the i'th LED. The index is not bounds checked: out-of-range
// writes panic. This is the unchecked fast path; 2D callers wanting safety
// use the clipped matrix setters.
func (d *Device) Set(i int, c Colour) {
	d.buf[i] = c
}

// SetNow writes the i'th LED and immediately shows the frame.
func (d *Device) SetNow(i int, c Colour) error {
	d.buf[i] = c
	return d.Show()
}

// Add sums c onto the i'th LED as a raw integer. Sums above 255 in any
// channel carry into the neighbouring channel's bits; callers must keep
// channel sums in range. The index is not bounds checked.
func (d *Device) Add(i int, c Colour) {
	d.buf[i] += c
}

// Fill overwrites every LED in the buffer.
func (d *Device) Fill(c Colour) {
	for i := range d.buf {
		d.buf[i] = c
	}
}

// FillNow overwrites every LED and shows the frame.
func (d *Device) FillNow(c Colour) error {
	d.Fill(c)
	return d.Show()
}

// Clear zeroes the buffer without touching the hardware.
func (d *Device) Clear() {
	d.Fill(0)
}

// Blank zeroes the buffer and shows the (dark) frame.
func (d *Device) Blank() error {
	d.Clear()
	return d.Show()
}

// Get reads the i'th LED. Not bounds checked.
func (d *Device) Get(i int) Colour {
	return d.buf[i]
}

// FillSlice sets the inclusive index range [i,j]. j < 0 selects the end of
// the strip.
func (d *Device) FillSlice(i, j int, c Colour) {
	if j < 0 {
		j = len(d.buf) - 1
	}
	for k := i; k <= j; k++ {
		d.buf[k] = c
	}
}

// SetBrightness sets the global brightness applied at flush time. Values at
// or below 1.0 are a fraction of full scale; larger values are taken as a raw
// 0-255 level. The buffer itself always stores unscaled colour.
func (d *Device) SetBrightness(b float64) {
	if b <= 1.0 {
		d.brightness = uint8(b * 255)
		return
	}
	if b > 255 {
		b = 255
	}
	d.brightness = uint8(b)
}

// Brightness reports the current 0-255 flush brightness.
func (d *Device) Brightness() uint8 { return d.brightness }

// SetRateLimitFPS retargets the frame clock.
func (d *Device) SetRateLimitFPS(fps int) {
	d.clock.setFPS(fps)
}

// Chaos draws iters frames of random colours and then blanks the display.
// It blocks for the whole animation.
func (d *Device) Chaos(iters int) error {
	for ; iters > 0; iters-- {
		for i := range d.buf {
			d.buf[i] = Colour(rand.Intn(0x1000000))
		}
		if err := d.Show(); err != nil {
			return err
		}
	}
	return d.Blank()
}
