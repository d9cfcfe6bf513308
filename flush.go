package glowbit

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// wireOrder gives each channel's byte position within a 3-byte wire pixel.
type wireOrder struct {
	r, g, b int
}

// The bit-stream backends clock out GRB; the strip-library and console
// backends take RGB. The remaining permutations cover less common strips.
var wireOrders = map[string]wireOrder{
	"GRB": {r: 1, g: 0, b: 2},
	"RGB": {r: 0, g: 1, b: 2},
	"BRG": {r: 1, g: 2, b: 0},
	"BGR": {r: 2, g: 1, b: 0},
	"GBR": {r: 2, g: 0, b: 1},
	"RBG": {r: 0, g: 2, b: 1},
}

const defaultOrder = "GRB"

func (d *Device) setOrder(name string) {
	if name == "" {
		name = defaultOrder
	}
	o, ok := wireOrders[name]
	if !ok {
		log.Warn().Str("order", name).Msg("unknown colour order, defaulting to GRB")
		o = wireOrders[defaultOrder]
	}
	d.order = o
}

// Show pushes the buffer to the physical LEDs: it waits out the frame rate
// limit, scales every channel by brightness/255 with integer truncation,
// reorders channels to the transport's wire order and hands the frame to the
// transport. The buffer keeps its unscaled contents.
//
// A transport fault is returned wrapped in ErrHardware and is never retried.
func (d *Device) Show() error {
	d.clock.await()
	br := uint32(d.brightness)
	for i, c := range d.buf {
		base := i * 3
		d.frame[base+d.order.r] = uint8(uint32(c.R()) * br / 255)
		d.frame[base+d.order.g] = uint8(uint32(c.G()) * br / 255)
		d.frame[base+d.order.b] = uint8(uint32(c.B()) * br / 255)
	}
	if err := d.tr.PushFrame(d.frame); err != nil {
		return fmt.Errorf("%w: %v", ErrHardware, err)
	}
	return nil
}

// Close releases the transport.
func (d *Device) Close() error {
	return d.tr.Close()
}
