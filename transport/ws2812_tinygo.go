//go:build tinygo

package transport

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// WS2812 bit-bangs a strip from a GPIO pin on microcontroller builds. Frames
// arrive already in wire order, so they go out raw.
type WS2812 struct {
	pin machine.Pin
	dev ws2812.Device
}

// NewWS2812 returns a sink driving the strip attached to pin.
func NewWS2812(pin machine.Pin) *WS2812 {
	return &WS2812{pin: pin}
}

func (t *WS2812) Begin(count int) error {
	t.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	t.dev = ws2812.New(t.pin)
	return nil
}

func (t *WS2812) PushFrame(frame []byte) error {
	_, err := t.dev.Write(frame)
	return err
}

func (t *WS2812) Close() error { return nil }
