//go:build !tinygo

package transport

import (
	"fmt"

	"periph.io/x/extra/devices/screen"
)

// Console renders frames as a row of ANSI coloured blocks on stdout. Frames
// arrive in the device's wire order, so the console decodes them back to RGB
// before handing them to the screen emulator.
type Console struct {
	order Order
	dev   *screen.Dev
	rgb   []byte
}

// NewConsole returns a console sink decoding the given channel order.
func NewConsole(order Order) *Console {
	return &Console{order: order}
}

func (t *Console) Begin(count int) error {
	t.dev = screen.New(count)
	t.rgb = make([]byte, 3*count)
	return nil
}

func (t *Console) PushFrame(frame []byte) error {
	if t.dev == nil {
		return fmt.Errorf("console transport: PushFrame before Begin")
	}
	if len(frame) != len(t.rgb) {
		return fmt.Errorf("console transport: frame length %d, want %d", len(frame), len(t.rgb))
	}
	for i := 0; i < len(frame); i += 3 {
		t.rgb[i] = frame[i+t.order.R]
		t.rgb[i+1] = frame[i+t.order.G]
		t.rgb[i+2] = frame[i+t.order.B]
	}
	if _, err := t.dev.Write(t.rgb); err != nil {
		return err
	}
	return nil
}

func (t *Console) Close() error {
	if t.dev == nil {
		return nil
	}
	return t.dev.Halt()
}
