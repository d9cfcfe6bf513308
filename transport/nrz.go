//go:build !tinygo

package transport

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// WS2812 data line runs at 800kHz; nrzled expands each bit to three SPI
// bits, plus headroom for the reset latch.
const nrzFreq = 2500 * physic.KiloHertz

// NRZ drives a WS2812 chain through a SPI port using the NRZ bit encoding.
// The device is created lazily in Begin once the LED count is known.
type NRZ struct {
	port spi.PortCloser
	dev  *nrzled.Dev
}

// OpenNRZ opens the named SPI port ("" picks the first registered one) and
// wraps it in an NRZ sink. host.Init must have been called.
func OpenNRZ(name string) (*NRZ, error) {
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", name, err)
	}
	return &NRZ{port: port}, nil
}

// NewNRZWithPort wraps an already open port, e.g. a spitest record port.
func NewNRZWithPort(port spi.PortCloser) *NRZ {
	return &NRZ{port: port}
}

func (t *NRZ) Begin(count int) error {
	dev, err := nrzled.NewSPI(t.port, &nrzled.Opts{
		NumPixels: count,
		Channels:  3,
		Freq:      nrzFreq,
	})
	if err != nil {
		return fmt.Errorf("nrzled: %w", err)
	}
	if err := dev.Halt(); err != nil {
		return fmt.Errorf("nrzled halt: %w", err)
	}
	t.dev = dev
	return nil
}

func (t *NRZ) PushFrame(frame []byte) error {
	if t.dev == nil {
		return fmt.Errorf("nrz transport: PushFrame before Begin")
	}
	if _, err := t.dev.Write(frame); err != nil {
		return fmt.Errorf("nrzled write: %w", err)
	}
	return nil
}

func (t *NRZ) Close() error {
	if t.dev != nil {
		if err := t.dev.Halt(); err != nil {
			return err
		}
	}
	return t.port.Close()
}

// InitHost initializes the periph host drivers. It is safe to call more than
// once.
func InitHost() error {
	_, err := host.Init()
	return err
}
