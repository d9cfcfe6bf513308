//go:build !tinygo

package transport

import (
	"github.com/rs/zerolog/log"
)

// Detect initializes the periph host and opens the named SPI port. When no
// SPI port is available the console emulator is returned instead, so code
// written against real hardware still runs at a desk.
func Detect(spiDev string, order Order) Sink {
	if err := InitHost(); err != nil {
		log.Warn().Err(err).Msg("periph host init failed, using console output")
		return NewConsole(order)
	}
	nrz, err := OpenNRZ(spiDev)
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port, using console output")
		return NewConsole(order)
	}
	log.Info().Str("port", spiDev).Msg("driving LEDs over SPI")
	return nrz
}
