package glowbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowbit-dev/glowbit"
)

func TestPulseTraversesStrip(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{})
	assert.Equal(t, 1, d.Pulses())

	// Default speed moves one LED per update, starting at index 0.
	for i := 0; i < 8; i++ {
		d.UpdatePulses()
		assert.Equal(t, glowbit.Colour(0xFFFFFF), d.Get(i), "head at led %d", i)
		for j := 0; j < 8; j++ {
			if j != i {
				assert.Equal(t, glowbit.Colour(0), d.Get(j), "led %d while head at %d", j, i)
			}
		}
	}
}

func TestPulseRemovedAfterExit(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{})
	for i := 0; i < 16; i++ {
		d.UpdatePulses()
	}
	assert.Equal(t, 0, d.Pulses())
	for i := 0; i < 8; i++ {
		assert.Equal(t, glowbit.Colour(0), d.Get(i))
	}
}

func TestPulseLeftward(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{Speed: -100, Index: 7, Colours: []glowbit.Colour{0xFF0000}})

	d.UpdatePulses()
	assert.Equal(t, glowbit.Colour(0xFF0000), d.Get(7))

	d.UpdatePulses()
	assert.Equal(t, glowbit.Colour(0xFF0000), d.Get(6))
	assert.Equal(t, glowbit.Colour(0), d.Get(7))

	for i := 0; i < 16; i++ {
		d.UpdatePulses()
	}
	assert.Equal(t, 0, d.Pulses())
}

func TestPulseColourTrain(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{
		Index:   3,
		Colours: []glowbit.Colour{0xFF0000, 0x00FF00, 0x0000FF},
	})
	d.UpdatePulses()
	// Head at the pulse index, tail trailing behind it.
	assert.Equal(t, glowbit.Colour(0xFF0000), d.Get(3))
	assert.Equal(t, glowbit.Colour(0x00FF00), d.Get(2))
	assert.Equal(t, glowbit.Colour(0x0000FF), d.Get(1))
	assert.Equal(t, glowbit.Colour(0), d.Get(0))
	assert.Equal(t, glowbit.Colour(0), d.Get(4))
}

func TestPulseColourMapSentinel(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{
		Index:         2,
		ColourMapName: "Rainbow",
		Colours:       []glowbit.Colour{glowbit.UseColourMap},
	})
	d.UpdatePulses()
	assert.Equal(t, glowbit.RainbowMap(2, 0, 8), d.Get(2))
}

func TestPulseSentinelWithoutMapIsDark(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{Colours: []glowbit.Colour{glowbit.UseColourMap}})
	d.UpdatePulses()
	for i := 0; i < 8; i++ {
		assert.Equal(t, glowbit.Colour(0), d.Get(i))
	}
}

func TestPulsesOverlapAdditively(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{Index: 4, Colours: []glowbit.Colour{0x100000}})
	d.AddPulse(glowbit.PulseOpts{Index: 4, Colours: []glowbit.Colour{0x001000}})
	d.UpdatePulses()
	assert.Equal(t, glowbit.Colour(0x101000), d.Get(4))
}

func TestSlowPulseHalfSpeed(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.AddPulse(glowbit.PulseOpts{Speed: 50})

	// Drawing happens before the position advances, so the head needs three
	// updates to reach led 1 at half speed.
	d.UpdatePulses()
	assert.Equal(t, glowbit.Colour(0xFFFFFF), d.Get(0))
	d.UpdatePulses()
	assert.Equal(t, glowbit.Colour(0xFFFFFF), d.Get(0))
	d.UpdatePulses()
	assert.Equal(t, glowbit.Colour(0xFFFFFF), d.Get(1))
	assert.Equal(t, glowbit.Colour(0), d.Get(0))
}
