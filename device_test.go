package glowbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbit-dev/glowbit"
	"github.com/glowbit-dev/glowbit/transport"
)

// testFPS is high enough that the rate limiter interval truncates to zero, so
// buffer tests are not slowed by frame pacing.
const testFPS = 100000

func newTestStick(t *testing.T, leds int) (*glowbit.Device, *transport.Sim) {
	t.Helper()
	sim := transport.NewSim()
	d, err := glowbit.NewStick(glowbit.StickOpts{
		LEDs:         leds,
		Transport:    sim,
		RateLimitFPS: testFPS,
	})
	require.NoError(t, err)
	return d, sim
}

func TestStickDefaults(t *testing.T) {
	d, sim := newTestStick(t, 0)
	assert.Equal(t, 8, d.LEDCount())
	assert.Equal(t, uint8(20), d.Brightness())
	assert.Equal(t, 8, sim.Count())
	// Construction blanks the display, so one dark frame has been pushed.
	assert.Equal(t, 1, sim.Frames())
	assert.Equal(t, make([]byte, 24), sim.LastFrame())
}

func TestSetGetFill(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.Set(3, 0x112233)
	assert.Equal(t, glowbit.Colour(0x112233), d.Get(3))
	assert.Equal(t, glowbit.Colour(0), d.Get(2))

	d.Fill(0x00FF00)
	for i := 0; i < 8; i++ {
		assert.Equal(t, glowbit.Colour(0x00FF00), d.Get(i))
	}

	d.Clear()
	for i := 0; i < 8; i++ {
		assert.Equal(t, glowbit.Colour(0), d.Get(i))
	}
}

func TestAddCarriesBetweenChannels(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.Set(0, 0x0000FF)
	// Raw integer addition: blue overflow carries into green.
	d.Add(0, 0x000001)
	assert.Equal(t, glowbit.Colour(0x000100), d.Get(0))

	d.Set(1, 0x101010)
	d.Add(1, 0x101010)
	assert.Equal(t, glowbit.Colour(0x202020), d.Get(1))
}

func TestFillSlice(t *testing.T) {
	d, _ := newTestStick(t, 8)
	d.FillSlice(2, 5, 0xFF0000)
	for i := 0; i < 8; i++ {
		want := glowbit.Colour(0)
		if i >= 2 && i <= 5 {
			want = 0xFF0000
		}
		assert.Equal(t, want, d.Get(i), "led %d", i)
	}

	// A negative end index selects the rest of the strip.
	d.Clear()
	d.FillSlice(4, -1, 0x0000FF)
	for i := 4; i < 8; i++ {
		assert.Equal(t, glowbit.Colour(0x0000FF), d.Get(i))
	}
	assert.Equal(t, glowbit.Colour(0), d.Get(3))
}

var brightnessCases = []struct {
	in     float64
	expect uint8
}{
	{0.5, 127},  // fraction of full scale
	{1.0, 255},  // full scale
	{0.078, 19}, // truncates, never rounds up
	{128, 128},  // raw 0-255 value
	{255, 255},
	{300, 255}, // clamped
}

func TestSetBrightness(t *testing.T) {
	d, _ := newTestStick(t, 8)
	for _, v := range brightnessCases {
		d.SetBrightness(v.in)
		assert.Equal(t, v.expect, d.Brightness(), "brightness %v", v.in)
	}
}

func TestFillNowPushesFrame(t *testing.T) {
	d, sim := newTestStick(t, 4)
	before := sim.Frames()
	require.NoError(t, d.FillNow(0xFFFFFF))
	assert.Equal(t, before+1, sim.Frames())
}

func TestRainbowDefaults(t *testing.T) {
	sim := transport.NewSim()
	r, err := glowbit.NewRainbow(glowbit.RainbowOpts{Transport: sim, RateLimitFPS: testFPS})
	require.NoError(t, err)
	assert.Equal(t, 13, r.LEDCount())
	assert.Equal(t, uint8(40), r.Brightness())
	// Construction draws the initial rainbow sweep.
	assert.Equal(t, glowbit.Wheel(0), r.Get(0))
	assert.Equal(t, glowbit.Wheel(17), r.Get(1))

	r.SetAngle(46, 0xFFFFFF) // 46 degrees lands on LED 3
	assert.Equal(t, glowbit.Colour(0xFFFFFF), r.Get(3))
}

func TestTriangleFill(t *testing.T) {
	sim := transport.NewSim()
	tri, err := glowbit.NewTriangle(glowbit.TriangleOpts{Triangles: 2, Transport: sim, RateLimitFPS: testFPS})
	require.NoError(t, err)
	assert.Equal(t, 12, tri.LEDCount())

	tri.FillTri(1, 0x00FF00)
	for i := 0; i < 6; i++ {
		assert.Equal(t, glowbit.Colour(0), tri.Get(i))
	}
	for i := 6; i < 12; i++ {
		assert.Equal(t, glowbit.Colour(0x00FF00), tri.Get(i))
	}
}
