package transport_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/glowbit-dev/glowbit/transport"
)

func TestSimRecordsFrames(t *testing.T) {
	sim := transport.NewSim()
	require.NoError(t, sim.Begin(4))
	assert.Equal(t, 4, sim.Count())
	assert.Equal(t, 0, sim.Frames())
	assert.Nil(t, sim.LastFrame())

	require.NoError(t, sim.PushFrame([]byte{1, 2, 3}))
	require.NoError(t, sim.PushFrame([]byte{4, 5, 6}))
	assert.Equal(t, 2, sim.Frames())
	assert.Equal(t, []byte{4, 5, 6}, sim.LastFrame())

	// LastFrame is a copy, not a view of the live buffer.
	f := sim.LastFrame()
	f[0] = 0xEE
	assert.Equal(t, []byte{4, 5, 6}, sim.LastFrame())

	require.NoError(t, sim.Close())
}

var orderCases = []struct {
	name   string
	expect transport.Order
	ok     bool
}{
	{"RGB", transport.Order{R: 0, G: 1, B: 2}, true},
	{"GRB", transport.Order{R: 1, G: 0, B: 2}, true},
	{"BGR", transport.Order{R: 2, G: 1, B: 0}, true},
	{"XYZ", transport.Order{}, false},
	{"", transport.Order{}, false},
}

func TestOrderByName(t *testing.T) {
	for _, v := range orderCases {
		t.Run(v.name, func(t *testing.T) {
			o, ok := transport.OrderByName(v.name)
			assert.Equal(t, v.ok, ok)
			if v.ok {
				assert.Equal(t, v.expect, o)
			}
		})
	}
}

func TestNRZEncodesFrame(t *testing.T) {
	buf := bytes.Buffer{}
	nrz := transport.NewNRZWithPort(spitest.NewRecordRaw(&buf))
	require.NoError(t, nrz.Begin(2))

	require.NoError(t, nrz.PushFrame([]byte{0xFF, 0x00, 0x80, 0x00, 0x00, 0x00}))
	// Each colour bit expands to three SPI bits, so the raw stream is longer
	// than the frame itself.
	assert.Greater(t, buf.Len(), 6)

	require.NoError(t, nrz.Close())
}

func TestNRZPushBeforeBegin(t *testing.T) {
	buf := bytes.Buffer{}
	nrz := transport.NewNRZWithPort(spitest.NewRecordRaw(&buf))
	assert.Error(t, nrz.PushFrame([]byte{0, 0, 0}))
}
