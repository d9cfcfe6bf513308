// Package transport provides frame sinks for GlowBit devices: WS2812 strips
// over SPI via periph.io, an ANSI console emulator for desk work, and an
// in-memory recorder for tests. Every sink satisfies glowbit.Transport.
package transport

import "sync"

// Sink is the frame consumer contract, structurally identical to
// glowbit.Transport so any sink plugs straight into a device constructor.
type Sink interface {
	Begin(count int) error
	PushFrame(frame []byte) error
	Close() error
}

// Order describes the per-pixel channel layout of the frames a sink
// receives. GlowBit hardware ships GRB strips.
type Order struct {
	R, G, B int
}

// OrderByName resolves a channel-order string such as "GRB". Unknown names
// report ok=false.
func OrderByName(name string) (Order, bool) {
	o, ok := orders[name]
	return o, ok
}

var orders = map[string]Order{
	"RGB": {0, 1, 2},
	"GRB": {1, 0, 2},
	"BRG": {1, 2, 0},
	"BGR": {2, 1, 0},
	"GBR": {2, 0, 1},
	"RBG": {0, 2, 1},
}

// Sim records pushed frames in memory. Safe for concurrent use.
type Sim struct {
	mu     sync.Mutex
	count  int
	frames int
	last   []byte
}

// NewSim returns an idle recorder.
func NewSim() *Sim { return &Sim{} }

func (s *Sim) Begin(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = count
	return nil
}

func (s *Sim) PushFrame(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames++
	s.last = append(s.last[:0], frame...)
	return nil
}

func (s *Sim) Close() error { return nil }

// Frames reports how many frames have been pushed.
func (s *Sim) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// LastFrame returns a copy of the most recent frame, or nil before the first
// push.
func (s *Sim) LastFrame() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil
	}
	out := make([]byte, len(s.last))
	copy(out, s.last)
	return out
}

// Count reports the LED count announced through Begin.
func (s *Sim) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
