package glowbit

// UseColourMap is a sentinel train slot colour: when a pulse carries it, the
// slot is resolved through the pulse's colour map at draw time (or drawn dark
// when no map is set). Real colours keep the reserved top byte zero, so the
// sentinel can never collide with one.
const UseColourMap Colour = 0xFF000000

// PulseOpts configures one pulse travelling along a 1D device.
type PulseOpts struct {
	Speed         int      // position change per update in hundredths of an LED; default 100
	Colours       []Colour // colour train, head first; default a single white LED
	Index         int      // starting LED index
	ColourMapName string
	ColourMap     ColourMap
}

// Pulse is a moving train of colours. Pulses only hold their own kinematics;
// they write into the owning device's buffer during UpdatePulses.
type Pulse struct {
	speed    int
	colours  []Colour
	cmap     ColourMap
	position int // hundredths of an LED
	index    int
}

func (p *Pulse) update() {
	p.position += p.speed
	p.index = floorDiv(p.position, 100)
}

// floorDiv divides rounding towards negative infinity, so leftward pulses
// step through negative indices the same way rightward ones do.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// AddPulse starts a new pulse on the device.
func (d *Device) AddPulse(o PulseOpts) {
	if o.Speed == 0 {
		o.Speed = 100
	}
	if len(o.Colours) == 0 {
		o.Colours = []Colour{0xFFFFFF}
	}
	var cmap ColourMap
	if o.ColourMap != nil || o.ColourMapName != "" {
		cmap = resolveMap(o.ColourMap, o.ColourMapName, o.Colours[0])
	}
	d.pulses = append(d.pulses, &Pulse{
		speed:    o.Speed,
		colours:  o.Colours,
		cmap:     cmap,
		position: o.Index * 100,
		index:    o.Index,
	})
}

// Pulses reports the number of live pulses.
func (d *Device) Pulses() int { return len(d.pulses) }

// UpdatePulses advances one animation frame: the buffer is cleared, every
// pulse's colour train is added at its current position, positions advance,
// and pulses that have fully left the strip are removed after the pass.
func (d *Device) UpdatePulses() {
	d.Fill(0)
	n := len(d.buf)
	for _, p := range d.pulses {
		i := p.index
		for _, c := range p.colours {
			if c == UseColourMap {
				if p.cmap != nil {
					c = p.cmap(i, 0, n)
				} else {
					c = 0
				}
			}
			if i >= 0 && i < n {
				d.Add(i, c)
			}
			i--
		}
		p.update()
	}

	live := d.pulses[:0]
	for _, p := range d.pulses {
		if p.index-len(p.colours) >= n || p.index+len(p.colours) < 0 {
			continue
		}
		live = append(live, p)
	}
	d.pulses = live
}
