package demo

import (
	"context"
	"math/rand"

	"github.com/glowbit-dev/glowbit"
)

// Line sweeps a white diagonal across the matrix, pivoting about the centre.
func Line(ctx context.Context, m *glowbit.Matrix, iters int) error {
	if err := m.Blank(); err != nil {
		return err
	}
	w, h := m.Width(), m.Height()
	for ; iters > 0 && !done(ctx); iters-- {
		for x := 0; x < w; x++ {
			m.Fill(0)
			m.DrawLine(x, 0, w-x-1, h-1, glowbit.RGB(255, 255, 255))
			if err := m.Show(); err != nil {
				return err
			}
		}
		for x := w - 2; x > 0; x-- {
			m.Fill(0)
			m.DrawLine(x, 0, w-x-1, h-1, glowbit.RGB(255, 255, 255))
			if err := m.Show(); err != nil {
				return err
			}
		}
	}
	return m.Blank()
}

// Fireworks bursts expanding circles of a random colour from random centres,
// then erases them outwards again.
func Fireworks(ctx context.Context, m *glowbit.Matrix, iters int) error {
	if err := m.Blank(); err != nil {
		return err
	}
	w, h := m.Width(), m.Height()
	for ; iters > 0 && !done(ctx); iters-- {
		m.Fill(0)
		colour := randColour()
		cx := rand.Intn(w)
		cy := rand.Intn(h)
		for r := 0; r < w/2; r++ {
			m.DrawCircle(cx, cy, r, colour)
			if err := m.Show(); err != nil {
				return err
			}
		}
		for r := 0; r < w/2; r++ {
			m.DrawCircle(cx, cy, r, 0)
			if err := m.Show(); err != nil {
				return err
			}
		}
	}
	return nil
}

// CircularRainbow ripples the colour wheel out from the matrix centre. The
// radius uses a one-step Newton square root estimate, which is plenty at
// display resolution.
func CircularRainbow(ctx context.Context, m *glowbit.Matrix) error {
	if err := m.Blank(); err != nil {
		return err
	}
	maxX, maxY := m.Width(), m.Height()
	for offset := 0; offset < 255 && !done(ctx); offset++ {
		for x := 0; x < maxX; x++ {
			for y := 0; y < maxY; y++ {
				dx := x - (maxX-1)/2
				dy := y - (maxY-1)/2
				r2 := dx*dx + dy*dy
				r := 5
				r = (r + r2/r) / 2
				m.SetXY(x, y, glowbit.Wheel((r*300)/maxX-offset*10))
			}
		}
		if err := m.Show(); err != nil {
			return err
		}
	}
	return nil
}

type raindrop struct {
	x     int
	speed int
	y     int // tenths of a pixel
}

// Rain streams green-trailed raindrops down the matrix. density scales how
// many drops are kept in flight.
func Rain(ctx context.Context, m *glowbit.Matrix, iters, density int) error {
	if err := m.Blank(); err != nil {
		return err
	}
	if density <= 0 {
		density = 1
	}
	w, h := m.Width(), m.Height()
	trail := []glowbit.Colour{
		glowbit.RGB(200, 255, 200),
		glowbit.RGB(0, 127, 0),
		glowbit.RGB(0, 64, 0),
		glowbit.RGB(0, 32, 0),
		glowbit.RGB(0, 16, 0),
		0, 0, 0,
	}
	spawn := func() *raindrop {
		return &raindrop{x: rand.Intn(w + 1), speed: 2 + rand.Intn(w-1)}
	}
	drops := []*raindrop{spawn()}
	for len(drops) > 0 && !done(ctx) {
		for len(drops)/density < m.LEDCount()/16 && iters > 0 {
			drops = append(drops, spawn())
		}
		for _, d := range drops {
			d.y += d.speed
			y := d.y / 10
			for i, c := range trail {
				m.SetXYClip(d.x, y-i, c)
			}
		}
		live := drops[:0]
		for _, d := range drops {
			if d.y/10 > h+6 {
				continue
			}
			live = append(live, d)
		}
		drops = live
		iters--
		if err := m.Show(); err != nil {
			return err
		}
	}
	return nil
}

// Text scrolls a message across the matrix once.
func Text(ctx context.Context, m *glowbit.Matrix, text string) error {
	if err := m.Blank(); err != nil {
		return err
	}
	m.AddTextScroll(text, glowbit.TextScrollOpts{})
	for m.Scrolling() && !done(ctx) {
		if err := m.UpdateTextScroll(); err != nil {
			return err
		}
		if err := m.Show(); err != nil {
			return err
		}
	}
	return nil
}

// Bounce ricochets a single wheel-coloured pixel off the matrix edges.
func Bounce(ctx context.Context, m *glowbit.Matrix, iters int) error {
	w, h := m.Width(), m.Height()
	px := rand.Intn(w)
	py := rand.Intn(h)
	dirX, dirY := 1, 1
	for ; iters > 0 && !done(ctx); iters-- {
		m.SetXY(px, py, 0)
		px += dirX
		py += dirY
		m.SetXY(px, py, glowbit.Wheel(iters%255))
		if px == 0 || px == w-1 {
			dirX *= -1
		}
		if py == 0 || py == h-1 {
			dirY *= -1
		}
		if err := m.Show(); err != nil {
			return err
		}
	}
	return nil
}

// Matrix runs the full matrix showcase, in the classic order.
func Matrix(ctx context.Context, m *glowbit.Matrix) error {
	if err := Text(ctx, m, "GlowBit"); err != nil {
		return err
	}
	if err := Line(ctx, m, 2); err != nil {
		return err
	}
	if err := Fireworks(ctx, m, 5); err != nil {
		return err
	}
	if err := CircularRainbow(ctx, m); err != nil {
		return err
	}
	return Rain(ctx, m, 200, 1)
}
