// Package demo holds the stock GlowBit animations. Each demo checks its
// context between frames, so a host can cancel mid-animation; every frame is
// a discrete flush.
package demo

import (
	"context"
	"math/rand"

	"github.com/glowbit-dev/glowbit"
)

func done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Pulses bounces colour trains along a stick: a white pulse left to right,
// then a rainbow-flanked pulse right to left.
func Pulses(ctx context.Context, d *glowbit.Device, iters int) error {
	n := d.LEDCount()
	for i := iters; i > 0 && !done(ctx); i-- {
		if i%(n+4) == 0 {
			if i%(2*(n+4)) == 0 {
				d.AddPulse(glowbit.PulseOpts{})
			} else {
				d.AddPulse(glowbit.PulseOpts{
					Speed:         -100,
					Index:         n,
					ColourMapName: "Rainbow",
					Colours:       []glowbit.Colour{glowbit.UseColourMap, 0xFFFFFF, glowbit.UseColourMap},
				})
			}
		}
		d.UpdatePulses()
		if err := d.Show(); err != nil {
			return err
		}
	}
	return nil
}

// Graph sweeps a value up and down two bar graphs, one rainbow and one solid.
func Graph(ctx context.Context, d *glowbit.Device, iters int) error {
	g1 := glowbit.NewGraph1D(glowbit.Graph1DOpts{MinValue: 1, MaxValue: 8, AutoShow: true, ColourMapName: "Rainbow"})
	g2 := glowbit.NewGraph1D(glowbit.Graph1DOpts{MinValue: 1, MaxValue: 8, AutoShow: true})
	for ; iters > 0 && !done(ctx); iters-- {
		for _, g := range []*glowbit.Graph1D{g1, g2} {
			for x := 1.0; x <= 8; x++ {
				if err := d.UpdateGraph1D(g, x); err != nil {
					return err
				}
			}
			for x := 8.0; x >= 0; x-- {
				if err := d.UpdateGraph1D(g, x); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Slices grows and shrinks a filled run along the stick, stepping the colour
// from red to green to blue.
func Slices(ctx context.Context, d *glowbit.Device) error {
	colour := glowbit.Colour(0xFF0000)
	n := d.LEDCount()
	for iters := 3; iters > 0 && !done(ctx); iters-- {
		for i := 0; i < n; i++ {
			d.Fill(0)
			d.FillSlice(0, i, colour)
			if err := d.Show(); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			d.Fill(0)
			d.FillSlice(i, n-1, colour)
			if err := d.Show(); err != nil {
				return err
			}
		}
		colour >>= 8
	}
	d.Fill(0)
	return d.Show()
}

// RainbowLoop rotates the rainbow arc until the context is cancelled.
func RainbowLoop(ctx context.Context, r *glowbit.Rainbow) error {
	for x := 0; !done(ctx); x++ {
		if err := r.DrawRainbow(x); err != nil {
			return err
		}
	}
	return nil
}

// TriangleCycle fills each triangle module with a rotating wheel colour.
func TriangleCycle(ctx context.Context, t *glowbit.Triangle, tris, iters int) error {
	for i := 0; i < iters && !done(ctx); i++ {
		for tri := 0; tri < tris; tri++ {
			t.FillTri(tri, glowbit.Wheel((i*16+tri*85)%255))
		}
		if err := t.Show(); err != nil {
			return err
		}
	}
	return nil
}

func randColour() glowbit.Colour {
	return glowbit.Colour(rand.Intn(0x1000000))
}
