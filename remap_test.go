package glowbit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glowbit-dev/glowbit"
)

var remap4x4Cases = []struct {
	x, y   int
	expect int
}{
	{0, 0, 0},
	{3, 0, 3},
	{0, 1, 4},
	{3, 3, 15},
	{4, 0, 16}, // second tile starts a fresh 16-address block
	{7, 3, 31},
	{5, 2, 25},
}

func TestRemap4x4(t *testing.T) {
	for _, v := range remap4x4Cases {
		t.Run(fmt.Sprintf("%d,%d", v.x, v.y), func(t *testing.T) {
			assert.Equal(t, v.expect, glowbit.Remap4x4(v.x, v.y))
		})
	}
}

var remap8x8Cases = []struct {
	rows, cols int
	x, y       int
	expect     int
}{
	{1, 1, 0, 0, 0},
	{1, 1, 7, 0, 7},
	{1, 1, 0, 1, 8},
	{1, 1, 7, 7, 63},

	{1, 2, 7, 0, 7},
	{1, 2, 8, 0, 64}, // crossing into the second tile
	{1, 2, 15, 7, 127},

	// Odd tile rows are wired right to left.
	{2, 2, 0, 8, 64 * 3},
	{2, 2, 8, 8, 64 * 2},
	{2, 2, 15, 15, 64*2 + 63},
}

func TestRemap8x8(t *testing.T) {
	for _, v := range remap8x8Cases {
		t.Run(fmt.Sprintf("%dx%d(%d,%d)", v.rows, v.cols, v.x, v.y), func(t *testing.T) {
			remap := glowbit.Remap8x8(v.rows, v.cols)
			assert.Equal(t, v.expect, remap(v.x, v.y))
		})
	}
}

func TestRemap8x8Bijective(t *testing.T) {
	remap := glowbit.Remap8x8(2, 3)
	seen := make(map[int]bool)
	for y := 0; y < 16; y++ {
		for x := 0; x < 24; x++ {
			i := remap(x, y)
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, 2*3*64)
			assert.False(t, seen[i], "index %d mapped twice", i)
			seen[i] = true
		}
	}
}
