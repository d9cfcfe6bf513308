package glowbit

// RemapFunc maps a logical matrix coordinate to a linear buffer index. It
// must be a bijection over [0,width) x [0,height); callers may inject their
// own at construction to describe custom wiring.
type RemapFunc func(x, y int) int

// Remap4x4 is the wiring of chained 4x4 GlowBit tiles: each tile is a
// self-contained 16-address block, row-major inside the tile.
func Remap4x4(x, y int) int {
	tile := x / 4
	return tile*16 + 4*y + (x - 4*tile)
}

// Remap8x8 builds the wiring of an 8x8 tile grid. Tiles are chained in
// serpentine tile rows: even rows run left to right, odd rows right to left.
// Each tile contributes a contiguous 64-address block addressed row-major.
func Remap8x8(tileRows, tileCols int) RemapFunc {
	return func(x, y int) int {
		tileRow := y / 8
		tileCol := x / 8
		local := 8*(y%8) + x%8
		if tileRow%2 == 0 {
			return 64*(tileRow*tileCols+tileCol) + local
		}
		return 64*(tileRow*tileCols+(tileCols-tileCol-1)) + local
	}
}
