package core

import "math/rand"

// World is the block grid of one run.
type World struct {
	size    int
	surface int
	seed    int64
	blocks  map[Coord]*Block
}

// NewWorld generates a world from the given parameters and seed.
func NewWorld(p GenParams, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	return &World{
		size:    p.GridSize,
		surface: p.SurfaceRows,
		seed:    seed,
		blocks:  Generate(p, rng),
	}
}

// NewWorldFromBlocks builds a world around an explicit block map.
// Cells missing from blocks are open.
func NewWorldFromBlocks(size, surface int, blocks map[Coord]*Block) *World {
	if blocks == nil {
		blocks = make(map[Coord]*Block)
	}
	return &World{
		size:    size,
		surface: surface,
		blocks:  blocks,
	}
}

// Size returns the grid edge length.
func (w *World) Size() int {
	return w.size
}

// Surface returns the row the avatar stands on at ground level.
func (w *World) Surface() int {
	return w.surface
}

// Seed returns the generation seed.
func (w *World) Seed() int64 {
	return w.seed
}

// InBounds reports whether the avatar may ever stand at c.
func (w *World) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < w.size && c.Y >= w.surface && c.Y < w.size
}

// Block returns the block at c, if one was generated there.
func (w *World) Block(c Coord) (*Block, bool) {
	b, ok := w.blocks[c]
	return b, ok
}

// Len returns the number of generated blocks.
func (w *World) Len() int {
	return len(w.blocks)
}

// Count returns how many blocks satisfy pred.
func (w *World) Count(pred func(Coord, *Block) bool) int {
	n := 0
	for c, b := range w.blocks {
		if pred(c, b) {
			n++
		}
	}
	return n
}
