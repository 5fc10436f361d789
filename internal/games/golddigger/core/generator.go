package core

import "math/rand"

// GenParams configures world generation.
type GenParams struct {
	GridSize    int // World is GridSize x GridSize cells
	SurfaceRows int // Rows 0..SurfaceRows are open sky, never populated

	DepthThreshold int // Below this row blocks are stone unless gold
	DeepThreshold  int // Below this row very hard stone appears

	GoldChance          float64 // Per-block gold chance, independent of depth
	ShallowStoneChance  float64 // Stone chance above DepthThreshold
	HardStoneChance     float64 // Hard stone chance below DepthThreshold
	VeryHardStoneChance float64 // Very hard stone chance below DeepThreshold
}

// DefaultGenParams returns the stock 50x50 world.
func DefaultGenParams() GenParams {
	return GenParams{
		GridSize:            50,
		SurfaceRows:         3,
		DepthThreshold:      20,
		DeepThreshold:       30,
		GoldChance:          0.03,
		ShallowStoneChance:  0.2,
		HardStoneChance:     0.2,
		VeryHardStoneChance: 0.7,
	}
}

// ArtifactCoord returns where the artifact block is placed.
func (p GenParams) ArtifactCoord() Coord {
	return C(p.GridSize/6, p.GridSize-2)
}

// Generate builds the block map for a fresh world.
// Every cell with SurfaceRows < y < GridSize gets a block; the artifact
// overwrites whatever was rolled at ArtifactCoord.
func Generate(p GenParams, rng *rand.Rand) map[Coord]*Block {
	blocks := make(map[Coord]*Block, p.GridSize*p.GridSize)

	for y := 0; y < p.GridSize; y++ {
		if y <= p.SurfaceRows {
			continue
		}
		for x := 0; x < p.GridSize; x++ {
			blocks[C(x, y)] = rollBlock(p, y, rng)
		}
	}

	at := p.ArtifactCoord()
	artifact := rollBlock(p, at.Y, rng)
	artifact.Artifact = true
	blocks[at] = artifact

	return blocks
}

// rollBlock rolls gold and hardness for a block at depth y.
func rollBlock(p GenParams, y int, rng *rand.Rand) *Block {
	b := &Block{
		Gold:     rng.Float64() < p.GoldChance,
		Material: Dirt,
	}

	if y > p.DepthThreshold {
		if b.Gold {
			return b
		}
		b.Material = Stone
		if rng.Float64() < p.HardStoneChance {
			b.Material = HardStone
		}
		if y > p.DeepThreshold && rng.Float64() < p.VeryHardStoneChance {
			b.Material = VeryHardStone
		}
		return b
	}

	// Shallow zone: the stone roll is always consumed to keep the stream
	// aligned, but gold never turns to stone.
	if rng.Float64() < p.ShallowStoneChance && !b.Gold {
		b.Material = Stone
	}
	return b
}
