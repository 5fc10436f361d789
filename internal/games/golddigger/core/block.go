package core

// Material is the hardness tier of a block.
// Later values are harder: VeryHardStone > HardStone > Stone > Dirt.
type Material uint8

const (
	Dirt Material = iota
	Stone
	HardStone
	VeryHardStone
)

// String returns the material name.
func (m Material) String() string {
	switch m {
	case Dirt:
		return "dirt"
	case Stone:
		return "stone"
	case HardStone:
		return "hard_stone"
	case VeryHardStone:
		return "very_hard_stone"
	default:
		return "unknown"
	}
}

// MineTimes holds the seconds of drilling needed per material.
type MineTimes struct {
	Dirt          float64
	Stone         float64
	HardStone     float64
	VeryHardStone float64
}

// DefaultMineTimes returns the stock mining times.
func DefaultMineTimes() MineTimes {
	return MineTimes{
		Dirt:          0.5,
		Stone:         0.75,
		HardStone:     1.5,
		VeryHardStone: 2.0,
	}
}

// For returns the mining time for a material.
func (t MineTimes) For(m Material) float64 {
	switch m {
	case VeryHardStone:
		return t.VeryHardStone
	case HardStone:
		return t.HardStone
	case Stone:
		return t.Stone
	default:
		return t.Dirt
	}
}

// Block is the state of a single generated cell.
// Only Dug and Progress change after generation.
type Block struct {
	Material Material
	Gold     bool
	Artifact bool
	Dug      bool
	Progress float64 // Fraction of mining done, in [0, 1]
}

// Solid reports whether the block still stops movement.
func (b *Block) Solid() bool {
	return !b.Dug
}
