package golddigger

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/golddigger/internal/games/golddigger/core"
)

// texture adds cosmetic grain to undug blocks. It never affects the simulation.
type texture struct {
	noise opensimplex.Noise
}

func newTexture(seed int64) *texture {
	return &texture{noise: opensimplex.NewNormalized(seed)}
}

// grain returns the speckle glyph for one of the two columns of a block.
func (t *texture) grain(c core.Coord, col int) rune {
	v := t.noise.Eval2(float64(c.X*2+col)*0.45, float64(c.Y)*0.9)
	switch {
	case v > 0.72:
		return '░'
	case v > 0.62:
		return '·'
	default:
		return ' '
	}
}
