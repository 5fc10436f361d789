package golddigger

import (
	"github.com/vovakirdan/golddigger/internal/config"
	"github.com/vovakirdan/golddigger/internal/games/golddigger/core"
)

// ParamsFromConfig converts a loaded configuration into simulation tuning.
func ParamsFromConfig(c config.GoldDiggerConfig) core.Params {
	return core.Params{
		Gen: core.GenParams{
			GridSize:            c.World.GridSize,
			SurfaceRows:         c.World.SurfaceRows,
			DepthThreshold:      c.World.DepthThreshold,
			DeepThreshold:       c.World.DeepThreshold,
			GoldChance:          c.World.GoldChance,
			ShallowStoneChance:  c.World.ShallowStoneChance,
			HardStoneChance:     c.World.HardStoneChance,
			VeryHardStoneChance: c.World.VeryHardStoneChance,
		},
		Rules: core.Rules{
			MineTimes: core.MineTimes{
				Dirt:          c.Mining.DirtTime,
				Stone:         c.Mining.StoneTime,
				HardStone:     c.Mining.HardStoneTime,
				VeryHardStone: c.Mining.VeryHardStoneTime,
			},
			MovementDelay: c.Player.MovementDelay,
			GoldValue:     c.Mining.GoldValue,
		},
		BaseDigTime:    c.Player.BaseDigTime,
		WarningStep:    c.Warning.Step,
		WarningMax:     c.Warning.Max,
		PricePerSecond: c.Purchase.PricePerSecond,
	}
}
