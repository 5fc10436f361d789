package config

import (
	_ "embed"
)

//go:embed defaults/golddigger.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the
// embedded defaults cannot be parsed.
func DefaultConfig() GoldDiggerConfig {
	return GoldDiggerConfig{
		World: WorldConfig{
			GridSize:            50,
			SurfaceRows:         3,
			DepthThreshold:      20,
			DeepThreshold:       30,
			GoldChance:          0.03,
			ShallowStoneChance:  0.2,
			HardStoneChance:     0.2,
			VeryHardStoneChance: 0.7,
		},
		Mining: MiningConfig{
			DirtTime:          0.5,
			StoneTime:         0.75,
			HardStoneTime:     1.5,
			VeryHardStoneTime: 2.0,
			GoldValue:         100,
		},
		Player: PlayerConfig{
			BaseDigTime:   10,
			MovementDelay: 0.05,
		},
		Warning: WarningConfig{
			Step: 5,
			Max:  255,
		},
		Purchase: PurchaseConfig{
			PricePerSecond: 100,
		},
		Input: InputConfig{
			HoldInitialMS:   550,
			HoldRepeatMS:    120,
			MaxFrameDeltaMS: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
