// Package config provides YAML-based tuning for Gold Digger: loading,
// schema validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// GoldDiggerConfig contains all tunable parameters of the game.
type GoldDiggerConfig struct {
	World    WorldConfig    `yaml:"world" json:"world"`
	Mining   MiningConfig   `yaml:"mining" json:"mining"`
	Player   PlayerConfig   `yaml:"player" json:"player"`
	Warning  WarningConfig  `yaml:"warning" json:"warning"`
	Purchase PurchaseConfig `yaml:"purchase" json:"purchase"`
	Input    InputConfig    `yaml:"input" json:"input"`
}

// WorldConfig defines world generation.
type WorldConfig struct {
	GridSize            int     `yaml:"grid_size" json:"grid_size"`
	SurfaceRows         int     `yaml:"surface_rows" json:"surface_rows"`       // Rows above this are open air
	DepthThreshold      int     `yaml:"depth_threshold" json:"depth_threshold"` // Below this, non-gold blocks are stone
	DeepThreshold       int     `yaml:"deep_threshold" json:"deep_threshold"`   // Below this, very hard stone appears
	GoldChance          float64 `yaml:"gold_chance" json:"gold_chance"`
	ShallowStoneChance  float64 `yaml:"shallow_stone_chance" json:"shallow_stone_chance"`
	HardStoneChance     float64 `yaml:"hard_stone_chance" json:"hard_stone_chance"`
	VeryHardStoneChance float64 `yaml:"very_hard_stone_chance" json:"very_hard_stone_chance"`
}

// MiningConfig defines seconds of drilling per material and the gold payout.
type MiningConfig struct {
	DirtTime          float64 `yaml:"dirt_time" json:"dirt_time"`
	StoneTime         float64 `yaml:"stone_time" json:"stone_time"`
	HardStoneTime     float64 `yaml:"hard_stone_time" json:"hard_stone_time"`
	VeryHardStoneTime float64 `yaml:"very_hard_stone_time" json:"very_hard_stone_time"`
	GoldValue         int     `yaml:"gold_value" json:"gold_value"`
}

// PlayerConfig defines the avatar.
type PlayerConfig struct {
	BaseDigTime   float64 `yaml:"base_dig_time" json:"base_dig_time"`   // Drill bit seconds after resurfacing
	MovementDelay float64 `yaml:"movement_delay" json:"movement_delay"` // Seconds between free moves
}

// WarningConfig defines the depletion warning ramp.
type WarningConfig struct {
	Step int `yaml:"step" json:"step"`
	Max  int `yaml:"max" json:"max"`
}

// PurchaseConfig defines the gold for durability exchange.
type PurchaseConfig struct {
	PricePerSecond int `yaml:"price_per_second" json:"price_per_second"`
}

// InputConfig defines terminal key hold emulation.
type InputConfig struct {
	HoldInitialMS   int `yaml:"hold_initial_ms" json:"hold_initial_ms"`       // Hold after the first press
	HoldRepeatMS    int `yaml:"hold_repeat_ms" json:"hold_repeat_ms"`         // Hold extension per key repeat
	MaxFrameDeltaMS int `yaml:"max_frame_delta_ms" json:"max_frame_delta_ms"` // Upper bound on one frame's dt
}

// ErrInconsistent is returned when individually valid values contradict each other.
var ErrInconsistent = errors.New("inconsistent config")

// Check verifies cross-field constraints the schema cannot express.
func (c GoldDiggerConfig) Check() error {
	w := c.World
	if w.SurfaceRows >= w.DepthThreshold {
		return fmt.Errorf("%w: surface_rows (%d) must be below depth_threshold (%d)",
			ErrInconsistent, w.SurfaceRows, w.DepthThreshold)
	}
	if w.DepthThreshold > w.DeepThreshold {
		return fmt.Errorf("%w: depth_threshold (%d) must not exceed deep_threshold (%d)",
			ErrInconsistent, w.DepthThreshold, w.DeepThreshold)
	}
	if w.DeepThreshold >= w.GridSize {
		return fmt.Errorf("%w: deep_threshold (%d) must be inside the grid (%d)",
			ErrInconsistent, w.DeepThreshold, w.GridSize)
	}
	if c.Warning.Step > c.Warning.Max {
		return fmt.Errorf("%w: warning step (%d) exceeds max (%d)",
			ErrInconsistent, c.Warning.Step, c.Warning.Max)
	}
	if c.Input.HoldRepeatMS > c.Input.HoldInitialMS {
		return fmt.Errorf("%w: hold_repeat_ms (%d) exceeds hold_initial_ms (%d)",
			ErrInconsistent, c.Input.HoldRepeatMS, c.Input.HoldInitialMS)
	}
	return nil
}
