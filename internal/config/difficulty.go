package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScaling holds the multipliers a preset applies to the loaded config.
type presetScaling struct {
	digTime    float64
	goldChance float64
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {digTime: 1.5, goldChance: 1.5},
	DifficultyNormal: {digTime: 1, goldChance: 1},
	DifficultyHard:   {digTime: 0.7, goldChance: 2.0 / 3.0},
}

// Presets returns all presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset parses a preset name. Empty input means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset scales drill bit durability and gold chance for a preset.
func ApplyPreset(cfg *GoldDiggerConfig, preset DifficultyPreset) {
	sc, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Player.BaseDigTime *= sc.digTime
	cfg.World.GoldChance = clampF(cfg.World.GoldChance*sc.goldChance, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
