package golddigger

import (
	"github.com/vovakirdan/golddigger/internal/config"
	"github.com/vovakirdan/golddigger/internal/registry"
)

func init() {
	modes := []struct {
		preset config.DifficultyPreset
		title  string
		desc   string
	}{
		{config.DifficultyNormal, "Classic", "The original dig"},
		{config.DifficultyEasy, "Easy", "Longer lasting drill bit, richer veins"},
		{config.DifficultyHard, "Hard", "Brittle drill bit, scarce gold"},
	}

	for i, m := range modes {
		info := registry.ModeInfo{
			ID:          string(m.preset),
			Title:       m.title,
			Description: m.desc,
			Order:       i,
		}
		registry.Register(info, func(env registry.Env) registry.Game {
			cfg := env.Config
			config.ApplyPreset(&cfg, m.preset)
			return New(ParamsFromConfig(cfg),
				WithMode(info.ID, m.title),
				WithLogger(env.Logger),
				WithRecorder(env.Recorder),
			)
		})
	}
}
