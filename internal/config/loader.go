package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config directories.
const FileName = "golddigger.yaml"

// Sources reported by Load besides file paths.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.golddigger/configs/golddigger.yaml ->
// ./configs/golddigger.yaml -> embedded default -> hardcoded default.
//
// A custom path must exist and be valid. Invalid files found in the
// search directories are skipped.
func Load(customPath string) (GoldDiggerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GoldDiggerConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GoldDiggerConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultConfig(), SourceBuiltin, nil
}

// Parse validates a YAML document and decodes it over the defaults,
// so omitted keys keep their default values.
func Parse(data []byte) (GoldDiggerConfig, error) {
	if err := Validate(data); err != nil {
		return GoldDiggerConfig{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GoldDiggerConfig{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Check(); err != nil {
		return GoldDiggerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".golddigger", "configs", filename)
}
