package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dragonruler/pathfinder/mapdata"
	"github.com/dragonruler/pathfinder/pathfinder"
)

// EngineConfig holds the tunable constants and token profile defaults a host
// process loads at startup. Values left zero fall back to the engine's
// compiled-in defaults when converted via Options.
type EngineConfig struct {
	Token struct {
		Size         float64 `yaml:"size"`
		Elevation    float64 `yaml:"elevation"`
		EnableHeight bool    `yaml:"enable_height"`
	} `yaml:"token"`

	// HopPenalty overrides the per-hop tie-breaking cost. Zero means "use
	// the compiled-in default" rather than "disable tie-breaking".
	HopPenalty float64 `yaml:"hop_penalty"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level"`
}

// Default returns an EngineConfig with a reasonable token profile for a
// medium creature and the engine's default tunables.
func Default() EngineConfig {
	var cfg EngineConfig
	cfg.Token.Size = 5
	cfg.Token.Elevation = 0
	cfg.Token.EnableHeight = false
	cfg.HopPenalty = pathfinder.DefaultTunables().HopPenalty
	cfg.LogLevel = "info"
	return cfg
}

// Load reads and parses an EngineConfig from a YAML file at path.
func Load(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// TokenProfile converts the loaded token settings into a mapdata.TokenProfile.
func (c EngineConfig) TokenProfile() mapdata.TokenProfile {
	return mapdata.TokenProfile{
		Size:         c.Token.Size,
		Elevation:    c.Token.Elevation,
		EnableHeight: c.Token.EnableHeight,
	}
}

// Options converts the loaded tunables into pathfinder.Option overrides.
func (c EngineConfig) Options() []pathfinder.Option {
	if c.HopPenalty <= 0 {
		return nil
	}
	return []pathfinder.Option{pathfinder.WithHopPenalty(c.HopPenalty)}
}

// SlogLevel parses LogLevel into a slog.Level, defaulting to Info on an
// empty or unrecognised value.
func (c EngineConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
