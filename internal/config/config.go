// Package config loads the game settings from a TOML file. The settings
// are read once at startup and treated as read-only for the rest of the
// session.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Gameplay GameplayConfig `toml:"gameplay"`
	Screen   ScreenConfig   `toml:"screen"`
	Logging  LoggingConfig  `toml:"logging"`
	Spectate SpectateConfig `toml:"spectate"`
}

type GameplayConfig struct {
	FPS         int  `toml:"fps"`
	Cheats      bool `toml:"cheats"`
	Debug       bool `toml:"debug"`       // debug overlay in the top-left corner
	NoStory     bool `toml:"no_story"`    // skip intro and floor cutscenes
	OfflineMode bool `toml:"offline_mode"` // disable the spectator window fixture
}

type ScreenConfig struct {
	Width  int `toml:"width"`  // pixels; must be a multiple of the grid unit
	Height int `toml:"height"`
}

type LoggingConfig struct {
	File  string `toml:"file"` // log destination; the screen belongs to tcell
	Level string `toml:"level"`
}

type SpectateConfig struct {
	Addr    string `toml:"addr"`
	HostKey string `toml:"host_key"`
	Save    string `toml:"save"` // save file served to visitors
}

// Load reads and parses the TOML file at path. A missing file yields the
// defaults rather than an error, matching a first launch with no config.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Gameplay: GameplayConfig{
			FPS:         60,
			OfflineMode: true,
		},
		Screen: ScreenConfig{
			Width:  960,
			Height: 540,
		},
		Logging: LoggingConfig{
			File:  "bot-atelier.log",
			Level: "info",
		},
		Spectate: SpectateConfig{
			Addr:    ":2222",
			HostKey: "spectate_host_key",
			Save:    "save.yaml",
		},
	}
}
