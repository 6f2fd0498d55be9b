package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the ambient knobs of a session. Game rules are fixed
// and deliberately not configurable.
type Settings struct {
	// Seed for the deck shuffles. 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
	// NoColor disables terminal styling.
	NoColor bool `yaml:"no_color"`
}

// Default returns the stock settings: time-seeded, colored output.
func Default() Settings {
	return Settings{}
}

// Load reads settings from a YAML file. A missing file is not an
// error; it just yields the defaults.
func Load(path string) (Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
