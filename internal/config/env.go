package config

import (
	"os"
	"strconv"
)

// FromEnv layers environment overrides on top of cfg:
// DECKDELVE_SEED and NO_COLOR.
func FromEnv(cfg Settings) Settings {
	if val := os.Getenv("DECKDELVE_SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg
}
