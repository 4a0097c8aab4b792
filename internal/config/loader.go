package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.catchaos/configs/catchaos.yaml -> ./configs/catchaos.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catchaos.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/catchaos.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catchaos", "configs", filename)
}

// Validate checks cross-field constraints that a hand-edited YAML can break.
func (c GameConfig) Validate() error {
	if c.Room.Width <= 2*c.Room.Margin || c.Room.Height <= 2*c.Room.Margin {
		return fmt.Errorf("config: room %gx%g too small for margin %g", c.Room.Width, c.Room.Height, c.Room.Margin)
	}
	if len(c.Room.Zones) == 0 {
		return fmt.Errorf("config: room has no zones")
	}
	seen := make(map[string]bool, len(c.Room.Zones))
	for _, z := range c.Room.Zones {
		if z.ID == "" {
			return fmt.Errorf("config: zone with empty id")
		}
		if seen[z.ID] {
			return fmt.Errorf("config: duplicate zone id %q", z.ID)
		}
		seen[z.ID] = true
	}
	if c.Rounds.TimerMinMS <= 0 || c.Rounds.TimerMaxMS < c.Rounds.TimerMinMS {
		return fmt.Errorf("config: invalid round timer range [%d, %d]", c.Rounds.TimerMinMS, c.Rounds.TimerMaxMS)
	}
	if c.Windows.DurationMS <= 0 {
		return fmt.Errorf("config: window duration must be positive")
	}
	return nil
}
