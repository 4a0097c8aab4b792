package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsValidPreset reports whether the given name is a known preset.
func IsValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyPreset modifies the config based on a difficulty preset.
// easy/hard shift the need growth rate and starting score; fixed keeps the
// normal tuning but freezes the round-timer difficulty tiers.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Sim.NeedGrowth = 0.35
		cfg.Sim.WobbleFallChance = 0.012
		cfg.Scoring.StartScore = 120
	case DifficultyHard:
		cfg.Sim.NeedGrowth = 0.55
		cfg.Sim.WobbleFallChance = 0.02
		cfg.Scoring.StartScore = 80
	case DifficultyFixed:
		cfg.Rounds.ScalingEnabled = false
	}
}
