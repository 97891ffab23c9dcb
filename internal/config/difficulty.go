package config

// DifficultyPreset represents a named balance preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyGrind  DifficultyPreset = "grind"
)

// ApplyPreset adjusts the balance for a difficulty preset.
// Normal (or unknown) leaves the loaded balance untouched.
func ApplyPreset(cfg *Balance, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Inactivity.ThresholdWeeks = 36
		cfg.Inactivity.FanLoss = 0.05
		cfg.Inactivity.FollowerLoss = 0.03
		cfg.Consistency.Penalty = 0.1
		cfg.Week.ViralChanceBase = 0.12
	case DifficultyGrind:
		cfg.Inactivity.ThresholdWeeks = 16
		cfg.Inactivity.FanLoss = 0.15
		cfg.Inactivity.FollowerLoss = 0.08
		cfg.Consistency.Penalty = 0.3
		cfg.Week.ViralChanceBase = 0.05
		cfg.FameGain.LevelBonus = 0.08
	}
}

// IsValidPreset reports whether the preset name is recognized.
func IsValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyGrind, "":
		return true
	}
	return false
}
