// Package config provides YAML-based configuration loading and validation
// for the timing game.
package config

// TimingConfig contains all construction-time constants of the timing game.
// Values are fixed for the lifetime of a session.
type TimingConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Object   ObjectConfig   `yaml:"object"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Rise     RiseConfig     `yaml:"rise"`
	Hold     HoldConfig     `yaml:"hold"`
	Physics  PhysicsConfig  `yaml:"physics"`
}

// FieldConfig defines the logical playfield in pixels.
type FieldConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomMargin int `yaml:"bottom_margin"` // Gap between resting object and field bottom
}

// ObjectConfig defines the moving object.
type ObjectConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines the bar drawn just above the target.
type ObstacleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RiseConfig bounds the randomized rise distance and rise speed.
type RiseConfig struct {
	MinDistance int `yaml:"min_distance"`
	MaxDistance int `yaml:"max_distance"`
	MinSpeed    int `yaml:"min_speed"` // Pixels per tick
	MaxSpeed    int `yaml:"max_speed"`
}

// HoldConfig bounds the randomized hold window.
type HoldConfig struct {
	MinMs int `yaml:"min_ms"`
	MaxMs int `yaml:"max_ms"`
}

// PhysicsConfig holds fall speed and the loop rate.
type PhysicsConfig struct {
	Gravity   int `yaml:"gravity"` // Pixels per tick while falling
	FrameRate int `yaml:"frame_rate"`
}

// RestingY returns the top of the object when it sits at the bottom.
func (c TimingConfig) RestingY() int {
	return c.Field.Height - c.Object.Height - c.Field.BottomMargin
}

// ObjectX returns the left edge of the horizontally centered object.
func (c TimingConfig) ObjectX() int {
	return (c.Field.Width - c.Object.Width) / 2
}

// ObstacleX returns the left edge of the horizontally centered obstacle.
func (c TimingConfig) ObstacleX() int {
	return (c.Field.Width - c.Obstacle.Width) / 2
}

// Preset names a static tuning of the hold window and rise speed.
type Preset string

const (
	PresetRelaxed  Preset = "relaxed"
	PresetStandard Preset = "standard"
	PresetStrict   Preset = "strict"
)

// ParsePreset converts a CLI value into a Preset. Empty means standard.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case "", PresetStandard:
		return PresetStandard, true
	case PresetRelaxed:
		return PresetRelaxed, true
	case PresetStrict:
		return PresetStrict, true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a preset.
// Standard leaves the loaded values untouched.
func ApplyPreset(cfg *TimingConfig, preset Preset) {
	switch preset {
	case PresetRelaxed:
		cfg.Hold = HoldConfig{MinMs: 150, MaxMs: 400}
		cfg.Rise.MinSpeed = 2
		cfg.Rise.MaxSpeed = 4
	case PresetStrict:
		cfg.Hold = HoldConfig{MinMs: 40, MaxMs: 120}
		cfg.Rise.MinSpeed = 5
		cfg.Rise.MaxSpeed = 9
	}
}
