package config

import (
	_ "embed"
)

//go:embed defaults/timing.yaml
var defaultTimingYAML []byte

// DefaultTimingConfig returns the built-in configuration.
// It mirrors defaults/timing.yaml and is used if the embedded file cannot be parsed.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			BottomMargin: 20,
		},
		Object: ObjectConfig{
			Width:  100,
			Height: 50,
		},
		Obstacle: ObstacleConfig{
			Width:  120,
			Height: 10,
		},
		Rise: RiseConfig{
			MinDistance: 100,
			MaxDistance: 300,
			MinSpeed:    3,
			MaxSpeed:    6,
		},
		Hold: HoldConfig{
			MinMs: 50,
			MaxMs: 200,
		},
		Physics: PhysicsConfig{
			Gravity:   3,
			FrameRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTimingYAML
}
