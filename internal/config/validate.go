package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid timing config")

// Validate rejects configurations the game cannot start with.
// All problems are reported together.
func (c TimingConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0,
		"field must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	check(c.Field.BottomMargin >= 0,
		"field.bottom_margin must not be negative, got %d", c.Field.BottomMargin)
	check(c.Object.Width > 0 && c.Object.Height > 0,
		"object must be positive, got %dx%d", c.Object.Width, c.Object.Height)
	check(c.Obstacle.Width > 0 && c.Obstacle.Height > 0,
		"obstacle must be positive, got %dx%d", c.Obstacle.Width, c.Obstacle.Height)
	check(c.RestingY() >= 0,
		"object and bottom margin do not fit in the field (resting y %d)", c.RestingY())

	check(c.Rise.MinDistance >= 0,
		"rise.min_distance must not be negative, got %d", c.Rise.MinDistance)
	check(c.Rise.MinDistance <= c.Rise.MaxDistance,
		"rise.min_distance %d exceeds rise.max_distance %d", c.Rise.MinDistance, c.Rise.MaxDistance)
	check(c.Rise.MinSpeed >= 1,
		"rise.min_speed must be at least 1, got %d", c.Rise.MinSpeed)
	check(c.Rise.MinSpeed <= c.Rise.MaxSpeed,
		"rise.min_speed %d exceeds rise.max_speed %d", c.Rise.MinSpeed, c.Rise.MaxSpeed)

	check(c.Hold.MinMs >= 0,
		"hold.min_ms must not be negative, got %d", c.Hold.MinMs)
	check(c.Hold.MinMs <= c.Hold.MaxMs,
		"hold.min_ms %d exceeds hold.max_ms %d", c.Hold.MinMs, c.Hold.MaxMs)

	check(c.Physics.Gravity >= 1,
		"physics.gravity must be at least 1, got %d", c.Physics.Gravity)
	check(c.Physics.FrameRate >= 1,
		"physics.frame_rate must be at least 1, got %d", c.Physics.FrameRate)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
