package timing

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-timing/internal/config"
)

func TestGenerateChallengeRange(t *testing.T) {
	cfg := config.DefaultTimingConfig()
	gen := NewGenerator(cfg, 99)
	restingY := cfg.RestingY()

	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		c := gen.GenerateChallenge()
		distance := restingY - c.TargetY
		if distance < cfg.Rise.MinDistance || distance > cfg.Rise.MaxDistance {
			t.Fatalf("rise distance %d outside [%d, %d]", distance, cfg.Rise.MinDistance, cfg.Rise.MaxDistance)
		}
		if c.ObstacleY != c.TargetY-cfg.Obstacle.Height {
			t.Fatalf("obstacle %d not derived from target %d", c.ObstacleY, c.TargetY)
		}
		seen[distance] = true
	}

	if !seen[cfg.Rise.MinDistance] || !seen[cfg.Rise.MaxDistance] {
		t.Error("both ends of the inclusive distance range should be reachable")
	}
}

func TestGenerateChallengeClampsAtTop(t *testing.T) {
	cfg := config.DefaultTimingConfig()
	cfg.Rise.MinDistance = 700
	cfg.Rise.MaxDistance = 900

	c := NewGenerator(cfg, 1).GenerateChallenge()
	if c.TargetY != 0 {
		t.Errorf("TargetY = %d, expected clamp to 0", c.TargetY)
	}
	if c.ObstacleY != -cfg.Obstacle.Height {
		t.Errorf("ObstacleY = %d, expected %d", c.ObstacleY, -cfg.Obstacle.Height)
	}
}

func TestGenerateAttemptParametersRange(t *testing.T) {
	cfg := config.DefaultTimingConfig()
	gen := NewGenerator(cfg, 5)

	speeds := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		p := gen.GenerateAttemptParameters()
		if p.RiseSpeed < cfg.Rise.MinSpeed || p.RiseSpeed > cfg.Rise.MaxSpeed {
			t.Fatalf("RiseSpeed %d outside [%d, %d]", p.RiseSpeed, cfg.Rise.MinSpeed, cfg.Rise.MaxSpeed)
		}
		if p.HoldMs < cfg.Hold.MinMs || p.HoldMs > cfg.Hold.MaxMs {
			t.Fatalf("HoldMs %d outside [%d, %d]", p.HoldMs, cfg.Hold.MinMs, cfg.Hold.MaxMs)
		}
		speeds[p.RiseSpeed] = true
	}

	for s := cfg.Rise.MinSpeed; s <= cfg.Rise.MaxSpeed; s++ {
		if !speeds[s] {
			t.Errorf("speed %d never drawn", s)
		}
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.DefaultTimingConfig()
	a := NewGenerator(cfg, 12345)
	b := NewGenerator(cfg, 12345)

	for i := 0; i < 50; i++ {
		if ca, cb := a.GenerateChallenge(), b.GenerateChallenge(); ca != cb {
			t.Fatalf("draw %d: challenges differ %+v vs %+v", i, ca, cb)
		}
		if pa, pb := a.GenerateAttemptParameters(), b.GenerateAttemptParameters(); pa != pb {
			t.Fatalf("draw %d: parameters differ %+v vs %+v", i, pa, pb)
		}
	}

	// Reseed replays from the start
	first := NewGenerator(cfg, 7).GenerateChallenge()
	a.Reseed(7)
	if got := a.GenerateChallenge(); got != first {
		t.Errorf("after Reseed got %+v, expected %+v", got, first)
	}
}

func TestGeneratorStreamsAreIndependent(t *testing.T) {
	cfg := config.DefaultTimingConfig()
	plain := NewGenerator(cfg, 42)
	busy := NewGenerator(cfg, 42)

	for i := 0; i < 20; i++ {
		// Extra attempt draws must not shift the challenge sequence
		busy.GenerateAttemptParameters()
		busy.GenerateAttemptParameters()
		if p, b := plain.GenerateChallenge(), busy.GenerateChallenge(); p != b {
			t.Fatalf("draw %d: challenge stream disturbed by attempt draws", i)
		}
	}
}

func TestGeneratorWithSources(t *testing.T) {
	cfg := config.DefaultTimingConfig()
	cfg.Hold.MinMs, cfg.Hold.MaxMs = 120, 120

	gen := NewGeneratorWithSources(cfg, rand.NewSource(1), rand.NewSource(2))
	if p := gen.GenerateAttemptParameters(); p.HoldMs != 120 {
		t.Errorf("HoldMs = %d, expected fixed 120", p.HoldMs)
	}
}
