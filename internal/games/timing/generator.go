package timing

import (
	"math/rand"

	"github.com/vovakirdan/tui-timing/internal/config"
)

// Challenge is the spatial target of the current round.
type Challenge struct {
	TargetY   int // Top of the object when it has arrived
	ObstacleY int // Top of the obstacle bar, directly above the target
}

// AttemptParameters are the kinetic parameters of one ascent.
type AttemptParameters struct {
	RiseSpeed int // Pixels per tick while rising
	HoldMs    int // How long the object stays catchable after arriving
}

// Generator draws challenges and attempt parameters from bounded ranges.
// Challenges and attempts use separate RNG streams so one can be replayed
// without disturbing the other.
type Generator struct {
	cfg          config.TimingConfig
	challengeRNG *rand.Rand
	attemptRNG   *rand.Rand
}

// NewGenerator creates a generator with both streams derived from seed.
func NewGenerator(cfg config.TimingConfig, seed int64) *Generator {
	g := &Generator{cfg: cfg}
	g.Reseed(seed)
	return g
}

// NewGeneratorWithSources creates a generator over caller-provided streams.
func NewGeneratorWithSources(cfg config.TimingConfig, challengeSrc, attemptSrc rand.Source) *Generator {
	return &Generator{
		cfg:          cfg,
		challengeRNG: rand.New(challengeSrc),
		attemptRNG:   rand.New(attemptSrc),
	}
}

// Reseed restarts both streams from seed.
func (g *Generator) Reseed(seed int64) {
	g.challengeRNG = rand.New(rand.NewSource(seed))
	g.attemptRNG = rand.New(rand.NewSource(seed ^ 0x5bd1e995))
}

// GenerateChallenge draws a new target height.
// The target never rises above the top of the field.
func (g *Generator) GenerateChallenge() Challenge {
	distance := between(g.challengeRNG, g.cfg.Rise.MinDistance, g.cfg.Rise.MaxDistance)

	targetY := g.cfg.RestingY() - distance
	if targetY < 0 {
		targetY = 0
	}

	return Challenge{
		TargetY:   targetY,
		ObstacleY: targetY - g.cfg.Obstacle.Height,
	}
}

// GenerateAttemptParameters draws the speed and hold window of a new ascent.
func (g *Generator) GenerateAttemptParameters() AttemptParameters {
	return AttemptParameters{
		RiseSpeed: between(g.attemptRNG, g.cfg.Rise.MinSpeed, g.cfg.Rise.MaxSpeed),
		HoldMs:    between(g.attemptRNG, g.cfg.Hold.MinMs, g.cfg.Hold.MaxMs),
	}
}

// between returns a uniform integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
