package timing

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-timing/internal/config"
	"github.com/vovakirdan/tui-timing/internal/core"
)

// Machine is the attempt state machine. It is the only owner of the object
// position, the current challenge, the attempt parameters and the counters.
type Machine struct {
	cfg      config.TimingConfig
	gen      *Generator
	clock    core.Clock
	restingY int

	phase     Phase
	posY      int
	enteredAt int64 // Arrival time of the current hold

	challenge Challenge
	params    AttemptParameters
	hasParams bool

	successes int
	failures  int
}

// Snapshot is the render state of the machine after a tick.
type Snapshot struct {
	Phase          Phase
	PositionY      int
	PhaseEnteredAt int64
	Challenge      Challenge
	Params         AttemptParameters
	HasParams      bool
	Successes      int
	Failures       int
	Object         core.Rect
	Obstacle       core.Rect
}

// New creates a machine resting at the bottom with its first challenge drawn.
// Invalid configuration is rejected here, before any tick runs.
func New(cfg config.TimingConfig, gen *Generator, clock core.Clock) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("timing: %w", err)
	}
	if gen == nil {
		return nil, errors.New("timing: generator is required")
	}
	if clock == nil {
		clock = core.NewMonotonicClock()
	}

	m := &Machine{
		cfg:      cfg,
		gen:      gen,
		clock:    clock,
		restingY: cfg.RestingY(),
	}
	m.Reset()
	return m, nil
}

// Reset starts a new session: counters cleared, object at rest, new challenge.
func (m *Machine) Reset() {
	m.phase = PhaseResting
	m.posY = m.restingY
	m.enteredAt = 0
	m.params = AttemptParameters{}
	m.hasParams = false
	m.successes = 0
	m.failures = 0
	m.challenge = m.gen.GenerateChallenge()
}

// Step processes one frame: signals in arrival order, then movement, then
// hold expiry. It returns every transition that happened.
func (m *Machine) Step(signals ...Signal) []Event {
	return append(m.Apply(signals...), m.Tick()...)
}

// Apply processes signals in arrival order without advancing the frame.
// Each signal sees the phase left behind by the one before it.
func (m *Machine) Apply(signals ...Signal) []Event {
	var events []Event
	for _, sig := range signals {
		var (
			ev Event
			ok bool
		)
		switch sig {
		case SignalRise:
			ev, ok = m.Rise()
		case SignalJudge:
			ev, ok = m.Judge()
		}
		if ok {
			events = append(events, ev)
		}
	}
	return events
}

// Rise starts an ascent from rest or resumes one from a fall.
// It reports false and does nothing in any other phase.
func (m *Machine) Rise() (Event, bool) {
	from := m.phase
	kind := EventRiseResumed

	switch m.phase {
	case PhaseResting:
		m.params = m.gen.GenerateAttemptParameters()
		m.hasParams = true
		kind = EventRiseStarted
	case PhaseFalling:
		// Parameters of the ascent that led to this fall stay in force
	default:
		return Event{}, false
	}

	m.phase = PhaseRising
	return Event{
		Kind:   kind,
		From:   from,
		To:     PhaseRising,
		At:     m.clock.NowMs(),
		Params: m.params,
	}, true
}

// Judge resolves the current attempt. While holding, the clock is compared
// against the window at the moment of the call. It reports false and does
// nothing while resting.
func (m *Machine) Judge() (Event, bool) {
	if m.phase == PhaseResting {
		return Event{}, false
	}

	now := m.clock.NowMs()
	res := Resolution{
		Outcome:   OutcomeFailure,
		Phase:     m.phase,
		Params:    m.params,
		Challenge: m.challenge,
		At:        now,
	}

	switch m.phase {
	case PhaseHolding:
		res.HeldMs = now - m.enteredAt
		if res.HeldMs <= int64(m.params.HoldMs) {
			res.Outcome = OutcomeSuccess
			res.Cause = CauseCaught
		} else {
			res.Cause = CauseLate
		}
	case PhaseRising:
		res.Cause = CauseJudgedRising
	case PhaseFalling:
		res.Cause = CauseJudgedFalling
	}

	from := m.phase
	m.resolve(res.Outcome)

	return Event{
		Kind:       EventResolved,
		From:       from,
		To:         PhaseResting,
		At:         now,
		Params:     res.Params,
		Resolution: &res,
	}, true
}

// resolve counts the outcome and starts the next round.
func (m *Machine) resolve(outcome Outcome) {
	if outcome == OutcomeSuccess {
		m.successes++
	} else {
		m.failures++
	}
	m.phase = PhaseResting
	m.posY = m.restingY
	m.params = AttemptParameters{}
	m.hasParams = false
	m.challenge = m.gen.GenerateChallenge()
}

// Tick applies one frame of movement and then checks the hold window.
func (m *Machine) Tick() []Event {
	var events []Event
	now := m.clock.NowMs()

	switch m.phase {
	case PhaseRising:
		m.posY -= m.params.RiseSpeed
		if m.posY <= m.challenge.TargetY {
			m.posY = m.challenge.TargetY
			m.phase = PhaseHolding
			m.enteredAt = now
			events = append(events, Event{Kind: EventArrived, From: PhaseRising, To: PhaseHolding, At: now, Params: m.params})
		}
	case PhaseFalling:
		m.posY += m.cfg.Physics.Gravity
		if m.posY >= m.restingY {
			m.posY = m.restingY
			m.phase = PhaseResting
			events = append(events, Event{Kind: EventLanded, From: PhaseFalling, To: PhaseResting, At: now, Params: m.params})
		}
	}

	if m.phase == PhaseHolding && now-m.enteredAt > int64(m.params.HoldMs) {
		m.phase = PhaseFalling
		events = append(events, Event{Kind: EventHoldExpired, From: PhaseHolding, To: PhaseFalling, At: now, Params: m.params})
	}

	return events
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// PositionY returns the top of the object in field pixels.
func (m *Machine) PositionY() int { return m.posY }

// RestingY returns the bottom position of the object.
func (m *Machine) RestingY() int { return m.restingY }

// PhaseEnteredAt returns when the current hold began.
func (m *Machine) PhaseEnteredAt() int64 { return m.enteredAt }

// Challenge returns the current challenge.
func (m *Machine) Challenge() Challenge { return m.challenge }

// Params returns the parameters of the current ascent, if one has been drawn
// since the last resolution.
func (m *Machine) Params() (AttemptParameters, bool) { return m.params, m.hasParams }

// Successes returns the number of caught attempts.
func (m *Machine) Successes() int { return m.successes }

// Failures returns the number of failed attempts.
func (m *Machine) Failures() int { return m.failures }

// ObjectRect returns the object rectangle in field pixels.
func (m *Machine) ObjectRect() core.Rect {
	return core.NewRect(m.cfg.ObjectX(), m.posY, m.cfg.Object.Width, m.cfg.Object.Height)
}

// ObstacleRect returns the obstacle rectangle in field pixels.
func (m *Machine) ObstacleRect() core.Rect {
	return core.NewRect(m.cfg.ObstacleX(), m.challenge.ObstacleY, m.cfg.Obstacle.Width, m.cfg.Obstacle.Height)
}

// Snapshot returns the current render state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Phase:          m.phase,
		PositionY:      m.posY,
		PhaseEnteredAt: m.enteredAt,
		Challenge:      m.challenge,
		Params:         m.params,
		HasParams:      m.hasParams,
		Successes:      m.successes,
		Failures:       m.failures,
		Object:         m.ObjectRect(),
		Obstacle:       m.ObstacleRect(),
	}
}
