package timing

// Phase is the attempt state of the moving object.
type Phase int

const (
	PhaseResting Phase = iota // At the bottom, waiting for a rise
	PhaseRising               // Moving up toward the target
	PhaseHolding              // Parked at the target, catchable
	PhaseFalling              // Dropping back under gravity
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseResting:
		return "resting"
	case PhaseRising:
		return "rising"
	case PhaseHolding:
		return "holding"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Signal is an edge-triggered player command consumed by the machine.
type Signal int

const (
	SignalRise  Signal = iota // Start or resume an ascent
	SignalJudge               // Attempt to catch the object
)

// String returns the name of the signal.
func (s Signal) String() string {
	switch s {
	case SignalRise:
		return "rise"
	case SignalJudge:
		return "judge"
	default:
		return "unknown"
	}
}

// Outcome is the result of a resolved attempt.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeFailure
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "failure"
}

// Cause records which rule resolved an attempt.
type Cause int

const (
	CauseCaught        Cause = iota // Judged inside the hold window
	CauseLate                       // Judged while holding, after the window closed
	CauseJudgedRising               // Judged before the object arrived
	CauseJudgedFalling              // Judged after the object started to fall
)

// String returns the name of the cause.
func (c Cause) String() string {
	switch c {
	case CauseCaught:
		return "caught"
	case CauseLate:
		return "late"
	case CauseJudgedRising:
		return "too early"
	case CauseJudgedFalling:
		return "while falling"
	default:
		return "unknown"
	}
}

// EventKind identifies a state machine transition.
type EventKind int

const (
	EventRiseStarted  EventKind = iota // Resting -> Rising with fresh parameters
	EventRiseResumed                   // Falling -> Rising, parameters reused
	EventArrived                       // Rising -> Holding
	EventHoldExpired                   // Holding -> Falling
	EventLanded                        // Falling -> Resting, challenge kept
	EventResolved                      // Any -> Resting with a new challenge
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRiseStarted:
		return "rise started"
	case EventRiseResumed:
		return "rise resumed"
	case EventArrived:
		return "arrived"
	case EventHoldExpired:
		return "hold expired"
	case EventLanded:
		return "landed"
	case EventResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Resolution describes how an attempt ended.
type Resolution struct {
	Outcome   Outcome
	Cause     Cause
	Phase     Phase // Phase the judge signal arrived in
	HeldMs    int64 // Time since arrival; only meaningful when Phase is Holding
	Params    AttemptParameters
	Challenge Challenge // The challenge that was resolved, not its replacement
	At        int64
}

// Event is emitted for every transition so outer layers can log and record play.
type Event struct {
	Kind       EventKind
	From, To   Phase
	At         int64
	Params     AttemptParameters
	Resolution *Resolution // Set only for EventResolved
}
