package launch

import "math/rand/v2"

// Step is a position in the wizard flow.
type Step int

// Wizard steps, in order.
const (
	StepConfigure Step = 1
	StepReview    Step = 2
	StepLaunch    Step = 3
)

// String returns the step title shown in the wizard header.
func (s Step) String() string {
	switch s {
	case StepConfigure:
		return "Configure"
	case StepReview:
		return "Review"
	case StepLaunch:
		return "Launch"
	default:
		return "Unknown"
	}
}

// Steps lists the wizard steps in order.
var Steps = []Step{StepConfigure, StepReview, StepLaunch}

// Result is what a simulated launch produces.
type Result struct {
	Address string   `json:"address" yaml:"address"`
	Fee     Lamports `json:"fee_lamports" yaml:"fee_lamports"`
	FeeSOL  string   `json:"fee_sol" yaml:"fee_sol"`
	Preview string   `json:"preview" yaml:"preview"`
	Draft   Draft    `json:"draft" yaml:"draft"`
}

// Session is one pass through the wizard. It is not safe for concurrent use.
type Session struct {
	step     Step
	launched bool
	draft    Draft
	result   *Result
	rng      *rand.Rand
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for simulated addresses.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// WithDraft starts the session from d instead of the default draft.
// Input transforms are applied to d.
func WithDraft(d Draft) Option {
	return func(s *Session) {
		s.draft = d.Normalize()
	}
}

// NewSession returns a session at the Configure step with a default draft.
func NewSession(opts ...Option) *Session {
	s := &Session{
		step:  StepConfigure,
		draft: DefaultDraft(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Launched reports whether the simulated launch has happened.
func (s *Session) Launched() bool { return s.launched }

// Draft returns a copy of the current draft.
func (s *Session) Draft() Draft { return s.draft }

// Result returns the launch result, if the session has launched.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// UpdateField transforms value for f and stores it in the draft.
// Edits are ignored once the session has launched.
func (s *Session) UpdateField(f Field, value string) {
	if s.launched {
		return
	}
	s.draft.set(f, value)
}

// SetField is UpdateField keyed by field name.
func (s *Session) SetField(name, value string) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	s.UpdateField(f, value)
	return nil
}

// CanAdvance reports whether Continue is enabled for the session.
func CanAdvance(s *Session) bool {
	switch s.step {
	case StepConfigure:
		return s.draft.Complete()
	case StepReview:
		return true
	default:
		return false
	}
}

// CanAdvance reports whether Continue is enabled.
func (s *Session) CanAdvance() bool { return CanAdvance(s) }

// Advance moves to the next step. It does nothing and returns false
// when CanAdvance is false.
func (s *Session) Advance() bool {
	if !CanAdvance(s) {
		return false
	}
	s.step++
	return true
}

// Back moves to the previous step. It does nothing at the first step
// or after launch.
func (s *Session) Back() bool {
	if s.step <= StepConfigure || s.launched {
		return false
	}
	s.step--
	return true
}

// Launch marks the session launched and generates the simulated result.
// It only acts at the Launch step; repeated calls return the first result.
func (s *Session) Launch() (Result, bool) {
	if s.step != StepLaunch {
		return Result{}, false
	}
	if s.result == nil {
		fee := EstimatedFee(s.draft)
		s.result = &Result{
			Address: SimulatedAddress(s.draft, s.rng),
			Fee:     fee,
			FeeSOL:  fee.String(),
			Preview: PreviewLabel(s.draft),
			Draft:   s.draft,
		}
	}
	s.launched = true
	return *s.result, true
}

// Reset discards the draft and returns the session to the Configure step.
func (s *Session) Reset() {
	s.step = StepConfigure
	s.launched = false
	s.draft = DefaultDraft()
	s.result = nil
}
