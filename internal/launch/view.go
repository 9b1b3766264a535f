package launch

// View is a read-only snapshot of a session for rendering.
type View struct {
	Step       Step
	Launched   bool
	Draft      Draft
	CanAdvance bool
	Preview    string
	Fee        Lamports
	Result     *Result
}

// Snapshot captures the session state together with its derived values.
func (s *Session) Snapshot() View {
	v := View{
		Step:       s.step,
		Launched:   s.launched,
		Draft:      s.draft,
		CanAdvance: CanAdvance(s),
		Preview:    PreviewLabel(s.draft),
		Fee:        EstimatedFee(s.draft),
	}
	if s.result != nil {
		r := *s.result
		v.Result = &r
	}
	return v
}

// FeeSOL returns the estimated fee formatted in SOL.
func (v View) FeeSOL() string { return v.Fee.String() }

// StepNumber returns the step as an int for templates.
func (v View) StepNumber() int { return int(v.Step) }
