package warmup

import (
	"time"
)

// Phase is where the session is inside the current step
type Phase int

const (
	PhaseRest Phase = iota
	PhaseExercise
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseRest:
		return "Rest"
	case PhaseExercise:
		return "Exercise"
	case PhaseDone:
		return "Done"
	}
	return "Unknown"
}

// Session is a play/pause state machine over a Plan. It has no timer of its
// own; the caller advances it with Tick.
type Session struct {
	plan      Plan
	index     int
	phase     Phase
	remaining time.Duration
	playing   bool
	elapsed   time.Duration

	now         func() time.Time
	startedAt   time.Time
	completedAt time.Time
}

// NewSession starts paused on the first step's rest phase
func NewSession(plan Plan, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{plan: plan, now: now}
	s.Restart()
	return s
}

// Restart rewinds to the first step and pauses
func (s *Session) Restart() {
	s.index = 0
	s.playing = false
	s.elapsed = 0
	s.startedAt = time.Time{}
	s.completedAt = time.Time{}
	if len(s.plan.Steps) == 0 {
		s.phase = PhaseDone
		s.remaining = 0
		return
	}
	s.enter(PhaseRest)
}

// Toggle flips between playing and paused. It reports the new state.
func (s *Session) Toggle() bool {
	if s.playing {
		s.Pause()
	} else {
		s.Play()
	}
	return s.playing
}

func (s *Session) Play() {
	if s.phase == PhaseDone {
		return
	}
	if s.startedAt.IsZero() {
		s.startedAt = s.now()
	}
	s.playing = true
}

func (s *Session) Pause() {
	s.playing = false
}

// Tick advances the countdown by d while playing. It reports whether the
// phase changed.
func (s *Session) Tick(d time.Duration) bool {
	if !s.playing || s.phase == PhaseDone || d <= 0 {
		return false
	}

	changed := false
	for d > 0 && s.phase != PhaseDone {
		if d < s.remaining {
			s.remaining -= d
			s.elapsed += d
			return changed
		}
		d -= s.remaining
		s.elapsed += s.remaining
		s.advance()
		changed = true
	}
	return changed
}

// Skip jumps to the next phase
func (s *Session) Skip() {
	if s.phase == PhaseDone {
		return
	}
	s.advance()
}

func (s *Session) advance() {
	if s.phase == PhaseRest {
		s.enter(PhaseExercise)
		return
	}
	s.index++
	if s.index >= len(s.plan.Steps) {
		s.index = len(s.plan.Steps) - 1
		s.phase = PhaseDone
		s.remaining = 0
		s.playing = false
		s.completedAt = s.now()
		return
	}
	s.enter(PhaseRest)
}

func (s *Session) enter(p Phase) {
	s.phase = p
	s.remaining = s.phaseLength()
	// zero-length phases are skipped
	if s.remaining == 0 && p != PhaseDone {
		s.advance()
	}
}

func (s *Session) phaseLength() time.Duration {
	step := s.plan.Steps[s.index]
	if s.phase == PhaseRest {
		return step.Rest
	}
	return step.Duration
}

// Current returns the active step
func (s *Session) Current() Step {
	if len(s.plan.Steps) == 0 {
		return Step{}
	}
	return s.plan.Steps[s.index]
}

// Index is zero-based; Position renders "3 of 8"
func (s *Session) Index() int {
	return s.index
}

func (s *Session) Len() int {
	return len(s.plan.Steps)
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Remaining() time.Duration {
	return s.remaining
}

func (s *Session) Playing() bool {
	return s.playing
}

func (s *Session) Done() bool {
	return s.phase == PhaseDone
}

func (s *Session) Plan() Plan {
	return s.plan
}

// Progress is the fraction of the current phase already elapsed, 0 to 1
func (s *Session) Progress() float64 {
	if s.phase == PhaseDone {
		return 1
	}
	total := s.phaseLength()
	if total <= 0 {
		return 1
	}
	return float64(total-s.remaining) / float64(total)
}

// Elapsed is the active time played so far
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// StartedAt is zero until the first Play
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// CompletedAt is zero until the last phase ends
func (s *Session) CompletedAt() time.Time {
	return s.completedAt
}
