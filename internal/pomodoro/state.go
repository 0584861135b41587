package pomodoro

import (
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

// Phase is the coarse position in the cycle; pause is orthogonal to it.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWorking
	PhaseBreak
)

func (p Phase) String() string {
	switch p {
	case PhaseWorking:
		return "working"
	case PhaseBreak:
		return "break"
	default:
		return "idle"
	}
}

// unboundedProgressSeconds is the span the progress fraction fills up over
// when pomodoro mode is off.
const unboundedProgressSeconds = 3600

// State is the complete client-side timer state.
type State struct {
	IsRunning      bool
	IsPaused       bool
	IsBreak        bool
	StartTime      *time.Time
	ElapsedSeconds int64
	TrackedSeconds int64
	ProjectID      *string
	Description    string

	PomodoroEnabled bool
	WorkDuration    int
	BreakDuration   int
}

// New returns an idle state with pomodoro mode off and default targets.
func New() State {
	return State{
		WorkDuration:  common.DefaultWorkDuration,
		BreakDuration: common.DefaultBreakDuration,
	}
}

// Reset clears the running session and keeps the pomodoro preferences.
func (s State) Reset() State {
	return State{
		PomodoroEnabled: s.PomodoroEnabled,
		WorkDuration:    s.WorkDuration,
		BreakDuration:   s.BreakDuration,
	}
}

func (s State) Phase() Phase {
	switch {
	case !s.IsRunning:
		return PhaseIdle
	case s.IsBreak:
		return PhaseBreak
	default:
		return PhaseWorking
	}
}

// TargetSeconds is the length of the current phase.
func (s State) TargetSeconds() int64 {
	if s.IsBreak {
		return timex.MinutesToSeconds(s.BreakDuration)
	}
	return timex.MinutesToSeconds(s.WorkDuration)
}

// PomodoroEnded reports whether the current phase has reached its target.
func (s State) PomodoroEnded() bool {
	return s.PomodoroEnabled && s.IsRunning && s.ElapsedSeconds >= s.TargetSeconds()
}

// DisplayTime counts down to the target in pomodoro mode and up otherwise.
func (s State) DisplayTime() string {
	if !s.PomodoroEnabled {
		return timex.FormatTime(s.ElapsedSeconds)
	}
	remaining := s.TargetSeconds() - s.ElapsedSeconds
	if remaining < 0 {
		remaining = 0
	}
	return timex.FormatTime(remaining)
}

// Progress is the filled fraction of the current phase, in [0, 1].
func (s State) Progress() float64 {
	target := s.TargetSeconds()
	if !s.PomodoroEnabled {
		target = unboundedProgressSeconds
	}
	if target <= 0 {
		return 1
	}
	p := float64(s.ElapsedSeconds) / float64(target)
	if p > 1 {
		return 1
	}
	return p
}
