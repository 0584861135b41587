package pomodoro

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrTimerRunning      = errors.New("cannot change pomodoro mode while the timer is running")
	ErrInvalidDuration   = errors.New("durations must be at least 1 minute")
)

// Apply returns the state that follows s on e and the effects to carry out.
// On error s is returned unchanged.
func Apply(s State, e Event) (State, []Effect, error) {
	switch ev := e.(type) {
	case Start:
		next := s.Reset()
		at := ev.At
		next.IsRunning = true
		next.StartTime = &at
		next.ProjectID = ev.ProjectID
		next.Description = ev.Description
		return next, []Effect{SyncStart{ProjectID: ev.ProjectID, Description: ev.Description}}, nil

	case Tick:
		return tick(s)

	case Pause:
		if !s.IsRunning || s.IsPaused {
			return s, nil, invalid("pause", s)
		}
		s.IsPaused = true
		if s.IsBreak {
			return s, nil, nil
		}
		return s, []Effect{SyncPause{Accumulated: s.TrackedSeconds}}, nil

	case Resume:
		if !s.IsRunning || !s.IsPaused || s.PomodoroEnded() {
			return s, nil, invalid("resume", s)
		}
		s.IsPaused = false
		if s.IsBreak {
			return s, nil, nil
		}
		return s, []Effect{SyncResume{Accumulated: s.TrackedSeconds}}, nil

	case TakeBreak:
		if !s.IsRunning || !s.IsPaused || s.IsBreak {
			return s, nil, invalid("take break", s)
		}
		s.IsBreak = true
		s.IsPaused = false
		s.ElapsedSeconds = 0
		return s, nil, nil

	case KeepWorking:
		if !s.IsRunning || !s.IsPaused || s.IsBreak {
			return s, nil, invalid("keep working", s)
		}
		s.IsPaused = false
		s.ElapsedSeconds = 0
		return s, []Effect{SyncResume{Accumulated: s.TrackedSeconds}}, nil

	case EndBreak:
		if !s.IsRunning || !s.IsBreak {
			return s, nil, invalid("end break", s)
		}
		s.IsBreak = false
		s.IsPaused = false
		s.ElapsedSeconds = 0
		return s, []Effect{SyncResume{Accumulated: s.TrackedSeconds}}, nil

	case Stop:
		if !s.IsRunning {
			return s, nil, invalid("stop", s)
		}
		return s.Reset(), []Effect{SyncStop{Save: ev.Save}}, nil

	case SetPomodoro:
		if s.IsRunning {
			return s, nil, ErrTimerRunning
		}
		s.PomodoroEnabled = ev.Enabled
		return s, nil, nil

	case SetDurations:
		if ev.Work < 1 || ev.Break < 1 {
			return s, nil, ErrInvalidDuration
		}
		s.WorkDuration = ev.Work
		s.BreakDuration = ev.Break
		return s, nil, nil

	case SetProject:
		s.ProjectID = ev.ProjectID
		if !s.IsRunning {
			return s, nil, nil
		}
		return s, []Effect{SyncProject{ProjectID: ev.ProjectID}}, nil

	case SetDescription:
		s.Description = ev.Description
		if !s.IsRunning {
			return s, nil, nil
		}
		return s, []Effect{SyncDescription{Description: ev.Description}}, nil

	case Restore:
		return restore(s, ev), nil, nil
	}

	return s, nil, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, e)
}

func tick(s State) (State, []Effect, error) {
	if !s.IsRunning || s.IsPaused {
		return s, nil, nil
	}

	s.ElapsedSeconds++
	if !s.IsBreak {
		s.TrackedSeconds++
	}

	if !s.PomodoroEnabled || s.ElapsedSeconds < s.TargetSeconds() {
		return s, nil, nil
	}

	s.IsPaused = true
	if s.IsBreak {
		return s, []Effect{breakOver}, nil
	}
	return s, []Effect{workOver, SyncPause{Accumulated: s.TrackedSeconds}}, nil
}

func restore(s State, ev Restore) State {
	next := s.Reset()
	if ev.Timer == nil {
		return next
	}

	t := ev.Timer
	elapsed := timex.ElapsedSeconds(t.Accumulated, t.IsPaused, t.StartTime, ev.Now)
	start := t.StartTime

	next.IsRunning = true
	next.IsPaused = t.IsPaused
	next.StartTime = &start
	next.ElapsedSeconds = elapsed
	next.TrackedSeconds = elapsed
	next.ProjectID = t.ProjectID
	next.Description = t.Description
	return next
}

func invalid(action string, s State) error {
	state := s.Phase().String()
	if s.IsPaused {
		state = "paused " + state
	}
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, action, state)
}
