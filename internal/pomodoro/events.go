package pomodoro

import "time"

// Event is an input to Apply.
type Event interface {
	isEvent()
}

// Start begins a new work session, discarding whatever was running.
type Start struct {
	At          time.Time
	ProjectID   *string
	Description string
}

// Tick advances the clock by one second.
type Tick struct{}

type Pause struct{}

type Resume struct{}

// TakeBreak switches a paused work session to a break.
type TakeBreak struct{}

// KeepWorking ignores the pomodoro boundary and starts another work phase.
type KeepWorking struct{}

type EndBreak struct{}

// Stop ends the session; Save asks the server to materialize a time entry.
type Stop struct {
	Save bool
}

// SetPomodoro toggles pomodoro mode. Only allowed while idle.
type SetPomodoro struct {
	Enabled bool
}

type SetDurations struct {
	Work  int
	Break int
}

type SetProject struct {
	ProjectID *string
}

type SetDescription struct {
	Description string
}

// Snapshot is the server side view of the active timer.
type Snapshot struct {
	StartTime   time.Time
	IsPaused    bool
	Accumulated int64
	ProjectID   *string
	Description string
}

// Restore mirrors the server timer into the local state; a nil Timer means
// nothing is running.
type Restore struct {
	Timer *Snapshot
	Now   time.Time
}

func (Start) isEvent()          {}
func (Tick) isEvent()           {}
func (Pause) isEvent()          {}
func (Resume) isEvent()         {}
func (TakeBreak) isEvent()      {}
func (KeepWorking) isEvent()    {}
func (EndBreak) isEvent()       {}
func (Stop) isEvent()           {}
func (SetPomodoro) isEvent()    {}
func (SetDurations) isEvent()   {}
func (SetProject) isEvent()     {}
func (SetDescription) isEvent() {}
func (Restore) isEvent()        {}
