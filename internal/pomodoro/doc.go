// Package pomodoro implements the client-held timer state and the pomodoro
// work/break cycle layered on top of it.
//
// # Overview
//
// The server only knows about a single ActiveTimer (start time, pause flag and
// banked seconds). Everything about work sessions and breaks lives here, on
// the client, as a plain State value. State changes happen exclusively
// through Apply, a pure function taking the current State and an Event and
// returning the next State together with a list of Effects for the caller to
// carry out (API calls, notifications).
//
// # Phases
//
//	IDLE ──Start──▶ WORKING ──(target reached | Pause)──▶ PAUSED(WORKING)
//	PAUSED(WORKING) ──TakeBreak──▶ BREAK ──(target reached)──▶ PAUSED(BREAK)
//	PAUSED(WORKING) ──KeepWorking──▶ WORKING
//	BREAK / PAUSED(BREAK) ──EndBreak──▶ WORKING
//	any ──Stop──▶ IDLE
//
// ElapsedSeconds measures the current phase and drives the pomodoro targets.
// TrackedSeconds measures work only and is what gets reported to the server
// as the timer's accumulated seconds. Break time is never tracked: the server
// timer stays paused for the whole break.
//
// # Effects
//
// Sync* effects must be applied to the server before the new State is
// committed; if one fails the caller keeps the previous State. Notify effects
// are best effort.
//
// Typical Usage
//
//	st := pomodoro.New()
//	st, effects, err := pomodoro.Apply(st, pomodoro.Start{At: time.Now()})
//	for range ticker.C {
//	    st, effects, _ = pomodoro.Apply(st, pomodoro.Tick{})
//	}
package pomodoro
