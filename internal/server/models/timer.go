package models

import "time"

// ActiveTimer is the single in-progress work session.
type ActiveTimer struct {
	StartTime time.Time  `json:"startTime"`
	IsPaused  bool       `json:"isPaused"`
	PausedAt  *time.Time `json:"pausedAt"`
	// Accumulated is the number of seconds banked before StartTime.
	Accumulated int64     `json:"accumulated"`
	ProjectID   *string   `json:"projectId"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TimerStatus is an ActiveTimer with the elapsed seconds computed at read time.
type TimerStatus struct {
	ActiveTimer
	ElapsedSeconds int64 `json:"elapsedSeconds"`
}
