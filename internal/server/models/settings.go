package models

import "time"

// Settings are the pomodoro targets in minutes.
type Settings struct {
	WorkDuration  int       `json:"workDuration"`
	BreakDuration int       `json:"breakDuration"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
