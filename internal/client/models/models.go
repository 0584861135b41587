// Package models defines the API payloads the terminal client exchanges with
// the PomoKeeper server.
package models

import (
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/pomodoro"
)

// Timer is the server's active timer as returned by GET /api/timer.
type Timer struct {
	StartTime      time.Time  `json:"startTime"`
	IsPaused       bool       `json:"isPaused"`
	PausedAt       *time.Time `json:"pausedAt"`
	Accumulated    int64      `json:"accumulated"`
	ProjectID      *string    `json:"projectId"`
	Description    *string    `json:"description"`
	ElapsedSeconds int64      `json:"elapsedSeconds"`
}

// Snapshot converts t for pomodoro.Restore. A nil timer yields nil.
func (t *Timer) Snapshot() *pomodoro.Snapshot {
	if t == nil {
		return nil
	}
	s := &pomodoro.Snapshot{
		StartTime:   t.StartTime,
		IsPaused:    t.IsPaused,
		Accumulated: t.Accumulated,
		ProjectID:   t.ProjectID,
	}
	if t.Description != nil {
		s.Description = *t.Description
	}
	return s
}

type Client struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

type Project struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ClientID string  `json:"clientId"`
	Client   *Client `json:"client,omitempty"`
}

// Entry is a completed time entry with its project and client joined.
type Entry struct {
	ID          string     `json:"id"`
	ProjectID   *string    `json:"projectId"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    int        `json:"duration"`
	Invoiced    bool       `json:"invoiced"`
	CreatedAt   time.Time  `json:"createdAt"`
	Project     *Project   `json:"project"`
}

// Label is "Client / Project", or just the project, or "-" without one.
func (e Entry) Label() string {
	if e.Project == nil {
		return "-"
	}
	if e.Project.Client == nil {
		return e.Project.Name
	}
	return e.Project.Client.Name + " / " + e.Project.Name
}

type Settings struct {
	WorkDuration  int `json:"workDuration"`
	BreakDuration int `json:"breakDuration"`
}

type Export struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// StartTimer is the body of POST /api/timer.
type StartTimer struct {
	ProjectID   *string `json:"projectId,omitempty"`
	Description string  `json:"description,omitempty"`
}

// TimerUpdate is the body of PUT /api/timer. Nil fields are not sent;
// ClearProject sends an explicit null project.
type TimerUpdate struct {
	IsPaused     *bool
	Accumulated  *int64
	ProjectID    *string
	ClearProject bool
	Description  *string
}

// Body renders u as the JSON object the server expects. An empty
// description is sent as null.
func (u TimerUpdate) Body() map[string]any {
	body := map[string]any{}
	if u.IsPaused != nil {
		body["isPaused"] = *u.IsPaused
	}
	if u.Accumulated != nil {
		body["accumulated"] = *u.Accumulated
	}
	if u.ClearProject {
		body["projectId"] = nil
	} else if u.ProjectID != nil {
		body["projectId"] = *u.ProjectID
	}
	if u.Description != nil {
		if *u.Description == "" {
			body["description"] = nil
		} else {
			body["description"] = *u.Description
		}
	}
	return body
}

// NewEntry is the body of POST /api/entries.
type NewEntry struct {
	ProjectID   *string `json:"projectId,omitempty"`
	Description string  `json:"description,omitempty"`
	Duration    int     `json:"duration"`
}

// EntryQuery filters entry listings and exports. Empty fields are omitted.
type EntryQuery struct {
	ProjectID string
	ClientID  string
	Invoiced  *bool
	DateFrom  string
	DateTo    string
}
