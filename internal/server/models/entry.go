package models

import "time"

// TimeEntry is a completed, billable record of work.
type TimeEntry struct {
	ID          string     `json:"id"`
	ProjectID   *string    `json:"projectId"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	// Duration is in whole minutes and is always at least 1.
	Duration  int       `json:"duration"`
	Invoiced  bool      `json:"invoiced"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Project is joined on reads together with its client.
	Project *Project `json:"project"`
}

// ClientName returns the joined client name or "".
func (e *TimeEntry) ClientName() string {
	if e.Project == nil || e.Project.Client == nil {
		return ""
	}
	return e.Project.Client.Name
}

// ProjectName returns the joined project name or "".
func (e *TimeEntry) ProjectName() string {
	if e.Project == nil {
		return ""
	}
	return e.Project.Name
}

// EntryFilter narrows entry listings. Zero values mean "no constraint".
type EntryFilter struct {
	ProjectID string
	ClientID  string
	Invoiced  *bool
	// CreatedFrom is inclusive, CreatedBefore exclusive.
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}
