package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/config"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

// EntryInput creates a time entry. Duration wins over StartTime/EndTime
// when both are given.
type EntryInput struct {
	ProjectID   *string    `json:"projectId"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    *int       `json:"duration"`
	Invoiced    bool       `json:"invoiced"`
}

// EntryPatch edits an entry. Absent fields stay as they are.
type EntryPatch struct {
	ProjectID   models.OptionalString `json:"projectId"`
	Description models.OptionalString `json:"description"`
	StartTime   *time.Time            `json:"startTime"`
	EndTime     *time.Time            `json:"endTime"`
	Duration    *int                  `json:"duration"`
	Invoiced    *bool                 `json:"invoiced"`
}

type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	now         func() time.Time
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *EntryService {
	return &EntryService{db: db, repomanager: m, config: cfg, now: time.Now}
}

func (s *EntryService) Create(ctx context.Context, in EntryInput) (*models.TimeEntry, error) {
	minutes, err := timex.Resolve(timex.SpecFrom(in.Duration, in.StartTime, in.EndTime))
	if err != nil {
		return nil, err
	}

	now := s.now()
	e := &models.TimeEntry{
		ID:          newID(),
		ProjectID:   nonEmpty(in.ProjectID),
		Description: nonEmpty(in.Description),
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Duration:    minutes,
		Invoiced:    in.Invoiced,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *models.TimeEntry
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := projectExists(ctx, s.repomanager, tx, e.ProjectID); err != nil {
			return err
		}
		repo := s.repomanager.Entries(tx)
		if err := repo.Create(ctx, e); err != nil {
			return err
		}
		got, err := repo.Get(ctx, e.ID)
		if err != nil {
			return err
		}
		created = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies p to entry id. When p carries a start/end pair but no
// duration, the duration is recomputed from the pair.
func (s *EntryService) Update(ctx context.Context, id string, p EntryPatch) (*models.TimeEntry, error) {
	var (
		minutes    int
		hasMinutes bool
	)
	if spec := timex.SpecFrom(p.Duration, p.StartTime, p.EndTime); spec != nil {
		m, err := timex.Resolve(spec)
		if err != nil {
			return nil, err
		}
		minutes, hasMinutes = m, true
	} else if p.Duration != nil {
		return nil, timex.ErrDurationTooShort
	}

	var updated *models.TimeEntry
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)

		e, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}

		if p.ProjectID.Set {
			e.ProjectID = nonEmpty(p.ProjectID.Value)
			if err := projectExists(ctx, s.repomanager, tx, e.ProjectID); err != nil {
				return err
			}
		}
		if p.Description.Set {
			e.Description = nonEmpty(p.Description.Value)
		}
		if p.StartTime != nil {
			e.StartTime = p.StartTime
		}
		if p.EndTime != nil {
			e.EndTime = p.EndTime
		}
		if hasMinutes {
			e.Duration = minutes
		}
		if p.Invoiced != nil {
			e.Invoiced = *p.Invoiced
		}
		e.UpdatedAt = s.now()

		if err := repo.Update(ctx, e); err != nil {
			return err
		}
		updated, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *EntryService) Get(ctx context.Context, id string) (*models.TimeEntry, error) {
	return s.repomanager.Entries(s.db).Get(ctx, id)
}

func (s *EntryService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Entries(s.db).Delete(ctx, id)
}

func (s *EntryService) List(ctx context.Context, f models.EntryFilter) ([]*models.TimeEntry, error) {
	return s.repomanager.Entries(s.db).List(ctx, f)
}

// EntryQuery is the raw, string-typed filter as it arrives in a URL.
type EntryQuery struct {
	ProjectID string
	ClientID  string
	Invoiced  string
	DateFrom  string
	DateTo    string
}

// Filter converts q into a models.EntryFilter. Invoiced values other than
// "true" and "false" are ignored. DateTo is inclusive: entries created any
// time on that day match.
func (q EntryQuery) Filter() (models.EntryFilter, error) {
	f := models.EntryFilter{ProjectID: q.ProjectID, ClientID: q.ClientID}

	switch q.Invoiced {
	case "true":
		v := true
		f.Invoiced = &v
	case "false":
		v := false
		f.Invoiced = &v
	}

	if q.DateFrom != "" {
		from, err := parseDate(q.DateFrom)
		if err != nil {
			return f, common.NewValidationError("Invalid dateFrom")
		}
		f.CreatedFrom = &from
	}
	if q.DateTo != "" {
		to, err := parseDate(q.DateTo)
		if err != nil {
			return f, common.NewValidationError("Invalid dateTo")
		}
		before := to.Add(24 * time.Hour)
		f.CreatedBefore = &before
	}
	return f, nil
}

// parseDate accepts YYYY-MM-DD (UTC midnight) or RFC 3339.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", v, err)
	}
	return t, nil
}
