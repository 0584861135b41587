// Package services contains server-side business logic. Each service owns a
// *sql.DB and a repomanager.RepositoryManager and runs multi-step writes in a
// single transaction via dbx.WithTx.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pomokeeper/internal/timex"
)

// ErrUnknownProject is returned when a timer or entry references a project
// that does not exist.
var ErrUnknownProject = common.NewValidationError("Unknown project")

// StartTimerInput is the body of a start request. Empty strings mean "none".
type StartTimerInput struct {
	ProjectID   *string `json:"projectId"`
	Description *string `json:"description"`
}

// TimerPatch edits the running timer. Absent fields are left alone;
// ProjectID and Description may be explicitly null to clear them.
type TimerPatch struct {
	IsPaused    *bool                 `json:"isPaused"`
	ProjectID   models.OptionalString `json:"projectId"`
	Description models.OptionalString `json:"description"`
	Accumulated *int64                `json:"accumulated"`
}

// TimerService keeps the single server-side timer that survives client
// restarts and materializes it into a time entry on stop.
type TimerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTimerService(db *sql.DB, m repomanager.RepositoryManager) *TimerService {
	return &TimerService{db: db, repomanager: m, now: time.Now}
}

// Current returns the running timer with its elapsed seconds as of now, or
// common.ErrorNotFound when none is running.
func (s *TimerService) Current(ctx context.Context) (*models.TimerStatus, error) {
	t, err := s.repomanager.Timers(s.db).Get(ctx)
	if err != nil {
		return nil, err
	}
	return &models.TimerStatus{
		ActiveTimer:    *t,
		ElapsedSeconds: timex.ElapsedSeconds(t.Accumulated, t.IsPaused, t.StartTime, s.now()),
	}, nil
}

// Start replaces whatever timer exists with a fresh one running from now.
func (s *TimerService) Start(ctx context.Context, in StartTimerInput) (*models.ActiveTimer, error) {
	now := s.now()
	t := &models.ActiveTimer{
		StartTime:   now,
		ProjectID:   nonEmpty(in.ProjectID),
		Description: nonEmpty(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := projectExists(ctx, s.repomanager, tx, t.ProjectID); err != nil {
			return err
		}
		return s.repomanager.Timers(tx).Put(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Update applies p to the running timer. Resuming restarts the run segment
// at now; the client is expected to send the banked seconds along.
func (s *TimerService) Update(ctx context.Context, p TimerPatch) (*models.ActiveTimer, error) {
	if p.Accumulated != nil && *p.Accumulated < 0 {
		return nil, common.NewValidationError("Accumulated must not be negative")
	}

	var updated *models.ActiveTimer
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Timers(tx)

		t, err := repo.Get(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		if p.IsPaused != nil {
			t.IsPaused = *p.IsPaused
			if t.IsPaused {
				t.PausedAt = &now
			} else {
				t.PausedAt = nil
				t.StartTime = now
			}
		}
		if p.ProjectID.Set {
			t.ProjectID = nonEmpty(p.ProjectID.Value)
			if err := projectExists(ctx, s.repomanager, tx, t.ProjectID); err != nil {
				return err
			}
		}
		if p.Description.Set {
			t.Description = nonEmpty(p.Description.Value)
		}
		if p.Accumulated != nil {
			t.Accumulated = *p.Accumulated
		}
		t.UpdatedAt = now

		if err := repo.Put(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Stop removes the running timer. With save set and at least one started
// minute on the clock, the session is recorded as a time entry, which is
// returned; otherwise the returned entry is nil.
func (s *TimerService) Stop(ctx context.Context, save bool) (*models.TimeEntry, error) {
	var entry *models.TimeEntry

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		timers := s.repomanager.Timers(tx)

		t, err := timers.Get(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		minutes := timex.CeilMinutes(timex.ElapsedSeconds(t.Accumulated, t.IsPaused, t.StartTime, now))

		if err := timers.Delete(ctx); err != nil {
			return err
		}

		if !save || minutes <= 0 {
			return nil
		}

		// StartTime moves on every resume; CreatedAt is the session start.
		start := t.CreatedAt
		if start.IsZero() {
			start = t.StartTime
		}
		end := now
		entry = &models.TimeEntry{
			ID:          newID(),
			ProjectID:   t.ProjectID,
			Description: t.Description,
			StartTime:   &start,
			EndTime:     &end,
			Duration:    minutes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.repomanager.Entries(tx).Create(ctx, entry); err != nil {
			return fmt.Errorf("error creating entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// projectExists maps a dangling project reference to ErrUnknownProject.
func projectExists(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, projectID *string) error {
	if projectID == nil {
		return nil
	}
	if _, err := m.Projects(db).Get(ctx, *projectID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrUnknownProject
		}
		return err
	}
	return nil
}
