package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
	"github.com/dmitrijs2005/pomokeeper/internal/server/repositories/repomanager"
)

// SettingsPatch updates the pomodoro targets. An absent value resets to
// its default rather than keeping the stored one.
type SettingsPatch struct {
	WorkDuration  *int `json:"workDuration"`
	BreakDuration *int `json:"breakDuration"`
}

type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m, now: time.Now}
}

// Get returns the stored settings, creating the defaults on first use.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	var result *models.Settings
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Settings(tx)

		got, err := repo.Get(ctx)
		if err == nil {
			result = got
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		defaults := &models.Settings{
			WorkDuration:  common.DefaultWorkDuration,
			BreakDuration: common.DefaultBreakDuration,
			UpdatedAt:     s.now(),
		}
		if err := repo.Put(ctx, defaults); err != nil {
			return err
		}
		result = defaults
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SettingsService) Update(ctx context.Context, p SettingsPatch) (*models.Settings, error) {
	settings := &models.Settings{
		WorkDuration:  valueOr(p.WorkDuration, common.DefaultWorkDuration),
		BreakDuration: valueOr(p.BreakDuration, common.DefaultBreakDuration),
		UpdatedAt:     s.now(),
	}
	if settings.WorkDuration < 1 || settings.BreakDuration < 1 {
		return nil, common.NewValidationError("Durations must be at least 1 minute")
	}

	if err := s.repomanager.Settings(s.db).Put(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
