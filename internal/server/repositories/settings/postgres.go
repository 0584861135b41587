package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `SELECT work_duration, break_duration, updated_at FROM settings WHERE slot`

	var s models.Settings
	if err := r.db.QueryRowContext(ctx, query).Scan(&s.WorkDuration, &s.BreakDuration, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) Put(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO settings (slot, work_duration, break_duration, updated_at)
		VALUES (TRUE, $1, $2, $3)
		ON CONFLICT (slot)
		DO UPDATE SET
			work_duration = EXCLUDED.work_duration,
			break_duration = EXCLUDED.break_duration,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, s.WorkDuration, s.BreakDuration, s.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
