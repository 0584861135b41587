package timers

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

func (r *PostgresRepository) Get(ctx context.Context) (*models.ActiveTimer, error) {
	query := `
		SELECT start_time, is_paused, paused_at, accumulated, project_id, description, created_at, updated_at
		FROM active_timer WHERE slot`

	var (
		t           models.ActiveTimer
		pausedAt    sql.NullTime
		projectID   sql.NullString
		description sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&t.StartTime, &t.IsPaused, &pausedAt, &t.Accumulated, &projectID, &description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if pausedAt.Valid {
		t.PausedAt = &pausedAt.Time
	}
	if projectID.Valid {
		t.ProjectID = &projectID.String
	}
	if description.Valid {
		t.Description = &description.String
	}
	return &t, nil
}

func (r *PostgresRepository) Put(ctx context.Context, t *models.ActiveTimer) error {
	query := `
		INSERT INTO active_timer (slot, start_time, is_paused, paused_at, accumulated, project_id, description, created_at, updated_at)
		VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (slot)
		DO UPDATE SET
			start_time = EXCLUDED.start_time,
			is_paused = EXCLUDED.is_paused,
			paused_at = EXCLUDED.paused_at,
			accumulated = EXCLUDED.accumulated,
			project_id = EXCLUDED.project_id,
			description = EXCLUDED.description,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		t.StartTime, t.IsPaused, t.PausedAt, t.Accumulated, t.ProjectID, t.Description, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM active_timer WHERE slot`)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
