package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

const selectEntries = `
	SELECT e.id, e.project_id, e.description, e.start_time, e.end_time, e.duration, e.invoiced,
	       e.created_at, e.updated_at,
	       p.id, p.name, p.client_id, p.created_at, p.updated_at,
	       c.id, c.name, c.created_at, c.updated_at
	FROM time_entries e
	LEFT JOIN projects p ON p.id = e.project_id
	LEFT JOIN clients c ON c.id = p.client_id`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.TimeEntry, error) {
	var (
		e                      models.TimeEntry
		projectID, description sql.NullString
		start, end             sql.NullTime
		pID, pName, pClientID  sql.NullString
		pCreated, pUpdated     sql.NullTime
		cID, cName             sql.NullString
		cCreated, cUpdated     sql.NullTime
	)
	if err := row.Scan(
		&e.ID, &projectID, &description, &start, &end, &e.Duration, &e.Invoiced,
		&e.CreatedAt, &e.UpdatedAt,
		&pID, &pName, &pClientID, &pCreated, &pUpdated,
		&cID, &cName, &cCreated, &cUpdated,
	); err != nil {
		return nil, err
	}

	e.ProjectID = nullString(projectID)
	e.Description = nullString(description)
	e.StartTime = nullTime(start)
	e.EndTime = nullTime(end)

	if pID.Valid {
		e.Project = &models.Project{
			ID:        pID.String,
			Name:      pName.String,
			ClientID:  pClientID.String,
			CreatedAt: pCreated.Time,
			UpdatedAt: pUpdated.Time,
		}
		if cID.Valid {
			e.Project.Client = &models.Client{
				ID:        cID.String,
				Name:      cName.String,
				CreatedAt: cCreated.Time,
				UpdatedAt: cUpdated.Time,
			}
		}
	}
	return &e, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.TimeEntry) error {
	query := `
		INSERT INTO time_entries (id, project_id, description, start_time, end_time, duration, invoiced, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.ProjectID, e.Description, e.StartTime, e.EndTime, e.Duration, e.Invoiced, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.TimeEntry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx, selectEntries+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// buildFilter renders f as a WHERE clause with positional arguments.
func buildFilter(f models.EntryFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.ProjectID != "" {
		add("e.project_id = $%d", f.ProjectID)
	}
	if f.ClientID != "" {
		add("p.client_id = $%d", f.ClientID)
	}
	if f.Invoiced != nil {
		add("e.invoiced = $%d", *f.Invoiced)
	}
	if f.CreatedFrom != nil {
		add("e.created_at >= $%d", *f.CreatedFrom)
	}
	if f.CreatedBefore != nil {
		add("e.created_at < $%d", *f.CreatedBefore)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) List(ctx context.Context, f models.EntryFilter) ([]*models.TimeEntry, error) {
	where, args := buildFilter(f)

	rows, err := r.db.QueryContext(ctx, selectEntries+where+` ORDER BY e.created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []*models.TimeEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET project_id = $2, description = $3, start_time = $4, end_time = $5,
		    duration = $6, invoiced = $7, updated_at = $8
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		e.ID, e.ProjectID, e.Description, e.StartTime, e.EndTime, e.Duration, e.Invoiced, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
