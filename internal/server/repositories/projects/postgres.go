package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/dbx"
	"github.com/dmitrijs2005/pomokeeper/internal/server/models"
)

const selectProjects = `
	SELECT p.id, p.name, p.client_id, p.created_at, p.updated_at,
	       c.id, c.name, c.created_at, c.updated_at
	FROM projects p
	JOIN clients c ON c.id = p.client_id`

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

func scanProject(row scanner) (*models.Project, error) {
	var p models.Project
	var c models.Client
	if err := row.Scan(
		&p.ID, &p.Name, &p.ClientID, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Client = &c
	return &p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) error {
	query := `INSERT INTO projects (id, name, client_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.ClientID, p.CreatedAt, p.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, selectProjects+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, clientID string) ([]*models.Project, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if clientID == "" {
		rows, err = r.db.QueryContext(ctx, selectProjects+` ORDER BY p.created_at DESC`)
	} else {
		rows, err = r.db.QueryContext(ctx, selectProjects+` WHERE p.client_id = $1 ORDER BY p.created_at DESC`, clientID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	result := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) error {
	query := `UPDATE projects SET name = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}
