package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/models"
)

type ProjectRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewProjectRepo(pool *pgxpool.Pool, timeout time.Duration) *ProjectRepo {
	return &ProjectRepo{pool: pool, timeout: timeout}
}

const projectColumns = `id, title, category, problem, solution, tech, github, demo, features, featured, image, created_at, updated_at`

func (r *ProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM projects
		ORDER BY created_at DESC
	`, projectColumns))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	results := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return results, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE id = $1
	`, projectColumns), id)

	return scanProject(row)
}

func (r *ProjectRepo) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (title, category, problem, solution, tech, github, demo, features, featured, image)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at, updated_at
	`,
		project.Title,
		project.Category,
		project.Problem,
		project.Solution,
		project.Tech,
		project.Github,
		project.Demo,
		project.Features,
		project.Featured,
		project.Image,
	)

	if err := row.Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return project, nil
}

func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET title = $1, category = $2, problem = $3, solution = $4, tech = $5,
			github = $6, demo = $7, features = $8, featured = $9, image = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at
	`,
		project.Title,
		project.Category,
		project.Problem,
		project.Solution,
		project.Tech,
		project.Github,
		project.Demo,
		project.Features,
		project.Featured,
		project.Image,
		project.ID,
	)

	if err := row.Scan(&project.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var project models.Project
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Category,
		&project.Problem,
		&project.Solution,
		&project.Tech,
		&project.Github,
		&project.Demo,
		&project.Features,
		&project.Featured,
		&project.Image,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	return &project, nil
}
