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

type ResumeRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewResumeRepo(pool *pgxpool.Pool, timeout time.Duration) *ResumeRepo {
	return &ResumeRepo{pool: pool, timeout: timeout}
}

// Get returns the sole resume record including bytes, or ErrNotFound.
func (r *ResumeRepo) Get(ctx context.Context) (*models.Resume, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT id, file_name, url, content_type, data, created_at, updated_at
		FROM resumes
	`)

	var resume models.Resume
	if err := row.Scan(
		&resume.ID,
		&resume.FileName,
		&resume.URL,
		&resume.ContentType,
		&resume.Data,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return &resume, nil
}

// Upsert writes the single resume slot. The resumes_singleton index makes the
// insert path race-safe; concurrent uploads resolve last-write-wins.
func (r *ResumeRepo) Upsert(ctx context.Context, resume *models.Resume) (*models.Resume, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO resumes (file_name, url, content_type, data)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at
		`, resume.FileName, resume.URL, resume.ContentType, resume.Data)
		if err := row.Scan(&resume.ID, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
			return nil, fmt.Errorf("insert resume: %w", err)
		}
		return resume, nil
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE resumes
		SET file_name = $1, url = $2, content_type = $3, data = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, created_at, updated_at
	`, resume.FileName, resume.URL, resume.ContentType, resume.Data, existing.ID)
	if err := row.Scan(&resume.ID, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	return resume, nil
}
