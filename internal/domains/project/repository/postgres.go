package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/project"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresRepository{pool: pool}
}

const projectColumns = `
	id, title, slug, description, COALESCE(short_description, ''),
	category, status,
	COALESCE(github_url, ''), COALESCE(live_url, ''), COALESCE(demo_url, ''),
	COALESCE(image, ''), COALESCE(technologies, ''),
	is_featured, is_completed, start_date, end_date, created_at, updated_at`

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Category, &p.Status,
		&p.GithubURL, &p.LiveURL, &p.DemoURL,
		&p.Image, &p.Technologies,
		&p.IsFeatured, &p.IsCompleted, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// isUniqueViolation reports whether err is a unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *postgresRepository) List(ctx context.Context, f project.Filter) ([]*project.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3::boolean IS NULL OR is_featured = $3)
		ORDER BY is_featured DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, f.Category, f.Status, f.Featured)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE slug = $1`

	p, err := scanProject(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by slug: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	query := `
		INSERT INTO projects (
			title, slug, description, short_description, category, status,
			github_url, live_url, demo_url, image, technologies,
			is_featured, is_completed, start_date, end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + projectColumns

	created, err := scanProject(r.pool.QueryRow(ctx, query,
		p.Title, p.Slug, p.Description, p.ShortDescription, p.Category, p.Status,
		p.GithubURL, p.LiveURL, p.DemoURL, p.Image, p.Technologies,
		p.IsFeatured, p.IsCompleted, p.StartDate, p.EndDate,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, project.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, p *project.Project) (*project.Project, error) {
	query := `
		UPDATE projects SET
			title = $2, slug = $3, description = $4, short_description = $5,
			category = $6, status = $7, github_url = $8, live_url = $9,
			demo_url = $10, image = $11, technologies = $12,
			is_featured = $13, is_completed = $14, start_date = $15,
			end_date = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + projectColumns

	updated, err := scanProject(r.pool.QueryRow(ctx, query, id,
		p.Title, p.Slug, p.Description, p.ShortDescription,
		p.Category, p.Status, p.GithubURL, p.LiveURL,
		p.DemoURL, p.Image, p.Technologies,
		p.IsFeatured, p.IsCompleted, p.StartDate,
		p.EndDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, project.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}
