package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/experience"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) experience.Repository {
	return &postgresRepository{pool: pool}
}

const experienceColumns = `
	id, company, position, COALESCE(location, ''), COALESCE(company_url, ''),
	employment_type, start_date, end_date, is_current,
	COALESCE(description, ''), COALESCE(skills_used, ''),
	COALESCE(achievements, ''), created_at, updated_at`

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	var e experience.Experience
	err := row.Scan(
		&e.ID, &e.Company, &e.Position, &e.Location, &e.CompanyURL,
		&e.EmploymentType, &e.StartDate, &e.EndDate, &e.IsCurrent,
		&e.Description, &e.SkillsUsed,
		&e.Achievements, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) List(ctx context.Context, order string) ([]*experience.Experience, error) {
	orderBy := `start_date DESC`
	if order == experience.OrderCurrentFirst {
		orderBy = `is_current DESC, start_date DESC`
	}

	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY ` + orderBy

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []*experience.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`

	e, err := scanExperience(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *experience.Experience) (*experience.Experience, error) {
	query := `
		INSERT INTO experiences (
			company, position, location, company_url, employment_type,
			start_date, end_date, is_current, description, skills_used, achievements
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + experienceColumns

	created, err := scanExperience(r.pool.QueryRow(ctx, query,
		e.Company, e.Position, e.Location, e.CompanyURL, e.EmploymentType,
		e.StartDate, e.EndDate, e.IsCurrent, e.Description, e.SkillsUsed, e.Achievements,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, e *experience.Experience) (*experience.Experience, error) {
	query := `
		UPDATE experiences SET
			company = $2, position = $3, location = $4, company_url = $5,
			employment_type = $6, start_date = $7, end_date = $8,
			is_current = $9, description = $10, skills_used = $11,
			achievements = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + experienceColumns

	updated, err := scanExperience(r.pool.QueryRow(ctx, query, id,
		e.Company, e.Position, e.Location, e.CompanyURL,
		e.EmploymentType, e.StartDate, e.EndDate,
		e.IsCurrent, e.Description, e.SkillsUsed,
		e.Achievements,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, experience.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return experience.ErrNotFound
	}
	return nil
}
