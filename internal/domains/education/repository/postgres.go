package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/education"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) education.Repository {
	return &postgresRepository{pool: pool}
}

const educationColumns = `
	id, institution, degree, COALESCE(field_of_study, ''), education_type,
	COALESCE(description, ''),
	start_date, end_date, is_completed, grade, COALESCE(credential_url, ''),
	sort_order, created_at, updated_at`

func scanEducation(row pgx.Row) (*education.Education, error) {
	var e education.Education
	err := row.Scan(
		&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.EducationType,
		&e.Description,
		&e.StartDate, &e.EndDate, &e.IsCompleted, &e.Grade, &e.CredentialURL,
		&e.SortOrder, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*education.Education, error) {
	query := `SELECT ` + educationColumns + `
		FROM education
		ORDER BY sort_order ASC, end_date DESC NULLS FIRST`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var entries []*education.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE id = $1`

	e, err := scanEducation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get education: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *education.Education) (*education.Education, error) {
	query := `
		INSERT INTO education (
			institution, degree, field_of_study, education_type, description,
			start_date, end_date, is_completed, grade, credential_url, sort_order
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + educationColumns

	created, err := scanEducation(r.pool.QueryRow(ctx, query,
		e.Institution, e.Degree, e.FieldOfStudy, e.EducationType, e.Description,
		e.StartDate, e.EndDate, e.IsCompleted, e.Grade, e.CredentialURL, e.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, e *education.Education) (*education.Education, error) {
	query := `
		UPDATE education SET
			institution = $2, degree = $3, field_of_study = $4,
			education_type = $5, description = $6,
			start_date = $7, end_date = $8, is_completed = $9, grade = $10,
			credential_url = $11, sort_order = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + educationColumns

	updated, err := scanEducation(r.pool.QueryRow(ctx, query, id,
		e.Institution, e.Degree, e.FieldOfStudy,
		e.EducationType, e.Description,
		e.StartDate, e.EndDate, e.IsCompleted, e.Grade,
		e.CredentialURL, e.SortOrder,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, education.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return education.ErrNotFound
	}
	return nil
}
