package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) skill.Repository {
	return &postgresRepository{pool: pool}
}

const skillColumns = `
	id, name, category, proficiency,
	COALESCE(icon, ''), COALESCE(color, ''),
	is_featured, sort_order, created_at, updated_at`

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(
		&s.ID, &s.Name, &s.Category, &s.Proficiency,
		&s.Icon, &s.Color,
		&s.IsFeatured, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepository) List(ctx context.Context, f skill.Filter) ([]*skill.Skill, error) {
	query := `SELECT ` + skillColumns + `
		FROM skills
		WHERE ($1 = '' OR category ILIKE '%' || $1 || '%')
		  AND ($2::boolean IS NULL OR is_featured = $2)
		ORDER BY category ASC, proficiency DESC, sort_order ASC`

	rows, err := r.pool.Query(ctx, query, f.Category, f.Featured)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []*skill.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`

	s, err := scanSkill(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return s, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	query := `
		INSERT INTO skills (name, category, proficiency, icon, color, is_featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + skillColumns

	created, err := scanSkill(r.pool.QueryRow(ctx, query,
		s.Name, s.Category, s.Proficiency, s.Icon, s.Color, s.IsFeatured, s.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, s *skill.Skill) (*skill.Skill, error) {
	query := `
		UPDATE skills SET
			name = $2, category = $3, proficiency = $4, icon = $5,
			color = $6, is_featured = $7, sort_order = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + skillColumns

	updated, err := scanSkill(r.pool.QueryRow(ctx, query, id,
		s.Name, s.Category, s.Proficiency, s.Icon, s.Color, s.IsFeatured, s.SortOrder,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrNotFound
	}
	return nil
}
