package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/profile"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) profile.Repository {
	return &postgresRepository{pool: pool}
}

const profileColumns = `
	id, name, title, bio, email,
	COALESCE(phone, ''), location, COALESCE(website, ''),
	COALESCE(github_url, ''), COALESCE(linkedin_url, ''),
	COALESCE(twitter_url, ''), COALESCE(instagram_url, ''),
	COALESCE(profile_image, ''), COALESCE(resume_file, ''),
	COALESCE(meta_description, ''),
	created_at, updated_at`

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email,
		&p.Phone, &p.Location, &p.Website,
		&p.GithubURL, &p.LinkedinURL,
		&p.TwitterURL, &p.InstagramURL,
		&p.ProfileImage, &p.ResumeFile,
		&p.MetaDescription,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetActive(ctx context.Context) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY created_at ASC
		LIMIT 1`

	p, err := scanProfile(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	// The WHERE NOT EXISTS guard makes the singleton check-and-insert
	// atomic: a concurrent second insert sees the committed row and
	// returns no rows.
	query := `
		INSERT INTO profiles (
			name, title, bio, email, phone, location, website,
			github_url, linkedin_url, twitter_url, instagram_url,
			profile_image, resume_file, meta_description
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		WHERE NOT EXISTS (SELECT 1 FROM profiles)
		RETURNING ` + profileColumns

	created, err := scanProfile(r.pool.QueryRow(ctx, query,
		p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.Website,
		p.GithubURL, p.LinkedinURL, p.TwitterURL, p.InstagramURL,
		p.ProfileImage, p.ResumeFile, p.MetaDescription,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, p *profile.Profile) (*profile.Profile, error) {
	query := `
		UPDATE profiles SET
			name = $2, title = $3, bio = $4, email = $5, phone = $6,
			location = $7, website = $8, github_url = $9, linkedin_url = $10,
			twitter_url = $11, instagram_url = $12, profile_image = $13,
			resume_file = $14, meta_description = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(r.pool.QueryRow(ctx, query, id,
		p.Name, p.Title, p.Bio, p.Email, p.Phone,
		p.Location, p.Website, p.GithubURL, p.LinkedinURL,
		p.TwitterURL, p.InstagramURL, p.ProfileImage,
		p.ResumeFile, p.MetaDescription,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}
