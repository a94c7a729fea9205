package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/stats"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) stats.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetCounts(ctx context.Context) (*stats.Counts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM projects WHERE is_featured = TRUE),
			(SELECT COUNT(*) FROM skills),
			(SELECT COUNT(*) FROM experiences),
			(SELECT COUNT(*) FROM education),
			(SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE),
			(SELECT MIN(start_date) FROM experiences)`

	var c stats.Counts
	var earliest *time.Time
	err := r.pool.QueryRow(ctx, query).Scan(
		&c.Projects, &c.FeaturedProjects, &c.Skills,
		&c.Experiences, &c.Education, &c.UnreadMessages, &earliest,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio counts: %w", err)
	}
	if earliest != nil {
		c.EarliestStart = *earliest
	}
	return &c, nil
}
