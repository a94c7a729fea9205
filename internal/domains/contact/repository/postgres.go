package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/contact"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) contact.Repository {
	return &postgresRepository{pool: pool}
}

const messageColumns = `
	id, name, email, subject, message, COALESCE(ip_address, ''),
	is_read, is_replied, created_at`

func scanMessage(row pgx.Row) (*contact.Message, error) {
	var m contact.Message
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IPAddress,
		&m.IsRead, &m.IsReplied, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepository) Create(ctx context.Context, m *contact.Message) (*contact.Message, error) {
	query := `
		INSERT INTO contact_messages (name, email, subject, message, ip_address)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING ` + messageColumns

	created, err := scanMessage(r.pool.QueryRow(ctx, query,
		m.Name, m.Email, m.Subject, m.Message, m.IPAddress,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*contact.Message, error) {
	query := `SELECT ` + messageColumns + `
		FROM contact_messages
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*contact.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE id = $1`

	m, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

func (r *postgresRepository) MarkRead(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	return r.setFlag(ctx, id, `is_read`)
}

func (r *postgresRepository) MarkReplied(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	return r.setFlag(ctx, id, `is_replied`)
}

// setFlag flips a single status column. Marking a replied message also
// marks it read.
func (r *postgresRepository) setFlag(ctx context.Context, id uuid.UUID, column string) (*contact.Message, error) {
	set := column + ` = TRUE`
	if column == `is_replied` {
		set += `, is_read = TRUE`
	}

	query := `UPDATE contact_messages SET ` + set + `
		WHERE id = $1
		RETURNING ` + messageColumns

	m, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	return m, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
