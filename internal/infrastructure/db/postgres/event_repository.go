package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// EventRepository implements ports.EventRepository on Postgres.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Insert(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	const stmt = `
INSERT INTO events (title, description, date, created_by)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	created := *event
	err := r.pool.QueryRow(ctx, stmt,
		event.Title, event.Description, event.Date, event.CreatedBy,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return &created, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	const query = `
SELECT id, title, description, date, created_by, created_at
FROM events
WHERE id = $1`

	var event domain.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.Date, &event.CreatedBy, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	const query = `
SELECT id, title, description, date, created_by, created_at
FROM events
ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(&event.ID, &event.Title, &event.Description, &event.Date, &event.CreatedBy, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate events: %w", rows.Err())
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	const stmt = `
UPDATE events
SET title = $1, description = $2, date = $3
WHERE id = $4`

	tag, err := r.pool.Exec(ctx, stmt, event.Title, event.Description, event.Date, event.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	const stmt = `DELETE FROM events WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
