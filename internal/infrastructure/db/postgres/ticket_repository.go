package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// TicketRepository implements ports.TicketRepository on Postgres. There is no
// uniqueness constraint on (event_id, user_id): repeated registrations insert
// additional rows.
type TicketRepository struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool}
}

func (r *TicketRepository) Insert(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	const stmt = `
INSERT INTO tickets (event_id, user_id, ticket_code)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	created := *ticket
	err := r.pool.QueryRow(ctx, stmt,
		ticket.EventID, ticket.UserID, ticket.TicketCode,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	return &created, nil
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	const query = `
SELECT id, event_id, user_id, ticket_code, created_at
FROM tickets
WHERE user_id = $1
ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(&ticket.ID, &ticket.EventID, &ticket.UserID, &ticket.TicketCode, &ticket.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate tickets: %w", rows.Err())
	}
	return tickets, nil
}
