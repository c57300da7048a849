package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// TicketRepository handles ticket persistence.
type TicketRepository interface {
	// Insert persists a registration. Inserting against a missing event
	// reports domain.ErrEventNotFound.
	Insert(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error)
}
