package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// TicketService implements self-service event registration.
type TicketService interface {
	Register(ctx context.Context, eventID, userID int64) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error)
}
