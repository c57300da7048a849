package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// EventInput is the DTO passed from the transport layer for create and update.
type EventInput struct {
	Title       string
	Description string
	Date        string
	CreatedBy   int64
}

// EventService implements admin-gated event management and the public listing.
type EventService interface {
	Create(ctx context.Context, in EventInput) (*domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, id int64, in EventInput) error
	Delete(ctx context.Context, id int64) error
}
