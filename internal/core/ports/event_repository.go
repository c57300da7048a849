package ports

import (
	"context"

	"github.com/eventhub/event-platform/internal/core/domain"
)

// EventRepository handles event persistence.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)

	// Update and Delete report domain.ErrEventNotFound when no row matched.
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int64) error
}
