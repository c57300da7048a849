package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

// ListCache abstracts the event-listing cache (Redis). Cache failures are
// never fatal: the service falls through to the repository and logs a warning.
type ListCache interface {
	Get(ctx context.Context) ([]domain.Event, bool, error)
	Set(ctx context.Context, events []domain.Event) error
	Invalidate(ctx context.Context) error
}

type eventService struct {
	repo  ports.EventRepository
	cache ListCache
	log   zerolog.Logger
}

// NewEventService returns an EventService implementation. cache may be nil,
// in which case every listing hits the repository.
func NewEventService(repo ports.EventRepository, cache ListCache, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, cache: cache, log: log}
}

func (s *eventService) Create(ctx context.Context, in ports.EventInput) (*domain.Event, error) {
	event := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		CreatedBy:   in.CreatedBy,
	}

	created, err := s.repo.Insert(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.invalidate(ctx)
	s.log.Info().Int64("event_id", created.ID).Int64("created_by", in.CreatedBy).Msg("event created")
	return created, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	if s.cache != nil {
		events, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("event cache read failed, falling back to store")
		} else if ok {
			return events, nil
		}
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, events); err != nil {
			s.log.Warn().Err(err).Msg("event cache write failed")
		}
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id int64, in ports.EventInput) error {
	event := &domain.Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("event_id", id).Msg("event updated")
	return nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("event_id", id).Msg("event deleted")
	return nil
}

func (s *eventService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("event cache invalidation failed")
	}
}
