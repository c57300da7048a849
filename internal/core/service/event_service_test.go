package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

type stubEventRepo struct {
	events map[int64]*domain.Event
	nextID int64
	listN  int
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[int64]*domain.Event)}
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.nextID++
	created := *event
	created.ID = r.nextID
	r.events[created.ID] = &created
	return &created, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id int64) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (r *stubEventRepo) List(_ context.Context) ([]domain.Event, error) {
	r.listN++
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.Event) error {
	e, ok := r.events[event.ID]
	if !ok {
		return domain.ErrEventNotFound
	}
	e.Title, e.Description, e.Date = event.Title, event.Description, event.Date
	return nil
}

func (r *stubEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type stubCache struct {
	entries     []domain.Event
	cached      bool
	invalidated int
	failing     bool
}

func (c *stubCache) Get(_ context.Context) ([]domain.Event, bool, error) {
	if c.failing {
		return nil, false, errors.New("cache down")
	}
	return c.entries, c.cached, nil
}

func (c *stubCache) Set(_ context.Context, events []domain.Event) error {
	if c.failing {
		return errors.New("cache down")
	}
	c.entries = events
	c.cached = true
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	if c.failing {
		return errors.New("cache down")
	}
	c.entries = nil
	c.cached = false
	c.invalidated++
	return nil
}

func TestEventService_CreateAndGet(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.EventInput{
		Title:       "GopherCon",
		Description: "The Go conference",
		Date:        "2026-11-02",
		CreatedBy:   7,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "GopherCon" || got.Description != "The Go conference" || got.Date != "2026-11-02" {
		t.Fatalf("event does not round-trip: %+v", got)
	}
	if got.CreatedBy != 7 {
		t.Fatalf("expected created_by 7, got %d", got.CreatedBy)
	}
}

func TestEventService_ListUsesCache(t *testing.T) {
	repo := newStubEventRepo()
	cache := &stubCache{}
	svc := NewEventService(repo, cache, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.EventInput{Title: "a", Description: "b", Date: "c"})

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if repo.listN != 1 {
		t.Fatalf("expected one repository read, got %d", repo.listN)
	}
}

func TestEventService_WritesInvalidateCache(t *testing.T) {
	repo := newStubEventRepo()
	cache := &stubCache{}
	svc := NewEventService(repo, cache, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.EventInput{Title: "a", Description: "b", Date: "c"})
	if cache.invalidated != 1 {
		t.Fatalf("expected invalidation on create, got %d", cache.invalidated)
	}

	if err := svc.Update(context.Background(), created.ID, ports.EventInput{Title: "a2", Description: "b2", Date: "c2"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidated != 3 {
		t.Fatalf("expected three invalidations, got %d", cache.invalidated)
	}
}

func TestEventService_CacheFailureFallsBack(t *testing.T) {
	repo := newStubEventRepo()
	cache := &stubCache{failing: true}
	svc := NewEventService(repo, cache, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.EventInput{Title: "a", Description: "b", Date: "c"})

	events, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list should survive a failing cache: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestEventService_UpdateMissing(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), nil, zerolog.Nop())

	if err := svc.Update(context.Background(), 42, ports.EventInput{Title: "a", Description: "b", Date: "c"}); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
