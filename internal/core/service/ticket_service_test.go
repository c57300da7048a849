package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-platform/internal/core/domain"
)

type stubTicketRepo struct {
	tickets []domain.Ticket
	nextID  int64
}

func (r *stubTicketRepo) Insert(_ context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	r.nextID++
	created := *ticket
	created.ID = r.nextID
	r.tickets = append(r.tickets, created)
	return &created, nil
}

func (r *stubTicketRepo) ListByUser(_ context.Context, userID int64) ([]domain.Ticket, error) {
	var out []domain.Ticket
	for _, t := range r.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

var ticketCodePattern = regexp.MustCompile(`^TICKET-[a-z0-9]{6}$`)

func TestTicketService_Register(t *testing.T) {
	events := newStubEventRepo()
	event, _ := events.Insert(context.Background(), &domain.Event{Title: "a", Description: "b", Date: "c"})

	tickets := &stubTicketRepo{}
	svc := NewTicketService(tickets, events, zerolog.Nop())

	ticket, err := svc.Register(context.Background(), event.ID, 3)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !ticketCodePattern.MatchString(ticket.TicketCode) {
		t.Fatalf("unexpected ticket code format: %q", ticket.TicketCode)
	}
	if ticket.EventID != event.ID || ticket.UserID != 3 {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
}

// Duplicate registration is allowed: each call creates a fresh ticket row
// with its own code.
func TestTicketService_RegisterTwice(t *testing.T) {
	events := newStubEventRepo()
	event, _ := events.Insert(context.Background(), &domain.Event{Title: "a", Description: "b", Date: "c"})

	tickets := &stubTicketRepo{}
	svc := NewTicketService(tickets, events, zerolog.Nop())

	first, err := svc.Register(context.Background(), event.ID, 3)
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	second, err := svc.Register(context.Background(), event.ID, 3)
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected two distinct ticket rows")
	}
	if first.TicketCode == second.TicketCode {
		t.Fatalf("expected distinct codes, both were %q", first.TicketCode)
	}
	for _, code := range []string{first.TicketCode, second.TicketCode} {
		if !ticketCodePattern.MatchString(code) {
			t.Fatalf("unexpected ticket code format: %q", code)
		}
	}
}

func TestTicketService_RegisterUnknownEvent(t *testing.T) {
	svc := NewTicketService(&stubTicketRepo{}, newStubEventRepo(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), 99, 3); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestTicketService_ListByUser(t *testing.T) {
	events := newStubEventRepo()
	event, _ := events.Insert(context.Background(), &domain.Event{Title: "a", Description: "b", Date: "c"})

	tickets := &stubTicketRepo{}
	svc := NewTicketService(tickets, events, zerolog.Nop())

	_, _ = svc.Register(context.Background(), event.ID, 3)
	_, _ = svc.Register(context.Background(), event.ID, 4)

	mine, err := svc.ListByUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != 3 {
		t.Fatalf("unexpected tickets: %+v", mine)
	}
}

func TestGenerateTicketCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		if code := generateTicketCode(); !ticketCodePattern.MatchString(code) {
			t.Fatalf("unexpected code format: %q", code)
		}
	}
}
