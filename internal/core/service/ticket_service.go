package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

const ticketCodeCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
const ticketCodeLength = 6

type ticketService struct {
	tickets ports.TicketRepository
	events  ports.EventRepository
	log     zerolog.Logger
}

// NewTicketService returns a TicketService implementation.
func NewTicketService(tickets ports.TicketRepository, events ports.EventRepository, log zerolog.Logger) ports.TicketService {
	return &ticketService{tickets: tickets, events: events, log: log}
}

// Register issues a ticket for the given event. Registering twice is allowed
// and produces a second ticket with its own code.
func (s *ticketService) Register(ctx context.Context, eventID, userID int64) (*domain.Ticket, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		EventID:    eventID,
		UserID:     userID,
		TicketCode: generateTicketCode(),
	}

	created, err := s.tickets.Insert(ctx, ticket)
	if err != nil {
		return nil, fmt.Errorf("register ticket: %w", err)
	}

	s.log.Info().
		Int64("event_id", eventID).
		Int64("user_id", userID).
		Str("ticket_code", created.TicketCode).
		Msg("ticket issued")

	return created, nil
}

func (s *ticketService) ListByUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

// generateTicketCode returns a code in the format TICKET-xxxxxx. Codes are
// random but not checked for uniqueness.
func generateTicketCode() string {
	b := make([]byte, ticketCodeLength)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = ticketCodeCharset[int(b[i])%len(ticketCodeCharset)]
	}
	return "TICKET-" + string(b)
}
