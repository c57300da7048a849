package domain

import "time"

// Ticket records one registration of a user for an event. A user may register
// for the same event more than once; every registration gets its own row and
// its own code. Codes follow TICKET-<6 lowercase alphanumerics> and are not
// guaranteed globally unique.
type Ticket struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"event_id"`
	UserID     int64     `json:"user_id"`
	TicketCode string    `json:"ticket_code"`
	CreatedAt  time.Time `json:"created_at"`
}
