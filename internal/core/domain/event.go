package domain

import (
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("event not found")

// Event is an event listing created by an administrator. Date is stored as an
// opaque string — the platform never interprets it as a calendar value.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
