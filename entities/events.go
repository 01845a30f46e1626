package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

// TicketPurchaseConfirmed pairs the ticket with a snapshot of the gig as of
// publish time. Later catalog edits must not affect events already in flight.
type TicketPurchaseConfirmed struct {
	Header EventHeader `json:"header"`

	Ticket Ticket `json:"ticket"`
	Gig    Gig    `json:"gig"`
}
