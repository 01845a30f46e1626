package entities

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	TicketID  string    `json:"ticket_id" db:"ticket_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	GigID     string    `json:"gig_id" db:"gig_id"`
}

// NewTicket mints the purchase record. The ticket id doubles as the access
// code in the confirmation email, so it has to be unguessable and unique
// without a registry lookup.
func NewTicket(name, email, gigID string) Ticket {
	return Ticket{
		TicketID:  uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Name:      name,
		Email:     email,
		GigID:     gigID,
	}
}
