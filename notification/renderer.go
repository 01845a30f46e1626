package notification

import (
	"fmt"

	"gigs/entities"
)

// Render builds the confirmation email for a purchase. Pure: same event,
// same output.
func Render(event entities.TicketPurchaseConfirmed) (subject, body string) {
	subject = fmt.Sprintf("Your ticket for %s in %s", event.Gig.Band, event.Gig.City)

	body = fmt.Sprintf(`Hi %s,

Thanks for buying a ticket for %s in %s.

Your access code is %s.

Collect your ticket at %s on %s at %s. Bring this access code and photo ID with you.

See you at the gig!
`,
		event.Ticket.Name,
		event.Gig.Band,
		event.Gig.City,
		event.Ticket.TicketID,
		event.Gig.CollectionPoint,
		event.Gig.Date,
		event.Gig.CollectionTime,
	)

	return subject, body
}
