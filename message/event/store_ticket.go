package event

import (
	"context"

	"gigs/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

func (h Handler) StoreTicket(ctx context.Context, event *entities.TicketPurchaseConfirmed) error {
	log.FromContext(ctx).Info("Storing ticket")

	return h.ticketRepo.Create(ctx, event.Ticket)
}
