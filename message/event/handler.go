package event

import (
	"context"

	"gigs/entities"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket entities.Ticket) error
}

type Handler struct {
	ticketRepo TicketRepository
}

func NewHandler(ticketRepo TicketRepository) Handler {
	if ticketRepo == nil {
		panic("missing ticketRepo")
	}
	return Handler{
		ticketRepo: ticketRepo,
	}
}
