package http

import (
	"context"

	"gigs/entities"
	"gigs/validation"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
)

type Handler struct {
	eventBus   *cqrs.EventBus
	gigRepo    GigRepository
	ticketRepo TicketRepository
	validator  validation.Validator
}

type GigRepository interface {
	ByID(ctx context.Context, gigID string) (entities.Gig, error)
	All(ctx context.Context) ([]entities.Gig, error)
	Add(ctx context.Context, gig entities.Gig) error
}

type TicketRepository interface {
	Get(ctx context.Context) ([]entities.Ticket, error)
}
