package http

import (
	"errors"
	"fmt"
	"net/http"

	"gigs/db"
	"gigs/entities"

	"github.com/labstack/echo/v4"
)

type purchaseResponse struct {
	TicketID string `json:"ticket_id"`
}

func (h Handler) PostPurchases(c echo.Context) error {
	var request entities.PurchaseRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: errs})
	}

	ctx := c.Request().Context()

	gig, err := h.gigRepo.ByID(ctx, request.Gig)
	if errors.Is(err, db.ErrGigNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown gig: " + request.Gig})
	}
	if err != nil {
		return fmt.Errorf("failed to look up gig %s: %w", request.Gig, err)
	}

	ticket := entities.NewTicket(request.Name, request.Email, request.Gig)

	event := entities.TicketPurchaseConfirmed{
		Header: entities.NewEventHeader(),
		Ticket: ticket,
		Gig:    gig,
	}

	// the purchase is accepted only once the event is on the channel
	if err := h.eventBus.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish TicketPurchaseConfirmed event: %w", err)
	}

	return c.JSON(http.StatusCreated, purchaseResponse{TicketID: ticket.TicketID})
}
