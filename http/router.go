package http

import (
	"net/http"

	"gigs/validation"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/labstack/echo/v4"
)

func NewHttpRouter(
	eventBus *cqrs.EventBus,
	gigRepo GigRepository,
	ticketRepo TicketRepository,
	validator validation.Validator,
) *echo.Echo {
	e := libHttp.NewEcho()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	handler := Handler{
		eventBus:   eventBus,
		gigRepo:    gigRepo,
		ticketRepo: ticketRepo,
		validator:  validator,
	}

	e.POST("/purchases", handler.PostPurchases)
	e.GET("/gigs", handler.GetGigs)
	e.GET("/gigs/:gig_id", handler.GetGigByID)
	e.POST("/gigs", handler.PostGigs)
	e.GET("/tickets", handler.GetTickets)

	return e
}
