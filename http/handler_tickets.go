package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h Handler) GetTickets(c echo.Context) error {
	tickets, err := h.ticketRepo.Get(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed getting tickets %w", err)
	}

	return c.JSON(http.StatusOK, tickets)
}
