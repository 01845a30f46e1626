package http

import (
	"errors"
	"fmt"
	"net/http"

	"gigs/db"
	"gigs/entities"

	"github.com/labstack/echo/v4"
)

func (h Handler) GetGigs(c echo.Context) error {
	gigs, err := h.gigRepo.All(c.Request().Context())
	if err != nil {
		return fmt.Errorf("failed to list gigs: %w", err)
	}

	return c.JSON(http.StatusOK, gigs)
}

func (h Handler) GetGigByID(c echo.Context) error {
	gigID := c.Param("gig_id")

	gig, err := h.gigRepo.ByID(c.Request().Context(), gigID)
	if errors.Is(err, db.ErrGigNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown gig: " + gigID})
	}
	if err != nil {
		return fmt.Errorf("failed to get gig %s: %w", gigID, err)
	}

	return c.JSON(http.StatusOK, gig)
}

func (h Handler) PostGigs(c echo.Context) error {
	var gig entities.Gig
	if err := c.Bind(&gig); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "malformed request body"})
	}

	if gig.GigID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "gig_id is required"})
	}

	if err := h.gigRepo.Add(c.Request().Context(), gig); err != nil {
		return fmt.Errorf("failed to save gig %s: %w", gig.GigID, err)
	}

	return c.JSON(http.StatusCreated, gig)
}
