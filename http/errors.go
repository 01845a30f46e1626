package http

import "gigs/entities"

// errorResponse is the generic client/server error shape. It deliberately
// has no "errors" array, so callers can tell it apart from a validation
// failure.
type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Errors []entities.FieldError `json:"errors"`
}
