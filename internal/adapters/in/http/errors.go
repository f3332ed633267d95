package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bookmarket/internal/pkg/errs"
)

// statusForError maps the closed error taxonomy onto HTTP status codes.
// Order matters: sentinel checks run from most to least specific, and anything
// unrecognized is a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrStatusNotFound):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error as the standard JSON error body. Server errors
// keep their detail out of the response.
func writeError(ctx echo.Context, err error) error {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
