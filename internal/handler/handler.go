// Package handler exposes the HTTP surface of the backend as thin echo
// handlers over the store. Validation failures map to 400, auth failures to
// 401, everything the store rolls back or rejects surfaces as 400 or 500
// with the cause message; a partially applied workflow is never reported as
// success.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Matoxx01/mikes-backend/internal/store"

	"github.com/labstack/echo/v4"
)

// Handler bundles the route handlers around one store instance
type Handler struct {
	store *store.Store
}

// New constructs the handler set
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// paramID parses a numeric path parameter
func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, err
	}
	return uint(id), nil
}

// queryID parses a numeric query parameter
func queryID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// storeError converts a store failure into the JSON error response
func storeError(c echo.Context, msg string, err error) error {
	var resolution *store.ResolutionError
	switch {
	case errors.Is(err, store.ErrInvalidPayload):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.As(err, &resolution):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": resolution.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg + ": " + err.Error()})
	}
}
