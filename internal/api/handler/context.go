package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

// ctxIdentity returns the identity attached by the Auth middleware. A
// handler mounted without it fails closed with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := domain.IdentityFrom(c.Request().Context())
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

// Pagination ceilings per listing.
const (
	defaultLimit = 50
	maxJobLimit  = 100
	maxFormLimit = 500
)

// parsePage reads limit and offset from the query string. A missing,
// non-numeric or non-positive limit falls back to the default; limits above
// maxLimit are clamped. Negative or invalid offsets become zero.
func parsePage(c echo.Context, maxLimit int) ports.Page {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return ports.Page{Limit: limit, Offset: offset}
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// optional maps an empty form value to nil.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
