package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-cms/portfolio-api/internal/api/middleware"
	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
)

// currentPrincipal returns the principal attached by the auth guard, or a
// 401 when the guard did not run. Handlers on AUTHENTICATED routes call
// this as a fast-fail check before any service work.
func currentPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || principal.Username == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
