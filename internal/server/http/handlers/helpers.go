package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetcrumb/bakeshop/internal/domain/errors"
	pkgAuth "github.com/sweetcrumb/bakeshop/internal/pkg/auth"
	"github.com/sweetcrumb/bakeshop/internal/server/http/dto"
	"github.com/sweetcrumb/bakeshop/internal/server/http/middleware"
)

// CurrentClaims extracts the authenticated token claims from context. Returns
// nil when the route is not behind AuthRequired.
func CurrentClaims(c *gin.Context) *pkgAuth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := val.(*pkgAuth.Claims)
	return claims
}

// statusFromError maps domain errors to HTTP codes. Validation failures keep
// their own message; anything unexpected collapses into 500.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, domainErrors.ErrMissingFields),
		errors.Is(err, domainErrors.ErrPasswordMismatch),
		errors.Is(err, domainErrors.ErrPasswordTooShort),
		errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrInvalidLineItem),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrUnknownRole):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, ""
	}
}

// writeError renders the uniform error body, substituting the endpoint's
// fallback message for internal failures so storage details never leak.
func writeError(c *gin.Context, err error, fallback string) {
	code, msg := statusFromError(err)
	if code == http.StatusInternalServerError {
		msg = fallback
	}
	c.JSON(code, dto.ErrorResponse{Error: msg})
}
