package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sweetcrumb/bakeshop/internal/domain/model"
	pkgAuth "github.com/sweetcrumb/bakeshop/internal/pkg/auth"
	"github.com/sweetcrumb/bakeshop/internal/server/http/dto"
)

// ClaimsContextKey is a gin context key for authenticated token claims.
const ClaimsContextKey = "authClaims"

// TokenParser verifies bearer tokens for protected routes.
type TokenParser interface {
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// AuthRequired ensures the request carries a valid bearer token before the
// handler runs. A missing token and a bad token fail with different codes so
// clients can tell "log in" apart from "log in again".
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				abortWithError(c, http.StatusForbidden, "Invalid or expired token")
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireRole gates the handler on the authenticated user's role. It must run
// after AuthRequired.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ClaimsContextKey)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		claims, ok := val.(*pkgAuth.Claims)
		if !ok || claims == nil {
			abortWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if claims.Role != role {
			abortWithError(c, http.StatusForbidden, accessDeniedMessage(role))
			return
		}
		c.Next()
	}
}

func accessDeniedMessage(role model.Role) string {
	if role == model.RoleAdmin {
		return "Access denied. Admin role required."
	}
	return "Access denied."
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, dto.ErrorResponse{Error: message})
}
