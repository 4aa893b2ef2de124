// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"enplan/internal/delivery/http/response"
	"enplan/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys used by Authenticate to hand verified credentials to handlers.
const (
	ContextKeyClaims = "claims"
	ContextKeyToken  = "token"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the verified claims on
// the echo context. It never consults the account store; a token is accepted
// on signature and expiry alone, and handlers discover deleted accounts when
// they resolve the subject.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			tokenString = strings.TrimPrefix(authHeader, "bearer ")
		}
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Invalid or expired token")
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyToken, tokenString)

		return next(c)
	}
}

// ClaimsFromContext retrieves the claims Authenticate stored, if any.
func ClaimsFromContext(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*service.Claims)

	return claims, ok
}

// TokenFromContext retrieves the raw bearer token Authenticate stored.
func TokenFromContext(c echo.Context) string {
	token, _ := c.Get(ContextKeyToken).(string)

	return token
}
