package handler

import (
	"errors"
	"strings"

	"ggplay-backend/controller/respond"
	"ggplay-backend/service/auth_service"

	"github.com/gin-gonic/gin"
)

// contextUserIDKey gin context key holding the authenticated user id
const contextUserIDKey = "userId"

// AuthMiddleware validates the bearer token and stores the user id in
// the request context. Requests without a valid token are rejected with
// a machine-readable error code.
func AuthMiddleware(tokens *auth_service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			respond.Unauthorized(c, auth_service.CodeTokenInvalid, "missing bearer token")
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, auth_service.ErrTokenExpired) {
				respond.Unauthorized(c, auth_service.CodeTokenExpired, "token has expired")
				return
			}
			respond.Unauthorized(c, auth_service.CodeTokenInvalid, "invalid token")
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
