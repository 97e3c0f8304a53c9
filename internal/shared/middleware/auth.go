package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/session"
	"library-backend/pkg/jwt"
)

const bearerPrefix = "bearer "

// Session builds the per-request session context from the Authorization
// header.
//
// Rules:
//   - no header at all: anonymous session, request proceeds
//   - header without a bearer prefix: treated as anonymous too
//   - bearer token presented but invalid: the request fails with 401;
//     there is no silent fallback to anonymous once a token was offered
//   - bearer token valid: the claimed user is loaded and stored in the
//     request context for resolvers to read
func Session(tokens *jwt.Manager, users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
			c.Next()
			return
		}

		claims, err := tokens.Verify(authHeader[len(bearerPrefix):])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		ctx := session.WithCurrentUser(c.Request.Context(), u)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
