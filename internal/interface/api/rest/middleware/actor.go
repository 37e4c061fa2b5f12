package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"user-service/internal/application/ports"
)

const (
	CtxActorID  = "actorID"
	CtxUserRole = "userRole"
)

// Actor resolves who performs a write. A bearer token must be valid and carry a UUID user_id.
// Requests without an Authorization header get a random stand-in actor.
func Actor(tokens ports.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(CtxActorID, uuid.New())
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader || tokenStr == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}
		actorID, err := claims.ActorID()
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxActorID, actorID)

		c.Next()
	}
}

// ActorID returns the actor set by Actor, or a fresh stand-in when the route is not behind it.
func ActorID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(CtxActorID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.New()
}
