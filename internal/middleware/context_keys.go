package middleware

import "github.com/gin-gonic/gin"

const actorCtxKey = contextKey("actor")

// defaultActor is recorded in audit fields when the caller does not
// identify itself.
const defaultActor = "system"

// ActorMiddleware stores the acting user's identifier, taken from the
// X-Actor header, in the Gin context for audit trails.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Actor")
		if actor == "" {
			actor = defaultActor
		}
		c.Set(string(actorCtxKey), actor)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting user's identifier for audit
// fields. Falls back to the default actor.
func GetActorFromContext(c *gin.Context) string {
	if actor, ok := c.Get(string(actorCtxKey)); ok {
		if s, ok := actor.(string); ok && s != "" {
			return s
		}
	}
	return defaultActor
}
