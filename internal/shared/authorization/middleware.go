package authorization

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/shared/constants"
)

// ActorFromContext builds the permission Actor from the values the auth
// middleware stored on the gin context.
func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		ID:   c.GetUint(constants.ContextKeyUserID),
		Role: ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}
}
