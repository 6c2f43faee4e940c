package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

// PermissionChecker decides whether a role may perform an action on a
// resource. The casbin enforcer satisfies it.
type PermissionChecker interface {
	Enforce(subject, resource, action string) (bool, error)
}

// PermissionMiddleware gates routes on the persisted (role, resource,
// action) policy grid. Ownership checks stay in the usecases.
type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// Require aborts with 403 unless the caller's role is granted the action
// on the resource. It runs after RequireAuth, which stores the role on
// the context.
func (m *PermissionMiddleware) Require(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)

		allowed, err := m.checker.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"role", role, "resource", resource, "action", action, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("you do not have permission to perform this action"))
			c.Abort()
			return
		}

		c.Next()
	}
}
