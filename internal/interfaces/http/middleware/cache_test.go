package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"quickdesk/internal/shared/constants"
)

func newTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name   string
		target string
		role   string
		userID uint
		want   string
	}{
		{
			name:   "anonymous path only",
			target: "/api/categories",
			want:   "GET:/api/categories",
		},
		{
			name:   "query preserved",
			target: "/api/tickets?status=open&page=2",
			role:   "admin",
			userID: 7,
			want:   "GET:/api/tickets?status=open&page=2:role=admin:user=7",
		},
		{
			name:   "role scoping",
			target: "/api/tickets",
			role:   "support_agent",
			userID: 12,
			want:   "GET:/api/tickets:role=support_agent:user=12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.target)
			if tt.role != "" {
				c.Set(constants.ContextKeyUserRole, tt.role)
			}
			if tt.userID != 0 {
				c.Set(constants.ContextKeyUserID, tt.userID)
			}

			assert.Equal(t, tt.want, cacheKey(c))
		})
	}
}

func TestCacheKeyDiffersPerViewer(t *testing.T) {
	agent := newTestContext(t, "/api/tickets")
	agent.Set(constants.ContextKeyUserRole, "support_agent")
	agent.Set(constants.ContextKeyUserID, uint(3))

	endUser := newTestContext(t, "/api/tickets")
	endUser.Set(constants.ContextKeyUserRole, "end_user")
	endUser.Set(constants.ContextKeyUserID, uint(4))

	assert.NotEqual(t, cacheKey(agent), cacheKey(endUser))
}
