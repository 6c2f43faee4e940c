package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/infrastructure/cache"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/logger"
)

// ResponseCacheMiddleware serves cached GET responses and invalidates
// cached entries when a mutation touches the same resource prefix.
type ResponseCacheMiddleware struct {
	cache  *cache.ResponseCache
	logger logger.Interface
}

func NewResponseCacheMiddleware(responseCache *cache.ResponseCache, log logger.Interface) *ResponseCacheMiddleware {
	return &ResponseCacheMiddleware{
		cache:  responseCache,
		logger: log,
	}
}

type cachingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachingWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

// CacheGET serves GET requests from the cache when possible and stores
// successful responses for the given ttl. A non-positive ttl uses the
// cache's default. The cache key includes the caller's role so a staff
// listing is never replayed to an end user.
func (m *ResponseCacheMiddleware) CacheGET(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)

		if payload, ok := m.cache.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, constants.ContentTypeJSON, payload)
			c.Abort()
			return
		}

		writer := &cachingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK && writer.body.Len() > 0 {
			if err := m.cache.Set(c.Request.Context(), key, writer.body.Bytes(), ttl); err != nil {
				m.logger.Warnw("failed to cache response", "error", err, "key", key)
			}
		}
	}
}

// InvalidateOnWrite drops cached entries containing the prefix after any
// successful mutating request.
func (m *ResponseCacheMiddleware) InvalidateOnWrite(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}

		if err := m.cache.InvalidateBySubstring(c.Request.Context(), prefix); err != nil {
			m.logger.Warnw("failed to invalidate cached responses", "error", err, "prefix", prefix)
		}
	}
}

func cacheKey(c *gin.Context) string {
	key := "GET:" + c.Request.URL.Path
	if query := c.Request.URL.RawQuery; query != "" {
		key += "?" + query
	}
	// Role-scoped: list contents differ between staff and end users.
	if role := c.GetString(constants.ContextKeyUserRole); role != "" {
		key += ":role=" + role
	}
	if userID := c.GetUint(constants.ContextKeyUserID); userID != 0 {
		key += ":user=" + strconv.FormatUint(uint64(userID), 10)
	}
	return key
}
