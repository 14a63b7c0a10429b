package httpt

import (
	"net/http"
	"time"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const _callerContextKey = "caller"

func (h *PortalHandler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := h.log.GenerateRequestID()
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (h *PortalHandler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path

		h.log.LogAttrs(c.Request.Context(), logger.InfoLevel, "HTTP request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", statusCode),
			logger.String("duration", latency.String()),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_agent", c.Request.UserAgent()),
		)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > 200*time.Millisecond {
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}

// identityMiddleware trusts the gateway-injected X-User-ID and X-User-Role
// headers. The service never sees credentials, only an already
// authenticated principal.
func (h *PortalHandler) identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.GetHeader("X-User-ID"))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Missing or malformed X-User-ID header"},
			)
			return
		}

		role := entity.Role(c.GetHeader("X-User-Role"))
		if role != entity.RoleUser && role != entity.RoleAdmin {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "Missing or unknown X-User-Role header"},
			)
			return
		}

		c.Set(_callerContextKey, entity.Caller{UserID: userID, Role: role})
		c.Next()
	}
}

func (h *PortalHandler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !callerFrom(c).IsAdmin() {
			h.log.Ctx(c.Request.Context()).LogAttrs(
				c.Request.Context(), logger.WarnLevel, "admin route denied",
				logger.String("path", c.Request.URL.Path),
				logger.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "Administrator role required"},
			)
			return
		}
		c.Next()
	}
}

func callerFrom(c *gin.Context) entity.Caller {
	caller, _ := c.MustGet(_callerContextKey).(entity.Caller)
	return caller
}
