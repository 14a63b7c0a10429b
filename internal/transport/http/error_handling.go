package httpt

import (
	"context"
	"errors"
	"net/http"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *PortalHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
		logger.String("user_agent", c.Request.UserAgent()),
	)

	switch {
	case errors.Is(err, entity.ErrInsufficientCapacityAtSettlement):
		c.JSON(
			http.StatusConflict,
			gin.H{"error": "Available units changed since the order was placed"},
		)
	case errors.Is(err, entity.ErrInsufficientCapacity):
		c.JSON(
			http.StatusConflict,
			gin.H{"error": "Requested quantity exceeds available units"},
		)
	case errors.Is(err, entity.ErrOrderNotEditable):
		c.JSON(
			http.StatusConflict,
			gin.H{"error": "Only pending orders can be modified"},
		)
	case errors.Is(err, entity.ErrConflictingData):
		c.JSON(
			http.StatusConflict,
			gin.H{"error": "Resource conflicts with existing data"},
		)
	case errors.Is(err, entity.ErrInvalidData):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
	case errors.Is(err, entity.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access to this resource is denied"})
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "resource not found",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request timed out"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal service error"})
	}
}

func (h *PortalHandler) handleInvalidUUID(c *gin.Context, op, param, value string) {
	h.log.Ctx(c.Request.Context()).LogAttrs(
		c.Request.Context(), logger.WarnLevel, "invalid UUID in path",
		logger.String("op", op),
		logger.String("param", param),
		logger.String("value", value),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + " format"})
}

func (h *PortalHandler) handleBindError(c *gin.Context, op string, err error) {
	h.log.Ctx(c.Request.Context()).LogAttrs(
		c.Request.Context(), logger.WarnLevel, "request body rejected",
		logger.String("op", op),
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
}
