package httpt

import (
	"github.com/pradeepdcosta/pathdrive-console/internal/service"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"
	"github.com/pradeepdcosta/pathdrive-console/pkg/metric"

	"github.com/gin-gonic/gin"
)

type PortalHandler struct {
	catalog   *service.CatalogService
	inventory *service.InventoryService
	orders    *service.OrderService
	log       logger.Logger
	metrics   metric.HTTP
	router    *gin.Engine
}

func NewPortalHandler(
	catalog *service.CatalogService,
	inventory *service.InventoryService,
	orders *service.OrderService,
	log logger.Logger,
	metrics metric.HTTP,
) *PortalHandler {
	h := &PortalHandler{
		catalog:   catalog,
		inventory: inventory,
		orders:    orders,
		log:       log,
		metrics:   metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.setupRoutes()

	return h
}

func (h *PortalHandler) Engine() *gin.Engine {
	return h.router
}
