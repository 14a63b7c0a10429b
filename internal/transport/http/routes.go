package httpt

import (
	"net/http"

	_ "github.com/pradeepdcosta/pathdrive-console/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           PathDrive Console API
// @version         1.0
// @description     Ethernet route ordering portal: route catalog, capacity inventory and order workflow
// @contact.name    API Support
// @contact.email   support@pathdrive.example.com
// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https
func (h *PortalHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := h.router.Group("/api/v1")
	v1.Use(h.identityMiddleware())
	{
		routes := v1.Group("/routes")
		{
			routes.GET("", h.listRoutesHandler)
			routes.GET("/search", h.searchRoutesHandler)
			routes.GET("/:route_id/capacities", h.listRouteCapacitiesHandler)
		}

		locations := v1.Group("/locations")
		{
			locations.GET("", h.listLocationsHandler)
			locations.GET("/regions", h.listRegionsHandler)
			locations.GET("/cities", h.listCitiesHandler)
			locations.GET("/:location_id", h.getLocationHandler)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", h.createOrderHandler)
			orders.GET("", h.listUserOrdersHandler)
			orders.GET("/:order_id", h.getOrderHandler)
			orders.PUT("/:order_id", h.updateOrderHandler)
			orders.POST("/:order_id/cancellation", h.cancelOrderHandler)
			orders.PUT("/:order_id/payment", h.updatePaymentHandler)
		}

		admin := v1.Group("/admin")
		admin.Use(h.requireAdmin())
		{
			admin.GET("/orders", h.listAllOrdersHandler)
			admin.PUT("/orders/:order_id/status", h.updateOrderStatusHandler)

			admin.GET("/routes", h.listAdminRoutesHandler)
			admin.POST("/routes", h.createRouteHandler)
			admin.PUT("/routes/:route_id", h.updateRouteHandler)
			admin.PUT("/routes/:route_id/visibility", h.setRouteVisibilityHandler)
			admin.PUT("/routes/:route_id/pricing", h.upsertPricingHandler)
			admin.DELETE("/routes/:route_id", h.deactivateRouteHandler)

			admin.POST("/locations", h.createLocationHandler)
			admin.PUT("/locations/:location_id", h.updateLocationHandler)
			admin.DELETE("/locations/:location_id", h.deactivateLocationHandler)

			admin.DELETE("/capacities/:capacity_id", h.deleteCapacityHandler)
		}
	}
}
