package httpt

import (
	"net/http"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary List all orders
// @Description Returns every order in the system, newest first. Administrator only.
// @Tags Admin
// @Produce json
// @Success 200 {array} httpt.Order
// @Failure 403 {object} httpt.ErrorResponse
// @Router /admin/orders [get]
func (h *PortalHandler) listAllOrdersHandler(c *gin.Context) {
	const op = "transport.listAllOrdersHandler"

	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := h.orders.GetAllOrders(ctx, callerFrom(c))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Override order status
// @Description Sets any valid order status without consulting the transition graph. Administrator only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param request body httpt.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} httpt.Order
// @Failure 400 {object} httpt.ErrorResponse
// @Router /admin/orders/{order_id}/status [put]
func (h *PortalHandler) updateOrderStatusHandler(c *gin.Context) {
	const op = "transport.updateOrderStatusHandler"

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "order_id", c.Param("order_id"))
		return
	}

	var req updateOrderStatusRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.orders.UpdateStatus(
		ctx, callerFrom(c), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary List all routes
// @Description Returns every active route regardless of visibility. Administrator only.
// @Tags Admin
// @Produce json
// @Success 200 {array} httpt.Route
// @Router /admin/routes [get]
func (h *PortalHandler) listAdminRoutesHandler(c *gin.Context) {
	const op = "transport.listAdminRoutesHandler"

	ctx, cancel := requestContext(c)
	defer cancel()

	routes, err := h.catalog.ListAdminRoutes(ctx, callerFrom(c))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// @Summary Create route
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body httpt.RouteRequest true "Route"
// @Success 201 {object} httpt.Route
// @Failure 409 {object} httpt.ErrorResponse "Duplicate endpoint pair"
// @Router /admin/routes [post]
func (h *PortalHandler) createRouteHandler(c *gin.Context) {
	const op = "transport.createRouteHandler"

	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	route, err := h.catalog.CreateRoute(ctx, callerFrom(c), req.toEntity(uuid.Nil))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, route)
}

// @Summary Update route
// @Tags Admin
// @Accept json
// @Produce json
// @Param route_id path string true "Route ID"
// @Param request body httpt.RouteRequest true "Route"
// @Success 200 {object} httpt.Route
// @Router /admin/routes/{route_id} [put]
func (h *PortalHandler) updateRouteHandler(c *gin.Context) {
	const op = "transport.updateRouteHandler"

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "route_id", c.Param("route_id"))
		return
	}

	var req routeRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	route, err := h.catalog.UpdateRoute(ctx, callerFrom(c), req.toEntity(routeID))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, route)
}

// @Summary Set route visibility
// @Tags Admin
// @Accept json
// @Param route_id path string true "Route ID"
// @Param request body httpt.RouteVisibilityRequest true "Visibility flag"
// @Success 204
// @Router /admin/routes/{route_id}/visibility [put]
func (h *PortalHandler) setRouteVisibilityHandler(c *gin.Context) {
	const op = "transport.setRouteVisibilityHandler"

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "route_id", c.Param("route_id"))
		return
	}

	var req routeVisibilityRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err = h.catalog.SetRouteVisibility(ctx, callerFrom(c), routeID, *req.Visible); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Upsert route pricing
// @Description Applies absolute price and availability per tier for one route in a single transaction. Administrator only.
// @Tags Admin
// @Accept json
// @Produce json
// @Param route_id path string true "Route ID"
// @Param request body httpt.UpsertPricingRequest true "Per-tier pricing"
// @Success 200 {array} httpt.RouteCapacity
// @Failure 400 {object} httpt.ErrorResponse
// @Router /admin/routes/{route_id}/pricing [put]
func (h *PortalHandler) upsertPricingHandler(c *gin.Context) {
	const op = "transport.upsertPricingHandler"

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "route_id", c.Param("route_id"))
		return
	}

	var req upsertPricingRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	capacities, err := h.inventory.UpsertPricing(ctx, callerFrom(c), routeID, req.toUpdates())
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, capacities)
}

// @Summary Deactivate route
// @Description Soft-deletes a route; existing orders keep their snapshots
// @Tags Admin
// @Param route_id path string true "Route ID"
// @Success 204
// @Router /admin/routes/{route_id} [delete]
func (h *PortalHandler) deactivateRouteHandler(c *gin.Context) {
	const op = "transport.deactivateRouteHandler"

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "route_id", c.Param("route_id"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err = h.catalog.DeactivateRoute(ctx, callerFrom(c), routeID); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create location
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body httpt.LocationRequest true "Location"
// @Success 201 {object} httpt.Location
// @Router /admin/locations [post]
func (h *PortalHandler) createLocationHandler(c *gin.Context) {
	const op = "transport.createLocationHandler"

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	location, err := h.catalog.CreateLocation(ctx, callerFrom(c), req.toEntity(uuid.Nil))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, location)
}

// @Summary Update location
// @Tags Admin
// @Accept json
// @Produce json
// @Param location_id path string true "Location ID"
// @Param request body httpt.LocationRequest true "Location"
// @Success 200 {object} httpt.Location
// @Router /admin/locations/{location_id} [put]
func (h *PortalHandler) updateLocationHandler(c *gin.Context) {
	const op = "transport.updateLocationHandler"

	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "location_id", c.Param("location_id"))
		return
	}

	var req locationRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	location, err := h.catalog.UpdateLocation(ctx, callerFrom(c), req.toEntity(locationID))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, location)
}

// @Summary Deactivate location
// @Description Soft-deletes a location; routes referencing it keep their historical endpoints
// @Tags Admin
// @Param location_id path string true "Location ID"
// @Success 204
// @Router /admin/locations/{location_id} [delete]
func (h *PortalHandler) deactivateLocationHandler(c *gin.Context) {
	const op = "transport.deactivateLocationHandler"

	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "location_id", c.Param("location_id"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err = h.catalog.DeactivateLocation(ctx, callerFrom(c), locationID); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete capacity row
// @Description Removes a capacity row entirely; order items keep their snapshotted prices
// @Tags Admin
// @Param capacity_id path string true "Capacity ID"
// @Success 204
// @Router /admin/capacities/{capacity_id} [delete]
func (h *PortalHandler) deleteCapacityHandler(c *gin.Context) {
	const op = "transport.deleteCapacityHandler"

	capacityID, err := uuid.Parse(c.Param("capacity_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "capacity_id", c.Param("capacity_id"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err = h.inventory.DeleteCapacity(ctx, callerFrom(c), capacityID); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.Status(http.StatusNoContent)
}
