package httpt

import (
	"net/http"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create order
// @Description Prices the requested line items against current inventory and creates a PENDING order
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body httpt.CreateOrderRequest true "Line items"
// @Success 201 {object} httpt.Order
// @Failure 400 {object} httpt.ErrorResponse
// @Failure 409 {object} httpt.ErrorResponse "Insufficient available units"
// @Router /orders [post]
func (h *PortalHandler) createOrderHandler(c *gin.Context) {
	const op = "transport.createOrderHandler"

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.orders.CreateOrder(ctx, callerFrom(c).UserID, req.toInputs())
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	h.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "order created",
		logger.String("order_id", order.ID.String()),
		logger.Int("items", len(order.Items)),
	)

	c.JSON(http.StatusCreated, order)
}

// @Summary List own orders
// @Description Returns the caller's orders, newest first
// @Tags Orders
// @Produce json
// @Success 200 {array} httpt.Order
// @Router /orders [get]
func (h *PortalHandler) listUserOrdersHandler(c *gin.Context) {
	const op = "transport.listUserOrdersHandler"

	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := h.orders.GetUserOrders(ctx, callerFrom(c).UserID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Get order
// @Description Returns one order with nested route and capacity detail; owner or administrator only
// @Tags Orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} httpt.Order
// @Failure 403 {object} httpt.ErrorResponse
// @Failure 404 {object} httpt.ErrorResponse
// @Router /orders/{order_id} [get]
func (h *PortalHandler) getOrderHandler(c *gin.Context) {
	const op = "transport.getOrderHandler"

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "order_id", c.Param("order_id"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, orderID, callerFrom(c))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Replace order items
// @Description Replaces all line items of a PENDING order owned by the caller and reprices it
// @Tags Orders
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param request body httpt.CreateOrderRequest true "New line items"
// @Success 200 {object} httpt.Order
// @Failure 409 {object} httpt.ErrorResponse "Order is not pending"
// @Router /orders/{order_id} [put]
func (h *PortalHandler) updateOrderHandler(c *gin.Context) {
	const op = "transport.updateOrderHandler"

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "order_id", c.Param("order_id"))
		return
	}

	var req createOrderRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.orders.UpdateOrder(ctx, orderID, callerFrom(c).UserID, req.toInputs())
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Cancel order
// @Description Cancels the caller's own order unless it is already cancelled; settled inventory is not restocked
// @Tags Orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} httpt.Order
// @Failure 400 {object} httpt.ErrorResponse "Already cancelled"
// @Router /orders/{order_id}/cancellation [post]
func (h *PortalHandler) cancelOrderHandler(c *gin.Context) {
	const op = "transport.cancelOrderHandler"

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "order_id", c.Param("order_id"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.orders.RequestCancellation(ctx, orderID, callerFrom(c).UserID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Record payment transition
// @Description Records a payment status transition; COMPLETED settles the order and decrements inventory atomically
// @Tags Orders
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param request body httpt.UpdatePaymentRequest true "Payment transition"
// @Success 200 {object} httpt.Order
// @Failure 409 {object} httpt.ErrorResponse "Insufficient units at settlement"
// @Router /orders/{order_id}/payment [put]
func (h *PortalHandler) updatePaymentHandler(c *gin.Context) {
	const op = "transport.updatePaymentHandler"

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "order_id", c.Param("order_id"))
		return
	}

	var req updatePaymentRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, op, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.orders.UpdatePaymentStatus(
		ctx, callerFrom(c), orderID, entity.PaymentStatus(req.PaymentStatus), req.PaymentRef)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, order)
}
