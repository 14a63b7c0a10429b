package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/cache"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const _slowOperationThreshold = 200 * time.Millisecond

// OrderService implements the order lifecycle and the settlement invariant:
// payment completion decrements inventory exactly once, atomically with the
// status transition.
type OrderService struct {
	orderRepo    OrderRepository
	itemRepo     OrderItemRepository
	capacityRepo CapacityRepository
	routeRepo    RouteRepository
	txManager    transaction.Manager
	logger       logger.Logger
	cache        cache.Cache[uuid.UUID, *entity.Order]
	cacheTTL     time.Duration
}

func NewOrderService(
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	capacityRepo CapacityRepository,
	routeRepo RouteRepository,
	txManager transaction.Manager,
	logger logger.Logger,
	orderCache cache.Cache[uuid.UUID, *entity.Order],
	cacheTTL time.Duration,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		capacityRepo: capacityRepo,
		routeRepo:    routeRepo,
		txManager:    txManager,
		logger:       logger,
		cache:        orderCache,
		cacheTTL:     cacheTTL,
	}
}

// CreateOrder prices the requested line items against current inventory and
// persists the order PENDING/PENDING with its items in one transaction.
// Availability is checked optimistically but not reserved: the hard check
// happens at settlement.
func (os *OrderService) CreateOrder(
	ctx context.Context,
	userID uuid.UUID,
	inputs []*entity.OrderItemInput,
) (*entity.Order, error) {
	const op = "service.order.CreateOrder"
	log := os.logger.Ctx(ctx)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: missing user: %w", op, entity.ErrInvalidData)
	}

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime)
		if duration > _slowOperationThreshold {
			log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
				logger.String("op", op),
				logger.String("duration", duration.String()),
			)
		}
	}()

	items, totalAmount, err := os.priceItems(ctx, inputs)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "order pricing failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		TotalAmount:   totalAmount,
		Currency:      entity.OrderCurrency,
	}

	var created *entity.Order
	err = os.txManager.ExecuteInTransaction(
		ctx,
		"CreateOrder",
		func(tx postgres.QueryExecuter) error {
			var txErr error
			created, txErr = os.orderRepo.Create(ctx, tx, order)
			if txErr != nil {
				return transaction.HandleError("CreateOrder", "create order", txErr)
			}

			if txErr = os.itemRepo.CreateBatch(ctx, tx, created.ID, items); txErr != nil {
				return transaction.HandleError("CreateOrder", "create items", txErr)
			}

			return nil
		},
	)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "order creation failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("user_id", userID.String()),
		)
		return nil, err
	}

	created.Items = items
	os.cache.Put(created.ID, created, os.cacheTTL)

	log.LogAttrs(ctx, logger.InfoLevel, "order created",
		logger.String("op", op),
		logger.String("order_id", created.ID.String()),
		logger.Int("items_count", len(items)),
		logger.Int64("total_amount", created.TotalAmount),
	)

	return created, nil
}

// UpdateOrder replaces all line items of a PENDING order owned by the
// caller and recomputes the total. Full replace, never a merge.
func (os *OrderService) UpdateOrder(
	ctx context.Context,
	orderID, callerUserID uuid.UUID,
	inputs []*entity.OrderItemInput,
) (*entity.Order, error) {
	const op = "service.order.UpdateOrder"
	log := os.logger.Ctx(ctx)

	order, err := os.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: load order: %w", op, err)
	}
	if order.UserID != callerUserID {
		return nil, entity.ErrUnauthorized
	}
	if order.Status != entity.OrderStatusPending {
		return nil, entity.ErrOrderNotEditable
	}

	items, totalAmount, err := os.priceItems(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err = os.txManager.ExecuteInTransaction(
		ctx,
		"UpdateOrder",
		func(tx postgres.QueryExecuter) error {
			if txErr := os.itemRepo.DeleteByOrder(ctx, tx, orderID); txErr != nil {
				return transaction.HandleError("UpdateOrder", "delete items", txErr)
			}
			if txErr := os.itemRepo.CreateBatch(ctx, tx, orderID, items); txErr != nil {
				return transaction.HandleError("UpdateOrder", "create items", txErr)
			}
			if txErr := os.orderRepo.UpdateTotal(ctx, tx, orderID, totalAmount); txErr != nil {
				return transaction.HandleError("UpdateOrder", "update total", txErr)
			}
			return nil
		},
	)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "order update failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("order_id", orderID.String()),
		)
		return nil, err
	}

	order.TotalAmount = totalAmount
	order.Items = items
	os.cache.Put(order.ID, order, os.cacheTTL)

	log.LogAttrs(ctx, logger.InfoLevel, "order items replaced",
		logger.String("op", op),
		logger.String("order_id", orderID.String()),
		logger.Int("items_count", len(items)),
		logger.Int64("total_amount", totalAmount),
	)

	return order, nil
}

// priceItems validates the requested items, snapshots current unit prices
// and sums the order total. Availability is checked against current
// inventory; nothing is reserved.
func (os *OrderService) priceItems(
	ctx context.Context,
	inputs []*entity.OrderItemInput,
) ([]*entity.OrderItem, int64, error) {
	if len(inputs) == 0 {
		return nil, 0, fmt.Errorf("no items: %w", entity.ErrInvalidData)
	}

	items := make([]*entity.OrderItem, 0, len(inputs))
	var totalAmount int64

	for _, input := range inputs {
		if input.Quantity <= 0 {
			return nil, 0, fmt.Errorf("quantity %d: %w", input.Quantity, entity.ErrInvalidData)
		}

		capacity, err := os.capacityRepo.GetByID(ctx, input.RouteCapacityID)
		if err != nil {
			return nil, 0, fmt.Errorf("load capacity %s: %w", input.RouteCapacityID, err)
		}
		if capacity.RouteID != input.RouteID {
			return nil, 0, fmt.Errorf(
				"capacity %s does not belong to route %s: %w",
				input.RouteCapacityID, input.RouteID, entity.ErrInvalidData)
		}
		if capacity.AvailableUnits < input.Quantity {
			return nil, 0, fmt.Errorf(
				"capacity %s: %w", input.RouteCapacityID, entity.ErrInsufficientCapacity)
		}

		lineTotal := capacity.PricePerUnit * int64(input.Quantity)
		totalAmount += lineTotal

		items = append(items, &entity.OrderItem{
			RouteID:         input.RouteID,
			RouteCapacityID: input.RouteCapacityID,
			Quantity:        input.Quantity,
			UnitPrice:       capacity.PricePerUnit,
			TotalPrice:      lineTotal,
		})
	}

	return items, totalAmount, nil
}

// UpdateStatus is the administrative override: it sets any valid status
// without consulting the transition graph.
func (os *OrderService) UpdateStatus(
	ctx context.Context,
	caller entity.Caller,
	orderID uuid.UUID,
	status entity.OrderStatus,
) (*entity.Order, error) {
	const op = "service.order.UpdateStatus"
	log := os.logger.Ctx(ctx)

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%s: status %q: %w", op, status, entity.ErrInvalidData)
	}

	if err := os.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	os.cache.Remove(orderID)

	log.LogAttrs(ctx, logger.InfoLevel, "order status overridden",
		logger.String("op", op),
		logger.String("order_id", orderID.String()),
		logger.String("status", string(status)),
	)

	return os.orderRepo.GetByID(ctx, orderID)
}

// UpdatePaymentStatus records a payment transition for an order the caller
// owns (or any order, for admins). COMPLETED is the settlement: the order
// is confirmed and every line item's inventory decremented, all in one
// transaction. Any shortfall aborts the whole transition with
// ErrInsufficientCapacityAtSettlement and no state changes.
func (os *OrderService) UpdatePaymentStatus(
	ctx context.Context,
	caller entity.Caller,
	orderID uuid.UUID,
	paymentStatus entity.PaymentStatus,
	paymentRef string,
) (*entity.Order, error) {
	const op = "service.order.UpdatePaymentStatus"
	log := os.logger.Ctx(ctx)

	if !paymentStatus.Valid() {
		return nil, fmt.Errorf("%s: payment status %q: %w", op, paymentStatus, entity.ErrInvalidData)
	}

	order, err := os.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: load order: %w", op, err)
	}
	if !caller.CanAccess(order) {
		return nil, entity.ErrUnauthorized
	}

	newStatus := order.Status
	if paymentStatus == entity.PaymentStatusCompleted &&
		order.Status == entity.OrderStatusPending {
		newStatus = entity.OrderStatusConfirmed
	}

	if paymentStatus == entity.PaymentStatusCompleted {
		if err = os.settle(ctx, order, newStatus, paymentRef); err != nil {
			log.LogAttrs(ctx, logger.ErrorLevel, "settlement failed",
				logger.String("op", op),
				logger.Any("error", err),
				logger.String("order_id", orderID.String()),
			)
			return nil, err
		}
		log.LogAttrs(ctx, logger.InfoLevel, "order settled",
			logger.String("op", op),
			logger.String("order_id", orderID.String()),
		)
	} else {
		err = os.txManager.ExecuteInTransaction(
			ctx,
			"UpdatePaymentStatus",
			func(tx postgres.QueryExecuter) error {
				return os.orderRepo.UpdatePayment(
					ctx, tx, orderID, newStatus, paymentStatus, paymentRef)
			},
		)
		if err != nil {
			return nil, fmt.Errorf("%s: update payment: %w", op, err)
		}
	}

	os.cache.Remove(orderID)

	return os.orderRepo.GetByID(ctx, orderID)
}

// settle runs the payment-completion transition: order status + payment
// status + every inventory decrement commit together or not at all.
func (os *OrderService) settle(
	ctx context.Context,
	order *entity.Order,
	newStatus entity.OrderStatus,
	paymentRef string,
) error {
	items, err := os.itemRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("service.order.settle: load items: %w", err)
	}

	return os.txManager.ExecuteInTransaction(
		ctx,
		"SettleOrder",
		func(tx postgres.QueryExecuter) error {
			for _, item := range items {
				if txErr := os.capacityRepo.DecrementAvailable(
					ctx, tx, item.RouteCapacityID, item.Quantity,
				); txErr != nil {
					return transaction.HandleError("SettleOrder", "decrement availability", txErr)
				}
			}

			if txErr := os.orderRepo.UpdatePayment(
				ctx, tx, order.ID, newStatus, entity.PaymentStatusCompleted, paymentRef,
			); txErr != nil {
				return transaction.HandleError("SettleOrder", "update payment", txErr)
			}

			return nil
		},
	)
}

// RequestCancellation cancels the caller's own order unless it is already
// cancelled. Inventory already decremented by settlement is not restocked.
func (os *OrderService) RequestCancellation(
	ctx context.Context,
	orderID, callerUserID uuid.UUID,
) (*entity.Order, error) {
	const op = "service.order.RequestCancellation"
	log := os.logger.Ctx(ctx)

	order, err := os.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: load order: %w", op, err)
	}
	if order.UserID != callerUserID {
		return nil, entity.ErrUnauthorized
	}
	if order.Status == entity.OrderStatusCancelled {
		return nil, fmt.Errorf("%s: already cancelled: %w", op, entity.ErrInvalidData)
	}

	if err = os.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	os.cache.Remove(orderID)

	log.LogAttrs(ctx, logger.InfoLevel, "order cancelled",
		logger.String("op", op),
		logger.String("order_id", orderID.String()),
	)

	return os.orderRepo.GetByID(ctx, orderID)
}

// GetOrder returns the order with nested route and capacity detail. Only
// the owner and administrators may read it.
func (os *OrderService) GetOrder(
	ctx context.Context,
	orderID uuid.UUID,
	caller entity.Caller,
) (*entity.Order, error) {
	const op = "service.order.GetOrder"
	log := os.logger.Ctx(ctx)

	if cached, found := os.cache.Get(orderID); found {
		if !caller.CanAccess(cached) {
			return nil, entity.ErrUnauthorized
		}
		log.LogAttrs(ctx, logger.DebugLevel, "order served from cache",
			logger.String("op", op),
			logger.String("order_id", orderID.String()),
		)
		return cached, nil
	}

	order, err := os.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: load order: %w", op, err)
	}
	if !caller.CanAccess(order) {
		return nil, entity.ErrUnauthorized
	}

	if err = os.loadItems(ctx, order); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os.cache.Put(order.ID, order, os.cacheTTL)

	return order, nil
}

// GetUserOrders returns the caller's orders, newest first, with nested
// detail.
func (os *OrderService) GetUserOrders(
	ctx context.Context,
	userID uuid.UUID,
) ([]*entity.Order, error) {
	const op = "service.order.GetUserOrders"

	orders, err := os.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = os.loadItemsForAll(ctx, orders); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

// GetAllOrders returns every order, newest first. Administrator only.
func (os *OrderService) GetAllOrders(
	ctx context.Context,
	caller entity.Caller,
) ([]*entity.Order, error) {
	const op = "service.order.GetAllOrders"

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}

	orders, err := os.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = os.loadItemsForAll(ctx, orders); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func (os *OrderService) loadItemsForAll(ctx context.Context, orders []*entity.Order) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, order := range orders {
		g.Go(func() error {
			return os.loadItems(gCtx, order)
		})
	}
	return g.Wait()
}

// loadItems fetches the order's line items and resolves their route and
// capacity references for presentation.
func (os *OrderService) loadItems(ctx context.Context, order *entity.Order) error {
	items, err := os.itemRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			route, routeErr := os.routeRepo.GetByID(gCtx, item.RouteID)
			if routeErr != nil {
				return fmt.Errorf("load route %s: %w", item.RouteID, routeErr)
			}
			capacity, capErr := os.capacityRepo.GetByID(gCtx, item.RouteCapacityID)
			if capErr != nil {
				return fmt.Errorf("load capacity %s: %w", item.RouteCapacityID, capErr)
			}
			item.Route = route
			item.RouteCapacity = capacity
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	order.Items = items
	return nil
}
