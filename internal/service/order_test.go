package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	mock_repository "github.com/pradeepdcosta/pathdrive-console/internal/repository/mock"
	"github.com/pradeepdcosta/pathdrive-console/internal/service"
	mock_cache "github.com/pradeepdcosta/pathdrive-console/pkg/cache/mock"
	mock_logger "github.com/pradeepdcosta/pathdrive-console/pkg/logger/mock"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres"
	mock_transaction "github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres/transaction/mock"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

type orderMocks struct {
	orderRepo    *mock_repository.MockOrderRepository
	itemRepo     *mock_repository.MockOrderItemRepository
	capacityRepo *mock_repository.MockCapacityRepository
	routeRepo    *mock_repository.MockRouteRepository
	txManager    *mock_transaction.MockManager
	cache        *mock_cache.MockCache[uuid.UUID, *entity.Order]
}

func newOrderMocks(ctrl *gomock.Controller) orderMocks {
	return orderMocks{
		orderRepo:    mock_repository.NewMockOrderRepository(ctrl),
		itemRepo:     mock_repository.NewMockOrderItemRepository(ctrl),
		capacityRepo: mock_repository.NewMockCapacityRepository(ctrl),
		routeRepo:    mock_repository.NewMockRouteRepository(ctrl),
		txManager:    mock_transaction.NewMockManager(ctrl),
		cache:        mock_cache.NewMockCache[uuid.UUID, *entity.Order](ctrl),
	}
}

func newQuietLogger(ctrl *gomock.Controller) *mock_logger.MockLogger {
	log := mock_logger.NewMockLogger(ctrl)
	log.EXPECT().Ctx(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().LogAttrs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func newOrderService(m orderMocks, log *mock_logger.MockLogger) *service.OrderService {
	return service.NewOrderService(
		m.orderRepo,
		m.itemRepo,
		m.capacityRepo,
		m.routeRepo,
		m.txManager,
		log,
		m.cache,
		5*time.Minute,
	)
}

func passthroughTx(m orderMocks, operation string) {
	m.txManager.EXPECT().ExecuteInTransaction(
		gomock.Any(), operation, gomock.Any(),
	).DoAndReturn(func(
		_ context.Context,
		_ string,
		txFunc func(postgres.QueryExecuter) error,
	) error {
		return txFunc(nil)
	}).Times(1)
}

func generateFakeCapacity(routeID uuid.UUID) *entity.RouteCapacity {
	return &entity.RouteCapacity{
		ID:             uuid.New(),
		RouteID:        routeID,
		Tier:           entity.TierTenG,
		PricePerUnit:   int64(gofakeit.IntRange(50_000, 900_000)),
		AvailableUnits: gofakeit.Number(10, 50),
		UpdatedAt:      time.Now(),
	}
}

func generateFakeOrder(userID uuid.UUID, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		Status:        status,
		PaymentStatus: entity.PaymentStatusPending,
		TotalAmount:   int64(gofakeit.IntRange(100_000, 5_000_000)),
		Currency:      entity.OrderCurrency,
		CreatedAt:     gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now()),
	}
}

func generateFakeItems(order *entity.Order, count int) []*entity.OrderItem {
	items := make([]*entity.OrderItem, 0, count)
	for range count {
		quantity := gofakeit.Number(1, 4)
		unitPrice := int64(gofakeit.IntRange(50_000, 900_000))
		items = append(items, &entity.OrderItem{
			ID:              uuid.New(),
			OrderID:         order.ID,
			RouteID:         uuid.New(),
			RouteCapacityID: uuid.New(),
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			TotalPrice:      unitPrice * int64(quantity),
		})
	}
	return items
}

func TestOrderService_CreateOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	routeID := uuid.New()

	testCases := []struct {
		desc        string
		inputs      func(m orderMocks) []*entity.OrderItemInput
		mocks       func(m orderMocks)
		expectedErr error
		checkTotal  int64
	}{
		{
			desc: "Success_SnapshotsPriceAndSumsTotal",
			inputs: func(m orderMocks) []*entity.OrderItemInput {
				return []*entity.OrderItemInput{
					{RouteID: routeID, RouteCapacityID: uuid.New(), Quantity: 2},
				}
			},
			mocks: func(m orderMocks) {
				capacity := &entity.RouteCapacity{
					ID:             uuid.New(),
					RouteID:        routeID,
					Tier:           entity.TierHundredG,
					PricePerUnit:   250_000,
					AvailableUnits: 5,
				}
				m.capacityRepo.EXPECT().GetByID(ctx, gomock.Any()).
					Return(capacity, nil).Times(1)

				passthroughTx(m, "CreateOrder")

				m.orderRepo.EXPECT().Create(ctx, nil, gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						_ postgres.QueryExecuter,
						order *entity.Order,
					) (*entity.Order, error) {
						if order.Status != entity.OrderStatusPending {
							t.Errorf("expected PENDING status, got %s", order.Status)
						}
						if order.PaymentStatus != entity.PaymentStatusPending {
							t.Errorf("expected PENDING payment, got %s", order.PaymentStatus)
						}
						if order.TotalAmount != 500_000 {
							t.Errorf("expected total 500000, got %d", order.TotalAmount)
						}
						return order, nil
					}).Times(1)

				m.itemRepo.EXPECT().CreateBatch(ctx, nil, gomock.Any(), gomock.Any()).
					Return(nil).Times(1)

				m.cache.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
			},
			expectedErr: nil,
			checkTotal:  500_000,
		},
		{
			desc: "InsufficientAvailability",
			inputs: func(m orderMocks) []*entity.OrderItemInput {
				return []*entity.OrderItemInput{
					{RouteID: routeID, RouteCapacityID: uuid.New(), Quantity: 10},
				}
			},
			mocks: func(m orderMocks) {
				capacity := generateFakeCapacity(routeID)
				capacity.AvailableUnits = 3
				m.capacityRepo.EXPECT().GetByID(ctx, gomock.Any()).
					Return(capacity, nil).Times(1)
			},
			expectedErr: entity.ErrInsufficientCapacity,
		},
		{
			desc: "CapacityBelongsToOtherRoute",
			inputs: func(m orderMocks) []*entity.OrderItemInput {
				return []*entity.OrderItemInput{
					{RouteID: routeID, RouteCapacityID: uuid.New(), Quantity: 1},
				}
			},
			mocks: func(m orderMocks) {
				m.capacityRepo.EXPECT().GetByID(ctx, gomock.Any()).
					Return(generateFakeCapacity(uuid.New()), nil).Times(1)
			},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "NoItems",
			inputs: func(m orderMocks) []*entity.OrderItemInput {
				return nil
			},
			mocks:       func(m orderMocks) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "ZeroQuantity",
			inputs: func(m orderMocks) []*entity.OrderItemInput {
				return []*entity.OrderItemInput{
					{RouteID: routeID, RouteCapacityID: uuid.New(), Quantity: 0},
				}
			},
			mocks:       func(m orderMocks) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc: "TransactionError",
			inputs: func(m orderMocks) []*entity.OrderItemInput {
				return []*entity.OrderItemInput{
					{RouteID: routeID, RouteCapacityID: uuid.New(), Quantity: 1},
				}
			},
			mocks: func(m orderMocks) {
				m.capacityRepo.EXPECT().GetByID(ctx, gomock.Any()).
					Return(generateFakeCapacity(routeID), nil).Times(1)

				m.txManager.EXPECT().ExecuteInTransaction(
					gomock.Any(), "CreateOrder", gomock.Any(),
				).Return(errors.New("transaction error")).Times(1)
			},
			expectedErr: errors.New("transaction error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newOrderMocks(ctrl)
			tc.mocks(m)

			s := newOrderService(m, newQuietLogger(ctrl))

			order, err := s.CreateOrder(ctx, userID, tc.inputs(m))

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
				if tc.desc == "TransactionError" {
					if err.Error() != tc.expectedErr.Error() {
						t.Fatalf("expected %q, got %q", tc.expectedErr, err)
					}
				} else if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error to contain %v, got %v", tc.expectedErr, err)
				}
				if order != nil {
					t.Error("expected nil order on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if order == nil {
				t.Fatal("expected non-nil order")
			}
			if order.TotalAmount != tc.checkTotal {
				t.Errorf("expected total %d, got %d", tc.checkTotal, order.TotalAmount)
			}
			if order.Currency != entity.OrderCurrency {
				t.Errorf("expected currency %s, got %s", entity.OrderCurrency, order.Currency)
			}
		})
	}
}

func TestOrderService_CreateOrder_MissingUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newOrderMocks(ctrl)
	s := newOrderService(m, newQuietLogger(ctrl))

	_, err := s.CreateOrder(context.Background(), uuid.Nil, []*entity.OrderItemInput{
		{RouteID: uuid.New(), RouteCapacityID: uuid.New(), Quantity: 1},
	})
	if !errors.Is(err, entity.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.Caller{UserID: userID, Role: entity.RoleUser}

	testCases := []struct {
		desc          string
		caller        entity.Caller
		paymentStatus entity.PaymentStatus
		mocks         func(m orderMocks, order *entity.Order)
		expectedErr   error
	}{
		{
			desc:          "CompletedSettlesPendingOrder",
			caller:        owner,
			paymentStatus: entity.PaymentStatusCompleted,
			mocks: func(m orderMocks, order *entity.Order) {
				items := generateFakeItems(order, 2)

				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
				m.itemRepo.EXPECT().ListByOrder(ctx, order.ID).
					Return(items, nil).Times(1)

				passthroughTx(m, "SettleOrder")

				for _, item := range items {
					m.capacityRepo.EXPECT().
						DecrementAvailable(ctx, nil, item.RouteCapacityID, item.Quantity).
						Return(nil).Times(1)
				}

				m.orderRepo.EXPECT().UpdatePayment(
					ctx, nil, order.ID,
					entity.OrderStatusConfirmed,
					entity.PaymentStatusCompleted,
					"pay-ref",
				).Return(nil).Times(1)

				m.cache.EXPECT().Remove(order.ID).Times(1)

				settled := *order
				settled.Status = entity.OrderStatusConfirmed
				settled.PaymentStatus = entity.PaymentStatusCompleted
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(&settled, nil).Times(1)
			},
		},
		{
			desc:          "ShortfallAbortsSettlement",
			caller:        owner,
			paymentStatus: entity.PaymentStatusCompleted,
			mocks: func(m orderMocks, order *entity.Order) {
				items := generateFakeItems(order, 1)

				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
				m.itemRepo.EXPECT().ListByOrder(ctx, order.ID).
					Return(items, nil).Times(1)

				passthroughTx(m, "SettleOrder")

				m.capacityRepo.EXPECT().
					DecrementAvailable(ctx, nil, items[0].RouteCapacityID, items[0].Quantity).
					Return(entity.ErrInsufficientCapacityAtSettlement).Times(1)
			},
			expectedErr: entity.ErrInsufficientCapacityAtSettlement,
		},
		{
			desc:          "FailedPaymentKeepsInventory",
			caller:        owner,
			paymentStatus: entity.PaymentStatusFailed,
			mocks: func(m orderMocks, order *entity.Order) {
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)

				passthroughTx(m, "UpdatePaymentStatus")

				m.orderRepo.EXPECT().UpdatePayment(
					ctx, nil, order.ID,
					order.Status,
					entity.PaymentStatusFailed,
					"pay-ref",
				).Return(nil).Times(1)

				m.cache.EXPECT().Remove(order.ID).Times(1)
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
			},
		},
		{
			desc:          "NonOwnerRejected",
			caller:        entity.Caller{UserID: uuid.New(), Role: entity.RoleUser},
			paymentStatus: entity.PaymentStatusCompleted,
			mocks: func(m orderMocks, order *entity.Order) {
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
			},
			expectedErr: entity.ErrUnauthorized,
		},
		{
			desc:          "InvalidPaymentStatus",
			caller:        owner,
			paymentStatus: entity.PaymentStatus("SETTLED"),
			mocks:         func(m orderMocks, order *entity.Order) {},
			expectedErr:   entity.ErrInvalidData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			order := generateFakeOrder(userID, entity.OrderStatusPending)

			m := newOrderMocks(ctrl)
			tc.mocks(m, order)

			s := newOrderService(m, newQuietLogger(ctrl))

			result, err := s.UpdatePaymentStatus(ctx, tc.caller, order.ID, tc.paymentStatus, "pay-ref")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result == nil {
				t.Fatal("expected non-nil order")
			}
			if tc.desc == "CompletedSettlesPendingOrder" {
				if result.Status != entity.OrderStatusConfirmed {
					t.Errorf("expected CONFIRMED, got %s", result.Status)
				}
				if result.PaymentStatus != entity.PaymentStatusCompleted {
					t.Errorf("expected COMPLETED, got %s", result.PaymentStatus)
				}
			}
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	routeID := uuid.New()

	testCases := []struct {
		desc        string
		callerID    uuid.UUID
		status      entity.OrderStatus
		mocks       func(m orderMocks, order *entity.Order)
		expectedErr error
	}{
		{
			desc:     "Success_FullReplace",
			callerID: userID,
			status:   entity.OrderStatusPending,
			mocks: func(m orderMocks, order *entity.Order) {
				capacity := &entity.RouteCapacity{
					ID:             uuid.New(),
					RouteID:        routeID,
					Tier:           entity.TierTenG,
					PricePerUnit:   100_000,
					AvailableUnits: 8,
				}
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
				m.capacityRepo.EXPECT().GetByID(ctx, gomock.Any()).
					Return(capacity, nil).Times(1)

				passthroughTx(m, "UpdateOrder")

				m.itemRepo.EXPECT().DeleteByOrder(ctx, nil, order.ID).
					Return(nil).Times(1)
				m.itemRepo.EXPECT().CreateBatch(ctx, nil, order.ID, gomock.Any()).
					Return(nil).Times(1)
				m.orderRepo.EXPECT().UpdateTotal(ctx, nil, order.ID, int64(300_000)).
					Return(nil).Times(1)

				m.cache.EXPECT().Put(order.ID, gomock.Any(), gomock.Any()).Times(1)
			},
		},
		{
			desc:     "ConfirmedOrderNotEditable",
			callerID: userID,
			status:   entity.OrderStatusConfirmed,
			mocks: func(m orderMocks, order *entity.Order) {
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
			},
			expectedErr: entity.ErrOrderNotEditable,
		},
		{
			desc:     "NotOwner",
			callerID: uuid.New(),
			status:   entity.OrderStatusPending,
			mocks: func(m orderMocks, order *entity.Order) {
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
			},
			expectedErr: entity.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			order := generateFakeOrder(userID, tc.status)

			m := newOrderMocks(ctrl)
			tc.mocks(m, order)

			s := newOrderService(m, newQuietLogger(ctrl))

			inputs := []*entity.OrderItemInput{
				{RouteID: routeID, RouteCapacityID: uuid.New(), Quantity: 3},
			}
			result, err := s.UpdateOrder(ctx, order.ID, tc.callerID, inputs)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.TotalAmount != 300_000 {
				t.Errorf("expected repriced total 300000, got %d", result.TotalAmount)
			}
			if len(result.Items) != 1 {
				t.Errorf("expected 1 item after replace, got %d", len(result.Items))
			}
		})
	}
}

func TestOrderService_RequestCancellation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		desc        string
		callerID    uuid.UUID
		status      entity.OrderStatus
		mocks       func(m orderMocks, order *entity.Order)
		expectedErr error
	}{
		{
			desc:     "CancelsActiveOrderWithoutRestock",
			callerID: userID,
			status:   entity.OrderStatusActive,
			mocks: func(m orderMocks, order *entity.Order) {
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
				m.orderRepo.EXPECT().
					UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled).
					Return(nil).Times(1)
				m.cache.EXPECT().Remove(order.ID).Times(1)

				cancelled := *order
				cancelled.Status = entity.OrderStatusCancelled
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(&cancelled, nil).Times(1)
			},
		},
		{
			desc:     "AlreadyCancelled",
			callerID: userID,
			status:   entity.OrderStatusCancelled,
			mocks: func(m orderMocks, order *entity.Order) {
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
			},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:     "NotOwner",
			callerID: uuid.New(),
			status:   entity.OrderStatusPending,
			mocks: func(m orderMocks, order *entity.Order) {
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
			},
			expectedErr: entity.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			order := generateFakeOrder(userID, tc.status)

			m := newOrderMocks(ctrl)
			tc.mocks(m, order)

			s := newOrderService(m, newQuietLogger(ctrl))

			result, err := s.RequestCancellation(ctx, order.ID, tc.callerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Status != entity.OrderStatusCancelled {
				t.Errorf("expected CANCELLED, got %s", result.Status)
			}
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.Caller{UserID: userID, Role: entity.RoleUser}
	admin := entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}
	stranger := entity.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	testCases := []struct {
		desc        string
		caller      entity.Caller
		mocks       func(m orderMocks, order *entity.Order)
		expectedErr error
	}{
		{
			desc:   "FromCache_Owner",
			caller: owner,
			mocks: func(m orderMocks, order *entity.Order) {
				m.cache.EXPECT().Get(order.ID).Return(order, true).Times(1)
			},
		},
		{
			desc:   "FromCache_StrangerDenied",
			caller: stranger,
			mocks: func(m orderMocks, order *entity.Order) {
				m.cache.EXPECT().Get(order.ID).Return(order, true).Times(1)
			},
			expectedErr: entity.ErrUnauthorized,
		},
		{
			desc:   "FromDatabase_AdminWithNestedDetail",
			caller: admin,
			mocks: func(m orderMocks, order *entity.Order) {
				items := generateFakeItems(order, 2)

				m.cache.EXPECT().Get(order.ID).Return(nil, false).Times(1)
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(order, nil).Times(1)
				m.itemRepo.EXPECT().ListByOrder(ctx, order.ID).
					Return(items, nil).Times(1)

				for _, item := range items {
					m.routeRepo.EXPECT().GetByID(gomock.Any(), item.RouteID).
						Return(&entity.Route{ID: item.RouteID}, nil).Times(1)
					m.capacityRepo.EXPECT().GetByID(gomock.Any(), item.RouteCapacityID).
						Return(&entity.RouteCapacity{ID: item.RouteCapacityID}, nil).Times(1)
				}

				m.cache.EXPECT().Put(order.ID, gomock.Any(), gomock.Any()).Times(1)
			},
		},
		{
			desc:   "NotFound",
			caller: owner,
			mocks: func(m orderMocks, order *entity.Order) {
				m.cache.EXPECT().Get(order.ID).Return(nil, false).Times(1)
				m.orderRepo.EXPECT().GetByID(ctx, order.ID).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			expectedErr: entity.ErrDataNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			order := generateFakeOrder(userID, entity.OrderStatusPending)

			m := newOrderMocks(ctrl)
			tc.mocks(m, order)

			s := newOrderService(m, newQuietLogger(ctrl))

			result, err := s.GetOrder(ctx, order.ID, tc.caller)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.ID != order.ID {
				t.Errorf("expected order %s, got %s", order.ID, result.ID)
			}
			if tc.desc == "FromDatabase_AdminWithNestedDetail" {
				for _, item := range result.Items {
					if item.Route == nil || item.RouteCapacity == nil {
						t.Error("expected nested route and capacity detail")
					}
				}
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	admin := entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}
	user := entity.Caller{UserID: uuid.New(), Role: entity.RoleUser}

	t.Run("AdminOverridesAnyStatus", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		order := generateFakeOrder(uuid.New(), entity.OrderStatusCancelled)

		m := newOrderMocks(ctrl)
		m.orderRepo.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusActive).
			Return(nil).Times(1)
		m.cache.EXPECT().Remove(order.ID).Times(1)

		overridden := *order
		overridden.Status = entity.OrderStatusActive
		m.orderRepo.EXPECT().GetByID(ctx, order.ID).
			Return(&overridden, nil).Times(1)

		s := newOrderService(m, newQuietLogger(ctrl))

		result, err := s.UpdateStatus(ctx, admin, order.ID, entity.OrderStatusActive)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.Status != entity.OrderStatusActive {
			t.Errorf("expected ACTIVE, got %s", result.Status)
		}
	})

	t.Run("NonAdminRejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newOrderMocks(ctrl)
		s := newOrderService(m, newQuietLogger(ctrl))

		_, err := s.UpdateStatus(ctx, user, uuid.New(), entity.OrderStatusActive)
		if !errors.Is(err, entity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newOrderMocks(ctrl)
		s := newOrderService(m, newQuietLogger(ctrl))

		_, err := s.UpdateStatus(ctx, admin, uuid.New(), entity.OrderStatus("SHIPPED"))
		if !errors.Is(err, entity.ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})
}
