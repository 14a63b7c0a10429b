package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pradeepdcosta/pathdrive-console/internal/config"
	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/internal/repository"
	"github.com/pradeepdcosta/pathdrive-console/internal/service"
	"github.com/pradeepdcosta/pathdrive-console/pkg/cache"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"
	"github.com/pradeepdcosta/pathdrive-console/pkg/metric"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres/transaction"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type IntegrationTestSuite struct {
	suite.Suite

	db               *postgres.Postgres
	catalogService   *service.CatalogService
	inventoryService *service.InventoryService
	orderService     *service.OrderService
	cfg              *config.Config

	admin entity.Caller
}

func (s *IntegrationTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := config.Load()
	s.Require().NoError(err, "Failed to load configuration")
	s.cfg = cfg

	testLogger, err := logger.NewAdapter(cfg)
	s.Require().NoError(err)

	maxRetries := 10
	var db *postgres.Postgres

	for i := range maxRetries {
		db, err = postgres.NewPostgres(&cfg.Postgres, testLogger)
		if err == nil {
			break
		}
		testLogger.Info("Waiting for database to be ready...", "attempt", i+1, "error", err.Error())
		time.Sleep(5 * time.Second)
	}
	s.Require().NoError(err, "Failed to connect to postgres after retries")
	s.db = db

	err = db.Pool.Ping(ctx)
	s.Require().NoError(err, "Failed to ping database")

	metrics := metric.NewFactory()

	txManager, err := transaction.NewManager(db, testLogger, metrics.Transaction())
	s.Require().NoError(err)

	locationRepo := repository.NewLocationRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	capacityRepo := repository.NewCapacityRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)

	orderCache, err := cache.NewLRUCache[uuid.UUID, *entity.Order](
		"order",
		cfg.Cache.Capacity,
		testLogger,
		metrics.Cache(),
	)
	s.Require().NoError(err)

	s.catalogService = service.NewCatalogService(locationRepo, routeRepo, capacityRepo, testLogger)
	s.inventoryService = service.NewInventoryService(routeRepo, capacityRepo, txManager, testLogger)
	s.orderService = service.NewOrderService(
		orderRepo,
		itemRepo,
		capacityRepo,
		routeRepo,
		txManager,
		testLogger,
		orderCache,
		cfg.Cache.TTL,
	)

	s.admin = entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Pool.Close()
	}
}

func (s *IntegrationTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.db.Pool.Exec(
		ctx,
		"TRUNCATE TABLE order_items, orders, route_capacities, routes, locations RESTART IDENTITY CASCADE;",
	)
	s.Require().NoError(err)
}

// seedRoute creates two locations, a route between them and TEN_G pricing,
// returning the route with its capacity attached.
func (s *IntegrationTestSuite) seedRoute(ctx context.Context, availableUnits int) (*entity.Route, *entity.RouteCapacity) {
	aEnd, err := s.catalogService.CreateLocation(ctx, s.admin, generateFakeLocation())
	s.Require().NoError(err)
	bEnd, err := s.catalogService.CreateLocation(ctx, s.admin, generateFakeLocation())
	s.Require().NoError(err)

	route, err := s.catalogService.CreateRoute(ctx, s.admin, &entity.Route{
		Name:      aEnd.City + " - " + bEnd.City,
		AEndID:    aEnd.ID,
		BEndID:    bEnd.ID,
		IsActive:  true,
		IsVisible: true,
	})
	s.Require().NoError(err)

	capacities, err := s.inventoryService.UpsertPricing(ctx, s.admin, route.ID, []*entity.PricingUpdate{
		{Tier: entity.TierTenG, PricePerUnit: 150_000, AvailableUnits: availableUnits},
	})
	s.Require().NoError(err)
	s.Require().Len(capacities, 1)

	return route, capacities[0]
}

func (s *IntegrationTestSuite) TestCreateAndGetOrder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	route, capacity := s.seedRoute(ctx, 10)
	userID := uuid.New()

	created, err := s.orderService.CreateOrder(ctx, userID, []*entity.OrderItemInput{
		{RouteID: route.ID, RouteCapacityID: capacity.ID, Quantity: 2},
	})
	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Require().Equal(entity.OrderStatusPending, created.Status)
	s.Require().Equal(entity.PaymentStatusPending, created.PaymentStatus)
	s.Require().Equal(int64(300_000), created.TotalAmount)

	retrieved, err := s.orderService.GetOrder(ctx, created.ID, entity.Caller{
		UserID: userID,
		Role:   entity.RoleUser,
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)
	s.Require().Equal(created.ID, retrieved.ID)
	s.Require().Len(retrieved.Items, 1)
	s.Require().Equal(int64(150_000), retrieved.Items[0].UnitPrice)
}

func (s *IntegrationTestSuite) TestSettlementDecrementsAvailability() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	route, capacity := s.seedRoute(ctx, 10)
	userID := uuid.New()
	caller := entity.Caller{UserID: userID, Role: entity.RoleUser}

	created, err := s.orderService.CreateOrder(ctx, userID, []*entity.OrderItemInput{
		{RouteID: route.ID, RouteCapacityID: capacity.ID, Quantity: 3},
	})
	s.Require().NoError(err)

	settled, err := s.orderService.UpdatePaymentStatus(
		ctx, caller, created.ID, entity.PaymentStatusCompleted, gofakeit.UUID())
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusConfirmed, settled.Status)
	s.Require().Equal(entity.PaymentStatusCompleted, settled.PaymentStatus)

	capacities, err := s.inventoryService.GetCapacitiesForRoute(ctx, route.ID)
	s.Require().NoError(err)
	s.Require().Len(capacities, 1)
	s.Require().Equal(7, capacities[0].AvailableUnits)
}

func (s *IntegrationTestSuite) TestSettlementShortfallLeavesStateUntouched() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	route, capacity := s.seedRoute(ctx, 5)
	userID := uuid.New()
	caller := entity.Caller{UserID: userID, Role: entity.RoleUser}

	created, err := s.orderService.CreateOrder(ctx, userID, []*entity.OrderItemInput{
		{RouteID: route.ID, RouteCapacityID: capacity.ID, Quantity: 4},
	})
	s.Require().NoError(err)

	// Shrink availability below the ordered quantity before settlement.
	_, err = s.inventoryService.UpsertPricing(ctx, s.admin, route.ID, []*entity.PricingUpdate{
		{Tier: entity.TierTenG, PricePerUnit: 150_000, AvailableUnits: 2},
	})
	s.Require().NoError(err)

	_, err = s.orderService.UpdatePaymentStatus(
		ctx, caller, created.ID, entity.PaymentStatusCompleted, gofakeit.UUID())
	s.Require().ErrorIs(err, entity.ErrInsufficientCapacityAtSettlement)

	unchanged, err := s.orderService.GetOrder(ctx, created.ID, caller)
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusPending, unchanged.Status)
	s.Require().Equal(entity.PaymentStatusPending, unchanged.PaymentStatus)

	capacities, err := s.inventoryService.GetCapacitiesForRoute(ctx, route.ID)
	s.Require().NoError(err)
	s.Require().Equal(2, capacities[0].AvailableUnits)
}

func (s *IntegrationTestSuite) TestCancellationDoesNotRestock() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	route, capacity := s.seedRoute(ctx, 10)
	userID := uuid.New()
	caller := entity.Caller{UserID: userID, Role: entity.RoleUser}

	created, err := s.orderService.CreateOrder(ctx, userID, []*entity.OrderItemInput{
		{RouteID: route.ID, RouteCapacityID: capacity.ID, Quantity: 3},
	})
	s.Require().NoError(err)

	_, err = s.orderService.UpdatePaymentStatus(
		ctx, caller, created.ID, entity.PaymentStatusCompleted, gofakeit.UUID())
	s.Require().NoError(err)

	cancelled, err := s.orderService.RequestCancellation(ctx, created.ID, userID)
	s.Require().NoError(err)
	s.Require().Equal(entity.OrderStatusCancelled, cancelled.Status)

	capacities, err := s.inventoryService.GetCapacitiesForRoute(ctx, route.ID)
	s.Require().NoError(err)
	s.Require().Equal(7, capacities[0].AvailableUnits)
}

func (s *IntegrationTestSuite) TestDuplicateActiveRouteRejected() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	route, _ := s.seedRoute(ctx, 5)

	_, err := s.catalogService.CreateRoute(ctx, s.admin, &entity.Route{
		Name:      gofakeit.LetterN(12),
		AEndID:    route.AEndID,
		BEndID:    route.BEndID,
		IsActive:  true,
		IsVisible: true,
	})
	s.Require().ErrorIs(err, entity.ErrConflictingData)
}

func TestIntegration(t *testing.T) {
	t.Parallel()
	if os.Getenv("INTEGRATION_TEST") == "" {
		t.Skip("Skipping integration test; set INTEGRATION_TEST to run.")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func generateFakeLocation() *entity.Location {
	return &entity.Location{
		Name:      gofakeit.City() + " " + gofakeit.LetterN(4),
		Type:      entity.LocationTypePOP,
		Region:    gofakeit.State(),
		City:      gofakeit.City(),
		Latitude:  gofakeit.Latitude(),
		Longitude: gofakeit.Longitude(),
		IsActive:  true,
	}
}
