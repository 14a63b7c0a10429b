package service

import (
	"context"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=../repository/mock/repository.go -package=mock_repository -typed

type (
	LocationRepository interface {
		Create(ctx context.Context, location *entity.Location) (*entity.Location, error)
		Update(ctx context.Context, location *entity.Location) (*entity.Location, error)
		Deactivate(ctx context.Context, id uuid.UUID) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
		ListActive(ctx context.Context) ([]*entity.Location, error)
		ListByRegionAndCity(ctx context.Context, region, city string) ([]*entity.Location, error)
		ListRegions(ctx context.Context) ([]string, error)
		ListCitiesByRegion(ctx context.Context, region string) ([]string, error)
	}

	RouteRepository interface {
		Create(ctx context.Context, route *entity.Route) (*entity.Route, error)
		Update(ctx context.Context, route *entity.Route) (*entity.Route, error)
		SetVisibility(ctx context.Context, id uuid.UUID, visible bool) error
		Deactivate(ctx context.Context, id uuid.UUID) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
		ListActive(ctx context.Context, visibleOnly bool) ([]*entity.Route, error)
		Filter(ctx context.Context, filter *entity.RouteFilter) ([]*entity.Route, error)
	}

	CapacityRepository interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entity.RouteCapacity, error)
		ListByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.RouteCapacity, error)
		ListByRouteIDs(
			ctx context.Context,
			routeIDs []uuid.UUID,
			tier entity.CapacityTier,
			onlyAvailable bool,
		) (map[uuid.UUID][]*entity.RouteCapacity, error)
		Upsert(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			routeID uuid.UUID,
			update *entity.PricingUpdate,
		) (*entity.RouteCapacity, error)
		Delete(ctx context.Context, id uuid.UUID) error
		DecrementAvailable(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			id uuid.UUID,
			quantity int,
		) error
	}

	OrderRepository interface {
		Create(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			order *entity.Order,
		) (*entity.Order, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
		ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
		ListAll(ctx context.Context) ([]*entity.Order, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
		UpdatePayment(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			id uuid.UUID,
			status entity.OrderStatus,
			paymentStatus entity.PaymentStatus,
			paymentRef string,
		) error
		UpdateTotal(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			id uuid.UUID,
			totalAmount int64,
		) error
	}

	OrderItemRepository interface {
		CreateBatch(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			orderID uuid.UUID,
			items []*entity.OrderItem,
		) error
		DeleteByOrder(
			ctx context.Context,
			queryExecuter postgres.QueryExecuter,
			orderID uuid.UUID,
		) error
		ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	}
)
