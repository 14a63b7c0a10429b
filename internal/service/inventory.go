package service

import (
	"context"
	"fmt"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
)

// InventoryService manages per-route, per-tier pricing and availability.
// Availability only ever shrinks through order settlement; administrators
// set it absolutely here.
type InventoryService struct {
	routeRepo    RouteRepository
	capacityRepo CapacityRepository
	txManager    transaction.Manager
	logger       logger.Logger
}

func NewInventoryService(
	routeRepo RouteRepository,
	capacityRepo CapacityRepository,
	txManager transaction.Manager,
	logger logger.Logger,
) *InventoryService {
	return &InventoryService{
		routeRepo:    routeRepo,
		capacityRepo: capacityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetCapacitiesForRoute returns the route's capacity rows ordered by tier
// ascending.
func (is *InventoryService) GetCapacitiesForRoute(
	ctx context.Context,
	routeID uuid.UUID,
) ([]*entity.RouteCapacity, error) {
	const op = "service.inventory.GetCapacitiesForRoute"

	capacities, err := is.capacityRepo.ListByRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return capacities, nil
}

// UpsertPricing applies an absolute price/availability set per tier for one
// route, creating rows as needed. All tiers are written in one transaction;
// repeating the call with the same payload leaves the same rows behind.
// Administrator only. It deliberately does not cross-check units already
// committed to pending orders.
func (is *InventoryService) UpsertPricing(
	ctx context.Context,
	caller entity.Caller,
	routeID uuid.UUID,
	updates []*entity.PricingUpdate,
) ([]*entity.RouteCapacity, error) {
	const op = "service.inventory.UpsertPricing"
	log := is.logger.Ctx(ctx)

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%s: no updates supplied: %w", op, entity.ErrInvalidData)
	}

	seen := make(map[entity.CapacityTier]bool, len(updates))
	for _, update := range updates {
		if !update.Tier.Valid() {
			return nil, fmt.Errorf("%s: tier %q: %w", op, update.Tier, entity.ErrInvalidData)
		}
		if update.PricePerUnit <= 0 || update.AvailableUnits < 0 {
			return nil, fmt.Errorf("%s: tier %s pricing: %w", op, update.Tier, entity.ErrInvalidData)
		}
		if seen[update.Tier] {
			return nil, fmt.Errorf("%s: duplicate tier %s: %w", op, update.Tier, entity.ErrInvalidData)
		}
		seen[update.Tier] = true
	}

	if _, err := is.routeRepo.GetByID(ctx, routeID); err != nil {
		return nil, fmt.Errorf("%s: load route: %w", op, err)
	}

	result := make([]*entity.RouteCapacity, 0, len(updates))
	err := is.txManager.ExecuteInTransaction(
		ctx,
		"UpsertPricing",
		func(tx postgres.QueryExecuter) error {
			for _, update := range updates {
				capacity, upsertErr := is.capacityRepo.Upsert(ctx, tx, routeID, update)
				if upsertErr != nil {
					return transaction.HandleError("UpsertPricing", "upsert capacity", upsertErr)
				}
				result = append(result, capacity)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	log.LogAttrs(ctx, logger.InfoLevel, "pricing upserted",
		logger.String("route_id", routeID.String()),
		logger.Int("tiers", len(result)),
	)

	return result, nil
}

// DeleteCapacity removes a capacity row entirely. Administrative correction
// path; existing order items keep their snapshotted prices.
func (is *InventoryService) DeleteCapacity(
	ctx context.Context,
	caller entity.Caller,
	id uuid.UUID,
) error {
	const op = "service.inventory.DeleteCapacity"
	log := is.logger.Ctx(ctx)

	if !caller.IsAdmin() {
		return entity.ErrUnauthorized
	}

	if err := is.capacityRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "capacity deleted",
		logger.String("route_capacity_id", id.String()),
	)

	return nil
}
