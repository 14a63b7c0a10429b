package service

import (
	"context"
	"fmt"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"

	"github.com/google/uuid"
)

// CatalogService is the route/location query surface plus the
// administrative catalog CRUD. Read-mostly; mutations are admin-only and
// soft-delete, never hard-delete.
type CatalogService struct {
	locationRepo LocationRepository
	routeRepo    RouteRepository
	capacityRepo CapacityRepository
	logger       logger.Logger
}

func NewCatalogService(
	locationRepo LocationRepository,
	routeRepo RouteRepository,
	capacityRepo CapacityRepository,
	logger logger.Logger,
) *CatalogService {
	return &CatalogService{
		locationRepo: locationRepo,
		routeRepo:    routeRepo,
		capacityRepo: capacityRepo,
		logger:       logger,
	}
}

// ListActiveVisibleRoutes returns every orderable, discoverable route with
// endpoints and the full capacity list, ordered by name.
func (cs *CatalogService) ListActiveVisibleRoutes(ctx context.Context) ([]*entity.Route, error) {
	const op = "service.catalog.ListActiveVisibleRoutes"

	routes, err := cs.routeRepo.ListActive(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("%s: list routes: %w", op, err)
	}

	if err = cs.attachCapacities(ctx, routes, "", false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return routes, nil
}

// ListAdminRoutes returns all active routes regardless of visibility, with
// unfiltered capacity lists. Administrator only.
func (cs *CatalogService) ListAdminRoutes(
	ctx context.Context,
	caller entity.Caller,
) ([]*entity.Route, error) {
	const op = "service.catalog.ListAdminRoutes"

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}

	routes, err := cs.routeRepo.ListActive(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("%s: list routes: %w", op, err)
	}

	if err = cs.attachCapacities(ctx, routes, "", false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return routes, nil
}

// FilterRoutes narrows active, visible routes by the supplied endpoint
// criteria. Only capacity rows with available units qualify; a supplied
// tier restricts the nested list to that tier. Routes left without a
// qualifying capacity row are dropped from the result.
func (cs *CatalogService) FilterRoutes(
	ctx context.Context,
	filter *entity.RouteFilter,
) ([]*entity.Route, error) {
	const op = "service.catalog.FilterRoutes"
	log := cs.logger.Ctx(ctx)

	if filter == nil {
		filter = &entity.RouteFilter{}
	}
	if filter.Tier != "" && !filter.Tier.Valid() {
		return nil, fmt.Errorf("%s: tier %q: %w", op, filter.Tier, entity.ErrInvalidData)
	}

	routes, err := cs.routeRepo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: filter routes: %w", op, err)
	}

	if err = cs.attachCapacities(ctx, routes, filter.Tier, true); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*entity.Route, 0, len(routes))
	for _, route := range routes {
		if len(route.Capacities) == 0 {
			continue
		}
		result = append(result, route)
	}

	log.LogAttrs(ctx, logger.DebugLevel, "routes filtered",
		logger.Int("matched", len(routes)),
		logger.Int("returned", len(result)),
	)

	return result, nil
}

func (cs *CatalogService) attachCapacities(
	ctx context.Context,
	routes []*entity.Route,
	tier entity.CapacityTier,
	onlyAvailable bool,
) error {
	if len(routes) == 0 {
		return nil
	}

	routeIDs := make([]uuid.UUID, 0, len(routes))
	for _, route := range routes {
		routeIDs = append(routeIDs, route.ID)
	}

	capacities, err := cs.capacityRepo.ListByRouteIDs(ctx, routeIDs, tier, onlyAvailable)
	if err != nil {
		return fmt.Errorf("attach capacities: %w", err)
	}

	for _, route := range routes {
		route.Capacities = capacities[route.ID]
	}

	return nil
}

func (cs *CatalogService) GetLocation(
	ctx context.Context,
	id uuid.UUID,
) (*entity.Location, error) {
	const op = "service.catalog.GetLocation"

	location, err := cs.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return location, nil
}

func (cs *CatalogService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	const op = "service.catalog.ListLocations"

	locations, err := cs.locationRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return locations, nil
}

// ListLocationsByRegionAndCity backs the last level of the cascading
// endpoint selector.
func (cs *CatalogService) ListLocationsByRegionAndCity(
	ctx context.Context,
	region, city string,
) ([]*entity.Location, error) {
	const op = "service.catalog.ListLocationsByRegionAndCity"

	if region == "" || city == "" {
		return nil, fmt.Errorf("%s: region and city required: %w", op, entity.ErrInvalidData)
	}

	locations, err := cs.locationRepo.ListByRegionAndCity(ctx, region, city)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return locations, nil
}

func (cs *CatalogService) ListRegions(ctx context.Context) ([]string, error) {
	const op = "service.catalog.ListRegions"

	regions, err := cs.locationRepo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return regions, nil
}

func (cs *CatalogService) ListCitiesByRegion(
	ctx context.Context,
	region string,
) ([]string, error) {
	const op = "service.catalog.ListCitiesByRegion"

	if region == "" {
		return nil, fmt.Errorf("%s: region required: %w", op, entity.ErrInvalidData)
	}

	cities, err := cs.locationRepo.ListCitiesByRegion(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cities, nil
}

func (cs *CatalogService) CreateLocation(
	ctx context.Context,
	caller entity.Caller,
	location *entity.Location,
) (*entity.Location, error) {
	const op = "service.catalog.CreateLocation"
	log := cs.logger.Ctx(ctx)

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}
	if err := validateLocation(location); err != nil {
		return nil, fmt.Errorf("%s: validate location: %w", op, err)
	}

	created, err := cs.locationRepo.Create(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%s: create location: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "location created",
		logger.String("location_id", created.ID.String()),
		logger.String("name", created.Name),
	)

	return created, nil
}

func (cs *CatalogService) UpdateLocation(
	ctx context.Context,
	caller entity.Caller,
	location *entity.Location,
) (*entity.Location, error) {
	const op = "service.catalog.UpdateLocation"

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}
	if location.ID == uuid.Nil {
		return nil, fmt.Errorf("%s: missing id: %w", op, entity.ErrInvalidData)
	}
	if err := validateLocation(location); err != nil {
		return nil, fmt.Errorf("%s: validate location: %w", op, err)
	}

	updated, err := cs.locationRepo.Update(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%s: update location: %w", op, err)
	}

	return updated, nil
}

// DeactivateLocation soft-deletes a location. Routes referencing it keep
// their historical endpoints.
func (cs *CatalogService) DeactivateLocation(
	ctx context.Context,
	caller entity.Caller,
	id uuid.UUID,
) error {
	const op = "service.catalog.DeactivateLocation"
	log := cs.logger.Ctx(ctx)

	if !caller.IsAdmin() {
		return entity.ErrUnauthorized
	}

	if err := cs.locationRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "location deactivated",
		logger.String("location_id", id.String()),
	)

	return nil
}

func (cs *CatalogService) CreateRoute(
	ctx context.Context,
	caller entity.Caller,
	route *entity.Route,
) (*entity.Route, error) {
	const op = "service.catalog.CreateRoute"
	log := cs.logger.Ctx(ctx)

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}
	if err := cs.validateRouteEndpoints(ctx, route); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := cs.routeRepo.Create(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("%s: create route: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "route created",
		logger.String("route_id", created.ID.String()),
		logger.String("name", created.Name),
	)

	return created, nil
}

func (cs *CatalogService) UpdateRoute(
	ctx context.Context,
	caller entity.Caller,
	route *entity.Route,
) (*entity.Route, error) {
	const op = "service.catalog.UpdateRoute"

	if !caller.IsAdmin() {
		return nil, entity.ErrUnauthorized
	}
	if route.ID == uuid.Nil {
		return nil, fmt.Errorf("%s: missing id: %w", op, entity.ErrInvalidData)
	}
	if err := cs.validateRouteEndpoints(ctx, route); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := cs.routeRepo.Update(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("%s: update route: %w", op, err)
	}

	return updated, nil
}

func (cs *CatalogService) SetRouteVisibility(
	ctx context.Context,
	caller entity.Caller,
	id uuid.UUID,
	visible bool,
) error {
	const op = "service.catalog.SetRouteVisibility"

	if !caller.IsAdmin() {
		return entity.ErrUnauthorized
	}

	if err := cs.routeRepo.SetVisibility(ctx, id, visible); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (cs *CatalogService) DeactivateRoute(
	ctx context.Context,
	caller entity.Caller,
	id uuid.UUID,
) error {
	const op = "service.catalog.DeactivateRoute"
	log := cs.logger.Ctx(ctx)

	if !caller.IsAdmin() {
		return entity.ErrUnauthorized
	}

	if err := cs.routeRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "route deactivated",
		logger.String("route_id", id.String()),
	)

	return nil
}

func (cs *CatalogService) validateRouteEndpoints(
	ctx context.Context,
	route *entity.Route,
) error {
	if route.Name == "" {
		return fmt.Errorf("validate route: empty name: %w", entity.ErrInvalidData)
	}
	if route.AEndID == uuid.Nil || route.BEndID == uuid.Nil {
		return fmt.Errorf("validate route: missing endpoint: %w", entity.ErrInvalidData)
	}
	if route.AEndID == route.BEndID {
		return fmt.Errorf("validate route: identical endpoints: %w", entity.ErrInvalidData)
	}

	for _, endID := range []uuid.UUID{route.AEndID, route.BEndID} {
		location, err := cs.locationRepo.GetByID(ctx, endID)
		if err != nil {
			return fmt.Errorf("validate route: endpoint %s: %w", endID, err)
		}
		if !location.IsActive {
			return fmt.Errorf(
				"validate route: endpoint %s inactive: %w", endID, entity.ErrInvalidData)
		}
	}

	return nil
}

func validateLocation(location *entity.Location) error {
	if location == nil || location.Name == "" {
		return entity.ErrInvalidData
	}
	if !location.Type.Valid() {
		return entity.ErrInvalidData
	}
	if location.Region == "" || location.City == "" {
		return entity.ErrInvalidData
	}
	return nil
}
