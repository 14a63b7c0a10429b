package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	mock_repository "github.com/pradeepdcosta/pathdrive-console/internal/repository/mock"
	"github.com/pradeepdcosta/pathdrive-console/internal/service"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

type catalogMocks struct {
	locationRepo *mock_repository.MockLocationRepository
	routeRepo    *mock_repository.MockRouteRepository
	capacityRepo *mock_repository.MockCapacityRepository
}

func newCatalogMocks(ctrl *gomock.Controller) catalogMocks {
	return catalogMocks{
		locationRepo: mock_repository.NewMockLocationRepository(ctrl),
		routeRepo:    mock_repository.NewMockRouteRepository(ctrl),
		capacityRepo: mock_repository.NewMockCapacityRepository(ctrl),
	}
}

func newCatalogService(ctrl *gomock.Controller, m catalogMocks) *service.CatalogService {
	return service.NewCatalogService(m.locationRepo, m.routeRepo, m.capacityRepo, newQuietLogger(ctrl))
}

func generateFakeLocation() *entity.Location {
	return &entity.Location{
		ID:        uuid.New(),
		Name:      gofakeit.City() + " POP",
		Type:      entity.LocationTypePOP,
		Region:    gofakeit.State(),
		City:      gofakeit.City(),
		Latitude:  gofakeit.Latitude(),
		Longitude: gofakeit.Longitude(),
		IsActive:  true,
	}
}

func TestCatalogService_FilterRoutes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("DropsRoutesWithoutQualifyingCapacity", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orderable := generateFakeRoute()
		soldOut := generateFakeRoute()
		filter := &entity.RouteFilter{Tier: entity.TierTenG}

		m := newCatalogMocks(ctrl)
		m.routeRepo.EXPECT().Filter(ctx, filter).
			Return([]*entity.Route{orderable, soldOut}, nil).Times(1)
		m.capacityRepo.EXPECT().
			ListByRouteIDs(ctx, []uuid.UUID{orderable.ID, soldOut.ID}, entity.TierTenG, true).
			Return(map[uuid.UUID][]*entity.RouteCapacity{
				orderable.ID: {generateFakeCapacity(orderable.ID)},
			}, nil).Times(1)

		s := newCatalogService(ctrl, m)

		result, err := s.FilterRoutes(ctx, filter)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result) != 1 {
			t.Fatalf("expected 1 route, got %d", len(result))
		}
		if result[0].ID != orderable.ID {
			t.Errorf("expected route %s, got %s", orderable.ID, result[0].ID)
		}
	})

	t.Run("NilFilterListsEverythingOrderable", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		route := generateFakeRoute()

		m := newCatalogMocks(ctrl)
		m.routeRepo.EXPECT().Filter(ctx, gomock.Any()).
			Return([]*entity.Route{route}, nil).Times(1)
		m.capacityRepo.EXPECT().
			ListByRouteIDs(ctx, []uuid.UUID{route.ID}, entity.CapacityTier(""), true).
			Return(map[uuid.UUID][]*entity.RouteCapacity{
				route.ID: {generateFakeCapacity(route.ID)},
			}, nil).Times(1)

		s := newCatalogService(ctrl, m)

		result, err := s.FilterRoutes(ctx, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result) != 1 {
			t.Errorf("expected 1 route, got %d", len(result))
		}
	})

	t.Run("UnknownTierRejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCatalogMocks(ctrl)
		s := newCatalogService(ctrl, m)

		_, err := s.FilterRoutes(ctx, &entity.RouteFilter{Tier: entity.CapacityTier("ONE_G")})
		if !errors.Is(err, entity.ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCatalogMocks(ctrl)
		m.routeRepo.EXPECT().Filter(ctx, gomock.Any()).
			Return([]*entity.Route{}, nil).Times(1)

		s := newCatalogService(ctrl, m)

		result, err := s.FilterRoutes(ctx, &entity.RouteFilter{AEndRegion: "EMEA"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result) != 0 {
			t.Errorf("expected no routes, got %d", len(result))
		}
	})
}

func TestCatalogService_ListActiveVisibleRoutes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	route := generateFakeRoute()
	capacities := []*entity.RouteCapacity{generateFakeCapacity(route.ID)}

	m := newCatalogMocks(ctrl)
	m.routeRepo.EXPECT().ListActive(ctx, true).
		Return([]*entity.Route{route}, nil).Times(1)
	m.capacityRepo.EXPECT().
		ListByRouteIDs(ctx, []uuid.UUID{route.ID}, entity.CapacityTier(""), false).
		Return(map[uuid.UUID][]*entity.RouteCapacity{route.ID: capacities}, nil).Times(1)

	s := newCatalogService(ctrl, m)

	result, err := s.ListActiveVisibleRoutes(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 route, got %d", len(result))
	}
	if len(result[0].Capacities) != 1 {
		t.Errorf("expected nested capacities, got %d", len(result[0].Capacities))
	}
}

func TestCatalogService_ListAdminRoutes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("IncludesHiddenRoutes", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		hidden := generateFakeRoute()
		hidden.IsVisible = false

		m := newCatalogMocks(ctrl)
		m.routeRepo.EXPECT().ListActive(ctx, false).
			Return([]*entity.Route{hidden}, nil).Times(1)
		m.capacityRepo.EXPECT().
			ListByRouteIDs(ctx, []uuid.UUID{hidden.ID}, entity.CapacityTier(""), false).
			Return(map[uuid.UUID][]*entity.RouteCapacity{}, nil).Times(1)

		s := newCatalogService(ctrl, m)

		result, err := s.ListAdminRoutes(ctx, entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(result) != 1 {
			t.Errorf("expected hidden route in admin listing, got %d routes", len(result))
		}
	})

	t.Run("NonAdminRejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCatalogMocks(ctrl)
		s := newCatalogService(ctrl, m)

		_, err := s.ListAdminRoutes(ctx, entity.Caller{UserID: uuid.New(), Role: entity.RoleUser})
		if !errors.Is(err, entity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestCatalogService_CreateRoute(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	admin := entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}

	testCases := []struct {
		desc        string
		caller      entity.Caller
		route       func() *entity.Route
		mocks       func(m catalogMocks, route *entity.Route)
		expectedErr error
	}{
		{
			desc:   "Success",
			caller: admin,
			route:  generateFakeRoute,
			mocks: func(m catalogMocks, route *entity.Route) {
				aEnd := generateFakeLocation()
				bEnd := generateFakeLocation()
				m.locationRepo.EXPECT().GetByID(ctx, route.AEndID).
					Return(aEnd, nil).Times(1)
				m.locationRepo.EXPECT().GetByID(ctx, route.BEndID).
					Return(bEnd, nil).Times(1)
				m.routeRepo.EXPECT().Create(ctx, route).
					Return(route, nil).Times(1)
			},
		},
		{
			desc:   "NonAdminRejected",
			caller: entity.Caller{UserID: uuid.New(), Role: entity.RoleUser},
			route:  generateFakeRoute,
			mocks:  func(m catalogMocks, route *entity.Route) {},

			expectedErr: entity.ErrUnauthorized,
		},
		{
			desc:   "EmptyName",
			caller: admin,
			route: func() *entity.Route {
				route := generateFakeRoute()
				route.Name = ""
				return route
			},
			mocks:       func(m catalogMocks, route *entity.Route) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:   "IdenticalEndpoints",
			caller: admin,
			route: func() *entity.Route {
				route := generateFakeRoute()
				route.BEndID = route.AEndID
				return route
			},
			mocks:       func(m catalogMocks, route *entity.Route) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:   "InactiveEndpoint",
			caller: admin,
			route:  generateFakeRoute,
			mocks: func(m catalogMocks, route *entity.Route) {
				inactive := generateFakeLocation()
				inactive.IsActive = false
				m.locationRepo.EXPECT().GetByID(ctx, route.AEndID).
					Return(inactive, nil).Times(1)
			},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:   "EndpointNotFound",
			caller: admin,
			route:  generateFakeRoute,
			mocks: func(m catalogMocks, route *entity.Route) {
				m.locationRepo.EXPECT().GetByID(ctx, route.AEndID).
					Return(nil, entity.ErrDataNotFound).Times(1)
			},
			expectedErr: entity.ErrDataNotFound,
		},
		{
			desc:   "DuplicateEndpointPair",
			caller: admin,
			route:  generateFakeRoute,
			mocks: func(m catalogMocks, route *entity.Route) {
				m.locationRepo.EXPECT().GetByID(ctx, route.AEndID).
					Return(generateFakeLocation(), nil).Times(1)
				m.locationRepo.EXPECT().GetByID(ctx, route.BEndID).
					Return(generateFakeLocation(), nil).Times(1)
				m.routeRepo.EXPECT().Create(ctx, route).
					Return(nil, entity.ErrConflictingData).Times(1)
			},
			expectedErr: entity.ErrConflictingData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			route := tc.route()

			m := newCatalogMocks(ctrl)
			tc.mocks(m, route)

			s := newCatalogService(ctrl, m)

			result, err := s.CreateRoute(ctx, tc.caller, route)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.ID != route.ID {
				t.Errorf("expected route %s, got %s", route.ID, result.ID)
			}
		})
	}
}

func TestCatalogService_SetRouteVisibility(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("AdminHidesRoute", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()

		m := newCatalogMocks(ctrl)
		m.routeRepo.EXPECT().SetVisibility(ctx, id, false).Return(nil).Times(1)

		s := newCatalogService(ctrl, m)

		err := s.SetRouteVisibility(ctx, entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}, id, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("NonAdminRejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCatalogMocks(ctrl)
		s := newCatalogService(ctrl, m)

		err := s.SetRouteVisibility(ctx, entity.Caller{UserID: uuid.New(), Role: entity.RoleUser}, uuid.New(), false)
		if !errors.Is(err, entity.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestCatalogService_CreateLocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	admin := entity.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}

	testCases := []struct {
		desc        string
		caller      entity.Caller
		location    func() *entity.Location
		mocks       func(m catalogMocks, location *entity.Location)
		expectedErr error
	}{
		{
			desc:     "Success",
			caller:   admin,
			location: generateFakeLocation,
			mocks: func(m catalogMocks, location *entity.Location) {
				m.locationRepo.EXPECT().Create(ctx, location).
					Return(location, nil).Times(1)
			},
		},
		{
			desc:        "NonAdminRejected",
			caller:      entity.Caller{UserID: uuid.New(), Role: entity.RoleUser},
			location:    generateFakeLocation,
			mocks:       func(m catalogMocks, location *entity.Location) {},
			expectedErr: entity.ErrUnauthorized,
		},
		{
			desc:   "UnknownType",
			caller: admin,
			location: func() *entity.Location {
				location := generateFakeLocation()
				location.Type = entity.LocationType("WAREHOUSE")
				return location
			},
			mocks:       func(m catalogMocks, location *entity.Location) {},
			expectedErr: entity.ErrInvalidData,
		},
		{
			desc:   "MissingRegion",
			caller: admin,
			location: func() *entity.Location {
				location := generateFakeLocation()
				location.Region = ""
				return location
			},
			mocks:       func(m catalogMocks, location *entity.Location) {},
			expectedErr: entity.ErrInvalidData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			location := tc.location()

			m := newCatalogMocks(ctrl)
			tc.mocks(m, location)

			s := newCatalogService(ctrl, m)

			result, err := s.CreateLocation(ctx, tc.caller, location)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.ID != location.ID {
				t.Errorf("expected location %s, got %s", location.ID, result.ID)
			}
		})
	}
}

func TestCatalogService_LocationLookups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("RegionsThenCitiesThenLocations", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		location := generateFakeLocation()

		m := newCatalogMocks(ctrl)
		m.locationRepo.EXPECT().ListRegions(ctx).
			Return([]string{location.Region}, nil).Times(1)
		m.locationRepo.EXPECT().ListCitiesByRegion(ctx, location.Region).
			Return([]string{location.City}, nil).Times(1)
		m.locationRepo.EXPECT().ListByRegionAndCity(ctx, location.Region, location.City).
			Return([]*entity.Location{location}, nil).Times(1)

		s := newCatalogService(ctrl, m)

		regions, err := s.ListRegions(ctx)
		if err != nil || len(regions) != 1 {
			t.Fatalf("expected 1 region, got %v (%v)", regions, err)
		}
		cities, err := s.ListCitiesByRegion(ctx, regions[0])
		if err != nil || len(cities) != 1 {
			t.Fatalf("expected 1 city, got %v (%v)", cities, err)
		}
		locations, err := s.ListLocationsByRegionAndCity(ctx, regions[0], cities[0])
		if err != nil || len(locations) != 1 {
			t.Fatalf("expected 1 location, got %v (%v)", locations, err)
		}
	})

	t.Run("EmptyRegionRejected", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newCatalogMocks(ctrl)
		s := newCatalogService(ctrl, m)

		if _, err := s.ListCitiesByRegion(ctx, ""); !errors.Is(err, entity.ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
		if _, err := s.ListLocationsByRegionAndCity(ctx, "", "Austin"); !errors.Is(err, entity.ErrInvalidData) {
			t.Fatalf("expected ErrInvalidData, got %v", err)
		}
	})
}
