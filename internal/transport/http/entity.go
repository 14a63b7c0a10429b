// nolint: revive,staticcheck
// swagger:meta
package httpt

import (
	"github.com/pradeepdcosta/pathdrive-console/internal/entity"

	"github.com/google/uuid"
)

// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// swagger:model Route
type Route entity.Route

// swagger:model Location
type Location entity.Location

// swagger:model RouteCapacity
type RouteCapacity entity.RouteCapacity

// swagger:model Order
type Order entity.Order

type orderItemRequest struct {
	RouteID         uuid.UUID `json:"route_id"          binding:"required"`
	RouteCapacityID uuid.UUID `json:"route_capacity_id" binding:"required"`
	Quantity        int       `json:"quantity"          binding:"required,gt=0"`
}

// swagger:model CreateOrderRequest
type createOrderRequest struct {
	Items []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *createOrderRequest) toInputs() []*entity.OrderItemInput {
	inputs := make([]*entity.OrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		inputs = append(inputs, &entity.OrderItemInput{
			RouteID:         item.RouteID,
			RouteCapacityID: item.RouteCapacityID,
			Quantity:        item.Quantity,
		})
	}
	return inputs
}

// swagger:model UpdatePaymentRequest
type updatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
	PaymentRef    string `json:"payment_ref"`
}

// swagger:model UpdateOrderStatusRequest
type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// swagger:model LocationRequest
type locationRequest struct {
	Name      string  `json:"name"   binding:"required"`
	Type      string  `json:"type"   binding:"required,oneof=POP DC CLS"`
	Region    string  `json:"region" binding:"required"`
	City      string  `json:"city"   binding:"required"`
	Latitude  float64 `json:"latitude"  binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
	IsActive  *bool   `json:"is_active"`
}

func (r *locationRequest) toEntity(id uuid.UUID) *entity.Location {
	location := &entity.Location{
		ID:        id,
		Name:      r.Name,
		Type:      entity.LocationType(r.Type),
		Region:    r.Region,
		City:      r.City,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		IsActive:  true,
	}
	if r.IsActive != nil {
		location.IsActive = *r.IsActive
	}
	return location
}

// swagger:model RouteRequest
type routeRequest struct {
	Name       string    `json:"name"     binding:"required"`
	AEndID     uuid.UUID `json:"a_end_id" binding:"required"`
	BEndID     uuid.UUID `json:"b_end_id" binding:"required"`
	DistanceKm *float64  `json:"distance_km"`
	IsVisible  *bool     `json:"is_visible"`
	IsActive   *bool     `json:"is_active"`
}

func (r *routeRequest) toEntity(id uuid.UUID) *entity.Route {
	route := &entity.Route{
		ID:         id,
		Name:       r.Name,
		AEndID:     r.AEndID,
		BEndID:     r.BEndID,
		DistanceKm: r.DistanceKm,
		IsActive:   true,
		IsVisible:  true,
	}
	if r.IsVisible != nil {
		route.IsVisible = *r.IsVisible
	}
	if r.IsActive != nil {
		route.IsActive = *r.IsActive
	}
	return route
}

// swagger:model RouteVisibilityRequest
type routeVisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

type pricingUpdateRequest struct {
	Tier           string `json:"tier"           binding:"required"`
	PricePerUnit   int64  `json:"price_per_unit" binding:"required,gt=0"`
	AvailableUnits int    `json:"available_units" binding:"gte=0"`
}

// swagger:model UpsertPricingRequest
type upsertPricingRequest struct {
	Capacities []pricingUpdateRequest `json:"capacities" binding:"required,min=1,dive"`
}

func (r *upsertPricingRequest) toUpdates() []*entity.PricingUpdate {
	updates := make([]*entity.PricingUpdate, 0, len(r.Capacities))
	for _, capacity := range r.Capacities {
		updates = append(updates, &entity.PricingUpdate{
			Tier:           entity.CapacityTier(capacity.Tier),
			PricePerUnit:   capacity.PricePerUnit,
			AvailableUnits: capacity.AvailableUnits,
		})
	}
	return updates
}
