package entity

import (
	"time"

	"github.com/google/uuid"
)

// Route is a directed pairing of two distinct locations. The (AEnd, BEnd)
// pair is unique among active routes. IsVisible gates discovery in user
// search, IsActive gates whether the route can be ordered at all.
type Route struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"       validate:"required,max=150"`
	AEndID     uuid.UUID        `json:"a_end_id"   validate:"required"`
	BEndID     uuid.UUID        `json:"b_end_id"   validate:"required"`
	AEnd       *Location        `json:"a_end,omitempty"`
	BEnd       *Location        `json:"b_end,omitempty"`
	DistanceKm *float64         `json:"distance_km,omitempty"`
	IsActive   bool             `json:"is_active"`
	IsVisible  bool             `json:"is_visible"`
	Capacities []*RouteCapacity `json:"capacities,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// RouteFilter narrows a catalog search. Zero values mean "not supplied";
// every supplied field is an exact match on the corresponding endpoint
// attribute. A supplied Tier additionally restricts the nested capacity
// list to that tier.
type RouteFilter struct {
	AEndRegion string
	AEndCity   string
	AEndID     uuid.UUID
	BEndRegion string
	BEndCity   string
	BEndID     uuid.UUID
	Tier       CapacityTier
}
