package entity

import (
	"time"

	"github.com/google/uuid"
)

// CapacityTier is the closed set of bandwidth classes sold per route.
type CapacityTier string

const (
	TierTenG         CapacityTier = "TEN_G"
	TierHundredG     CapacityTier = "HUNDRED_G"
	TierFourHundredG CapacityTier = "FOUR_HUNDRED_G"
)

func (t CapacityTier) Valid() bool {
	switch t {
	case TierTenG, TierHundredG, TierFourHundredG:
		return true
	}
	return false
}

// Rank orders tiers ascending by bandwidth: TEN_G < HUNDRED_G < FOUR_HUNDRED_G.
// Unknown tiers rank last.
func (t CapacityTier) Rank() int {
	switch t {
	case TierTenG:
		return 1
	case TierHundredG:
		return 2
	case TierFourHundredG:
		return 3
	}
	return 4
}

func ParseCapacityTier(s string) (CapacityTier, error) {
	tier := CapacityTier(s)
	if !tier.Valid() {
		return "", ErrInvalidData
	}
	return tier, nil
}

// RouteCapacity is the sellable inventory record for one (route, tier) pair.
// PricePerUnit is monthly recurring, in USD cents. AvailableUnits never goes
// negative: admin updates set it absolutely, settlement decrements it with a
// hard lower bound of zero.
type RouteCapacity struct {
	ID             uuid.UUID    `json:"id"`
	RouteID        uuid.UUID    `json:"route_id"`
	Tier           CapacityTier `json:"tier"            validate:"required"`
	PricePerUnit   int64        `json:"price_per_unit"  validate:"gt=0"`
	AvailableUnits int          `json:"available_units" validate:"gte=0"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// PricingUpdate is one tier's absolute price/availability set in an
// administrative upsert.
type PricingUpdate struct {
	Tier           CapacityTier `json:"tier"            validate:"required"`
	PricePerUnit   int64        `json:"price_per_unit"  validate:"gt=0"`
	AvailableUnits int          `json:"available_units" validate:"gte=0"`
}
