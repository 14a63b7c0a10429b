package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationType classifies a network endpoint: point of presence,
// data center or cable landing station.
type LocationType string

const (
	LocationTypePOP LocationType = "POP"
	LocationTypeDC  LocationType = "DC"
	LocationTypeCLS LocationType = "CLS"
)

func (t LocationType) Valid() bool {
	switch t {
	case LocationTypePOP, LocationTypeDC, LocationTypeCLS:
		return true
	}
	return false
}

// Location is a network endpoint a route can terminate on. Locations are
// soft-deleted: IsActive=false hides them from every catalog query.
type Location struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"      validate:"required,max=100"`
	Type      LocationType `json:"type"      validate:"required"`
	Region    string       `json:"region"    validate:"required,max=100"`
	City      string       `json:"city"      validate:"required,max=100"`
	Latitude  float64      `json:"latitude"  validate:"gte=-90,lte=90"`
	Longitude float64      `json:"longitude" validate:"gte=-180,lte=180"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
