package httpt

import (
	"context"
	"net/http"
	"time"

	"github.com/pradeepdcosta/pathdrive-console/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const _defaultContextTimeout = 2 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
}

// @Summary List routes
// @Description Returns every active, visible route with its full capacity list
// @Tags Catalog
// @Produce json
// @Success 200 {array} httpt.Route
// @Failure 500 {object} httpt.ErrorResponse
// @Router /routes [get]
func (h *PortalHandler) listRoutesHandler(c *gin.Context) {
	const op = "transport.listRoutesHandler"

	ctx, cancel := requestContext(c)
	defer cancel()

	routes, err := h.catalog.ListActiveVisibleRoutes(ctx)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// @Summary Search routes
// @Description Filters active, visible routes by endpoint attributes and capacity tier; routes without an available capacity row are dropped
// @Tags Catalog
// @Produce json
// @Param a_end_region query string false "A-end region"
// @Param a_end_city query string false "A-end city"
// @Param a_end_id query string false "A-end location ID"
// @Param b_end_region query string false "B-end region"
// @Param b_end_city query string false "B-end city"
// @Param b_end_id query string false "B-end location ID"
// @Param tier query string false "Capacity tier" Enums(TEN_G, HUNDRED_G, FOUR_HUNDRED_G)
// @Success 200 {array} httpt.Route
// @Failure 400 {object} httpt.ErrorResponse
// @Router /routes/search [get]
func (h *PortalHandler) searchRoutesHandler(c *gin.Context) {
	const op = "transport.searchRoutesHandler"

	filter := &entity.RouteFilter{
		AEndRegion: c.Query("a_end_region"),
		AEndCity:   c.Query("a_end_city"),
		BEndRegion: c.Query("b_end_region"),
		BEndCity:   c.Query("b_end_city"),
		Tier:       entity.CapacityTier(c.Query("tier")),
	}

	if raw := c.Query("a_end_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.handleInvalidUUID(c, op, "a_end_id", raw)
			return
		}
		filter.AEndID = id
	}
	if raw := c.Query("b_end_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.handleInvalidUUID(c, op, "b_end_id", raw)
			return
		}
		filter.BEndID = id
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	routes, err := h.catalog.FilterRoutes(ctx, filter)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// @Summary List route capacities
// @Description Returns the capacity rows of one route ordered by tier
// @Tags Catalog
// @Produce json
// @Param route_id path string true "Route ID"
// @Success 200 {array} httpt.RouteCapacity
// @Failure 400 {object} httpt.ErrorResponse
// @Router /routes/{route_id}/capacities [get]
func (h *PortalHandler) listRouteCapacitiesHandler(c *gin.Context) {
	const op = "transport.listRouteCapacitiesHandler"

	routeID, err := uuid.Parse(c.Param("route_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "route_id", c.Param("route_id"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	capacities, err := h.inventory.GetCapacitiesForRoute(ctx, routeID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, capacities)
}

// @Summary List locations
// @Description Returns active locations; with region and city query parameters, only locations in that city
// @Tags Catalog
// @Produce json
// @Param region query string false "Region"
// @Param city query string false "City"
// @Success 200 {array} httpt.Location
// @Router /locations [get]
func (h *PortalHandler) listLocationsHandler(c *gin.Context) {
	const op = "transport.listLocationsHandler"

	ctx, cancel := requestContext(c)
	defer cancel()

	region := c.Query("region")
	city := c.Query("city")

	var (
		locations []*entity.Location
		err       error
	)
	if region != "" || city != "" {
		locations, err = h.catalog.ListLocationsByRegionAndCity(ctx, region, city)
	} else {
		locations, err = h.catalog.ListLocations(ctx)
	}
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// @Summary List regions
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /locations/regions [get]
func (h *PortalHandler) listRegionsHandler(c *gin.Context) {
	const op = "transport.listRegionsHandler"

	ctx, cancel := requestContext(c)
	defer cancel()

	regions, err := h.catalog.ListRegions(ctx)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, regions)
}

// @Summary List cities in a region
// @Tags Catalog
// @Produce json
// @Param region query string true "Region"
// @Success 200 {array} string
// @Failure 400 {object} httpt.ErrorResponse
// @Router /locations/cities [get]
func (h *PortalHandler) listCitiesHandler(c *gin.Context) {
	const op = "transport.listCitiesHandler"

	ctx, cancel := requestContext(c)
	defer cancel()

	cities, err := h.catalog.ListCitiesByRegion(ctx, c.Query("region"))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, cities)
}

// @Summary Get location
// @Tags Catalog
// @Produce json
// @Param location_id path string true "Location ID"
// @Success 200 {object} httpt.Location
// @Failure 404 {object} httpt.ErrorResponse
// @Router /locations/{location_id} [get]
func (h *PortalHandler) getLocationHandler(c *gin.Context) {
	const op = "transport.getLocationHandler"

	locationID, err := uuid.Parse(c.Param("location_id"))
	if err != nil {
		h.handleInvalidUUID(c, op, "location_id", c.Param("location_id"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	location, err := h.catalog.GetLocation(ctx, locationID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, location)
}
