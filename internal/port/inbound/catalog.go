package inbound

import "github.com/gin-gonic/gin"

// CatalogHandlerPort defines the interface for catalog HTTP handlers.
type CatalogHandlerPort interface {
	// Get handles GET /api/v1/catalog
	Get(c *gin.Context)
	// InvalidateCache handles DELETE /api/v1/catalog/cache
	InvalidateCache(c *gin.Context)
	// VehicleType handles GET /api/v1/vehicles/type
	VehicleType(c *gin.Context)
	// ReverseGeocode handles POST /api/v1/geocode/reverse
	ReverseGeocode(c *gin.Context)
}
