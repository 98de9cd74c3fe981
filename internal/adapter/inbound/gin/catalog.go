package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/washdesk/server/internal/domain/catalog"
	"github.com/washdesk/server/internal/port/inbound"
	"github.com/washdesk/server/internal/port/outbound"
	"github.com/washdesk/server/internal/shared/response"
)

// catalogHandler implements inbound.CatalogHandlerPort.
type catalogHandler struct {
	catalogDomain catalog.CatalogDomain
	geocoder      outbound.ReverseGeocodePort
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(catalogDomain catalog.CatalogDomain, geocoder outbound.ReverseGeocodePort) inbound.CatalogHandlerPort {
	return &catalogHandler{catalogDomain: catalogDomain, geocoder: geocoder}
}

func (h *catalogHandler) Get(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	cat, err := h.catalogDomain.Fetch(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to load catalog")
		return
	}
	c.JSON(http.StatusOK, cat.ToResponse())
}

// InvalidateCache drops the cached catalog so edits made in the admin
// tables show up without waiting out the TTL.
func (h *catalogHandler) InvalidateCache(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	if err := h.catalogDomain.InvalidateCache(c.Request.Context()); err != nil {
		response.InternalError(c, "failed to invalidate catalog cache")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *catalogHandler) VehicleType(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	brand := c.Query("brand")
	modelName := c.Query("model")
	if brand == "" || modelName == "" {
		response.BadRequest(c, "brand and model are required")
		return
	}

	vt, err := h.catalogDomain.LookupVehicleType(c.Request.Context(), brand, modelName)
	if err != nil {
		response.InternalError(c, "vehicle type lookup failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle_type": vt})
}

func (h *catalogHandler) ReverseGeocode(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	var req struct {
		MapLink string `json:"map_link" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	address, err := h.geocoder.Resolve(c.Request.Context(), req.MapLink)
	if err != nil {
		handleGeocodeError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

// Compile-time check
var _ inbound.CatalogHandlerPort = (*catalogHandler)(nil)
