package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/washdesk/server/internal/adapter/outbound/geocode"
	"github.com/washdesk/server/internal/domain/customer"
	"github.com/washdesk/server/internal/domain/order"
	"github.com/washdesk/server/internal/domain/wizard"
	"github.com/washdesk/server/internal/shared/response"
)

// handleOrderError maps order domain errors to HTTP responses.
func handleOrderError(c *gin.Context, err error) {
	response.HandleErrorWithDefault(c, err, []response.ErrorMapping{
		{Err: order.ErrOrderNotFound, Status: http.StatusNotFound, Code: "order_not_found"},
		{Err: order.ErrCustomerNotFound, Status: http.StatusNotFound, Code: "customer_not_found"},
		{Err: order.ErrOrderNotEditable, Status: http.StatusConflict, Code: "order_not_editable"},
		{Err: order.ErrInvalidStatus, Status: http.StatusBadRequest, Code: "invalid_status"},
		{Err: order.ErrInvalidTransition, Status: http.StatusConflict, Code: "invalid_transition"},
	})
}

// handleCustomerError maps customer domain errors to HTTP responses.
func handleCustomerError(c *gin.Context, err error) {
	response.HandleErrorWithDefault(c, err, []response.ErrorMapping{
		{Err: customer.ErrCustomerNotFound, Status: http.StatusNotFound, Code: "customer_not_found"},
		{Err: customer.ErrNameRequired, Status: http.StatusBadRequest, Code: "name_required"},
		{Err: customer.ErrPhoneRequired, Status: http.StatusBadRequest, Code: "phone_required"},
	})
}

// handleWizardError maps wizard domain errors to HTTP responses.
// ErrDraftConflict is handled at the call site since it carries the
// conflicting draft as payload.
func handleWizardError(c *gin.Context, err error) {
	response.HandleErrorWithDefault(c, err, []response.ErrorMapping{
		{Err: wizard.ErrInvalidStep, Status: http.StatusBadRequest, Code: "invalid_step"},
	})
}

// handleGeocodeError maps geocode client errors to HTTP responses.
func handleGeocodeError(c *gin.Context, err error) {
	response.HandleErrorWithDefault(c, err, []response.ErrorMapping{
		{Err: geocode.ErrNoCoordinates, Status: http.StatusBadRequest, Code: "no_coordinates"},
		{Err: geocode.ErrUnavailable, Status: http.StatusServiceUnavailable, Code: "geocode_unavailable"},
	})
}
