package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/washdesk/server/internal/domain/order"
	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/inbound"
	"github.com/washdesk/server/internal/shared/response"
)

// orderHandler implements inbound.OrderHandlerPort.
type orderHandler struct {
	orderDomain order.OrderDomain
}

// NewOrderHandler creates a new order HTTP handler.
func NewOrderHandler(orderDomain order.OrderDomain) inbound.OrderHandlerPort {
	return &orderHandler{orderDomain: orderDomain}
}

// submitRequest is the order submission payload: the wizard draft plus
// an optional requested final status.
type submitRequest struct {
	Draft  model.WizardDraft  `json:"draft" binding:"required"`
	Status *model.OrderStatus `json:"status,omitempty"`
}

func (h *orderHandler) Submit(c *gin.Context) {
	userID, ok := GetUserIDFromHeader(c)
	if !ok {
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// POST always creates; stray order ids from stale clients are
	// rejected rather than silently turning into updates.
	if req.Draft.OrderID != nil {
		response.BadRequest(c, "draft carries an order id, use PUT to update")
		return
	}

	submitted, result, err := h.orderDomain.Submit(c.Request.Context(), userID, &req.Draft, req.Status)
	if err != nil {
		handleOrderError(c, err)
		return
	}
	if result != nil && !result.Valid {
		response.ValidationFailed(c, result.Errors)
		return
	}
	c.JSON(http.StatusCreated, submitted.ToResponse())
}

func (h *orderHandler) Resubmit(c *gin.Context) {
	userID, ok := GetUserIDFromHeader(c)
	if !ok {
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Draft.OrderID == nil {
		response.BadRequest(c, "draft is missing the order id")
		return
	}

	submitted, result, err := h.orderDomain.Submit(c.Request.Context(), userID, &req.Draft, req.Status)
	if err != nil {
		handleOrderError(c, err)
		return
	}
	if result != nil && !result.Valid {
		response.ValidationFailed(c, result.Errors)
		return
	}
	c.JSON(http.StatusOK, submitted.ToResponse())
}

func (h *orderHandler) Get(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ord, err := h.orderDomain.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		handleOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord.ToResponse())
}

func (h *orderHandler) List(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}
	page, pageSize := parsePagination(c)

	var filter model.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status := model.OrderStatus(raw)
		if !status.IsValid() {
			response.BadRequest(c, "invalid status filter")
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid customer_id filter")
			return
		}
		filter.CustomerID = &id
	}
	if raw := c.Query("agent_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid agent_id filter")
			return
		}
		filter.AgentID = &id
	}

	orders, total, err := h.orderDomain.ListOrders(c.Request.Context(), &filter, page, pageSize)
	if err != nil {
		handleOrderError(c, err)
		return
	}

	responses := make([]*model.OrderResponse, len(orders))
	for i, ord := range orders {
		responses[i] = ord.ToResponse()
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	c.JSON(http.StatusOK, model.OrderListResponse{
		Orders:     responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func (h *orderHandler) UpdateStatus(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status model.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ord, err := h.orderDomain.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		handleOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord.ToResponse())
}

// Compile-time check
var _ inbound.OrderHandlerPort = (*orderHandler)(nil)
