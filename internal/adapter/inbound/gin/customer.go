package gin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/washdesk/server/internal/domain/customer"
	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/inbound"
	"github.com/washdesk/server/internal/shared/response"
)

// customerHandler implements inbound.CustomerHandlerPort.
type customerHandler struct {
	customerDomain customer.CustomerDomain
}

// NewCustomerHandler creates a new customer HTTP handler.
func NewCustomerHandler(customerDomain customer.CustomerDomain) inbound.CustomerHandlerPort {
	return &customerHandler{customerDomain: customerDomain}
}

func (h *customerHandler) Create(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Email    string `json:"email"`
		Area     string `json:"area"`
		City     string `json:"city"`
		District string `json:"district"`
		State    string `json:"state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.customerDomain.CreateCustomer(c.Request.Context(), &model.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Area:     req.Area,
		City:     req.City,
		District: req.District,
		State:    req.State,
	})
	if err != nil {
		handleCustomerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created.ToResponse())
}

func (h *customerHandler) Get(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	cust, err := h.customerDomain.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		handleCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust.ToResponse())
}

func (h *customerHandler) Update(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}
	customerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Email    string `json:"email"`
		Area     string `json:"area"`
		City     string `json:"city"`
		District string `json:"district"`
		State    string `json:"state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated := &model.Customer{
		ID:       customerID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Area:     req.Area,
		City:     req.City,
		District: req.District,
		State:    req.State,
	}
	if err := h.customerDomain.UpdateCustomer(c.Request.Context(), updated); err != nil {
		handleCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.ToResponse())
}

// List serves both search-as-you-type (?search=term&limit=n) and plain
// pagination.
func (h *customerHandler) List(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	if term := c.Query("search"); term != "" {
		limit, _ := strconv.Atoi(c.Query("limit"))
		results, err := h.customerDomain.SearchCustomers(c.Request.Context(), term, limit)
		if err != nil {
			handleCustomerError(c, err)
			return
		}
		responses := make([]*model.CustomerResponse, len(results))
		for i, cust := range results {
			responses[i] = cust.ToResponse()
		}
		c.JSON(http.StatusOK, gin.H{"customers": responses})
		return
	}

	page, pageSize := parsePagination(c)
	customers, total, err := h.customerDomain.ListCustomers(c.Request.Context(), page, pageSize)
	if err != nil {
		handleCustomerError(c, err)
		return
	}

	responses := make([]*model.CustomerResponse, len(customers))
	for i, cust := range customers {
		responses[i] = cust.ToResponse()
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	c.JSON(http.StatusOK, model.CustomerListResponse{
		Customers:  responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// Compile-time check
var _ inbound.CustomerHandlerPort = (*customerHandler)(nil)
