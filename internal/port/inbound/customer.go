package inbound

import "github.com/gin-gonic/gin"

// CustomerHandlerPort defines the interface for customer HTTP handlers.
type CustomerHandlerPort interface {
	// Create handles POST /api/v1/customers
	Create(c *gin.Context)
	// Get handles GET /api/v1/customers/:id
	Get(c *gin.Context)
	// Update handles PUT /api/v1/customers/:id
	Update(c *gin.Context)
	// List handles GET /api/v1/customers
	List(c *gin.Context)
}
