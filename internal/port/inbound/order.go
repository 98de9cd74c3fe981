package inbound

import "github.com/gin-gonic/gin"

// OrderHandlerPort defines the interface for order HTTP handlers.
type OrderHandlerPort interface {
	// Submit handles POST /api/v1/orders
	Submit(c *gin.Context)
	// Resubmit handles PUT /api/v1/orders
	Resubmit(c *gin.Context)
	// Get handles GET /api/v1/orders/:id
	Get(c *gin.Context)
	// List handles GET /api/v1/orders
	List(c *gin.Context)
	// UpdateStatus handles POST /api/v1/orders/:id/status
	UpdateStatus(c *gin.Context)
}
