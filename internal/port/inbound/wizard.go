package inbound

import "github.com/gin-gonic/gin"

// WizardHandlerPort defines the interface for wizard HTTP handlers.
type WizardHandlerPort interface {
	// GetDraft handles GET /api/v1/wizard/draft
	GetDraft(c *gin.Context)
	// SaveDraft handles PUT /api/v1/wizard/draft
	SaveDraft(c *gin.Context)
	// ClearDraft handles DELETE /api/v1/wizard/draft
	ClearDraft(c *gin.Context)
	// Advance handles POST /api/v1/wizard/draft/advance
	Advance(c *gin.Context)
	// Back handles POST /api/v1/wizard/draft/back
	Back(c *gin.Context)
	// Quote handles POST /api/v1/wizard/quote
	Quote(c *gin.Context)
}
