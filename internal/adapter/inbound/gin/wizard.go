package gin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/washdesk/server/internal/domain/wizard"
	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/inbound"
	"github.com/washdesk/server/internal/shared/response"
)

// wizardHandler implements inbound.WizardHandlerPort.
type wizardHandler struct {
	wizardDomain wizard.WizardDomain
}

// NewWizardHandler creates a new wizard HTTP handler.
func NewWizardHandler(wizardDomain wizard.WizardDomain) inbound.WizardHandlerPort {
	return &wizardHandler{wizardDomain: wizardDomain}
}

func (h *wizardHandler) GetDraft(c *gin.Context) {
	userID, ok := GetUserIDFromHeader(c)
	if !ok {
		return
	}

	var customerID *uuid.UUID
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid customer_id")
			return
		}
		customerID = &id
	}

	draft, err := h.wizardDomain.LoadDraft(c.Request.Context(), userID, customerID)
	if err != nil {
		if errors.Is(err, wizard.ErrDraftConflict) {
			response.Conflict(c, "a draft for a different customer exists", gin.H{"draft": draft})
			return
		}
		handleWizardError(c, err)
		return
	}
	if draft == nil {
		c.JSON(http.StatusOK, gin.H{"draft": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *wizardHandler) SaveDraft(c *gin.Context) {
	userID, ok := GetUserIDFromHeader(c)
	if !ok {
		return
	}

	var draft model.WizardDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.wizardDomain.SaveDraft(c.Request.Context(), userID, &draft); err != nil {
		handleWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *wizardHandler) ClearDraft(c *gin.Context) {
	userID, ok := GetUserIDFromHeader(c)
	if !ok {
		return
	}

	if err := h.wizardDomain.ClearDraft(c.Request.Context(), userID); err != nil {
		handleWizardError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *wizardHandler) Advance(c *gin.Context) {
	userID, ok := GetUserIDFromHeader(c)
	if !ok {
		return
	}

	var draft model.WizardDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, updated, err := h.wizardDomain.Advance(c.Request.Context(), userID, &draft)
	if err != nil {
		handleWizardError(c, err)
		return
	}
	if !result.Valid {
		response.ValidationFailed(c, result.Errors)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": updated})
}

// Back steps the draft backwards without validating or persisting.
func (h *wizardHandler) Back(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	var draft model.WizardDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated := h.wizardDomain.Back(&draft)
	c.JSON(http.StatusOK, gin.H{"draft": updated})
}

func (h *wizardHandler) Quote(c *gin.Context) {
	if _, ok := GetUserIDFromHeader(c); !ok {
		return
	}

	var draft model.WizardDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	totals, err := h.wizardDomain.Quote(c.Request.Context(), &draft)
	if err != nil {
		handleWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// Compile-time check
var _ inbound.WizardHandlerPort = (*wizardHandler)(nil)
