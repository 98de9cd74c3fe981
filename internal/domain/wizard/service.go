// Package wizard implements the order-creation wizard: step validation,
// draft persistence, and derived-field computation.
package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/washdesk/server/internal/domain/catalog"
	"github.com/washdesk/server/internal/domain/pricing"
	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
	"github.com/washdesk/server/internal/shared/config"
	"github.com/washdesk/server/internal/shared/metrics"
)

// WizardDomain defines the interface for wizard business logic.
type WizardDomain interface {
	// Draft persistence. One draft exists per staff user.
	SaveDraft(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) error
	LoadDraft(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (*model.WizardDraft, error)
	ClearDraft(ctx context.Context, userID uuid.UUID) error

	// Step machine.
	Advance(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) (*ValidationResult, *model.WizardDraft, error)
	Back(draft *model.WizardDraft) *model.WizardDraft

	// Derived state.
	ApplyDerived(ctx context.Context, draft *model.WizardDraft) error
	Quote(ctx context.Context, draft *model.WizardDraft) (*pricing.Totals, error)
}

// wizardDomain implements WizardDomain.
type wizardDomain struct {
	draftStore outbound.DraftStorePort
	catalog    catalog.CatalogDomain
	cfg        config.WizardConfig
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewWizardDomain creates a new wizard domain service.
func NewWizardDomain(
	draftStore outbound.DraftStorePort,
	catalogDomain catalog.CatalogDomain,
	cfg config.WizardConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) WizardDomain {
	return &wizardDomain{
		draftStore: draftStore,
		catalog:    catalogDomain,
		cfg:        cfg,
		metrics:    m,
		logger:     logger,
	}
}

// SaveDraft persists the draft for the user, stamping it with the
// current time. Editing an existing order never persists a draft.
func (d *wizardDomain) SaveDraft(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) error {
	if draft.IsEditMode() {
		d.logger.Debug("skipping draft save in edit mode",
			zap.String("user_id", userID.String()),
			zap.String("order_id", draft.OrderID.String()))
		return nil
	}
	if draft.CurrentStep < int(StepCustomer) {
		draft.CurrentStep = int(StepCustomer)
	}

	envelope := &model.DraftEnvelope{
		Data:      *draft,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := d.draftStore.Set(ctx, userID, envelope); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	d.metrics.DraftsSavedTotal.Inc()
	return nil
}

// LoadDraft returns the user's saved draft, or nil when none exists.
// Drafts older than the expiry window are discarded silently. When
// customerID is set and the draft was started for a different customer,
// the draft is returned together with ErrDraftConflict so the caller can
// choose between resuming and starting fresh.
func (d *wizardDomain) LoadDraft(ctx context.Context, userID uuid.UUID, customerID *uuid.UUID) (*model.WizardDraft, error) {
	envelope, err := d.draftStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if envelope == nil {
		return nil, nil
	}

	age := time.Since(time.UnixMilli(envelope.Timestamp))
	if age >= d.cfg.DraftExpiry {
		if err := d.draftStore.Delete(ctx, userID); err != nil {
			d.logger.Warn("failed to delete expired draft",
				zap.String("user_id", userID.String()), zap.Error(err))
		}
		d.metrics.DraftsExpiredTotal.Inc()
		d.logger.Info("discarded expired draft",
			zap.String("user_id", userID.String()),
			zap.Duration("age", age))
		return nil, nil
	}

	draft := envelope.Data
	if customerID != nil && draft.Customer != nil && draft.Customer.ID != *customerID {
		d.metrics.DraftConflictsTotal.Inc()
		return &draft, ErrDraftConflict
	}

	d.metrics.DraftsResumedTotal.Inc()
	return &draft, nil
}

// ClearDraft deletes the user's draft unconditionally.
func (d *wizardDomain) ClearDraft(ctx context.Context, userID uuid.UUID) error {
	if err := d.draftStore.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// Advance validates the draft's current step and, when it passes, moves
// to the next step and persists the draft. The validation result is
// returned either way; a failed validation is not an error.
func (d *wizardDomain) Advance(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft) (*ValidationResult, *model.WizardDraft, error) {
	if draft.CurrentStep == 0 {
		draft.CurrentStep = int(StepCustomer)
	}
	step := Step(draft.CurrentStep)
	if !step.IsValid() {
		return nil, nil, ErrInvalidStep
	}

	if err := d.ApplyDerived(ctx, draft); err != nil {
		return nil, nil, err
	}

	result := ValidateStep(step, draft)
	if !result.Valid {
		return result, draft, nil
	}

	if step < StepBooking {
		draft.CurrentStep = int(step) + 1
	}
	if err := d.SaveDraft(ctx, userID, draft); err != nil {
		return nil, nil, err
	}
	return result, draft, nil
}

// Back moves the draft one step back. It never validates and never
// persists.
func (d *wizardDomain) Back(draft *model.WizardDraft) *model.WizardDraft {
	if draft.CurrentStep > int(StepCustomer) {
		draft.CurrentStep--
	}
	return draft
}

// Quote recomputes derived fields and returns the order totals for the
// draft as it stands.
func (d *wizardDomain) Quote(ctx context.Context, draft *model.WizardDraft) (*pricing.Totals, error) {
	if err := d.ApplyDerived(ctx, draft); err != nil {
		return nil, err
	}
	totals := pricing.Calculate(draft.PackageItems, draft.AddonItems, d.cfg.GSTPercentage)
	return &totals, nil
}
