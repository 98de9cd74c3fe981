// Package order implements order submission and lifecycle management.
// Submission is the terminal action of the order wizard: the draft is
// validated one last time, totals are recomputed server-side, and the
// draft is cleared once the order is written.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/washdesk/server/internal/domain/pricing"
	"github.com/washdesk/server/internal/domain/wizard"
	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
	"github.com/washdesk/server/internal/shared/config"
	"github.com/washdesk/server/internal/shared/metrics"
	"github.com/washdesk/server/internal/shared/random"
)

// OrderDomain defines the interface for order business logic.
type OrderDomain interface {
	// Submit turns a wizard draft into a created or updated order.
	// A non-nil invalid ValidationResult means the draft failed the
	// final gate; no order is written in that case.
	Submit(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft, status *model.OrderStatus) (*model.Order, *wizard.ValidationResult, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (*model.Order, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter, page, pageSize int) ([]*model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, target model.OrderStatus) (*model.Order, error)
}

// orderDomain implements OrderDomain.
type orderDomain struct {
	orderDB    outbound.OrderDatabasePort
	customerDB outbound.CustomerDatabasePort
	wizard     wizard.WizardDomain
	cfg        config.WizardConfig
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewOrderDomain creates a new order domain service.
func NewOrderDomain(
	orderDB outbound.OrderDatabasePort,
	customerDB outbound.CustomerDatabasePort,
	wizardDomain wizard.WizardDomain,
	cfg config.WizardConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) OrderDomain {
	return &orderDomain{
		orderDB:    orderDB,
		customerDB: customerDB,
		wizard:     wizardDomain,
		cfg:        cfg,
		metrics:    m,
		logger:     logger,
	}
}

func (d *orderDomain) Submit(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft, status *model.OrderStatus) (*model.Order, *wizard.ValidationResult, error) {
	// Refresh catalog-derived fields so submitted prices are the
	// server's, not the client's.
	if err := d.wizard.ApplyDerived(ctx, draft); err != nil {
		return nil, nil, err
	}

	if result := d.validateFinal(draft); !result.Valid {
		return nil, result, nil
	}

	customer, err := d.customerDB.GetByID(ctx, draft.CustomerID())
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		return nil, nil, ErrCustomerNotFound
	}

	// Order-specific phone override, falling back to the profile phone.
	phone := draft.ContactPhone
	if phone == "" {
		phone = customer.Phone
	}

	bookingDate, err := time.Parse("2006-01-02", draft.BookingDate)
	if err != nil {
		return nil, nil, fmt.Errorf("parse booking date: %w", err)
	}

	totals := pricing.Calculate(draft.PackageItems, draft.AddonItems, d.cfg.GSTPercentage)

	var submitted *model.Order
	if draft.IsEditMode() {
		submitted, err = d.update(ctx, *draft.OrderID, draft, status, phone, bookingDate, totals)
		d.metrics.RecordSubmission("update", err)
	} else {
		submitted, err = d.create(ctx, userID, draft, status, phone, bookingDate, totals)
		d.metrics.RecordSubmission("create", err)
	}
	if err != nil {
		return nil, nil, err
	}

	if !draft.IsEditMode() {
		if clearErr := d.wizard.ClearDraft(ctx, userID); clearErr != nil {
			d.logger.Warn("failed to clear draft after submission",
				zap.String("user_id", userID.String()),
				zap.Error(clearErr))
		}
	}

	d.logger.Info("order submitted",
		zap.String("order_id", submitted.ID.String()),
		zap.String("order_no", submitted.OrderNo),
		zap.String("status", submitted.Status.String()),
		zap.Int64("total", submitted.Total))
	return submitted, nil, nil
}

// validateFinal re-checks every wizard step before an order is written,
// merging the per-field errors into one result.
func (d *orderDomain) validateFinal(draft *model.WizardDraft) *wizard.ValidationResult {
	merged := &wizard.ValidationResult{Valid: true, Errors: map[string]string{}}
	for step := wizard.StepCustomer; step <= wizard.StepBooking; step++ {
		result := wizard.ValidateStep(step, draft)
		for field, message := range result.Errors {
			merged.Errors[field] = message
		}
		if !result.Valid {
			merged.Valid = false
		}
	}
	if merged.Valid {
		merged.Errors = nil
	}
	return merged
}

func (d *orderDomain) create(ctx context.Context, userID uuid.UUID, draft *model.WizardDraft, status *model.OrderStatus, phone string, bookingDate time.Time, totals pricing.Totals) (*model.Order, error) {
	finalStatus := model.OrderStatusDraft
	if status != nil {
		finalStatus = *status
	}
	// New orders start as draft or go straight to confirmed.
	if finalStatus != model.OrderStatusDraft && finalStatus != model.OrderStatusConfirmed {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	order := &model.Order{
		ID:           uuid.New(),
		OrderNo:      generateOrderNo(),
		CustomerID:   draft.CustomerID(),
		ContactPhone: phone,
		Status:       finalStatus,
		BookingDate:  bookingDate,
		TimeFrom:     draft.TimeFrom,
		TimeTo:       draft.TimeTo,
		Area:         draft.Address.Area,
		City:         draft.Address.City,
		District:     draft.Address.District,
		State:        draft.Address.State,
		MapLink:      draft.Address.MapLink,
		Notes:        draft.Notes,
		AgentID:      draft.AgentID,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyTotals(order, totals)
	order.Items = buildLineItems(order.ID, draft)

	if err := d.orderDB.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (d *orderDomain) update(ctx context.Context, orderID uuid.UUID, draft *model.WizardDraft, status *model.OrderStatus, phone string, bookingDate time.Time, totals pricing.Totals) (*model.Order, error) {
	existing, err := d.orderDB.GetByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrOrderNotFound
	}
	if !existing.IsEditable() {
		return nil, ErrOrderNotEditable
	}

	finalStatus := existing.Status
	if status != nil {
		finalStatus = *status
	}
	if !finalStatus.IsValid() {
		return nil, ErrInvalidStatus
	}
	if finalStatus != existing.Status && !existing.Status.CanTransitionTo(finalStatus) {
		return nil, ErrInvalidTransition
	}

	existing.CustomerID = draft.CustomerID()
	existing.ContactPhone = phone
	existing.Status = finalStatus
	existing.BookingDate = bookingDate
	existing.TimeFrom = draft.TimeFrom
	existing.TimeTo = draft.TimeTo
	existing.Area = draft.Address.Area
	existing.City = draft.Address.City
	existing.District = draft.Address.District
	existing.State = draft.Address.State
	existing.MapLink = draft.Address.MapLink
	existing.Notes = draft.Notes
	existing.AgentID = draft.AgentID
	existing.UpdatedAt = time.Now()
	applyTotals(existing, totals)

	items := buildLineItems(existing.ID, draft)
	if err := d.orderDB.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if err := d.orderDB.ReplaceItems(ctx, existing.ID, items); err != nil {
		return nil, fmt.Errorf("replace order items: %w", err)
	}
	existing.Items = items
	return existing, nil
}

func (d *orderDomain) GetOrder(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	order, err := d.orderDB.GetByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (d *orderDomain) ListOrders(ctx context.Context, filter *model.OrderFilter, page, pageSize int) ([]*model.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return d.orderDB.List(ctx, filter, page, pageSize)
}

func (d *orderDomain) UpdateStatus(ctx context.Context, orderID uuid.UUID, target model.OrderStatus) (*model.Order, error) {
	if !target.IsValid() {
		return nil, ErrInvalidStatus
	}

	order, err := d.orderDB.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	from := order.Status
	order.Status = target
	order.UpdatedAt = time.Now()
	if target == model.OrderStatusCanceled {
		now := time.Now()
		order.CanceledAt = &now
	}
	if err := d.orderDB.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	d.logger.Info("order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("from", from.String()),
		zap.String("to", target.String()))
	return order, nil
}

// applyTotals copies recomputed totals onto the order.
func applyTotals(order *model.Order, totals pricing.Totals) {
	order.PackagesTotal = totals.PackagesTotal
	order.AddonsTotal = totals.AddonsTotal
	order.Subtotal = totals.Subtotal
	order.GST = totals.GST
	order.GSTPercentage = totals.GSTPercentage
	order.RoundOff = totals.RoundOff
	order.Total = totals.Total
}

// buildLineItems flattens the draft's package and add-on lines into
// order line items with per-line amounts.
func buildLineItems(orderID uuid.UUID, draft *model.WizardDraft) []*model.OrderLineItem {
	items := make([]*model.OrderLineItem, 0, len(draft.PackageItems)+len(draft.AddonItems))
	for _, item := range draft.PackageItems {
		items = append(items, newLineItem(orderID, model.LineItemKindPackage, item))
	}
	for _, item := range draft.AddonItems {
		items = append(items, newLineItem(orderID, model.LineItemKindAddon, item))
	}
	return items
}

func newLineItem(orderID uuid.UUID, kind model.LineItemKind, item model.DraftLineItem) *model.OrderLineItem {
	discountType := item.DiscountType
	if discountType == "" {
		discountType = model.DiscountTypeFixed
	}
	return &model.OrderLineItem{
		ID:            uuid.New(),
		OrderID:       orderID,
		Kind:          kind,
		ItemID:        item.ItemID,
		VehicleType:   item.VehicleType,
		Brand:         item.Brand,
		Model:         item.Model,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		DiscountType:  discountType,
		DiscountValue: item.DiscountValue,
		Amount:        pricing.LineTotal(item),
	}
}

// generateOrderNo builds a human-readable order number such as
// ORD-20260830-7KQ2M.
func generateOrderNo() string {
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), random.UpperAlphaNum(5))
}
