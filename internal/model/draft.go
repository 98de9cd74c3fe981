package model

import "github.com/google/uuid"

// CustomerRef is the customer snapshot carried inside a wizard draft.
type CustomerRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// DraftLineItem is one package or add-on line of an in-progress order.
// Money fields are paise; DiscountValue is percent points for percentage
// discounts.
type DraftLineItem struct {
	ItemID        uuid.UUID    `json:"item_id"`
	VehicleType   VehicleType  `json:"vehicle_type,omitempty"` // Packages only
	Brand         string       `json:"brand,omitempty"`
	Model         string       `json:"model,omitempty"`
	Quantity      int          `json:"quantity"`
	UnitPrice     int64        `json:"unit_price"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue int64        `json:"discount_value"`
}

// DraftAddress holds the service address of an in-progress order.
type DraftAddress struct {
	Area     string `json:"area"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	State    string `json:"state,omitempty"`
	MapLink  string `json:"map_link,omitempty"`
}

// WizardDraft is the full form state of the order-creation wizard.
// One draft exists per staff user at a time; it is persisted on every
// step advance and on explicit save.
type WizardDraft struct {
	CurrentStep int `json:"current_step"`

	// OrderID is set when editing an existing order. Drafts are never
	// persisted in edit mode.
	OrderID *uuid.UUID `json:"order_id,omitempty"`

	Customer     *CustomerRef `json:"customer,omitempty"`
	ContactPhone string       `json:"contact_phone,omitempty"`

	PackageItems []DraftLineItem `json:"package_items"`
	AddonItems   []DraftLineItem `json:"addon_items"`

	BookingDate string `json:"booking_date,omitempty"` // YYYY-MM-DD
	TimeFrom    string `json:"time_from,omitempty"`    // HH:MM
	TimeTo      string `json:"time_to,omitempty"`      // HH:MM

	Address DraftAddress `json:"address"`
	Notes   string       `json:"notes,omitempty"`

	AgentID *uuid.UUID `json:"agent_id,omitempty"`
}

// IsEditMode reports whether the draft targets an existing order.
func (d *WizardDraft) IsEditMode() bool {
	return d.OrderID != nil
}

// CustomerID returns the selected customer's id, or uuid.Nil.
func (d *WizardDraft) CustomerID() uuid.UUID {
	if d.Customer == nil {
		return uuid.Nil
	}
	return d.Customer.ID
}

// DraftEnvelope is the persisted form of a wizard draft: the draft plus
// the instant it was last written, used for the expiry check.
type DraftEnvelope struct {
	Data      WizardDraft `json:"data"`
	Timestamp int64       `json:"timestamp"` // epoch millis
}
