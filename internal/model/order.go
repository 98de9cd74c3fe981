package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// IsTerminal returns true if the status is a terminal state.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

// CanTransitionTo checks if a transition from the current status to target is valid.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	allowed := orderTransitions[s]
	for _, a := range allowed {
		if a == target {
			return true
		}
	}
	return false
}

// orderTransitions defines valid state transitions.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:      {OrderStatusConfirmed, OrderStatusCanceled},
	OrderStatusConfirmed:  {OrderStatusInProgress, OrderStatusCanceled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusCompleted:  {}, // Terminal state
	OrderStatusCanceled:   {}, // Terminal state
}

// DiscountType represents how a line discount is expressed.
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// IsValid checks if the discount type is known.
func (t DiscountType) IsValid() bool {
	return t == DiscountTypeFixed || t == DiscountTypePercentage
}

// LineItemKind distinguishes package lines from add-on lines.
type LineItemKind string

const (
	LineItemKindPackage LineItemKind = "package"
	LineItemKindAddon   LineItemKind = "addon"
)

// Order represents a wash service order.
type Order struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNo      string      `gorm:"uniqueIndex;not null"`
	CustomerID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	ContactPhone string      `gorm:"not null"`
	Status       OrderStatus `gorm:"not null;default:draft"`

	BookingDate time.Time `gorm:"not null;index"`
	TimeFrom    string    `gorm:"not null"` // HH:MM
	TimeTo      string    `gorm:"not null"` // HH:MM

	Area     string `gorm:"not null"`
	City     string
	District string
	State    string
	MapLink  string
	Notes    string

	AgentID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`

	// Totals in paise, recomputed server-side on every write.
	PackagesTotal int64
	AddonsTotal   int64
	Subtotal      int64
	GST           int64
	GSTPercentage float64
	RoundOff      int64
	Total         int64

	CanceledAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relations
	Items []*OrderLineItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the database table name.
func (Order) TableName() string {
	return "orders"
}

// IsEditable returns true if the order can still be modified by the wizard.
func (o *Order) IsEditable() bool {
	return !o.Status.IsTerminal()
}

// OrderLineItem represents one package or add-on line in an order.
type OrderLineItem struct {
	ID      uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Kind    LineItemKind `gorm:"not null"`
	ItemID  uuid.UUID    `gorm:"type:uuid;not null"` // package or addon id

	VehicleType VehicleType // Packages only
	Brand       string      // Display only
	Model       string      // Display only

	Quantity      int          `gorm:"not null;default:1"`
	UnitPrice     int64        // In paise
	DiscountType  DiscountType `gorm:"not null;default:fixed"`
	DiscountValue int64        // Paise for fixed, percent points for percentage
	Amount        int64        // Line total after discount, in paise
}

// TableName returns the database table name.
func (OrderLineItem) TableName() string {
	return "order_line_items"
}

// OrderFilter represents filters for listing orders.
type OrderFilter struct {
	Status     *OrderStatus
	CustomerID *uuid.UUID
	AgentID    *uuid.UUID
}

// --- API responses ---

// OrderLineItemResponse represents a line item in API responses.
type OrderLineItemResponse struct {
	ID            uuid.UUID    `json:"id"`
	Kind          LineItemKind `json:"kind"`
	ItemID        uuid.UUID    `json:"item_id"`
	VehicleType   VehicleType  `json:"vehicle_type,omitempty"`
	Brand         string       `json:"brand,omitempty"`
	Model         string       `json:"model,omitempty"`
	Quantity      int          `json:"quantity"`
	UnitPrice     int64        `json:"unit_price"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue int64        `json:"discount_value"`
	Amount        int64        `json:"amount"`
}

// ToResponse converts an OrderLineItem to OrderLineItemResponse.
func (i *OrderLineItem) ToResponse() *OrderLineItemResponse {
	return &OrderLineItemResponse{
		ID:            i.ID,
		Kind:          i.Kind,
		ItemID:        i.ItemID,
		VehicleType:   i.VehicleType,
		Brand:         i.Brand,
		Model:         i.Model,
		Quantity:      i.Quantity,
		UnitPrice:     i.UnitPrice,
		DiscountType:  i.DiscountType,
		DiscountValue: i.DiscountValue,
		Amount:        i.Amount,
	}
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID            uuid.UUID                `json:"id"`
	OrderNo       string                   `json:"order_no"`
	CustomerID    uuid.UUID                `json:"customer_id"`
	ContactPhone  string                   `json:"contact_phone"`
	Status        OrderStatus              `json:"status"`
	BookingDate   string                   `json:"booking_date"`
	TimeFrom      string                   `json:"time_from"`
	TimeTo        string                   `json:"time_to"`
	Area          string                   `json:"area"`
	City          string                   `json:"city,omitempty"`
	District      string                   `json:"district,omitempty"`
	State         string                   `json:"state,omitempty"`
	MapLink       string                   `json:"map_link,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
	AgentID       *uuid.UUID               `json:"agent_id,omitempty"`
	PackagesTotal int64                    `json:"packages_total"`
	AddonsTotal   int64                    `json:"addons_total"`
	Subtotal      int64                    `json:"subtotal"`
	GST           int64                    `json:"gst"`
	GSTPercentage float64                  `json:"gst_percentage"`
	RoundOff      int64                    `json:"round_off"`
	Total         int64                    `json:"total"`
	CanceledAt    *time.Time               `json:"canceled_at,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	Items         []*OrderLineItemResponse `json:"items,omitempty"`
}

// ToResponse converts an Order to OrderResponse.
func (o *Order) ToResponse() *OrderResponse {
	resp := &OrderResponse{
		ID:            o.ID,
		OrderNo:       o.OrderNo,
		CustomerID:    o.CustomerID,
		ContactPhone:  o.ContactPhone,
		Status:        o.Status,
		BookingDate:   o.BookingDate.Format("2006-01-02"),
		TimeFrom:      o.TimeFrom,
		TimeTo:        o.TimeTo,
		Area:          o.Area,
		City:          o.City,
		District:      o.District,
		State:         o.State,
		MapLink:       o.MapLink,
		Notes:         o.Notes,
		AgentID:       o.AgentID,
		PackagesTotal: o.PackagesTotal,
		AddonsTotal:   o.AddonsTotal,
		Subtotal:      o.Subtotal,
		GST:           o.GST,
		GSTPercentage: o.GSTPercentage,
		RoundOff:      o.RoundOff,
		Total:         o.Total,
		CanceledAt:    o.CanceledAt,
		CreatedAt:     o.CreatedAt,
		Items:         make([]*OrderLineItemResponse, len(o.Items)),
	}
	for i, item := range o.Items {
		resp.Items[i] = item.ToResponse()
	}
	return resp
}

// OrderListResponse represents a paginated list of orders.
type OrderListResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}
