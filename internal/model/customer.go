package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a car-wash customer.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null;index"`
	Phone     string    `gorm:"not null;index"`
	Email     string
	Area      string
	City      string
	District  string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (Customer) TableName() string {
	return "customers"
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Area      string    `json:"area,omitempty"`
	City      string    `json:"city,omitempty"`
	District  string    `json:"district,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a Customer to CustomerResponse.
func (c *Customer) ToResponse() *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Area:      c.Area,
		City:      c.City,
		District:  c.District,
		State:     c.State,
		CreatedAt: c.CreatedAt,
	}
}

// CustomerListResponse represents a paginated list of customers.
type CustomerListResponse struct {
	Customers  []*CustomerResponse `json:"customers"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}
