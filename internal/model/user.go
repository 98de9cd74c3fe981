package model

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a staff role.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleSalesExecutive Role = "sales_executive"
	RoleAccountant     Role = "accountant"
	RoleAgent          Role = "agent"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is known.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSalesExecutive, RoleAccountant, RoleAgent:
		return true
	}
	return false
}

// User represents a staff member.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Phone     string    `gorm:"index"`
	Email     string    `gorm:"uniqueIndex"`
	Role      Role      `gorm:"not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}

// UserResponse represents a staff member in API responses.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
	Role  Role      `json:"role"`
}

// ToResponse converts a User to UserResponse.
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{ID: u.ID, Name: u.Name, Phone: u.Phone, Role: u.Role}
}
