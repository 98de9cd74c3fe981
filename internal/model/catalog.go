package model

import (
	"time"

	"github.com/google/uuid"
)

// WashPackage represents a wash service package with per-vehicle-type pricing.
type WashPackage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Description string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Prices []*PackagePrice `gorm:"foreignKey:PackageID"`
}

// TableName returns the database table name.
func (WashPackage) TableName() string {
	return "wash_packages"
}

// PriceFor returns the package price for the given vehicle type.
func (p *WashPackage) PriceFor(vt VehicleType) (int64, bool) {
	for _, price := range p.Prices {
		if price.VehicleType == vt {
			return price.Price, true
		}
	}
	return 0, false
}

// PackagePrice is one row of a package's vehicle-type price matrix.
type PackagePrice struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PackageID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	VehicleType VehicleType `gorm:"not null"`
	Price       int64       // In paise
}

// TableName returns the database table name.
func (PackagePrice) TableName() string {
	return "package_prices"
}

// Addon represents an add-on service with a flat price.
type Addon struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Price     int64     // In paise
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (Addon) TableName() string {
	return "addons"
}

// Catalog bundles everything the order wizard needs to render steps 2-4.
type Catalog struct {
	Packages []*WashPackage `json:"packages"`
	Addons   []*Addon       `json:"addons"`
	Agents   []*User        `json:"agents"`
}

// PackageByID returns the package with the given id, or nil.
func (c *Catalog) PackageByID(id uuid.UUID) *WashPackage {
	for _, p := range c.Packages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddonByID returns the add-on with the given id, or nil.
func (c *Catalog) AddonByID(id uuid.UUID) *Addon {
	for _, a := range c.Addons {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// --- API responses ---

// PackagePriceResponse represents one price matrix row in API responses.
type PackagePriceResponse struct {
	VehicleType VehicleType `json:"vehicle_type"`
	Price       int64       `json:"price"`
}

// PackageResponse represents a wash package in API responses.
type PackageResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Prices      []*PackagePriceResponse `json:"prices"`
}

// ToResponse converts a WashPackage to PackageResponse.
func (p *WashPackage) ToResponse() *PackageResponse {
	resp := &PackageResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Prices:      make([]*PackagePriceResponse, len(p.Prices)),
	}
	for i, price := range p.Prices {
		resp.Prices[i] = &PackagePriceResponse{
			VehicleType: price.VehicleType,
			Price:       price.Price,
		}
	}
	return resp
}

// AddonResponse represents an add-on in API responses.
type AddonResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

// ToResponse converts an Addon to AddonResponse.
func (a *Addon) ToResponse() *AddonResponse {
	return &AddonResponse{ID: a.ID, Name: a.Name, Price: a.Price}
}

// CatalogResponse represents the wizard catalog in API responses.
type CatalogResponse struct {
	Packages []*PackageResponse `json:"packages"`
	Addons   []*AddonResponse   `json:"addons"`
	Agents   []*UserResponse    `json:"agents"`
}

// ToResponse converts a Catalog to CatalogResponse.
func (c *Catalog) ToResponse() *CatalogResponse {
	resp := &CatalogResponse{
		Packages: make([]*PackageResponse, len(c.Packages)),
		Addons:   make([]*AddonResponse, len(c.Addons)),
		Agents:   make([]*UserResponse, len(c.Agents)),
	}
	for i, p := range c.Packages {
		resp.Packages[i] = p.ToResponse()
	}
	for i, a := range c.Addons {
		resp.Addons[i] = a.ToResponse()
	}
	for i, u := range c.Agents {
		resp.Agents[i] = u.ToResponse()
	}
	return resp
}
