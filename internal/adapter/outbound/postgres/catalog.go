package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
)

// catalogAdapter implements outbound.CatalogDatabasePort.
type catalogAdapter struct {
	db *gorm.DB
}

// NewCatalogAdapter creates a new catalog database adapter.
func NewCatalogAdapter(db *gorm.DB) outbound.CatalogDatabasePort {
	return &catalogAdapter{db: db}
}

func (a *catalogAdapter) ListActivePackages(ctx context.Context) ([]*model.WashPackage, error) {
	var packages []*model.WashPackage
	err := a.db.WithContext(ctx).
		Preload("Prices").
		Where("active = ?", true).
		Order("name ASC").
		Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (a *catalogAdapter) ListActiveAddons(ctx context.Context) ([]*model.Addon, error) {
	var addons []*model.Addon
	err := a.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&addons).Error
	if err != nil {
		return nil, err
	}
	return addons, nil
}

func (a *catalogAdapter) ListActiveAgents(ctx context.Context) ([]*model.User, error) {
	var agents []*model.User
	err := a.db.WithContext(ctx).
		Where("role = ? AND active = ?", model.RoleAgent, true).
		Order("name ASC").
		Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// Compile-time check
var _ outbound.CatalogDatabasePort = (*catalogAdapter)(nil)
