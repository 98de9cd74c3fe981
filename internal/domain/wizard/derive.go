package wizard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/washdesk/server/internal/model"
)

// ApplyDerived recomputes catalog-derived line item fields in place:
// a package line with brand+model gets its vehicle type from the lookup
// table, and unit prices are refreshed from the catalog so client-sent
// values are never trusted. Lines referencing unknown catalog entries
// are left untouched for the validator to reject.
func (d *wizardDomain) ApplyDerived(ctx context.Context, draft *model.WizardDraft) error {
	if len(draft.PackageItems) == 0 && len(draft.AddonItems) == 0 {
		return nil
	}

	cat, err := d.catalog.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	for i := range draft.PackageItems {
		item := &draft.PackageItems[i]

		if item.Brand != "" && item.Model != "" {
			vt, err := d.catalog.LookupVehicleType(ctx, item.Brand, item.Model)
			if err != nil {
				d.logger.Warn("vehicle type lookup failed",
					zap.String("brand", item.Brand),
					zap.String("model", item.Model),
					zap.Error(err))
			} else if vt != nil {
				item.VehicleType = *vt
			}
		}

		pkg := cat.PackageByID(item.ItemID)
		if pkg == nil || item.VehicleType == "" {
			continue
		}
		if price, ok := pkg.PriceFor(item.VehicleType); ok {
			item.UnitPrice = price
		}
	}

	for i := range draft.AddonItems {
		item := &draft.AddonItems[i]
		if addon := cat.AddonByID(item.ItemID); addon != nil {
			item.UnitPrice = addon.Price
		}
	}
	return nil
}
