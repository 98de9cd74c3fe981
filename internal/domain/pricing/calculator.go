// Package pricing computes line and order totals for wash orders.
// All amounts are integer paise; rounding is half-up.
package pricing

import (
	"math"

	"github.com/washdesk/server/internal/model"
)

// Totals is the aggregate money breakdown of an order.
type Totals struct {
	PackagesTotal int64   `json:"packages_total"`
	AddonsTotal   int64   `json:"addons_total"`
	Subtotal      int64   `json:"subtotal"`
	GST           int64   `json:"gst"`
	GSTPercentage float64 `json:"gst_percentage"`
	RoundOff      int64   `json:"round_off"` // Signed, total - (subtotal + gst)
	Total         int64   `json:"total"`     // Rounded to the nearest rupee
}

// LineTotal computes the payable amount for one line after its discount.
// The effective discount never exceeds half the line subtotal.
func LineTotal(item model.DraftLineItem) int64 {
	subtotal := int64(item.Quantity) * item.UnitPrice

	discount := item.DiscountValue
	if item.DiscountType == model.DiscountTypePercentage {
		discount = percentOf(subtotal, item.DiscountValue)
	}
	if limit := subtotal / 2; discount > limit {
		discount = limit
	}
	if discount < 0 {
		discount = 0
	}
	return subtotal - discount
}

// Calculate aggregates package and add-on lines into order totals.
// The grand total is rounded half-up to a whole rupee and the signed
// remainder is reported as RoundOff, so Total - RoundOff equals the
// raw GST-inclusive amount exactly.
func Calculate(packageItems, addonItems []model.DraftLineItem, gstPercentage float64) Totals {
	var packagesTotal, addonsTotal int64
	for _, item := range packageItems {
		packagesTotal += LineTotal(item)
	}
	for _, item := range addonItems {
		addonsTotal += LineTotal(item)
	}

	subtotal := packagesTotal + addonsTotal
	gst := int64(math.Round(float64(subtotal) * gstPercentage / 100))
	rawTotal := subtotal + gst
	total := roundToRupee(rawTotal)

	return Totals{
		PackagesTotal: packagesTotal,
		AddonsTotal:   addonsTotal,
		Subtotal:      subtotal,
		GST:           gst,
		GSTPercentage: gstPercentage,
		RoundOff:      total - rawTotal,
		Total:         total,
	}
}

// percentOf returns pct percent of amount in paise, rounded half-up.
func percentOf(amount, pct int64) int64 {
	return (amount*pct + 50) / 100
}

// roundToRupee rounds paise half-up to the nearest whole rupee.
func roundToRupee(paise int64) int64 {
	return (paise + 50) / 100 * 100
}
