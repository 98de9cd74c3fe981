package wizard

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/washdesk/server/internal/model"
)

// Step identifies one screen of the order-creation wizard.
type Step int

const (
	StepCustomer Step = iota + 1
	StepPackages
	StepAddons
	StepBooking
)

// IsValid checks if the step is within the wizard range.
func (s Step) IsValid() bool {
	return s >= StepCustomer && s <= StepBooking
}

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepCustomer:
		return "customer"
	case StepPackages:
		return "packages"
	case StepAddons:
		return "addons"
	case StepBooking:
		return "booking"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidationResult is the outcome of validating one wizard step.
// Errors is keyed by field, with indexed keys such as
// "packages[0].quantity" for line items.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (r *ValidationResult) addError(field, message string) {
	if r.Errors == nil {
		r.Errors = map[string]string{}
	}
	r.Errors[field] = message
	r.Valid = false
}

// ValidateStep checks whether the draft satisfies the given step's
// requirements. It never touches steps other than the one asked for.
func ValidateStep(step Step, draft *model.WizardDraft) *ValidationResult {
	result := &ValidationResult{Valid: true}

	switch step {
	case StepCustomer:
		if draft.Customer == nil || draft.Customer.ID == uuid.Nil {
			result.addError("customer", "select a customer")
		}

	case StepPackages:
		if len(draft.PackageItems) == 0 {
			result.addError("packages", "add at least one package")
			break
		}
		for i, item := range draft.PackageItems {
			if item.ItemID == uuid.Nil {
				result.addError(fmt.Sprintf("packages[%d].item_id", i), "package is required")
			}
			if item.VehicleType == "" {
				result.addError(fmt.Sprintf("packages[%d].vehicle_type", i), "vehicle type is required")
			}
			if item.Quantity < 1 {
				result.addError(fmt.Sprintf("packages[%d].quantity", i), "quantity must be at least 1")
			}
		}

	case StepAddons:
		// Optional step; an empty list is fine.
		for i, item := range draft.AddonItems {
			if item.ItemID == uuid.Nil {
				result.addError(fmt.Sprintf("addons[%d].item_id", i), "add-on is required")
			}
			if item.Quantity < 1 {
				result.addError(fmt.Sprintf("addons[%d].quantity", i), "quantity must be at least 1")
			}
		}

	case StepBooking:
		if draft.BookingDate == "" {
			result.addError("booking_date", "booking date is required")
		} else if _, err := time.Parse(dateLayout, draft.BookingDate); err != nil {
			result.addError("booking_date", "invalid booking date")
		}

		from, fromOK := validateTimeField(result, "booking_time_from", draft.TimeFrom)
		to, toOK := validateTimeField(result, "booking_time_to", draft.TimeTo)
		if fromOK && toOK && !to.After(from) {
			result.addError("booking_time_to", "end time must be after start time")
		}

		if draft.Address.Area == "" {
			result.addError("address_area", "service area is required")
		}
	}

	return result
}

// validateTimeField checks a required HH:MM field, recording errors on
// result. ok reports whether the value parsed.
func validateTimeField(result *ValidationResult, field, value string) (t time.Time, ok bool) {
	if value == "" {
		result.addError(field, "time is required")
		return time.Time{}, false
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		result.addError(field, "invalid time, expected HH:MM")
		return time.Time{}, false
	}
	return t, true
}
