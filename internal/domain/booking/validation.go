package booking

import "saba-booking/internal/domain/catalog"

type Code string

const (
	CodeActivityRequired    Code = "activity_required"
	CodeCertification       Code = "certification_required"
	CodeDatesRequired       Code = "dates_required"
	CodeDateInPast          Code = "date_in_past"
	CodeGuestsRequired      Code = "guests_required"
	CodeInvalidQuantity     Code = "invalid_quantity"
	CodeMinimumGuests       Code = "minimum_guests"
	CodeRentalExceedsGuests Code = "rental_exceeds_guests"
	CodeNotRated            Code = "not_rated"
	CodeUnavailable         Code = "unavailable"
	CodeNotInCart           Code = "not_in_cart"
	CodeFieldRequired       Code = "field_required"
	CodeInvalidEmail        Code = "invalid_email"
	CodeCheckoutPending     Code = "checkout_pending"
)

type AlternativeKind string

const (
	AltSwitchActivity  AlternativeKind = "switch_activity"
	AltContactOperator AlternativeKind = "contact_operator"
	AltPayMinimum      AlternativeKind = "pay_minimum"
	AltChangeDates     AlternativeKind = "change_dates"
	AltChangeGuests    AlternativeKind = "change_guests"
)

// Alternative is an action the caller can offer instead of the blocked one.
type Alternative struct {
	Kind     AlternativeKind
	Label    string
	ItemID   catalog.ItemID
	Contact  string
	Quantity int
}

type Violation struct {
	Code         Code
	Field        string
	Message      string
	Shortfall    int
	Alternatives []Alternative
}

// ValidationResult reports whether the gate of Step is satisfied.
type ValidationResult struct {
	Step       Step
	Violations []Violation
}

func (r ValidationResult) OK() bool {
	return len(r.Violations) == 0
}

func (r ValidationResult) Has(code Code) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

func (r *ValidationResult) add(v Violation) {
	r.Violations = append(r.Violations, v)
}
