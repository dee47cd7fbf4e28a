package booking

import (
	"fmt"
	"time"

	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/errs"
)

var (
	ErrAddAnotherDisabled = errs.New("adding another activity is disabled")
	ErrNothingInCart      = errs.New("no activity has been added to the cart yet")
	ErrNotAtCheckout      = errs.New("booking intent is not at checkout")
	ErrNoAlternative      = errs.New("activity has no alternative")
)

// OperatorLocation is the operator's local time zone (Atlantic Standard Time, no DST).
var OperatorLocation = time.FixedZone("AST", -4*60*60)

// ReviewOptions toggles optional behavior around the review step.
type ReviewOptions struct {
	ComputeAddOns    bool
	ShowExistingCart bool
	AllowAddAnother  bool
}

// AddOnLine is one add-on item to rate and add next to the primary.
type AddOnLine struct {
	Item     catalog.ItemID
	Param    string
	Quantity int
}

// Machine enforces step gates over an Intent.
type Machine struct {
	catalog  *catalog.Catalog
	clock    clock.Clock
	location *time.Location
	review   ReviewOptions
}

func NewMachine(cat *catalog.Catalog, clk clock.Clock, opts ReviewOptions) *Machine {
	return &Machine{
		catalog:  cat,
		clock:    clk,
		location: OperatorLocation,
		review:   opts,
	}
}

func (m *Machine) Catalog() *catalog.Catalog    { return m.catalog }
func (m *Machine) ReviewOptions() ReviewOptions { return m.review }

// Update validates the patch against the catalog, applies it and pulls the
// step back when the answers no longer support it.
func (m *Machine) Update(i *Intent, p Patch) error {
	activity := i.ActivityID()
	if p.ActivityID != nil {
		if _, err := m.catalog.Primary(*p.ActivityID); err != nil {
			return errs.Wrapf(ErrInvalidPatch, "activity %d: %v", *p.ActivityID, err)
		}
		activity = *p.ActivityID
	}
	if p.Params != nil {
		entry, err := m.catalog.Primary(activity)
		if err != nil {
			return errs.Wrap(ErrInvalidPatch, "quantities need an activity")
		}
		if err := entry.ValidateQuantities(p.Params); err != nil {
			return errs.Wrapf(ErrInvalidPatch, "%v", err)
		}
	}
	if err := i.Apply(p, m.clock.Now()); err != nil {
		return err
	}
	m.clamp(i)
	// changed customer answers have to pass the details gate again
	if p.Customer != nil && i.Step().After(StepDetails) {
		i.setStep(StepDetails, m.clock.Now())
	}
	return nil
}

func (m *Machine) clamp(i *Intent) {
	now := m.clock.Now()
	if i.Step().After(StepReview) && i.rated == nil {
		i.setStep(StepReview, now)
	}
	for _, s := range []Step{StepActivity, StepDates, StepGuests} {
		if !i.Step().After(s) {
			return
		}
		if !m.gate(i, s, nil).OK() {
			i.setStep(s, now)
			return
		}
	}
}

// Validate evaluates the gate of the intent's current step.
func (m *Machine) Validate(i *Intent, form *FormSchema) ValidationResult {
	return m.gate(i, i.Step(), form)
}

// Advance moves to the next step when the current gate passes.
func (m *Machine) Advance(i *Intent, form *FormSchema) (ValidationResult, error) {
	if i.IsComplete() {
		return ValidationResult{Step: StepComplete}, ErrIntentCompleted
	}
	res := m.gate(i, i.Step(), form)
	if !res.OK() {
		return res, nil
	}
	if next, ok := i.Step().next(); ok {
		i.setStep(next, m.clock.Now())
	}
	res.Step = i.Step()
	return res, nil
}

// CheckDetails runs the details gate against form regardless of the current
// step, pulling an intent that is past details back to it on failure.
func (m *Machine) CheckDetails(i *Intent, form *FormSchema) ValidationResult {
	res := m.gate(i, StepDetails, form)
	if !res.OK() && i.Step().After(StepDetails) {
		i.setStep(StepDetails, m.clock.Now())
	}
	return res
}

// Retreat moves one step back; at the first step it is a no-op.
func (m *Machine) Retreat(i *Intent) error {
	if i.IsComplete() {
		return ErrIntentCompleted
	}
	if prev, ok := i.Step().prev(); ok {
		i.setStep(prev, m.clock.Now())
	}
	return nil
}

func (m *Machine) Reset(i *Intent) {
	i.reset(m.clock.Now())
}

func (m *Machine) ConfirmCertification(i *Intent) error {
	return i.ConfirmCertification(m.clock.Now())
}

// SwitchToAlternative replaces the activity with its configured alternative.
func (m *Machine) SwitchToAlternative(i *Intent) error {
	entry, err := m.catalog.Primary(i.ActivityID())
	if err != nil {
		return errs.Wrap(ErrInvalidPatch, "no activity selected")
	}
	if entry.Alternative == 0 {
		return errs.Wrapf(ErrNoAlternative, "%s", entry.Name)
	}
	alt := entry.Alternative
	return m.Update(i, Patch{ActivityID: &alt})
}

// AddAnother starts a further activity in the same cart session.
func (m *Machine) AddAnother(i *Intent) error {
	if i.IsComplete() {
		return ErrIntentCompleted
	}
	if !m.review.AllowAddAnother {
		return ErrAddAnotherDisabled
	}
	if !i.HasCartLines() {
		return ErrNothingInCart
	}
	i.startAnother(m.clock.Now())
	return nil
}

func (m *Machine) Complete(i *Intent, c Confirmation) error {
	if i.IsComplete() {
		return ErrIntentCompleted
	}
	if i.Step() != StepCheckout {
		return errs.Wrapf(ErrNotAtCheckout, "step %s", i.Step())
	}
	i.complete(c, m.clock.Now())
	return nil
}

// AddOnPlan lists the add-on lines that go with the selected activity.
func (m *Machine) AddOnPlan(i *Intent) ([]AddOnLine, error) {
	if !m.review.ComputeAddOns {
		return nil, nil
	}
	entry, err := m.catalog.Primary(i.ActivityID())
	if err != nil {
		return nil, err
	}
	params := i.Params()
	var lines []AddOnLine
	for _, rule := range entry.AddOns {
		qty := entry.TotalGuests(params)
		if rule.Source == catalog.FromRental {
			qty = i.RentalCount()
		}
		if qty <= 0 {
			continue
		}
		lines = append(lines, AddOnLine{Item: rule.Item, Param: rule.Param, Quantity: qty})
	}
	return lines, nil
}

// AcceptsRental reports whether the selected activity offers rental gear.
func (m *Machine) AcceptsRental(i *Intent) bool {
	entry, err := m.catalog.Primary(i.ActivityID())
	if err != nil {
		return false
	}
	for _, rule := range entry.AddOns {
		if rule.Source == catalog.FromRental {
			return true
		}
	}
	return false
}

func (m *Machine) gate(i *Intent, step Step, form *FormSchema) ValidationResult {
	res := ValidationResult{Step: step}
	switch step {
	case StepActivity:
		m.activityGate(i, &res)
	case StepDates:
		m.datesGate(i, &res)
	case StepGuests:
		m.guestsGate(i, &res)
	case StepReview:
		m.reviewGate(i, &res)
	case StepDetails:
		for _, v := range form.Validate(i.Customer()) {
			res.add(v)
		}
	case StepCheckout:
		res.add(Violation{
			Code:    CodeCheckoutPending,
			Message: "Complete payment using the checkout link.",
		})
	}
	return res
}

func (m *Machine) activityGate(i *Intent, res *ValidationResult) {
	entry, err := m.catalog.Primary(i.ActivityID())
	if err != nil {
		res.add(Violation{Code: CodeActivityRequired, Field: "activity", Message: "Choose an activity."})
		return
	}
	if entry.CertRequired && !i.CertConfirmed() {
		v := Violation{
			Code:    CodeCertification,
			Field:   "certification",
			Message: fmt.Sprintf("%s requires a diving certification. Confirm that every diver is certified.", entry.Name),
		}
		if alt, ok := m.catalog.Entry(entry.Alternative); ok {
			v.Alternatives = append(v.Alternatives, Alternative{
				Kind:   AltSwitchActivity,
				Label:  "Book " + alt.Name + " instead",
				ItemID: alt.ID,
			})
		}
		res.add(v)
	}
}

func (m *Machine) datesGate(i *Intent, res *ValidationResult) {
	dates, ok := i.Dates()
	if !ok || dates.IsZero() {
		res.add(Violation{Code: CodeDatesRequired, Field: "dates", Message: "Choose a date."})
		return
	}
	if dates.Start().Before(clock.Today(m.clock, m.location)) {
		res.add(Violation{
			Code:    CodeDateInPast,
			Field:   "dates",
			Message: fmt.Sprintf("%s is in the past.", caldate.FormatLong(dates.Start())),
		})
	}
}

func (m *Machine) guestsGate(i *Intent, res *ValidationResult) {
	entry, err := m.catalog.Primary(i.ActivityID())
	if err != nil {
		res.add(Violation{Code: CodeActivityRequired, Field: "activity", Message: "Choose an activity."})
		return
	}
	params := i.Params()
	if err := entry.ValidateQuantities(params); err != nil {
		res.add(Violation{Code: CodeInvalidQuantity, Field: "params", Message: err.Error()})
		return
	}
	total := entry.TotalGuests(params)
	if total < 1 {
		res.add(Violation{Code: CodeGuestsRequired, Field: "params", Message: "Add at least one guest."})
		return
	}
	if shortfall := entry.Shortfall(params); shortfall > 0 {
		res.add(Violation{
			Code:  CodeMinimumGuests,
			Field: "params",
			Message: fmt.Sprintf("%s requires at least %d guests; %d selected, %d more needed.",
				entry.Name, entry.MinTotalGuests, total, shortfall),
			Shortfall: shortfall,
			Alternatives: []Alternative{
				{
					Kind:    AltContactOperator,
					Label:   "Contact us on WhatsApp for a smaller group",
					Contact: catalog.OperatorWhatsApp,
				},
				{
					Kind:     AltPayMinimum,
					Label:    fmt.Sprintf("Book the minimum of %d guests", entry.MinTotalGuests),
					ItemID:   entry.ID,
					Quantity: entry.MinTotalGuests,
				},
			},
		})
	}
	if m.AcceptsRental(i) && i.RentalCount() > total {
		res.add(Violation{
			Code:    CodeRentalExceedsGuests,
			Field:   "rental_count",
			Message: fmt.Sprintf("Rental sets (%d) cannot exceed the number of guests (%d).", i.RentalCount(), total),
		})
	}
}

func (m *Machine) reviewGate(i *Intent, res *ValidationResult) {
	rated := i.Rated()
	if rated == nil || rated.ItemID != i.ActivityID() {
		res.add(Violation{Code: CodeNotRated, Message: "Pricing has not been loaded for the current selection."})
		return
	}
	if !rated.IsAvailable() {
		res.add(Violation{
			Code:    CodeUnavailable,
			Message: fmt.Sprintf("%s is not available for the selected dates and guests.", rated.Name),
			Alternatives: []Alternative{
				{Kind: AltChangeDates, Label: "Choose other dates"},
				{Kind: AltChangeGuests, Label: "Change the number of guests"},
			},
		})
		return
	}
	if !rated.InCart {
		res.add(Violation{Code: CodeNotInCart, Message: "Add this activity to your cart to continue."})
	}
}
