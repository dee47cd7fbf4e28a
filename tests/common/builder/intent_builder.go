//go:build unit || e2e || integration

package builder

import (
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"

	"github.com/google/uuid"
)

// IntentBuilder assembles intents in any state through IntentState, so tests
// can start mid-flow without replaying every step.
type IntentBuilder struct {
	ID            uuid.UUID
	Version       int64
	Step          booking.Step
	ActivityID    catalog.ItemID
	Start         string
	End           string
	Params        map[string]int
	RentalCount   int
	CertConfirmed bool
	SessionID     string
	HasCartLines  bool
	Rated         *booking.Rated
	Customer      map[string]string
	Now           time.Time
}

func NewIntentBuilder() *IntentBuilder {
	return &IntentBuilder{
		ID:       uuid.MustParse("6f1c9a52-8c1e-4f55-9d43-0a2b7c6d1e01"),
		Version:  1,
		Step:     booking.StepActivity,
		Params:   map[string]int{},
		Customer: map[string]string{},
		Now:      time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *IntentBuilder) With(mutate func(*IntentBuilder)) *IntentBuilder {
	mutate(b)
	return b
}

// AtGuests is a certified Classic 2-Tank dive on 2026-02-12 waiting for quantities.
func (b *IntentBuilder) AtGuests() *IntentBuilder {
	b.Step = booking.StepGuests
	b.ActivityID = catalog.Classic2Tank
	b.CertConfirmed = true
	b.Start, b.End = "20260212", "20260212"
	return b
}

// AtReview extends AtGuests with two divers, one rental set and an available rate.
func (b *IntentBuilder) AtReview() *IntentBuilder {
	b.AtGuests()
	b.Step = booking.StepReview
	b.Params = map[string]int{"diver2026rate": 2}
	b.RentalCount = 1
	b.Rated = &booking.Rated{
		ItemID:    catalog.Classic2Tank,
		Name:      "Classic 2-Tank Dive",
		Status:    catalog.RateAvailable,
		Available: 10,
		Token:     "slip-classic",
		Total:     "$150.00",
	}
	return b
}

func (b *IntentBuilder) BuildState() booking.IntentState {
	var dates *caldate.Range
	if b.Start != "" {
		r, err := caldate.ParseRange(b.Start, b.End)
		if err != nil {
			panic(err)
		}
		dates = &r
	}
	return booking.IntentState{
		ID:            b.ID,
		Version:       b.Version,
		Step:          b.Step,
		ActivityID:    b.ActivityID,
		Dates:         dates,
		Params:        b.Params,
		RentalCount:   b.RentalCount,
		CertConfirmed: b.CertConfirmed,
		SessionID:     b.SessionID,
		HasCartLines:  b.HasCartLines,
		Rated:         b.Rated,
		Customer:      b.Customer,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

func (b *IntentBuilder) Build() *booking.Intent {
	return booking.ReconstructIntent(b.BuildState())
}
