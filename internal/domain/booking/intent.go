package booking

import (
	"time"

	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrIntentCompleted = errs.New("booking intent is already complete")
	ErrInvalidPatch    = errs.New("invalid booking intent update")
)

// Rated is the priced snapshot of the selected activity for the current dates and quantities.
type Rated struct {
	ItemID      catalog.ItemID
	Name        string
	Status      string
	Available   int
	Token       string
	Total       string
	InCart      bool
	AddOnsAdded bool
}

func (r Rated) IsAvailable() bool {
	return r.Status == catalog.RateAvailable
}

type Confirmation struct {
	BookingID   string
	CheckoutURL string
	Status      string
}

// Patch carries the fields of an update. Nil fields are left unchanged; a
// non-nil Params replaces the whole quantity map; Customer is merged.
type Patch struct {
	ActivityID  *catalog.ItemID
	Dates       *caldate.Range
	Params      map[string]int
	RentalCount *int
	Customer    map[string]string
}

func (p Patch) touchesPricing() bool {
	return p.ActivityID != nil || p.Dates != nil || p.Params != nil
}

// Intent is the accumulating answer set of one guided booking.
type Intent struct {
	id            uuid.UUID
	version       int64
	step          Step
	activityID    catalog.ItemID
	dates         *caldate.Range
	params        map[string]int
	rentalCount   int
	certConfirmed bool
	sessionID     string
	hasCartLines  bool
	rated         *Rated
	customer      map[string]string
	confirmation  *Confirmation
	createdAt     time.Time
	updatedAt     time.Time
}

func NewIntent(id uuid.UUID, now time.Time) *Intent {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Intent{
		id:        id,
		step:      StepActivity,
		params:    map[string]int{},
		customer:  map[string]string{},
		createdAt: now,
		updatedAt: now,
	}
}

func (i *Intent) ID() uuid.UUID                { return i.id }
func (i *Intent) Version() int64               { return i.version }
func (i *Intent) Step() Step                   { return i.step }
func (i *Intent) ActivityID() catalog.ItemID   { return i.activityID }
func (i *Intent) RentalCount() int             { return i.rentalCount }
func (i *Intent) CertConfirmed() bool          { return i.certConfirmed }
func (i *Intent) SessionID() string            { return i.sessionID }
func (i *Intent) HasCartLines() bool           { return i.hasCartLines }
func (i *Intent) CreatedAt() time.Time         { return i.createdAt }
func (i *Intent) UpdatedAt() time.Time         { return i.updatedAt }
func (i *Intent) IsComplete() bool             { return i.step == StepComplete }
func (i *Intent) Confirmation() *Confirmation  { return copyPtr(i.confirmation) }
func (i *Intent) Rated() *Rated                { return copyPtr(i.rated) }
func (i *Intent) Customer() map[string]string  { return patch.MergeMap(nil, i.customer) }
func (i *Intent) Params() map[string]int       { return patch.MergeMap(nil, i.params) }
func (i *Intent) Dates() (caldate.Range, bool) { return derefRange(i.dates) }

// Apply is the only way answers change. Any change to the activity, dates or
// quantities drops the rated snapshot with its token, and the session id too
// when no line from this intent reached the cart yet.
func (i *Intent) Apply(p Patch, now time.Time) error {
	if i.IsComplete() {
		return ErrIntentCompleted
	}
	if p.RentalCount != nil && *p.RentalCount < 0 {
		return errs.Wrap(ErrInvalidPatch, "rental count must not be negative")
	}
	for k, v := range p.Params {
		if v < 0 {
			return errs.Wrapf(ErrInvalidPatch, "quantity for %q must not be negative", k)
		}
	}

	if p.ActivityID != nil && *p.ActivityID != i.activityID {
		i.activityID = *p.ActivityID
		i.certConfirmed = false
		if p.Params == nil {
			i.params = map[string]int{}
		}
	}
	if p.Dates != nil {
		d := *p.Dates
		i.dates = &d
	}
	if p.Params != nil {
		i.params = patch.MergeMap(nil, p.Params)
	}
	if p.RentalCount != nil {
		i.rentalCount = *p.RentalCount
	}
	if p.Customer != nil {
		i.customer = patch.MergeMap(i.customer, p.Customer)
	}

	if p.touchesPricing() {
		i.rated = nil
		if !i.hasCartLines {
			i.sessionID = ""
		}
	}
	i.updatedAt = now
	return nil
}

func (i *Intent) ConfirmCertification(now time.Time) error {
	if i.IsComplete() {
		return ErrIntentCompleted
	}
	i.certConfirmed = true
	i.updatedAt = now
	return nil
}

// SetRated stores the result of a rating call made for the current answers.
func (i *Intent) SetRated(r Rated, now time.Time) error {
	if i.IsComplete() {
		return ErrIntentCompleted
	}
	r.InCart = false
	r.AddOnsAdded = false
	i.rated = &r
	i.updatedAt = now
	return nil
}

// RecordCartAdd notes that the rated primary is now a line of sessionID.
func (i *Intent) RecordCartAdd(sessionID string, now time.Time) error {
	if i.IsComplete() {
		return ErrIntentCompleted
	}
	if i.rated == nil {
		return errs.Wrap(ErrInvalidPatch, "nothing rated to add")
	}
	i.sessionID = sessionID
	i.hasCartLines = true
	i.rated.InCart = true
	i.updatedAt = now
	return nil
}

func (i *Intent) RecordAddOns(now time.Time) {
	if i.rated != nil {
		i.rated.AddOnsAdded = true
	}
	i.updatedAt = now
}

// AdoptSession attaches an already existing cart session, e.g. from a cookie.
func (i *Intent) AdoptSession(sessionID string, hasLines bool, now time.Time) {
	i.sessionID = sessionID
	i.hasCartLines = hasLines && sessionID != ""
	i.updatedAt = now
}

// DropSession forgets a session the reservation API no longer knows.
func (i *Intent) DropSession(now time.Time) {
	i.sessionID = ""
	i.hasCartLines = false
	if i.rated != nil {
		i.rated.InCart = false
		i.rated.AddOnsAdded = false
	}
	i.updatedAt = now
}

func (i *Intent) setStep(s Step, now time.Time) {
	i.step = s
	i.updatedAt = now
}

func (i *Intent) complete(c Confirmation, now time.Time) {
	i.confirmation = &c
	i.step = StepComplete
	i.sessionID = ""
	i.hasCartLines = false
	i.updatedAt = now
}

func (i *Intent) reset(now time.Time) {
	*i = Intent{
		id:        i.id,
		version:   i.version,
		step:      StepActivity,
		params:    map[string]int{},
		customer:  map[string]string{},
		createdAt: i.createdAt,
		updatedAt: now,
	}
}

// startAnother begins a further activity in the same cart session.
func (i *Intent) startAnother(now time.Time) {
	i.activityID = 0
	i.params = map[string]int{}
	i.rentalCount = 0
	i.certConfirmed = false
	i.rated = nil
	i.step = StepActivity
	i.updatedAt = now
}

// SetPersistedVersion is called by the store after a successful save.
func (i *Intent) SetPersistedVersion(v int64) {
	i.version = v
}

// IntentState is the flat form used to persist and rebuild an Intent.
type IntentState struct {
	ID            uuid.UUID
	Version       int64
	Step          Step
	ActivityID    catalog.ItemID
	Dates         *caldate.Range
	Params        map[string]int
	RentalCount   int
	CertConfirmed bool
	SessionID     string
	HasCartLines  bool
	Rated         *Rated
	Customer      map[string]string
	Confirmation  *Confirmation
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (i *Intent) State() IntentState {
	var dates *caldate.Range
	if r, ok := i.Dates(); ok {
		dates = &r
	}
	return IntentState{
		ID:            i.id,
		Version:       i.version,
		Step:          i.step,
		ActivityID:    i.activityID,
		Dates:         dates,
		Params:        i.Params(),
		RentalCount:   i.rentalCount,
		CertConfirmed: i.certConfirmed,
		SessionID:     i.sessionID,
		HasCartLines:  i.hasCartLines,
		Rated:         i.Rated(),
		Customer:      i.Customer(),
		Confirmation:  i.Confirmation(),
		CreatedAt:     i.createdAt,
		UpdatedAt:     i.updatedAt,
	}
}

func ReconstructIntent(s IntentState) *Intent {
	var dates *caldate.Range
	if s.Dates != nil {
		d := *s.Dates
		dates = &d
	}
	return &Intent{
		id:            s.ID,
		version:       s.Version,
		step:          s.Step,
		activityID:    s.ActivityID,
		dates:         dates,
		params:        patch.MergeMap(nil, s.Params),
		rentalCount:   s.RentalCount,
		certConfirmed: s.CertConfirmed,
		sessionID:     s.SessionID,
		hasCartLines:  s.HasCartLines,
		rated:         copyPtr(s.Rated),
		customer:      patch.MergeMap(nil, s.Customer),
		confirmation:  copyPtr(s.Confirmation),
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func derefRange(r *caldate.Range) (caldate.Range, bool) {
	if r == nil {
		return caldate.Range{}, false
	}
	return *r, true
}
