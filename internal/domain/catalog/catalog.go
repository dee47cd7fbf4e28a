package catalog

import (
	"sort"

	"saba-booking/internal/pkg/errs"
)

type ItemID int

const (
	Advanced2Tank    ItemID = 5
	Classic2Tank     ItemID = 133
	AfternoonDive    ItemID = 11
	AfternoonSnorkel ItemID = 12
	SunsetCruise     ItemID = 194
	RentalGear       ItemID = 176
	MarineParkFee    ItemID = 68
)

// OperatorWhatsApp is the contact channel offered when a booking cannot be completed online.
const OperatorWhatsApp = "+599-416-2246"

var (
	ErrUnknownItem      = errs.New("unknown catalog item")
	ErrInvalidCatalog   = errs.New("invalid catalog configuration")
	ErrNotPrimaryItem   = errs.New("item is not a bookable activity")
	ErrUnknownParam     = errs.New("unknown booking parameter")
	ErrNegativeQuantity = errs.New("quantity must not be negative")
)

type Kind int

const (
	KindPrimary Kind = iota + 1
	KindAddOn
)

// Param is a named capacity dimension of an activity ("diver2026rate", "adult", ...).
// Local params are resident rates that go into a separate line item.
type Param struct {
	Key   string
	Label string
	Local bool
}

type QuantitySource int

const (
	FromGuests QuantitySource = iota + 1
	FromRental
)

// AddOnRule says which add-on item accompanies a primary, under which booking
// parameter, and where its quantity comes from.
type AddOnRule struct {
	Item   ItemID
	Param  string
	Source QuantitySource
}

type Entry struct {
	ID             ItemID
	Kind           Kind
	Name           string
	ShortDesc      string
	PickupTime     string
	Requirement    string
	CertRequired   bool
	Alternative    ItemID
	Params         []Param
	MinTotalGuests int
	AddOns         []AddOnRule
}

func (e Entry) HasParam(key string) bool {
	for _, p := range e.Params {
		if p.Key == key {
			return true
		}
	}
	return false
}

func (e Entry) Param(key string) (Param, bool) {
	for _, p := range e.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

// TotalGuests sums the quantities of this entry's params; keys it does not declare are ignored.
func (e Entry) TotalGuests(quantities map[string]int) int {
	total := 0
	for _, p := range e.Params {
		total += quantities[p.Key]
	}
	return total
}

// Shortfall is how many guests are missing to reach MinTotalGuests (0 when met or unconstrained).
func (e Entry) Shortfall(quantities map[string]int) int {
	if e.MinTotalGuests <= 0 {
		return 0
	}
	if missing := e.MinTotalGuests - e.TotalGuests(quantities); missing > 0 {
		return missing
	}
	return 0
}

// ValidateQuantities rejects unknown keys and negative values.
func (e Entry) ValidateQuantities(quantities map[string]int) error {
	for k, v := range quantities {
		if !e.HasParam(k) {
			return errs.Wrapf(ErrUnknownParam, "%s has no param %q", e.Name, k)
		}
		if v < 0 {
			return errs.Wrapf(ErrNegativeQuantity, "%s=%d", k, v)
		}
	}
	return nil
}

// Catalog is the immutable set of bookable activities and their add-ons.
type Catalog struct {
	entries map[ItemID]Entry
	order   []ItemID
}

func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[ItemID]Entry, len(entries))}
	for _, e := range entries {
		if _, dup := c.entries[e.ID]; dup {
			return nil, errs.Wrapf(ErrInvalidCatalog, "duplicate item %d", e.ID)
		}
		c.entries[e.ID] = e
		c.order = append(c.order, e.ID)
	}
	for _, e := range entries {
		for _, rule := range e.AddOns {
			addOn, ok := c.entries[rule.Item]
			if !ok || addOn.Kind != KindAddOn {
				return nil, errs.Wrapf(ErrInvalidCatalog, "%s references add-on %d", e.Name, rule.Item)
			}
			if !addOn.HasParam(rule.Param) {
				return nil, errs.Wrapf(ErrInvalidCatalog, "add-on %d has no param %q", rule.Item, rule.Param)
			}
		}
		if e.Alternative != 0 {
			alt, ok := c.entries[e.Alternative]
			if !ok || alt.Kind != KindPrimary || alt.CertRequired {
				return nil, errs.Wrapf(ErrInvalidCatalog, "%s has invalid alternative %d", e.Name, e.Alternative)
			}
		}
	}
	return c, nil
}

func (c *Catalog) Entry(id ItemID) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

func (c *Catalog) Primary(id ItemID) (Entry, error) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, errs.Wrapf(ErrUnknownItem, "item %d", id)
	}
	if e.Kind != KindPrimary {
		return Entry{}, errs.Wrapf(ErrNotPrimaryItem, "item %d", id)
	}
	return e, nil
}

func (c *Catalog) IsPrimary(id ItemID) bool {
	e, ok := c.entries[id]
	return ok && e.Kind == KindPrimary
}

func (c *Catalog) IsAddOn(id ItemID) bool {
	e, ok := c.entries[id]
	return ok && e.Kind == KindAddOn
}

// IsAddOnOf reports whether addOn is one of primary's declared add-ons.
func (c *Catalog) IsAddOnOf(primary, addOn ItemID) bool {
	e, ok := c.entries[primary]
	if !ok {
		return false
	}
	for _, rule := range e.AddOns {
		if rule.Item == addOn {
			return true
		}
	}
	return false
}

func (c *Catalog) Primaries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		if e := c.entries[id]; e.Kind == KindPrimary {
			out = append(out, e)
		}
	}
	return out
}

func (c *Catalog) IDs() []ItemID {
	ids := make([]ItemID, len(c.order))
	copy(ids, c.order)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
