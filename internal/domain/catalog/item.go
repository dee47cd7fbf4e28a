package catalog

import (
	"sort"
	"strconv"
)

const (
	RateAvailable   = "AVAILABLE"
	RateUnavailable = "UNAVAILABLE"
)

type Category struct {
	ID          int
	Name        string
	Description string
	ItemCount   int
	Position    int
}

// BookingParam is a capacity dimension as the reservation API describes it on an item.
type BookingParam struct {
	Key      string
	Label    string
	Price    float64
	Required bool
	Hidden   bool
	Locked   bool
	Ranged   bool
	Min      int
	Max      int
	Default  int
}

// Visible reports whether the param should be offered for input.
func (p BookingParam) Visible() bool {
	if p.Hidden || p.Locked {
		return false
	}
	return !(p.Ranged && p.Max == 0)
}

// DefaultQuantity is MIN when set, otherwise 1 for required params and 0 for the rest.
func (p BookingParam) DefaultQuantity() int {
	if p.Min > 0 {
		return p.Min
	}
	if p.Required {
		return 1
	}
	return 0
}

// Rate is the priced answer for an item on given dates and quantities.
type Rate struct {
	Status    string
	Available int
	Token     string
	Total     string
	SubTotal  string
	Title     string
	StartDate string
	EndDate   string
}

func (r Rate) IsAvailable() bool {
	return r.Status == RateAvailable
}

type Item struct {
	ID         ItemID
	SKU        string
	Name       string
	Summary    string
	CategoryID int
	Stock      int
	Unlimited  bool
	ImageURL   string
	Params     []BookingParam
	Rate       *Rate
}

func (i Item) AvailabilityLabel() string {
	return AvailabilityLabel(i.Stock, i.Unlimited)
}

func (i Item) VisibleParams() []BookingParam {
	out := make([]BookingParam, 0, len(i.Params))
	for _, p := range i.Params {
		if p.Visible() {
			out = append(out, p)
		}
	}
	return out
}

func AvailabilityLabel(stock int, unlimited bool) string {
	switch {
	case unlimited:
		return "Available"
	case stock <= 0:
		return "Sold out"
	case stock <= 3:
		return "Only " + strconv.Itoa(stock) + " left"
	default:
		return "Available"
	}
}

// ItemQuery filters items and, when dates and params are set, asks for a rate.
type ItemQuery struct {
	CategoryID int
	ItemIDs    []ItemID
	Keyword    string
	StartDate  string
	EndDate    string
	Params     map[string]int
}

func (q ItemQuery) Rated() bool {
	return q.StartDate != "" && q.EndDate != "" && len(q.Params) > 0
}

type CalendarDay struct {
	Date  string
	Stock int
}

type Calendar struct {
	ItemID ItemID
	Days   []CalendarDay
}

// Head returns at most n days in date order.
func (c Calendar) Head(n int) []CalendarDay {
	days := make([]CalendarDay, len(c.Days))
	copy(days, c.Days)
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	if n >= 0 && len(days) > n {
		days = days[:n]
	}
	return days
}
