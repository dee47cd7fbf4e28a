package cart

import (
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/money"
)

// LineItem is one row of a reservation session as the external API returns it.
// Nothing on it links an add-on to the primary it was bought with.
type LineItem struct {
	Key         string
	ItemID      catalog.ItemID
	SKU         string
	Name        string
	StartDate   string
	EndDate     string
	DateSummary string
	Total       string
	Token       string
	Available   int
}

func (l LineItem) Amount() float64 {
	return money.Parse(l.Total)
}

func (l LineItem) SameDates(other LineItem) bool {
	return l.StartDate == other.StartDate && l.EndDate == other.EndDate
}

// Snapshot is the authoritative state of one session.
type Snapshot struct {
	SessionID string
	Items     []LineItem
	Total     string
	SubTotal  string
	TaxTotal  string
	DateDesc  string
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}
