//go:build unit || e2e || integration

package builder

import (
	"fmt"

	"saba-booking/internal/domain/cart"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/money"
)

type LineItemBuilder struct {
	Key       string
	ItemID    catalog.ItemID
	Name      string
	StartDate string
	EndDate   string
	Total     string
	Token     string
	Available int
}

func NewLineItemBuilder() *LineItemBuilder {
	return &LineItemBuilder{
		Key:       "1",
		ItemID:    catalog.Classic2Tank,
		Name:      "Classic 2-Tank Dive",
		StartDate: "20260212",
		EndDate:   "20260212",
		Total:     "$150.00",
		Token:     "slip-classic",
		Available: 10,
	}
}

func (b *LineItemBuilder) With(mutate func(*LineItemBuilder)) *LineItemBuilder {
	mutate(b)
	return b
}

func (b *LineItemBuilder) WithItem(id catalog.ItemID, name string) *LineItemBuilder {
	b.ItemID = id
	b.Name = name
	return b
}

func (b *LineItemBuilder) WithDates(start, end string) *LineItemBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *LineItemBuilder) WithTotal(total string) *LineItemBuilder {
	b.Total = total
	return b
}

func (b *LineItemBuilder) WithToken(token string) *LineItemBuilder {
	b.Token = token
	return b
}

func (b *LineItemBuilder) Build() cart.LineItem {
	return cart.LineItem{
		Key:         b.Key,
		ItemID:      b.ItemID,
		Name:        b.Name,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		DateSummary: b.StartDate + " - " + b.EndDate,
		Total:       b.Total,
		Token:       b.Token,
		Available:   b.Available,
	}
}

// Rental and MarineFee build the add-on lines that accompany a dive on the same dates.
func Rental(start, end, total, token string) cart.LineItem {
	return NewLineItemBuilder().
		WithItem(catalog.RentalGear, "Full Rental Gear").
		WithDates(start, end).
		WithTotal(total).
		WithToken(token).
		Build()
}

func MarineFee(start, end, total, token string) cart.LineItem {
	return NewLineItemBuilder().
		WithItem(catalog.MarineParkFee, "Marine Park Fee").
		WithDates(start, end).
		WithTotal(total).
		WithToken(token).
		Build()
}

type SnapshotBuilder struct {
	SessionID string
	Items     []cart.LineItem
	Total     string
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{SessionID: "sess-123"}
}

func (b *SnapshotBuilder) With(mutate func(*SnapshotBuilder)) *SnapshotBuilder {
	mutate(b)
	return b
}

func (b *SnapshotBuilder) WithItems(items ...cart.LineItem) *SnapshotBuilder {
	b.Items = append(b.Items, items...)
	return b
}

// Build numbers item keys in order and derives the total when none was set.
func (b *SnapshotBuilder) Build() *cart.Snapshot {
	items := make([]cart.LineItem, len(b.Items))
	totals := make([]string, 0, len(b.Items))
	for i, it := range b.Items {
		it.Key = fmt.Sprintf("%d", i+1)
		items[i] = it
		totals = append(totals, it.Total)
	}
	total := b.Total
	if total == "" {
		total = money.Format(money.Sum(totals...))
	}
	return &cart.Snapshot{
		SessionID: b.SessionID,
		Items:     items,
		Total:     total,
		SubTotal:  total,
		TaxTotal:  "$0.00",
	}
}
