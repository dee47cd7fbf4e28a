package booking

import (
	"time"

	"saba-booking/internal/domain/cart"
	"saba-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

type LineRole string

const (
	RolePrimary    LineRole = "primary"
	RoleAddOn      LineRole = "add_on"
	RoleUnassigned LineRole = "unassigned"
)

type RecordLine struct {
	ItemID       catalog.ItemID
	Name         string
	StartDate    string
	EndDate      string
	Total        string
	Role         LineRole
	PrimaryToken string
}

// Record is the local ledger entry written after a booking is created.
type Record struct {
	BookingID     string
	SessionID     string
	Status        string
	CheckoutURL   string
	IntentID      *uuid.UUID
	CustomerName  string
	CustomerEmail string
	Total         string
	Lines         []RecordLine
	CreatedAt     time.Time
}

// NewRecord captures the reconciled cart that a confirmation was issued for.
func NewRecord(c Confirmation, snap cart.Snapshot, rec cart.Reconciliation, customer map[string]string, intentID *uuid.UUID, now time.Time) Record {
	r := Record{
		BookingID:     c.BookingID,
		SessionID:     snap.SessionID,
		Status:        c.Status,
		CheckoutURL:   c.CheckoutURL,
		IntentID:      intentID,
		CustomerName:  customer["customer_name"],
		CustomerEmail: customer["customer_email"],
		Total:         snap.Total,
		CreatedAt:     now,
	}
	for _, u := range rec.Units {
		r.Lines = append(r.Lines, recordLine(u.Primary, RolePrimary, u.Primary.Token))
		for _, a := range u.AddOns {
			r.Lines = append(r.Lines, recordLine(a, RoleAddOn, u.Primary.Token))
		}
	}
	for _, l := range rec.Unassigned {
		r.Lines = append(r.Lines, recordLine(l, RoleUnassigned, ""))
	}
	return r
}

func recordLine(l cart.LineItem, role LineRole, primaryToken string) RecordLine {
	return RecordLine{
		ItemID:       l.ItemID,
		Name:         l.Name,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
		Total:        l.Total,
		Role:         role,
		PrimaryToken: primaryToken,
	}
}
