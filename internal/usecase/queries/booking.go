package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingView is the ledger entry of a confirmed booking.
type BookingView struct {
	BookingID     string            `json:"booking_id"`
	SessionID     string            `json:"session_id"`
	Status        string            `json:"status"`
	CheckoutURL   string            `json:"checkout_url"`
	IntentID      *uuid.UUID        `json:"intent_id,omitempty"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Total         string            `json:"total"`
	Lines         []BookingLineView `json:"lines"`
	CreatedAt     time.Time         `json:"created_at"`
}

type BookingLineView struct {
	ItemID       int    `json:"item_id"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Total        string `json:"total"`
	Role         string `json:"role"`
	PrimaryToken string `json:"primary_token,omitempty"`
}

type BookingStore interface {
	FindByID(ctx context.Context, bookingID string) (*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID string) (*BookingView, error)
}

type bookingQueries struct {
	store BookingStore
}

func NewBookingQueries(store BookingStore) BookingQueries {
	return &bookingQueries{store: store}
}

func (q *bookingQueries) GetByID(ctx context.Context, bookingID string) (*BookingView, error) {
	return q.store.FindByID(ctx, bookingID)
}
