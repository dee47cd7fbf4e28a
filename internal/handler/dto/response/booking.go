package response

import (
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var unixTime = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: int64(0),
	Fn: func(src any) (any, error) {
		return src.(time.Time).Unix(), nil
	},
}

type BookingLineResponse struct {
	ItemID       int    `json:"item_id"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Total        string `json:"total"`
	Role         string `json:"role"`
	PrimaryToken string `json:"primary_token,omitempty"`
}

type BookingResponse struct {
	BookingID     string                `json:"booking_id"`
	Status        string                `json:"status"`
	CheckoutURL   string                `json:"checkout_url"`
	IntentID      *uuid.UUID            `json:"intent_id,omitempty"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	Total         string                `json:"total"`
	Lines         []BookingLineResponse `json:"lines"`
	CreatedAt     int64                 `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{Converters: []copier.TypeConverter{unixTime}}); err != nil {
		return nil, err
	}
	return res, nil
}

type ConfirmationResponse struct {
	BookingID  string `json:"booking_id"`
	InvoiceURL string `json:"invoice_url"`
	Status     string `json:"status"`
}

func FromConfirmation(c *booking.Confirmation) *ConfirmationResponse {
	if c == nil {
		return nil
	}
	return &ConfirmationResponse{BookingID: c.BookingID, InvoiceURL: c.CheckoutURL, Status: c.Status}
}

// CreateBookingResponse carries either the confirmation or the violations.
type CreateBookingResponse struct {
	Booking    *ConfirmationResponse `json:"booking,omitempty"`
	Violations []ViolationResponse   `json:"violations,omitempty"`
}

type ContactResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	WhatsApp  string `json:"whatsapp"`
}
