package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Queries holds the hand-written SQL of the ledger tables, shaped like
// generated query code so repositories can depend on narrow interfaces.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

type Bookings struct {
	BookingID     string
	SessionID     string
	Status        string
	CheckoutURL   string
	IntentID      pgtype.UUID
	CustomerName  string
	CustomerEmail string
	Total         string
	CreatedAt     time.Time
}

type BookingLines struct {
	Position     int32
	ItemID       int32
	Name         string
	StartDate    string
	EndDate      string
	Total        string
	Role         string
	PrimaryToken string
}

type ContactRequests struct {
	ID             uuid.UUID
	Source         string
	RequestType    string
	Name           string
	Email          string
	Phone          string
	Subject        string
	Message        string
	PreferredDates string
	GuestCount     int32
	CreatedAt      time.Time
}

const insertBooking = `
INSERT INTO bookings (booking_id, session_id, status, checkout_url, intent_id, customer_name, customer_email, total, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg Bookings) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.BookingID, arg.SessionID, arg.Status, arg.CheckoutURL, arg.IntentID,
		arg.CustomerName, arg.CustomerEmail, arg.Total, arg.CreatedAt)
	return err
}

const insertBookingLine = `
INSERT INTO booking_lines (booking_id, position, item_id, name, start_date, end_date, total, role, primary_token)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertBookingLine(ctx context.Context, db DBTX, bookingID string, arg BookingLines) error {
	_, err := db.Exec(ctx, insertBookingLine,
		bookingID, arg.Position, arg.ItemID, arg.Name, arg.StartDate, arg.EndDate,
		arg.Total, arg.Role, arg.PrimaryToken)
	return err
}

const getBooking = `
SELECT booking_id, session_id, status, checkout_url, intent_id, customer_name, customer_email, total, created_at
FROM bookings
WHERE booking_id = $1`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, bookingID string) (Bookings, error) {
	var b Bookings
	err := db.QueryRow(ctx, getBooking, bookingID).Scan(
		&b.BookingID, &b.SessionID, &b.Status, &b.CheckoutURL, &b.IntentID,
		&b.CustomerName, &b.CustomerEmail, &b.Total, &b.CreatedAt)
	return b, err
}

const listBookingLines = `
SELECT position, item_id, name, start_date, end_date, total, role, primary_token
FROM booking_lines
WHERE booking_id = $1
ORDER BY position`

func (q *Queries) ListBookingLines(ctx context.Context, db DBTX, bookingID string) ([]BookingLines, error) {
	rows, err := db.Query(ctx, listBookingLines, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookingLines
	for rows.Next() {
		var l BookingLines
		if err := rows.Scan(&l.Position, &l.ItemID, &l.Name, &l.StartDate, &l.EndDate,
			&l.Total, &l.Role, &l.PrimaryToken); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

const insertContactRequest = `
INSERT INTO contact_requests (id, source, request_type, name, email, phone, subject, message, preferred_dates, guest_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (q *Queries) InsertContactRequest(ctx context.Context, db DBTX, arg ContactRequests) error {
	_, err := db.Exec(ctx, insertContactRequest,
		arg.ID, arg.Source, arg.RequestType, arg.Name, arg.Email, arg.Phone,
		arg.Subject, arg.Message, arg.PreferredDates, arg.GuestCount, arg.CreatedAt)
	return err
}
