package repository

import (
	"context"
	"errors"
	"log/slog"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/infra"
	"saba-booking/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db db.DBTX, arg db.Bookings) error
	InsertBookingLine(ctx context.Context, db db.DBTX, bookingID string, arg db.BookingLines) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	logger  *slog.Logger
}

func NewBookingRepository(queries BookingWriteQueries, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		logger:  logger,
	}
}

// Create writes the booking header and its lines; callers run it inside a transaction.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, rec booking.Record) error {
	var intentID pgtype.UUID
	if rec.IntentID != nil {
		intentID = pgtype.UUID{Bytes: *rec.IntentID, Valid: true}
	}
	header := db.Bookings{
		BookingID:     rec.BookingID,
		SessionID:     rec.SessionID,
		Status:        rec.Status,
		CheckoutURL:   rec.CheckoutURL,
		IntentID:      intentID,
		CustomerName:  rec.CustomerName,
		CustomerEmail: rec.CustomerEmail,
		Total:         rec.Total,
		CreatedAt:     rec.CreatedAt,
	}
	if err := r.queries.InsertBooking(ctx, tx, header); err != nil {
		return r.wrapWriteErr("failed to insert booking", err)
	}

	for i, l := range rec.Lines {
		line := db.BookingLines{
			Position:     int32(i),        // #nosec G115 -- line counts are tiny
			ItemID:       int32(l.ItemID), // #nosec G115 -- item ids fit in int32
			Name:         l.Name,
			StartDate:    l.StartDate,
			EndDate:      l.EndDate,
			Total:        l.Total,
			Role:         string(l.Role),
			PrimaryToken: l.PrimaryToken,
		}
		if err := r.queries.InsertBookingLine(ctx, tx, rec.BookingID, line); err != nil {
			return r.wrapWriteErr("failed to insert booking line", err)
		}
	}
	return nil
}

func (r *BookingRepository) wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
		return infra.WrapErr(r.logger, infra.KindDuplicateKey, msg, err)
	}
	return infra.WrapErr(r.logger, infra.KindDBFailure, msg, err)
}
