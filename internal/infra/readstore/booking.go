package readstore

import (
	"context"
	"errors"
	"log/slog"

	"saba-booking/internal/infra"
	"saba-booking/internal/infra/db"
	"saba-booking/internal/usecase/queries"
	"saba-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingViewQueries interface {
	GetBooking(ctx context.Context, db db.DBTX, bookingID string) (db.Bookings, error)
	ListBookingLines(ctx context.Context, db db.DBTX, bookingID string) ([]db.BookingLines, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	uow     shared.UnitOfWork
	logger  *slog.Logger
}

func NewBookingReadStore(queries BookingViewQueries, uow shared.UnitOfWork, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		uow:     uow,
		logger:  logger,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, bookingID string) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := r.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		row, err := r.queries.GetBooking(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return infra.WrapErr(r.logger, infra.KindNotFound, "booking not found", err)
			}
			return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to find booking", err)
		}
		lines, err := r.queries.ListBookingLines(ctx, tx, bookingID)
		if err != nil {
			return infra.WrapErr(r.logger, infra.KindDBFailure, "failed to list booking lines", err)
		}
		view = rowToBookingView(row, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func rowToBookingView(row db.Bookings, lines []db.BookingLines) *queries.BookingView {
	v := &queries.BookingView{
		BookingID:     row.BookingID,
		SessionID:     row.SessionID,
		Status:        row.Status,
		CheckoutURL:   row.CheckoutURL,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		Total:         row.Total,
		Lines:         make([]queries.BookingLineView, 0, len(lines)),
		CreatedAt:     row.CreatedAt,
	}
	if row.IntentID.Valid {
		id := uuid.UUID(row.IntentID.Bytes)
		v.IntentID = &id
	}
	for _, l := range lines {
		v.Lines = append(v.Lines, queries.BookingLineView{
			ItemID:       int(l.ItemID),
			Name:         l.Name,
			StartDate:    l.StartDate,
			EndDate:      l.EndDate,
			Total:        l.Total,
			Role:         l.Role,
			PrimaryToken: l.PrimaryToken,
		})
	}
	return v
}
