package repository

import (
	"context"
	"log/slog"

	"saba-booking/internal/domain/contact"
	"saba-booking/internal/infra/db"
)

type ContactWriteQueries interface {
	InsertContactRequest(ctx context.Context, db db.DBTX, arg db.ContactRequests) error
}

type ContactRepository struct {
	queries ContactWriteQueries
	booking *BookingRepository
}

func NewContactRepository(queries ContactWriteQueries, logger *slog.Logger) *ContactRepository {
	return &ContactRepository{
		queries: queries,
		booking: &BookingRepository{logger: logger},
	}
}

func (r *ContactRepository) Create(ctx context.Context, tx db.DBTX, req *contact.Request) error {
	params := db.ContactRequests{
		ID:             req.ID(),
		Source:         string(req.Source()),
		RequestType:    string(req.Type()),
		Name:           req.Name(),
		Email:          req.Email(),
		Phone:          req.Phone(),
		Subject:        req.Subject(),
		Message:        req.Message(),
		PreferredDates: req.PreferredDates(),
		GuestCount:     int32(req.GuestCount()), // #nosec G115 -- guest counts are small
		CreatedAt:      req.CreatedAt(),
	}
	if err := r.queries.InsertContactRequest(ctx, tx, params); err != nil {
		return r.booking.wrapWriteErr("failed to insert contact request", err)
	}
	return nil
}
