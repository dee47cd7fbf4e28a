package commands

import (
	"context"
	"log/slog"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/cart"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingResult struct {
	Confirmation *booking.Confirmation
	// Violations is set instead of Confirmation when the customer details fail the form.
	Violations []booking.Violation
}

type BookingCommands interface {
	Create(ctx context.Context, sessionID string, fields map[string]string) (*BookingResult, error)
}

// bookingSubmitter creates bookings against a session and records them in the
// local ledger. It is shared by the direct booking endpoint, the guided
// checkout and the assistant.
type bookingSubmitter struct {
	gateway shared.ReservationGateway
	guard   shared.InFlightGuard
	uow     shared.UnitOfWork
	catalog *catalog.Catalog
	clock   clock.Clock
	logger  *slog.Logger
}

func (b *bookingSubmitter) submit(ctx context.Context, sessionID string, customer map[string]string, intentID *uuid.UUID) (*booking.Confirmation, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	release, err := b.guard.Acquire(ctx, "booking:"+sessionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	defer release(context.WithoutCancel(ctx))

	snap, err := b.gateway.GetSession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCartExpired)
		}
		return nil, err
	}
	rec := cart.Reconcile(*snap, b.catalog)
	if rec.UnitCount() == 0 && len(rec.Unassigned) == 0 {
		return nil, ErrCartEmpty
	}

	conf, err := b.gateway.CreateBooking(ctx, sessionID, customer)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCartExpired)
		}
		return nil, err
	}

	b.record(ctx, booking.NewRecord(*conf, *snap, rec, customer, intentID, b.clock.Now()))
	return conf, nil
}

// record writes the ledger entry. The booking already exists upstream, so a
// ledger failure is logged and not returned.
func (b *bookingSubmitter) record(ctx context.Context, rec booking.Record) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, tx.DB(), rec)
	})
	if err != nil {
		b.logger.Warn("failed to record booking in ledger",
			"booking_id", rec.BookingID,
			"session_id", rec.SessionID,
			"error", err.Error())
	}
}

type bookingUseCaseImpl struct {
	submitter *bookingSubmitter
}

func NewBookingUseCase(
	gateway shared.ReservationGateway,
	guard shared.InFlightGuard,
	uow shared.UnitOfWork,
	cat *catalog.Catalog,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		submitter: &bookingSubmitter{
			gateway: gateway,
			guard:   guard,
			uow:     uow,
			catalog: cat,
			clock:   clk,
			logger:  logger,
		},
	}
}

// Create validates the customer fields against the current booking form and
// books the session.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, sessionID string, fields map[string]string) (*BookingResult, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	form, err := uc.submitter.gateway.GetBookingForm(ctx)
	if err != nil {
		return nil, err
	}
	if violations := form.Validate(fields); len(violations) > 0 {
		return &BookingResult{Violations: violations}, nil
	}

	conf, err := uc.submitter.submit(ctx, sessionID, fields, nil)
	if err != nil {
		return nil, err
	}
	return &BookingResult{Confirmation: conf}, nil
}
