//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/commands"
	"saba-booking/tests/common/builder"
	"saba-booking/tests/common/testutil"
	sharedmock "saba-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingUseCase_Create(t *testing.T) {
	ctx := context.Background()
	fields := map[string]string{"customer_name": "Ana Diver", "customer_email": "ana@example.com"}
	conf := &booking.Confirmation{BookingID: "BK-1", CheckoutURL: "https://pay.test/BK-1", Status: "PEND"}
	snap := builder.NewSnapshotBuilder().WithItems(builder.NewLineItemBuilder().Build()).Build()
	released := func() func(context.Context) {
		return func(context.Context) {}
	}

	testCases := []struct {
		name         string
		sessionID    string
		fields       map[string]string
		ledgerErr    error
		setup        func(gw *sharedmock.MockReservationGateway, guard *sharedmock.MockInFlightGuard)
		expectErr    error
		expectKind   infra.ErrorKind
		expectBooked bool
		violations   int
	}{
		{
			name:      "success: booking is created and recorded",
			sessionID: "sess-123",
			fields:    fields,
			setup: func(gw *sharedmock.MockReservationGateway, guard *sharedmock.MockInFlightGuard) {
				gw.EXPECT().GetBookingForm(ctx).Return(customerForm(), nil)
				guard.EXPECT().Acquire(ctx, "booking:sess-123").Return(released(), nil)
				gw.EXPECT().GetSession(ctx, "sess-123").Return(snap, nil)
				gw.EXPECT().CreateBooking(ctx, "sess-123", fields).Return(conf, nil)
			},
			expectBooked: true,
		},
		{
			name:      "ledger failure does not fail the booking",
			sessionID: "sess-123",
			fields:    fields,
			ledgerErr: errors.New("db down"),
			setup: func(gw *sharedmock.MockReservationGateway, guard *sharedmock.MockInFlightGuard) {
				gw.EXPECT().GetBookingForm(ctx).Return(customerForm(), nil)
				guard.EXPECT().Acquire(ctx, "booking:sess-123").Return(released(), nil)
				gw.EXPECT().GetSession(ctx, "sess-123").Return(snap, nil)
				gw.EXPECT().CreateBooking(ctx, "sess-123", fields).Return(conf, nil)
			},
		},
		{
			name:      "invalid details are returned as violations",
			sessionID: "sess-123",
			fields:    map[string]string{"customer_name": "Ana Diver", "customer_email": "not-an-email"},
			setup: func(gw *sharedmock.MockReservationGateway, _ *sharedmock.MockInFlightGuard) {
				gw.EXPECT().GetBookingForm(ctx).Return(customerForm(), nil)
			},
			violations: 1,
		},
		{
			name:      "no session",
			fields:    fields,
			setup:     func(*sharedmock.MockReservationGateway, *sharedmock.MockInFlightGuard) {},
			expectErr: commands.ErrNoSession,
		},
		{
			name:      "same submission already running",
			sessionID: "sess-123",
			fields:    fields,
			setup: func(gw *sharedmock.MockReservationGateway, guard *sharedmock.MockInFlightGuard) {
				gw.EXPECT().GetBookingForm(ctx).Return(customerForm(), nil)
				guard.EXPECT().Acquire(ctx, "booking:sess-123").
					Return(nil, infra.WrapErr(nil, infra.KindLocked, "in flight", nil))
			},
			expectErr: commands.ErrSubmissionInFlight,
		},
		{
			name:      "empty cart",
			sessionID: "sess-123",
			fields:    fields,
			setup: func(gw *sharedmock.MockReservationGateway, guard *sharedmock.MockInFlightGuard) {
				gw.EXPECT().GetBookingForm(ctx).Return(customerForm(), nil)
				guard.EXPECT().Acquire(ctx, "booking:sess-123").Return(released(), nil)
				gw.EXPECT().GetSession(ctx, "sess-123").Return(builder.NewSnapshotBuilder().Build(), nil)
			},
			expectErr: commands.ErrCartEmpty,
		},
		{
			name:      "session expired before booking",
			sessionID: "sess-123",
			fields:    fields,
			setup: func(gw *sharedmock.MockReservationGateway, guard *sharedmock.MockInFlightGuard) {
				gw.EXPECT().GetBookingForm(ctx).Return(customerForm(), nil)
				guard.EXPECT().Acquire(ctx, "booking:sess-123").Return(released(), nil)
				gw.EXPECT().GetSession(ctx, "sess-123").Return(nil, notFound())
			},
			expectErr: commands.ErrCartExpired,
		},
		{
			name:      "upstream rejection keeps its kind",
			sessionID: "sess-123",
			fields:    fields,
			setup: func(gw *sharedmock.MockReservationGateway, guard *sharedmock.MockInFlightGuard) {
				gw.EXPECT().GetBookingForm(ctx).Return(customerForm(), nil)
				guard.EXPECT().Acquire(ctx, "booking:sess-123").Return(released(), nil)
				gw.EXPECT().GetSession(ctx, "sess-123").Return(snap, nil)
				gw.EXPECT().CreateBooking(ctx, "sess-123", fields).
					Return(nil, infra.WrapUpstreamErr(nil, 422, "booking/create", nil))
			},
			expectKind: infra.KindUpstream,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gw := sharedmock.NewMockReservationGateway(ctrl)
			guard := sharedmock.NewMockInFlightGuard(ctrl)
			uow := &testutil.RecordingUoW{Err: tc.ledgerErr}
			tc.setup(gw, guard)

			uc := commands.NewBookingUseCase(gw, guard, uow, catalog.Default(), clock.NewMockClock(fixedNow), slog.Default())
			res, err := uc.Create(ctx, tc.sessionID, tc.fields)

			switch {
			case tc.expectErr != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			case tc.violations > 0:
				require.NoError(t, err)
				assert.Nil(t, res.Confirmation)
				assert.Len(t, res.Violations, tc.violations)
			default:
				require.NoError(t, err)
				assert.Equal(t, conf, res.Confirmation)
			}

			if tc.expectBooked {
				require.Len(t, uow.Bookings, 1)
				rec := uow.Bookings[0]
				assert.Equal(t, "BK-1", rec.BookingID)
				assert.Equal(t, "ana@example.com", rec.CustomerEmail)
				assert.Nil(t, rec.IntentID)
				assert.Equal(t, fixedNow, rec.CreatedAt)
			}
		})
	}
}

func TestContactUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid request", func(t *testing.T) {
		uow := &testutil.RecordingUoW{}
		uc := commands.NewContactUseCase(uow, clock.NewMockClock(fixedNow), slog.Default())

		id, err := uc.Submit(ctx, contact.Input{
			Source:  contact.SourceContactForm,
			Type:    contact.TypePrivateCharter,
			Name:    "Ana Diver",
			Email:   "ana@example.com",
			Subject: "Charter",
			Message: "Six divers, one day.",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		require.Len(t, uow.Contacts, 1)
		assert.Equal(t, id, uow.Contacts[0].ID())
		assert.Equal(t, fixedNow, uow.Contacts[0].CreatedAt())
	})

	t.Run("validation error stores nothing", func(t *testing.T) {
		uow := &testutil.RecordingUoW{}
		uc := commands.NewContactUseCase(uow, clock.NewMockClock(fixedNow), slog.Default())

		_, err := uc.Submit(ctx, contact.Input{Source: contact.SourceContactForm, Name: "Ana", Email: "nope"})
		assert.True(t, errs.Is(err, contact.ErrEmailInvalid))
		assert.Empty(t, uow.Contacts)
	})

	t.Run("database failure is returned", func(t *testing.T) {
		uow := &testutil.RecordingUoW{Err: infra.WrapErr(nil, infra.KindDBFailure, "insert", nil)}
		uc := commands.NewContactUseCase(uow, clock.NewMockClock(fixedNow), slog.Default())

		_, err := uc.Submit(ctx, contact.Input{
			Source:  contact.SourceAssistant,
			Type:    contact.TypeFishing,
			Name:    "Ana Diver",
			Email:   "ana@example.com",
			Message: "Half day.",
		})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
