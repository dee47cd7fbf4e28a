//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/infra"
	"saba-booking/internal/infra/db"
	"saba-booking/internal/infra/repository"
	repositorymock "saba-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleRecord() booking.Record {
	intentID := uuid.MustParse("6f1c9a52-8c1e-4f55-9d43-0a2b7c6d1e01")
	return booking.Record{
		BookingID:     "BK-1001",
		SessionID:     "sess-123",
		Status:        "pending",
		CheckoutURL:   "https://example.test/checkout/BK-1001",
		IntentID:      &intentID,
		CustomerName:  "Ana Diver",
		CustomerEmail: "ana@example.com",
		Total:         "$210.00",
		Lines: []booking.RecordLine{
			{ItemID: catalog.Classic2Tank, Name: "Classic 2-Tank Dive", StartDate: "20260212", EndDate: "20260212", Total: "$150.00", Role: booking.RolePrimary, PrimaryToken: "slip-classic"},
			{ItemID: catalog.RentalGear, Name: "Full Rental Gear", StartDate: "20260212", EndDate: "20260212", Total: "$40.00", Role: booking.RoleAddOn, PrimaryToken: "slip-classic"},
			{ItemID: catalog.MarineParkFee, Name: "Marine Park Fee", StartDate: "20260212", EndDate: "20260212", Total: "$20.00", Role: booking.RoleAddOn, PrimaryToken: "slip-classic"},
		},
		CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, booking.Record, db.DBTX)
		expectedError bool
		expectKind    infra.ErrorKind
	}{
		{
			name: "success: header and lines written in order",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, rec booking.Record, tx db.DBTX) {
				gomock.InOrder(
					mock.EXPECT().InsertBooking(ctx, tx, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ db.DBTX, arg db.Bookings) error {
							assert.Equal(t, rec.BookingID, arg.BookingID)
							assert.True(t, arg.IntentID.Valid)
							assert.Equal(t, [16]byte(*rec.IntentID), arg.IntentID.Bytes)
							return nil
						}),
					mock.EXPECT().InsertBookingLine(ctx, tx, rec.BookingID, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ db.DBTX, _ string, arg db.BookingLines) error {
							assert.Equal(t, int32(0), arg.Position)
							assert.Equal(t, "primary", arg.Role)
							return nil
						}),
					mock.EXPECT().InsertBookingLine(ctx, tx, rec.BookingID, gomock.Any()).Return(nil),
					mock.EXPECT().InsertBookingLine(ctx, tx, rec.BookingID, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ db.DBTX, _ string, arg db.BookingLines) error {
							assert.Equal(t, int32(2), arg.Position)
							assert.Equal(t, int32(catalog.MarineParkFee), arg.ItemID)
							return nil
						}),
				)
			},
		},
		{
			name: "error: duplicate booking id",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, rec booking.Record, tx db.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().InsertBooking(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: line insert fails",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, rec booking.Record, tx db.DBTX) {
				mock.EXPECT().InsertBooking(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().InsertBookingLine(ctx, tx, rec.BookingID, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, nil)
			rec := sampleRecord()

			tc.setupMock(mockQueries, rec, mockDB)

			err := repo.Create(ctx, mockDB, rec)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingRepository_Create_WithoutIntent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}

	rec := sampleRecord()
	rec.IntentID = nil
	rec.Lines = nil

	mockQueries.EXPECT().InsertBooking(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, arg db.Bookings) error {
			assert.False(t, arg.IntentID.Valid)
			return nil
		})

	require.NoError(t, repository.NewBookingRepository(mockQueries, nil).Create(ctx, mockDB, rec))
}

func TestContactRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.ErrorKind
	}{
		{name: "success: contact request stored"},
		{
			name:          "error: database error occurs",
			queryErr:      errors.New("database connection error"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockContactWriteQueries(ctrl)
			mockDB := &mockDBTX{}

			req, err := contact.NewRequest(contact.Input{
				Source:     contact.SourceAssistant,
				Type:       contact.TypeSunsetCruiseUnderMinimum,
				Name:       "Ana Diver",
				Email:      "ana@example.com",
				Message:    "We are five people",
				GuestCount: 5,
			}, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))
			require.NoError(t, err)

			mockQueries.EXPECT().InsertContactRequest(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ db.DBTX, arg db.ContactRequests) error {
					assert.Equal(t, req.ID(), arg.ID)
					assert.Equal(t, "sunset_cruise_under_minimum", arg.RequestType)
					assert.Equal(t, "Request: sunset cruise under minimum", arg.Subject)
					assert.Equal(t, int32(5), arg.GuestCount)
					return tc.queryErr
				})

			err = repository.NewContactRepository(mockQueries, nil).Create(ctx, mockDB, req)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}
