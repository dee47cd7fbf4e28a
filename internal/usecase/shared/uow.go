package shared

import (
	"context"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table snapshots
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	ContactRequests() ContactRepository
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec booking.Record) error
}

type ContactRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *contact.Request) error
}
