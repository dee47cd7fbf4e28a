//go:build unit

package testutil

import (
	"context"
	"sync"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/infra/db"
	"saba-booking/internal/usecase/shared"
)

// RecordingUoW runs callbacks without a database and keeps what the
// repositories were asked to write. Err, when set, is returned by every write.
type RecordingUoW struct {
	mu       sync.Mutex
	Bookings []booking.Record
	Contacts []*contact.Request
	Err      error
}

func (u *RecordingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &recordingTx{uow: u})
}

func (u *RecordingUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *RecordingUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

type recordingTx struct {
	uow *RecordingUoW
}

func (t *recordingTx) Bookings() shared.BookingRepository        { return t }
func (t *recordingTx) ContactRequests() shared.ContactRepository { return contactRecorder{t.uow} }
func (t *recordingTx) DB() db.DBTX                               { return nil }

func (t *recordingTx) Create(_ context.Context, _ db.DBTX, rec booking.Record) error {
	t.uow.mu.Lock()
	defer t.uow.mu.Unlock()
	if t.uow.Err != nil {
		return t.uow.Err
	}
	t.uow.Bookings = append(t.uow.Bookings, rec)
	return nil
}

type contactRecorder struct {
	uow *RecordingUoW
}

func (c contactRecorder) Create(_ context.Context, _ db.DBTX, req *contact.Request) error {
	c.uow.mu.Lock()
	defer c.uow.mu.Unlock()
	if c.uow.Err != nil {
		return c.uow.Err
	}
	c.uow.Contacts = append(c.uow.Contacts, req)
	return nil
}
