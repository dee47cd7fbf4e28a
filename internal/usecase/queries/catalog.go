package queries

import (
	"context"
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/usecase/shared"
)

// DefaultCalendarDays is the span shown when a calendar is requested without dates.
const DefaultCalendarDays = 30

// CatalogQueries reads categories, items, calendars and the booking form
// from the reservation API. Nothing is cached.
type CatalogQueries interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Items(ctx context.Context, q catalog.ItemQuery) ([]catalog.Item, error)
	Item(ctx context.Context, id catalog.ItemID, q *catalog.ItemQuery) (*catalog.Item, error)
	Calendar(ctx context.Context, id catalog.ItemID, span *caldate.Range) (*catalog.Calendar, error)
	BookingForm(ctx context.Context) (*booking.FormSchema, error)
}

type catalogQueries struct {
	gateway  shared.ReservationGateway
	clock    clock.Clock
	location *time.Location
}

func NewCatalogQueries(gateway shared.ReservationGateway, clk clock.Clock) CatalogQueries {
	return &catalogQueries{
		gateway:  gateway,
		clock:    clk,
		location: booking.OperatorLocation,
	}
}

func (q *catalogQueries) Categories(ctx context.Context) ([]catalog.Category, error) {
	return q.gateway.ListCategories(ctx)
}

func (q *catalogQueries) Items(ctx context.Context, query catalog.ItemQuery) ([]catalog.Item, error) {
	return q.gateway.ListItems(ctx, query)
}

func (q *catalogQueries) Item(ctx context.Context, id catalog.ItemID, query *catalog.ItemQuery) (*catalog.Item, error) {
	return q.gateway.GetItem(ctx, id, query)
}

// Calendar defaults to DefaultCalendarDays starting today in the operator's time zone.
func (q *catalogQueries) Calendar(ctx context.Context, id catalog.ItemID, span *caldate.Range) (*catalog.Calendar, error) {
	if span == nil {
		start := clock.Today(q.clock, q.location)
		end, err := caldate.AddDaysInclusive(start, DefaultCalendarDays)
		if err != nil {
			return nil, err
		}
		r, err := caldate.NewRange(start, end)
		if err != nil {
			return nil, err
		}
		span = &r
	}
	return q.gateway.GetCalendar(ctx, id, *span)
}

func (q *catalogQueries) BookingForm(ctx context.Context) (*booking.FormSchema, error) {
	return q.gateway.GetBookingForm(ctx)
}
