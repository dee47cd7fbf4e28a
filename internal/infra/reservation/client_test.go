//go:build unit

package reservation_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/infra"
	"saba-booking/internal/infra/reservation"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionJSON = `{
  "booking": {
    "session": {
      "id": "sess-123",
      "total": "$190.00",
      "sub_total": "190.00",
      "tax_total": "0.00",
      "date_desc": "Thu Feb 12, 2026",
      "item": {
        "10": {"item_id": "176", "sku": "rental", "name": "Full Rental Gear", "slip": "slip-rental",
               "available": "9", "rate": {"total": "$40.00"},
               "date": {"summary": "Feb 12", "start_date": 20260212, "end_date": 20260212}},
        "2":  {"item_id": 133, "sku": "classic", "name": "Classic 2-Tank Dive", "slip": "slip-dive",
               "available": 10, "rate": {"total": "$150.00"},
               "date": {"summary": "Feb 12", "start_date": 20260212, "end_date": 20260212}}
      }
    }
  }
}`

type recorded struct {
	method string
	path   string
	query  url.Values
	form   url.Values
	user   string
	pass   string
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*reservation.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig().Reservation
	cfg.BaseURL = srv.URL
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return reservation.NewClientWithHTTP(cfg, srv.Client(), logger), srv
}

func record(r *http.Request) recorded {
	_ = r.ParseForm()
	user, pass, _ := r.BasicAuth()
	return recorded{
		method: r.Method,
		path:   r.URL.Path,
		query:  r.URL.Query(),
		form:   r.PostForm,
		user:   user,
		pass:   pass,
	}
}

func TestClient_RetriesRateLimit(t *testing.T) {
	t.Run("succeeds after two 429 answers", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = io.WriteString(w, sessionJSON)
		})

		snap, err := client.GetSession(context.Background(), "sess-123")

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, "sess-123", snap.SessionID)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.GetSession(context.Background(), "sess-123")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindRateLimited))
		assert.Equal(t, int32(3), calls.Load())
		e, ok := infra.AsError(err)
		require.True(t, ok)
		assert.Positive(t, e.RetryAfter)
	})

	t.Run("other failures are not retried", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "upstream down")
		})

		_, err := client.ListCategories(context.Background())

		require.Error(t, err)
		e, ok := infra.AsError(err)
		require.True(t, ok)
		assert.Equal(t, infra.KindUpstream, e.Kind)
		assert.Equal(t, http.StatusBadGateway, e.Status)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestClient_SessionRequests(t *testing.T) {
	var got recorded
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = record(r)
		_, _ = io.WriteString(w, sessionJSON)
	})
	ctx := context.Background()

	t.Run("create sends every token in one request", func(t *testing.T) {
		snap, err := client.CreateOrExtendSession(ctx, []string{"slip-rental", "slip-fee"}, "sess-123")
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/booking/session", got.path)
		assert.Equal(t, []string{"slip-rental", "slip-fee"}, got.form["slip[]"])
		assert.Equal(t, "sess-123", got.form.Get("session_id"))
		assert.Equal(t, "key", got.user)
		assert.Equal(t, "secret", got.pass)

		require.Len(t, snap.Items, 2)
		assert.Equal(t, "2", snap.Items[0].Key)
		assert.Equal(t, catalog.Classic2Tank, snap.Items[0].ItemID)
		assert.Equal(t, catalog.RentalGear, snap.Items[1].ItemID)
		assert.Equal(t, "20260212", snap.Items[1].StartDate)
		assert.Equal(t, 9, snap.Items[1].Available)
		assert.Equal(t, "$190.00", snap.Total)
	})

	t.Run("new session omits session id", func(t *testing.T) {
		_, err := client.CreateOrExtendSession(ctx, []string{"slip-dive"}, "")
		require.NoError(t, err)
		_, present := got.form["session_id"]
		assert.False(t, present)
	})

	t.Run("alter encodes quantities by token", func(t *testing.T) {
		_, err := client.AlterSession(ctx, "sess-123", map[string]int{"slip-dive": 0, "slip-rental": 0})
		require.NoError(t, err)
		assert.Equal(t, "0", got.form.Get("alter[slip-dive]"))
		assert.Equal(t, "0", got.form.Get("alter[slip-rental]"))
	})

	t.Run("booking create sends form fields", func(t *testing.T) {
		_, _ = client.CreateBooking(ctx, "sess-123", map[string]string{"customer_name": "Jane Doe"})
		assert.Equal(t, "/booking/create", got.path)
		assert.Equal(t, "Jane Doe", got.form.Get("form[customer_name]"))
	})
}

func TestClient_SessionNotFound(t *testing.T) {
	t.Run("404", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, err := client.GetSession(context.Background(), "gone")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("no session in body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"booking": {}}`)
		})
		_, err := client.GetSession(context.Background(), "gone")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestClient_RatedItem(t *testing.T) {
	var got recorded
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = record(r)
		_, _ = io.WriteString(w, `{"item": {
			"item_id": 133, "name": "Classic 2-Tank Dive", "stock": "4", "unlimited": 0,
			"image": {"1": {"url": "https://img/1.jpg"}},
			"param": {"diver2026rate": {"lbl": "Divers", "price": "75", "req": 1, "MIN": 1, "MAX": 12}},
			"rate": {"status": "AVAILABLE", "available": 4, "slip": "slip-abc", "sub_total": "150.00",
			         "summary": {"title": "Classic", "price": {"total": "$150.00"}}}
		}}`)
	})

	item, err := client.GetItem(context.Background(), catalog.Classic2Tank, &catalog.ItemQuery{
		StartDate: "20260212",
		EndDate:   "20260212",
		Params:    map[string]int{"diver2026rate": 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "/item/133", got.path)
	assert.Equal(t, "2", got.query.Get("param[diver2026rate]"))
	assert.Equal(t, "20260212", got.query.Get("start_date"))
	require.NotNil(t, item.Rate)
	assert.True(t, item.Rate.IsAvailable())
	assert.Equal(t, "slip-abc", item.Rate.Token)
	assert.Equal(t, "$150.00", item.Rate.Total)
	assert.Equal(t, "https://img/1.jpg", item.ImageURL)
	assert.Equal(t, "Only 4 left", item.AvailabilityLabel())
	require.Len(t, item.Params, 1)
	assert.InDelta(t, 75.0, item.Params[0].Price, 0.001)
	assert.Equal(t, 12, item.Params[0].Max)
}

func TestClient_CalendarDropsMetadataKeys(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"item": {"item_id": 133, "cal": {
			"20260213": 3, "20260212": "5", "available": 1, "status": "A", "2026021": 4
		}}}`)
	})
	span, err := caldate.ParseRange("20260212", "20260213")
	require.NoError(t, err)

	cal, err := client.GetCalendar(context.Background(), catalog.Classic2Tank, span)

	require.NoError(t, err)
	assert.Equal(t, []catalog.CalendarDay{
		{Date: "20260212", Stock: 5},
		{Date: "20260213", Stock: 3},
	}, cal.Days)
}

func TestClient_BookingFormFiltersFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{
		  "booking_form_ui": {
		    "customer_email": {"define": {"required": 1, "position": 2, "archived": 0,
		      "layout": {"lbl": "Email", "type": "email", "customer": {"form": 1, "required": 1}}}},
		    "customer_name": {"define": {"required": 0, "position": 1, "archived": 0,
		      "layout": {"lbl": "Name", "type": "text", "options": [], "customer": {"form": 1, "required": 1}}}},
		    "old_field": {"define": {"required": 1, "position": 0, "archived": 1,
		      "layout": {"lbl": "Old", "type": "text", "customer": {"form": 1, "required": 1}}}},
		    "staff_note": {"define": {"required": 0, "position": 3, "archived": 0,
		      "layout": {"lbl": "Note", "type": "text", "customer": {"form": 0, "required": 0}}}},
		    "hidden": {"define": {"required": 0, "position": 4, "archived": 0,
		      "layout": {"lbl": "Hidden", "type": "text", "start_hidden": 1, "customer": {"form": 1, "required": 0}}}}
		  },
		  "booking_policy": {"body": "No refunds within 24h.", "required": 1}
		}`)
	})

	schema, err := client.GetBookingForm(context.Background())

	require.NoError(t, err)
	require.Len(t, schema.Fields, 2)
	assert.Equal(t, "customer_name", schema.Fields[0].ID)
	assert.True(t, schema.Fields[0].Required)
	assert.Equal(t, "customer_email", schema.Fields[1].ID)
	assert.True(t, schema.Fields[1].IsEmail())
	assert.True(t, schema.PolicyRequired)
}
