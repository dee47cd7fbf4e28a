//go:build unit

package assistant_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/assistant"
	"saba-booking/internal/usecase/commands"
	"saba-booking/tests/common/builder"
	commandsmock "saba-booking/tests/mock/commands"
	queriesmock "saba-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type toolsFixture struct {
	catalog  *queriesmock.MockCatalogQueries
	sessions *commandsmock.MockSessionSync
	bookings *commandsmock.MockBookingCommands
	contacts *commandsmock.MockContactCommands
	tools    assistant.Tools
}

func newToolsFixture(t *testing.T) *toolsFixture {
	ctrl := gomock.NewController(t)
	f := &toolsFixture{
		catalog:  queriesmock.NewMockCatalogQueries(ctrl),
		sessions: commandsmock.NewMockSessionSync(ctrl),
		bookings: commandsmock.NewMockBookingCommands(ctrl),
		contacts: commandsmock.NewMockContactCommands(ctrl),
	}
	f.tools = assistant.NewTools(f.catalog, f.sessions, f.bookings, f.contacts, catalog.Default(), slog.Default())
	return f
}

func args(t *testing.T, v map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestTools_Specs(t *testing.T) {
	f := newToolsFixture(t)

	names := make([]string, 0)
	for _, s := range f.tools.Specs() {
		names = append(names, s.Name)
	}
	want := []string{
		assistant.ToolSearchItems, assistant.ToolRateItem, assistant.ToolCheckAvailability,
		assistant.ToolAddToSession, assistant.ToolViewCart, assistant.ToolRemoveFromCart,
		assistant.ToolCreateBooking, assistant.ToolClearSession, assistant.ToolPrepareContactRequest,
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tool names mismatch (-want +got):\n%s", diff)
	}
}

func TestTools_Invoke_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown tool", func(t *testing.T) {
		f := newToolsFixture(t)
		_, err := f.tools.Invoke(ctx, "deleteEverything", "", nil)
		assert.True(t, errs.Is(err, assistant.ErrUnknownTool))
	})

	t.Run("malformed arguments", func(t *testing.T) {
		f := newToolsFixture(t)
		_, err := f.tools.Invoke(ctx, assistant.ToolRateItem, "", json.RawMessage(`{"item_id":"five"}`))
		assert.True(t, errs.Is(err, assistant.ErrInvalidArgs))
	})

	t.Run("rateItem rejects a param the item does not have", func(t *testing.T) {
		f := newToolsFixture(t)
		_, err := f.tools.Invoke(ctx, assistant.ToolRateItem, "", args(t, map[string]any{
			"item_id":    int(catalog.Classic2Tank),
			"start_date": "20260212",
			"end_date":   "20260212",
			"guests":     map[string]int{"snorkeler": 2},
		}))
		assert.True(t, errs.Is(err, assistant.ErrInvalidArgs))
	})

	t.Run("rateItem rejects bad dates", func(t *testing.T) {
		f := newToolsFixture(t)
		_, err := f.tools.Invoke(ctx, assistant.ToolRateItem, "", args(t, map[string]any{
			"item_id":    int(catalog.Classic2Tank),
			"start_date": "20260214",
			"end_date":   "20260212",
			"guests":     map[string]int{"diver2026rate": 2},
		}))
		assert.True(t, errs.Is(err, assistant.ErrInvalidArgs))
	})
}

func TestTools_RateItem(t *testing.T) {
	ctx := context.Background()
	guests := map[string]int{"diver2026rate": 2}

	testCases := []struct {
		name   string
		rate   *catalog.Rate
		expect map[string]any
	}{
		{
			name: "available rate carries the slip",
			rate: &catalog.Rate{Status: catalog.RateAvailable, Available: 6, Token: "slip-1", Total: "$300.00"},
			expect: map[string]any{
				"item_id":   int(catalog.Classic2Tank),
				"name":      "Classic 2-Tank Dive",
				"status":    catalog.RateAvailable,
				"available": 6,
				"price":     "$300.00",
				"slip":      "slip-1",
			},
		},
		{
			name: "no rate is unavailable",
			expect: map[string]any{
				"item_id": int(catalog.Classic2Tank),
				"name":    "Classic 2-Tank Dive",
				"status":  catalog.RateUnavailable,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newToolsFixture(t)
			f.catalog.EXPECT().
				Item(ctx, catalog.Classic2Tank, &catalog.ItemQuery{
					ItemIDs:   []catalog.ItemID{catalog.Classic2Tank},
					StartDate: "20260212",
					EndDate:   "20260212",
					Params:    guests,
				}).
				Return(&catalog.Item{ID: catalog.Classic2Tank, Name: "Classic 2-Tank Dive", Rate: tc.rate}, nil)

			out, err := f.tools.Invoke(ctx, assistant.ToolRateItem, "sess-1", args(t, map[string]any{
				"item_id":    int(catalog.Classic2Tank),
				"start_date": "20260212",
				"end_date":   "20260212",
				"guests":     guests,
			}))
			require.NoError(t, err)
			assert.Equal(t, "sess-1", out.SessionID)
			if diff := cmp.Diff(tc.expect, out.Result); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTools_SearchItems(t *testing.T) {
	ctx := context.Background()
	f := newToolsFixture(t)
	f.catalog.EXPECT().Items(ctx, catalog.ItemQuery{Keyword: "dive"}).Return([]catalog.Item{{
		ID:    catalog.Classic2Tank,
		Name:  "Classic 2-Tank Dive",
		Stock: 2,
		Params: []catalog.BookingParam{
			{Key: "diver2026rate", Label: "Divers", Price: 150, Required: true},
			{Key: "staff", Label: "Staff", Hidden: true},
		},
	}}, nil)

	out, err := f.tools.Invoke(ctx, assistant.ToolSearchItems, "", args(t, map[string]any{"keyword": "dive"}))
	require.NoError(t, err)

	items := out.Result["items"].([]map[string]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Only 2 left", items[0]["availability"])
	params := items[0]["params"].([]map[string]any)
	require.Len(t, params, 1)
	assert.Equal(t, "diver2026rate", params[0]["key"])
	assert.Equal(t, 1, params[0]["default"])
}

func TestTools_CheckAvailability_CapsEntries(t *testing.T) {
	ctx := context.Background()
	f := newToolsFixture(t)

	days := make([]catalog.CalendarDay, 0, 30)
	for d := 30; d >= 1; d-- {
		days = append(days, catalog.CalendarDay{Date: fmt.Sprintf("202603%02d", d), Stock: d})
	}
	f.catalog.EXPECT().
		Calendar(ctx, catalog.SunsetCruise, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ catalog.ItemID, span *caldate.Range) (*catalog.Calendar, error) {
			assert.Equal(t, "20260301", span.StartString())
			assert.Equal(t, "20260330", span.EndString())
			return &catalog.Calendar{ItemID: catalog.SunsetCruise, Days: days}, nil
		})

	out, err := f.tools.Invoke(ctx, assistant.ToolCheckAvailability, "", args(t, map[string]any{
		"item_id":    int(catalog.SunsetCruise),
		"start_date": "20260301",
		"end_date":   "20260330",
	}))
	require.NoError(t, err)

	dates := out.Result["dates"].(map[string]any)
	assert.Len(t, dates, assistant.MaxCalendarEntries)
	assert.Contains(t, dates, "20260301")
	assert.Contains(t, dates, "20260314")
	assert.NotContains(t, dates, "20260315")
}

func TestTools_Cart(t *testing.T) {
	ctx := context.Background()
	view := &commands.CartView{
		SessionID: "sess-9",
		UnitCount: 1,
		Total:     "$300.00",
		Units: []commands.CartUnit{{
			Primary:   builder.NewLineItemBuilder().WithToken("slip-dive").Build(),
			LineTotal: "$300.00",
		}},
	}

	t.Run("addToSession uses the held session", func(t *testing.T) {
		f := newToolsFixture(t)
		f.sessions.EXPECT().AddTokens(ctx, "sess-1", []string{"slip-dive"}).Return(view, nil)

		out, err := f.tools.Invoke(ctx, assistant.ToolAddToSession, "sess-1", args(t, map[string]any{"slip": "slip-dive"}))
		require.NoError(t, err)
		assert.Equal(t, "sess-9", out.SessionID)
		units := out.Result["units"].([]map[string]any)
		require.Len(t, units, 1)
		assert.Equal(t, "slip-dive", units[0]["primary_token"])
	})

	t.Run("explicit session wins over the held one", func(t *testing.T) {
		f := newToolsFixture(t)
		f.sessions.EXPECT().Refresh(ctx, "sess-explicit").Return(view, nil)

		_, err := f.tools.Invoke(ctx, assistant.ToolViewCart, "sess-1", args(t, map[string]any{"session_id": "sess-explicit"}))
		require.NoError(t, err)
	})

	t.Run("removeFromCart passes the primary token", func(t *testing.T) {
		f := newToolsFixture(t)
		f.sessions.EXPECT().RemoveUnit(ctx, "sess-1", "slip-dive").
			Return(&commands.CartView{SessionID: "sess-1", Empty: true, Total: "$0.00"}, nil)

		out, err := f.tools.Invoke(ctx, assistant.ToolRemoveFromCart, "sess-1", args(t, map[string]any{"primary_token": "slip-dive"}))
		require.NoError(t, err)
		assert.Equal(t, true, out.Result["empty"])
	})

	t.Run("clearSession drops the session", func(t *testing.T) {
		f := newToolsFixture(t)
		f.sessions.EXPECT().Clear(ctx, "sess-1").Return(&commands.CartView{Empty: true, Expired: true}, nil)

		out, err := f.tools.Invoke(ctx, assistant.ToolClearSession, "sess-1", nil)
		require.NoError(t, err)
		assert.Empty(t, out.SessionID)
		assert.Equal(t, map[string]any{"success": true}, out.Result)
	})
}

func TestTools_CreateBooking(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{"customer_name": "Ana Diver", "customer_email": "ana@example.com"}
	fields := map[string]string{"customer_name": "Ana Diver", "customer_email": "ana@example.com"}

	t.Run("booking clears the session", func(t *testing.T) {
		f := newToolsFixture(t)
		f.bookings.EXPECT().Create(ctx, "sess-1", fields).Return(&commands.BookingResult{
			Confirmation: &booking.Confirmation{BookingID: "BK-1", CheckoutURL: "https://pay.test/BK-1", Status: "PEND"},
		}, nil)

		out, err := f.tools.Invoke(ctx, assistant.ToolCreateBooking, "sess-1", args(t, in))
		require.NoError(t, err)
		assert.Empty(t, out.SessionID)
		assert.Equal(t, "BK-1", out.Result["booking_id"])
		assert.Equal(t, "https://pay.test/BK-1", out.Result["invoice_url"])
	})

	t.Run("violations keep the session", func(t *testing.T) {
		f := newToolsFixture(t)
		f.bookings.EXPECT().Create(ctx, "sess-1", fields).Return(&commands.BookingResult{
			Violations: []booking.Violation{{Field: "customer_phone", Code: booking.CodeFieldRequired, Message: "Phone is required."}},
		}, nil)

		out, err := f.tools.Invoke(ctx, assistant.ToolCreateBooking, "sess-1", args(t, in))
		require.NoError(t, err)
		assert.Equal(t, "sess-1", out.SessionID)
		violations := out.Result["violations"].([]map[string]any)
		require.Len(t, violations, 1)
		assert.Equal(t, "customer_phone", violations[0]["field"])
	})
}

func TestTools_PrepareContactRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("request is stored for the operator", func(t *testing.T) {
		f := newToolsFixture(t)
		id := uuid.New()
		f.contacts.EXPECT().Submit(ctx, contact.Input{
			Source:         contact.SourceAssistant,
			Type:           contact.TypeOpenWaterCourse,
			Name:           "Ana Diver",
			Email:          "ana@example.com",
			Message:        "Wants to get certified.",
			PreferredDates: "March",
			GuestCount:     2,
		}).Return(id, nil)

		out, err := f.tools.Invoke(ctx, assistant.ToolPrepareContactRequest, "sess-1", args(t, map[string]any{
			"customer_name":   "Ana Diver",
			"customer_email":  "ana@example.com",
			"request_type":    "open_water_course",
			"preferred_dates": "March",
			"guest_count":     2,
			"details":         "Wants to get certified.",
		}))
		require.NoError(t, err)
		assert.Equal(t, id.String(), out.Result["request_id"])
		assert.Equal(t, "received", out.Result["status"])
		assert.Equal(t, catalog.OperatorWhatsApp, out.Result["whatsapp"])
		assert.Equal(t, "sess-1", out.SessionID)
	})

	t.Run("unknown request type", func(t *testing.T) {
		f := newToolsFixture(t)
		_, err := f.tools.Invoke(ctx, assistant.ToolPrepareContactRequest, "", args(t, map[string]any{
			"customer_name": "Ana", "customer_email": "ana@example.com", "request_type": "skydiving",
		}))
		assert.True(t, errs.Is(err, assistant.ErrInvalidArgs))
	})
}
