package reservation

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/cart"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/caldate"
)

func (c *Client) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/category", nil, nil, &resp); err != nil {
		return nil, err
	}
	return toCategories(resp), nil
}

func (c *Client) ListItems(ctx context.Context, q catalog.ItemQuery) ([]catalog.Item, error) {
	var resp itemsResponse
	if err := c.do(ctx, http.MethodGet, "/item", itemQueryValues(q), nil, &resp); err != nil {
		return nil, err
	}
	items := make([]catalog.Item, 0, len(resp.Items))
	for _, k := range sortedKeys(resp.Items) {
		items = append(items, toItem(resp.Items[k]))
	}
	return items, nil
}

// GetItem returns one item, rated when q carries dates and quantities.
func (c *Client) GetItem(ctx context.Context, id catalog.ItemID, q *catalog.ItemQuery) (*catalog.Item, error) {
	var query url.Values
	if q != nil {
		query = itemQueryValues(*q)
	}
	var resp itemResponse
	if err := c.do(ctx, http.MethodGet, "/item/"+strconv.Itoa(int(id)), query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Item == nil || resp.Item.ItemID == 0 {
		return nil, infra.WrapErr(c.logger, infra.KindNotFound, "item "+strconv.Itoa(int(id)), nil)
	}
	item := toItem(*resp.Item)
	return &item, nil
}

func (c *Client) GetCalendar(ctx context.Context, id catalog.ItemID, span caldate.Range) (*catalog.Calendar, error) {
	query := url.Values{}
	query.Set("start_date", span.StartString())
	query.Set("end_date", span.EndString())
	var resp calendarResponse
	if err := c.do(ctx, http.MethodGet, "/item/"+strconv.Itoa(int(id))+"/cal", query, nil, &resp); err != nil {
		return nil, err
	}
	return toCalendar(id, resp), nil
}

// CreateOrExtendSession adds rated lines to sessionID, or opens a new
// session when sessionID is empty. All tokens go in one request.
func (c *Client) CreateOrExtendSession(ctx context.Context, tokens []string, sessionID string) (*cart.Snapshot, error) {
	form := url.Values{}
	for _, t := range tokens {
		form.Add("slip[]", t)
	}
	if sessionID != "" {
		form.Set("session_id", sessionID)
	}
	return c.postSession(ctx, form)
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*cart.Snapshot, error) {
	query := url.Values{}
	query.Set("session_id", sessionID)
	var resp sessionResponse
	if err := c.do(ctx, http.MethodGet, "/booking/session", query, nil, &resp); err != nil {
		return nil, err
	}
	return c.toSnapshot(resp, sessionID)
}

// AlterSession sets line quantities by token; zero removes the line.
func (c *Client) AlterSession(ctx context.Context, sessionID string, alter map[string]int) (*cart.Snapshot, error) {
	form := url.Values{}
	form.Set("session_id", sessionID)
	for token, qty := range alter {
		form.Set("alter["+token+"]", strconv.Itoa(qty))
	}
	return c.postSession(ctx, form)
}

func (c *Client) ClearSession(ctx context.Context, sessionID string) error {
	form := url.Values{}
	form.Set("session_id", sessionID)
	return c.do(ctx, http.MethodPost, "/booking/session/clear", nil, form, nil)
}

func (c *Client) GetBookingForm(ctx context.Context) (*booking.FormSchema, error) {
	var resp bookingFormResponse
	if err := c.do(ctx, http.MethodGet, "/booking/form", nil, nil, &resp); err != nil {
		return nil, err
	}
	return toFormSchema(resp), nil
}

func (c *Client) CreateBooking(ctx context.Context, sessionID string, fields map[string]string) (*booking.Confirmation, error) {
	form := url.Values{}
	form.Set("session_id", sessionID)
	for k, v := range fields {
		form.Set("form["+k+"]", v)
	}
	var resp bookingCreateResponse
	if err := c.do(ctx, http.MethodPost, "/booking/create", nil, form, &resp); err != nil {
		return nil, err
	}
	if resp.Booking == nil || resp.Booking.BookingID == "" {
		return nil, infra.WrapErr(c.logger, infra.KindDecode, "booking create returned no booking", nil)
	}
	return &booking.Confirmation{
		BookingID:   string(resp.Booking.BookingID),
		CheckoutURL: string(resp.Booking.InvoiceURL),
		Status:      string(resp.Booking.Status),
	}, nil
}

func (c *Client) postSession(ctx context.Context, form url.Values) (*cart.Snapshot, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/booking/session", nil, form, &resp); err != nil {
		return nil, err
	}
	return c.toSnapshot(resp, form.Get("session_id"))
}

func itemQueryValues(q catalog.ItemQuery) url.Values {
	v := url.Values{}
	if q.CategoryID != 0 {
		v.Set("category_id", strconv.Itoa(q.CategoryID))
	}
	if len(q.ItemIDs) > 0 {
		ids := make([]string, len(q.ItemIDs))
		for i, id := range q.ItemIDs {
			ids[i] = strconv.Itoa(int(id))
		}
		v.Set("item_id", strings.Join(ids, ","))
	}
	if q.Keyword != "" {
		v.Set("keyword", q.Keyword)
	}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	for k, n := range q.Params {
		v.Set("param["+k+"]", strconv.Itoa(n))
	}
	return v
}

func toCategories(resp categoriesResponse) []catalog.Category {
	out := make([]catalog.Category, 0, len(resp.Category))
	for _, k := range sortedKeys(resp.Category) {
		w := resp.Category[k]
		out = append(out, catalog.Category{
			ID:          int(w.CategoryID),
			Name:        string(w.Name),
			Description: string(w.Description),
			ItemCount:   int(w.Qty),
			Position:    int(w.Pos),
		})
	}
	return out
}

func toItem(w wireItem) catalog.Item {
	item := catalog.Item{
		ID:         catalog.ItemID(w.ItemID),
		SKU:        string(w.SKU),
		Name:       string(w.Name),
		Summary:    string(w.Summary),
		CategoryID: int(w.CategoryID),
		Stock:      int(w.Stock),
		Unlimited:  w.Unlimited != 0,
	}
	for _, k := range sortedKeys(w.Image) {
		img := w.Image[k]
		if img.URL != "" {
			item.ImageURL = string(img.URL)
			break
		}
	}
	for _, k := range sortedKeys(w.Param) {
		p := w.Param[k]
		item.Params = append(item.Params, catalog.BookingParam{
			Key:      k,
			Label:    string(p.Lbl),
			Price:    float64(p.Price),
			Required: p.Req != 0,
			Hidden:   p.Hide != 0,
			Locked:   p.Lock != 0,
			Ranged:   p.Range != 0,
			Min:      int(p.Min),
			Max:      int(p.Max),
			Default:  int(p.Def),
		})
	}
	if w.Rate != nil {
		item.Rate = &catalog.Rate{
			Status:    strings.ToUpper(string(w.Rate.Status)),
			Available: int(w.Rate.Available),
			Token:     string(w.Rate.Slip),
			Total:     string(w.Rate.Summary.Price.Total),
			SubTotal:  string(w.Rate.SubTotal),
			Title:     string(w.Rate.Summary.Title),
			StartDate: string(w.Rate.StartDate),
			EndDate:   string(w.Rate.EndDate),
		}
	}
	return item
}

// toCalendar keeps only YYYYMMDD keys with numeric stock; the API mixes
// metadata keys into the same map.
func toCalendar(id catalog.ItemID, resp calendarResponse) *catalog.Calendar {
	cal := &catalog.Calendar{ItemID: id}
	for _, k := range sortedKeys(resp.Item.Cal) {
		if !caldate.IsCompact(k) {
			continue
		}
		raw := strings.Trim(string(resp.Item.Cal[k]), `"`)
		stock, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		cal.Days = append(cal.Days, catalog.CalendarDay{Date: k, Stock: stock})
	}
	return cal
}

func (c *Client) toSnapshot(resp sessionResponse, requestedID string) (*cart.Snapshot, error) {
	s := resp.Booking.Session
	if s == nil || s.ID == "" {
		return nil, infra.WrapErr(c.logger, infra.KindNotFound, "session "+requestedID, nil)
	}
	snap := &cart.Snapshot{
		SessionID: string(s.ID),
		Total:     string(s.Total),
		SubTotal:  string(s.SubTotal),
		TaxTotal:  string(s.TaxTotal),
		DateDesc:  string(s.DateDesc),
	}
	for _, k := range sortedKeys(s.Item) {
		w := s.Item[k]
		line := cart.LineItem{
			Key:       k,
			ItemID:    catalog.ItemID(w.ItemID),
			SKU:       string(w.SKU),
			Name:      string(w.Name),
			Total:     string(w.Rate.Total),
			Token:     string(w.Slip),
			Available: int(w.Available),
		}
		if w.Date != nil {
			line.DateSummary = string(w.Date.Summary)
			line.StartDate = string(w.Date.StartDate)
			line.EndDate = string(w.Date.EndDate)
		}
		snap.Items = append(snap.Items, line)
	}
	return snap, nil
}

// toFormSchema keeps fields a customer fills in: not archived, not hidden on
// load and shown on the customer form.
func toFormSchema(resp bookingFormResponse) *booking.FormSchema {
	schema := &booking.FormSchema{}
	for _, id := range sortedKeys(resp.BookingFormUI) {
		f := resp.BookingFormUI[id]
		d := f.Define
		if d.Archived != 0 || d.Layout.StartHidden != 0 {
			continue
		}
		if d.Layout.Customer == nil || d.Layout.Customer.Form != 1 {
			continue
		}
		field := booking.FormField{
			ID:       id,
			Label:    string(d.Layout.Lbl),
			Type:     string(d.Layout.Type),
			Required: d.Required != 0 || d.Layout.Customer.Required != 0,
			Position: int(d.Position),
		}
		if len(d.Layout.Options) > 0 {
			field.Options = make(map[string]string, len(d.Layout.Options))
			for k, v := range d.Layout.Options {
				field.Options[k] = string(v)
			}
		}
		schema.Fields = append(schema.Fields, field)
	}
	sort.SliceStable(schema.Fields, func(i, j int) bool {
		return schema.Fields[i].Position < schema.Fields[j].Position
	})
	if p := resp.BookingPolicy; p != nil {
		schema.PolicyBody = string(p.Body)
		schema.PolicyRequired = p.Required != 0
	}
	return schema
}
