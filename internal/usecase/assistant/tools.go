package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"saba-booking/internal/domain/cart"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/commands"
	"saba-booking/internal/usecase/queries"
	"saba-booking/internal/usecase/shared"
)

const (
	ToolSearchItems           = "searchItems"
	ToolRateItem              = "rateItem"
	ToolCheckAvailability     = "checkAvailability"
	ToolAddToSession          = "addToSession"
	ToolViewCart              = "viewCart"
	ToolRemoveFromCart        = "removeFromCart"
	ToolCreateBooking         = "createBooking"
	ToolClearSession          = "clearSession"
	ToolPrepareContactRequest = "prepareContactRequest"

	// MaxCalendarEntries caps the dated entries checkAvailability returns.
	MaxCalendarEntries = 14
)

var (
	ErrUnknownTool = errs.New("unknown assistant tool")
	ErrInvalidArgs = errs.New("invalid tool arguments")
)

// Outcome is the result of one tool call. SessionID is the session the
// caller holds afterwards; empty when the call cleared or expired it.
type Outcome struct {
	Result    map[string]any
	SessionID string
}

// Tools runs assistant tool calls against the same catalog, session and
// booking operations the guided flow uses.
type Tools interface {
	Specs() []shared.ToolSpec
	Invoke(ctx context.Context, name, sessionID string, args json.RawMessage) (*Outcome, error)
}

type toolsImpl struct {
	catalog  queries.CatalogQueries
	sessions commands.SessionSync
	bookings commands.BookingCommands
	contacts commands.ContactCommands
	entries  *catalog.Catalog
	logger   *slog.Logger
	specs    []shared.ToolSpec
}

func NewTools(
	catalogQueries queries.CatalogQueries,
	sessions commands.SessionSync,
	bookings commands.BookingCommands,
	contacts commands.ContactCommands,
	cat *catalog.Catalog,
	logger *slog.Logger,
) Tools {
	return &toolsImpl{
		catalog:  catalogQueries,
		sessions: sessions,
		bookings: bookings,
		contacts: contacts,
		entries:  cat,
		logger:   logger,
		specs:    toolSpecs(cat),
	}
}

func (t *toolsImpl) Specs() []shared.ToolSpec {
	return t.specs
}

// Invoke decodes args for the named tool and runs it. An explicit session_id
// argument wins over the caller's session.
func (t *toolsImpl) Invoke(ctx context.Context, name, sessionID string, args json.RawMessage) (*Outcome, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	switch name {
	case ToolSearchItems:
		var in searchItemsArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.searchItems(ctx, sessionID, in)
	case ToolRateItem:
		var in rateItemArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.rateItem(ctx, sessionID, in)
	case ToolCheckAvailability:
		var in checkAvailabilityArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.checkAvailability(ctx, sessionID, in)
	case ToolAddToSession:
		var in addToSessionArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.addToSession(ctx, pickSession(in.SessionID, sessionID), in)
	case ToolViewCart:
		var in sessionArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		view, err := t.sessions.Refresh(ctx, pickSession(in.SessionID, sessionID))
		if err != nil {
			return nil, err
		}
		return cartOutcome(view), nil
	case ToolRemoveFromCart:
		var in removeFromCartArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		view, err := t.sessions.RemoveUnit(ctx, pickSession(in.SessionID, sessionID), in.PrimaryToken)
		if err != nil {
			return nil, err
		}
		return cartOutcome(view), nil
	case ToolCreateBooking:
		var in createBookingArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.createBooking(ctx, pickSession(in.SessionID, sessionID), in)
	case ToolClearSession:
		var in sessionArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		if _, err := t.sessions.Clear(ctx, pickSession(in.SessionID, sessionID)); err != nil {
			return nil, err
		}
		return &Outcome{Result: map[string]any{"success": true}}, nil
	case ToolPrepareContactRequest:
		var in contactRequestArgs
		if err := decodeArgs(args, &in); err != nil {
			return nil, err
		}
		return t.prepareContactRequest(ctx, sessionID, in)
	default:
		return nil, errs.Wrapf(ErrUnknownTool, "%q", name)
	}
}

type searchItemsArgs struct {
	CategoryID int    `json:"category_id"`
	ItemID     int    `json:"item_id"`
	Keyword    string `json:"keyword"`
}

type rateItemArgs struct {
	ItemID    int            `json:"item_id"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Guests    map[string]int `json:"guests"`
}

type checkAvailabilityArgs struct {
	ItemID    int    `json:"item_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type addToSessionArgs struct {
	Slip      string `json:"slip"`
	SessionID string `json:"session_id"`
}

type sessionArgs struct {
	SessionID string `json:"session_id"`
}

type removeFromCartArgs struct {
	PrimaryToken string `json:"primary_token"`
	SessionID    string `json:"session_id"`
}

type createBookingArgs struct {
	SessionID     string `json:"session_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type contactRequestArgs struct {
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	RequestType    string `json:"request_type"`
	PreferredDates string `json:"preferred_dates"`
	GuestCount     int    `json:"guest_count"`
	Details        string `json:"details"`
}

func (t *toolsImpl) searchItems(ctx context.Context, sessionID string, in searchItemsArgs) (*Outcome, error) {
	q := catalog.ItemQuery{CategoryID: in.CategoryID, Keyword: in.Keyword}
	if in.ItemID > 0 {
		q.ItemIDs = []catalog.ItemID{catalog.ItemID(in.ItemID)}
	}
	items, err := t.catalog.Items(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		params := make([]map[string]any, 0, len(it.Params))
		for _, p := range it.VisibleParams() {
			params = append(params, map[string]any{
				"key":      p.Key,
				"label":    p.Label,
				"price":    p.Price,
				"required": p.Required,
				"default":  p.DefaultQuantity(),
			})
		}
		out = append(out, map[string]any{
			"item_id":      int(it.ID),
			"name":         it.Name,
			"summary":      it.Summary,
			"category_id":  it.CategoryID,
			"availability": it.AvailabilityLabel(),
			"params":       params,
		})
	}
	return &Outcome{Result: map[string]any{"items": out}, SessionID: sessionID}, nil
}

func (t *toolsImpl) rateItem(ctx context.Context, sessionID string, in rateItemArgs) (*Outcome, error) {
	if in.ItemID <= 0 {
		return nil, errs.Wrap(ErrInvalidArgs, "item_id is required")
	}
	dates, err := caldate.ParseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidArgs)
	}
	if len(in.Guests) == 0 {
		return nil, errs.Wrap(ErrInvalidArgs, "guests are required")
	}
	if entry, ok := t.entries.Entry(catalog.ItemID(in.ItemID)); ok {
		if err := entry.ValidateQuantities(in.Guests); err != nil {
			return nil, errs.Mark(err, ErrInvalidArgs)
		}
	}

	id := catalog.ItemID(in.ItemID)
	item, err := t.catalog.Item(ctx, id, &catalog.ItemQuery{
		ItemIDs:   []catalog.ItemID{id},
		StartDate: dates.StartString(),
		EndDate:   dates.EndString(),
		Params:    in.Guests,
	})
	if err != nil {
		return nil, err
	}

	result := map[string]any{
		"item_id": int(item.ID),
		"name":    item.Name,
		"status":  catalog.RateUnavailable,
	}
	if item.Rate != nil {
		result["status"] = item.Rate.Status
		result["available"] = item.Rate.Available
		result["price"] = item.Rate.Total
		result["slip"] = item.Rate.Token
	}
	return &Outcome{Result: result, SessionID: sessionID}, nil
}

func (t *toolsImpl) checkAvailability(ctx context.Context, sessionID string, in checkAvailabilityArgs) (*Outcome, error) {
	if in.ItemID <= 0 {
		return nil, errs.Wrap(ErrInvalidArgs, "item_id is required")
	}
	span, err := caldate.ParseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidArgs)
	}
	cal, err := t.catalog.Calendar(ctx, catalog.ItemID(in.ItemID), &span)
	if err != nil {
		return nil, err
	}

	dates := make(map[string]any, MaxCalendarEntries)
	for _, d := range cal.Head(MaxCalendarEntries) {
		dates[d.Date] = d.Stock
	}
	return &Outcome{
		Result:    map[string]any{"item_id": int(cal.ItemID), "dates": dates},
		SessionID: sessionID,
	}, nil
}

func (t *toolsImpl) addToSession(ctx context.Context, sessionID string, in addToSessionArgs) (*Outcome, error) {
	if in.Slip == "" {
		return nil, errs.Wrap(ErrInvalidArgs, "slip is required")
	}
	view, err := t.sessions.AddTokens(ctx, sessionID, []string{in.Slip})
	if err != nil {
		return nil, err
	}
	return cartOutcome(view), nil
}

func (t *toolsImpl) createBooking(ctx context.Context, sessionID string, in createBookingArgs) (*Outcome, error) {
	fields := map[string]string{
		"customer_name":  in.CustomerName,
		"customer_email": in.CustomerEmail,
	}
	if in.CustomerPhone != "" {
		fields["customer_phone"] = in.CustomerPhone
	}

	res, err := t.bookings.Create(ctx, sessionID, fields)
	if err != nil {
		return nil, err
	}
	if len(res.Violations) > 0 {
		violations := make([]map[string]any, 0, len(res.Violations))
		for _, v := range res.Violations {
			violations = append(violations, map[string]any{
				"field":   v.Field,
				"code":    string(v.Code),
				"message": v.Message,
			})
		}
		return &Outcome{Result: map[string]any{"violations": violations}, SessionID: sessionID}, nil
	}

	t.logger.Info("assistant created booking", "booking_id", res.Confirmation.BookingID)
	return &Outcome{Result: map[string]any{
		"booking_id":  res.Confirmation.BookingID,
		"invoice_url": res.Confirmation.CheckoutURL,
		"status":      res.Confirmation.Status,
	}}, nil
}

func (t *toolsImpl) prepareContactRequest(ctx context.Context, sessionID string, in contactRequestArgs) (*Outcome, error) {
	reqType, err := contact.ParseRequestType(in.RequestType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidArgs)
	}
	id, err := t.contacts.Submit(ctx, contact.Input{
		Source:         contact.SourceAssistant,
		Type:           reqType,
		Name:           in.CustomerName,
		Email:          in.CustomerEmail,
		Phone:          in.CustomerPhone,
		Message:        in.Details,
		PreferredDates: in.PreferredDates,
		GuestCount:     in.GuestCount,
	})
	if err != nil {
		return nil, err
	}
	return &Outcome{Result: map[string]any{
		"request_id":   id.String(),
		"request_type": string(reqType),
		"status":       "received",
		"whatsapp":     catalog.OperatorWhatsApp,
	}, SessionID: sessionID}, nil
}

// cartOutcome exposes the reconciled cart; the session is dropped from the
// outcome when the reservation API no longer knows it.
func cartOutcome(view *commands.CartView) *Outcome {
	units := make([]map[string]any, 0, len(view.Units))
	for _, u := range view.Units {
		addOns := make([]map[string]any, 0, len(u.AddOns))
		for _, a := range u.AddOns {
			addOns = append(addOns, lineResult(a))
		}
		unit := lineResult(u.Primary)
		unit["primary_token"] = u.Primary.Token
		unit["add_ons"] = addOns
		unit["line_total"] = u.LineTotal
		units = append(units, unit)
	}
	unassigned := make([]map[string]any, 0, len(view.Unassigned))
	for _, l := range view.Unassigned {
		unassigned = append(unassigned, lineResult(l))
	}

	result := map[string]any{
		"session_id": view.SessionID,
		"expired":    view.Expired,
		"empty":      view.Empty,
		"unit_count": view.UnitCount,
		"total":      view.Total,
		"units":      units,
		"unassigned": unassigned,
	}
	if view.ExpiresAt != nil {
		result["expires_at"] = view.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z")
	}
	return &Outcome{Result: result, SessionID: view.SessionID}
}

func lineResult(l cart.LineItem) map[string]any {
	return map[string]any{
		"item_id":    int(l.ItemID),
		"name":       l.Name,
		"start_date": l.StartDate,
		"end_date":   l.EndDate,
		"dates":      l.DateSummary,
		"total":      l.Total,
	}
}

func pickSession(explicit, held string) string {
	if explicit != "" {
		return explicit
	}
	return held
}

func decodeArgs(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return errs.Mark(errs.Wrap(err, "decode tool arguments"), ErrInvalidArgs)
	}
	return nil
}

// guestProperties lists every booking parameter key of the catalog.
func guestProperties(cat *catalog.Catalog) []shared.ToolParam {
	seen := map[string]string{}
	for _, id := range cat.IDs() {
		e, _ := cat.Entry(id)
		for _, p := range e.Params {
			if _, ok := seen[p.Key]; !ok {
				seen[p.Key] = p.Label
			}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make([]shared.ToolParam, 0, len(keys))
	for _, k := range keys {
		props = append(props, shared.ToolParam{Name: k, Type: shared.ParamInteger, Description: seen[k]})
	}
	return props
}
