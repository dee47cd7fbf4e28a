package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/domain/contact"
	"saba-booking/internal/usecase/shared"
)

func toolSpecs(cat *catalog.Catalog) []shared.ToolSpec {
	sessionParam := shared.ToolParam{
		Name:        "session_id",
		Type:        shared.ParamString,
		Description: "Cart session to use; defaults to the caller's session",
	}
	itemParam := shared.ToolParam{Name: "item_id", Type: shared.ParamInteger, Description: "Item ID", Required: true}
	startParam := shared.ToolParam{Name: "start_date", Type: shared.ParamString, Description: "Start date, YYYYMMDD", Required: true}
	endParam := shared.ToolParam{Name: "end_date", Type: shared.ParamString, Description: "End date, YYYYMMDD, inclusive", Required: true}

	requestTypes := make([]string, 0, len(contact.RequestTypes))
	for _, t := range contact.RequestTypes {
		requestTypes = append(requestTypes, string(t))
	}

	return []shared.ToolSpec{
		{
			Name:        ToolSearchItems,
			Description: "List bookable items with their booking params and availability label.",
			Params: []shared.ToolParam{
				{Name: "category_id", Type: shared.ParamInteger, Description: "Only items of this category"},
				{Name: "item_id", Type: shared.ParamInteger, Description: "Only this item"},
				{Name: "keyword", Type: shared.ParamString, Description: "Free text filter"},
			},
		},
		{
			Name:        ToolRateItem,
			Description: "Price an item for dates and guest counts. Returns a slip token to add to the cart. " + itemHints(cat),
			Params: []shared.ToolParam{
				itemParam, startParam, endParam,
				{
					Name:        "guests",
					Type:        shared.ParamObject,
					Description: "Guest counts by param key",
					Required:    true,
					Properties:  guestProperties(cat),
				},
			},
		},
		{
			Name:        ToolCheckAvailability,
			Description: "Stock per date for an item, at most " + strconv.Itoa(MaxCalendarEntries) + " dates. 0 means sold out.",
			Params:      []shared.ToolParam{itemParam, startParam, endParam},
		},
		{
			Name:        ToolAddToSession,
			Description: "Add a rated item to the cart using the slip from rateItem.",
			Params: []shared.ToolParam{
				{Name: "slip", Type: shared.ParamString, Description: "Slip token from rateItem", Required: true},
				sessionParam,
			},
		},
		{
			Name:        ToolViewCart,
			Description: "Show the cart grouped into activities with their add-ons.",
			Params:      []shared.ToolParam{sessionParam},
		},
		{
			Name:        ToolRemoveFromCart,
			Description: "Remove an activity and its add-ons from the cart.",
			Params: []shared.ToolParam{
				{Name: "primary_token", Type: shared.ParamString, Description: "primary_token of the unit from viewCart", Required: true},
				sessionParam,
			},
		},
		{
			Name:        ToolCreateBooking,
			Description: "Book the cart and return the checkout URL for payment.",
			Params: []shared.ToolParam{
				sessionParam,
				{Name: "customer_name", Type: shared.ParamString, Description: "Customer full name", Required: true},
				{Name: "customer_email", Type: shared.ParamString, Description: "Customer email", Required: true},
				{Name: "customer_phone", Type: shared.ParamString, Description: "Customer phone"},
			},
		},
		{
			Name:        ToolClearSession,
			Description: "Empty the cart.",
			Params:      []shared.ToolParam{sessionParam},
		},
		{
			Name:        ToolPrepareContactRequest,
			Description: "Record a request that cannot be booked online so the operator can follow up.",
			Params: []shared.ToolParam{
				{Name: "customer_name", Type: shared.ParamString, Description: "Customer full name", Required: true},
				{Name: "customer_email", Type: shared.ParamString, Description: "Customer email", Required: true},
				{Name: "customer_phone", Type: shared.ParamString, Description: "Phone or WhatsApp number"},
				{Name: "request_type", Type: shared.ParamString, Description: "Type of request", Required: true, Enum: requestTypes},
				{Name: "preferred_dates", Type: shared.ParamString, Description: "Preferred dates"},
				{Name: "guest_count", Type: shared.ParamInteger, Description: "Number of guests"},
				{Name: "details", Type: shared.ParamString, Description: "What the customer is looking for", Required: true},
			},
		},
	}
}

// itemHints names each catalog item with its id and param keys.
func itemHints(cat *catalog.Catalog) string {
	var sb strings.Builder
	for _, id := range cat.IDs() {
		e, _ := cat.Entry(id)
		fmt.Fprintf(&sb, "%s (ID %d):", e.Name, e.ID)
		for i, p := range e.Params {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" " + p.Key)
			if p.Local {
				sb.WriteString(" (local rate, separate line)")
			}
		}
		if e.MinTotalGuests > 0 {
			fmt.Fprintf(&sb, ", min %d guests", e.MinTotalGuests)
		}
		sb.WriteString(". ")
	}
	return strings.TrimSpace(sb.String())
}
