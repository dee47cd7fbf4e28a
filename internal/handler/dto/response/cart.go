package response

import (
	"time"

	"saba-booking/internal/domain/cart"
	"saba-booking/internal/usecase/commands"
)

type LineResponse struct {
	ItemID    int    `json:"item_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Dates     string `json:"dates"`
	Total     string `json:"total"`
}

type UnitResponse struct {
	LineResponse
	PrimaryToken string         `json:"primary_token"`
	AddOns       []LineResponse `json:"add_ons"`
	LineTotal    string         `json:"line_total"`
}

type CartResponse struct {
	Empty      bool           `json:"empty"`
	Expired    bool           `json:"expired"`
	UnitCount  int            `json:"unit_count"`
	Total      string         `json:"total"`
	SubTotal   string         `json:"sub_total,omitempty"`
	TaxTotal   string         `json:"tax_total,omitempty"`
	Units      []UnitResponse `json:"units"`
	Unassigned []LineResponse `json:"unassigned"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
}

func FromCartView(v *commands.CartView) *CartResponse {
	if v == nil {
		return nil
	}
	res := &CartResponse{
		Empty:      v.Empty,
		Expired:    v.Expired,
		UnitCount:  v.UnitCount,
		Total:      v.Total,
		SubTotal:   v.SubTotal,
		TaxTotal:   v.TaxTotal,
		Units:      make([]UnitResponse, 0, len(v.Units)),
		Unassigned: fromLines(v.Unassigned),
		ExpiresAt:  v.ExpiresAt,
	}
	for _, u := range v.Units {
		res.Units = append(res.Units, UnitResponse{
			LineResponse: fromLine(u.Primary),
			PrimaryToken: u.Primary.Token,
			AddOns:       fromLines(u.AddOns),
			LineTotal:    u.LineTotal,
		})
	}
	return res
}

func fromLine(l cart.LineItem) LineResponse {
	return LineResponse{
		ItemID:    int(l.ItemID),
		SKU:       l.SKU,
		Name:      l.Name,
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		Dates:     l.DateSummary,
		Total:     l.Total,
	}
}

func fromLines(ls []cart.LineItem) []LineResponse {
	out := make([]LineResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, fromLine(l))
	}
	return out
}

type ShareResponse struct {
	URL       string    `json:"url"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
