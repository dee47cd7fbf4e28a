package reservation

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// The reservation API is PHP-backed: numbers arrive as strings, flags as
// 0/1 or booleans, and empty objects as []. The flex types absorb that.

type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	switch s {
	case "", "null", "false":
		*f = 0
		return nil
	case "true":
		*f = 1
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil //nolint:nilerr // non-numeric values count as zero
	}
	*f = flexInt(n)
	return nil
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil //nolint:nilerr // non-numeric values count as zero
	}
	*f = flexFloat(n)
	return nil
}

type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(string(b))
	return nil
}

// flexMap decodes an object into a map and an empty array into an empty map.
type flexMap[V any] map[string]V

func (f *flexMap[V]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		*f = flexMap[V]{}
		return nil
	}
	m := map[string]V{}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*f = m
	return nil
}

// sortedKeys orders map keys numerically when they are numbers, then lexically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

type categoriesResponse struct {
	Category flexMap[wireCategory] `json:"category"`
}

type wireCategory struct {
	CategoryID  flexInt    `json:"category_id"`
	Name        flexString `json:"name"`
	Description flexString `json:"description"`
	Pos         flexInt    `json:"pos"`
	Qty         flexInt    `json:"qty"`
}

type wireParam struct {
	Lbl   flexString `json:"lbl"`
	Price flexFloat  `json:"price"`
	Req   flexInt    `json:"req"`
	Hide  flexInt    `json:"hide"`
	Lock  flexInt    `json:"lock"`
	Range flexInt    `json:"range"`
	Def   flexInt    `json:"def"`
	Min   flexInt    `json:"MIN"`
	Max   flexInt    `json:"MAX"`
}

type wireImage struct {
	URL flexString `json:"url"`
	Src flexString `json:"src"`
}

type wireRate struct {
	Status    flexString `json:"status"`
	Available flexInt    `json:"available"`
	Slip      flexString `json:"slip"`
	SubTotal  flexString `json:"sub_total"`
	StartDate flexString `json:"start_date"`
	EndDate   flexString `json:"end_date"`
	Summary   struct {
		Title flexString `json:"title"`
		Price struct {
			Total flexString `json:"total"`
		} `json:"price"`
	} `json:"summary"`
}

type wireItem struct {
	ItemID     flexInt            `json:"item_id"`
	SKU        flexString         `json:"sku"`
	Name       flexString         `json:"name"`
	Summary    flexString         `json:"summary"`
	CategoryID flexInt            `json:"category_id"`
	Stock      flexInt            `json:"stock"`
	Unlimited  flexInt            `json:"unlimited"`
	Image      flexMap[wireImage] `json:"image"`
	Param      flexMap[wireParam] `json:"param"`
	Rate       *wireRate          `json:"rate"`
}

type itemsResponse struct {
	Items flexMap[wireItem] `json:"items"`
}

type itemResponse struct {
	Item *wireItem `json:"item"`
}

type calendarResponse struct {
	Item struct {
		ItemID flexInt                  `json:"item_id"`
		Cal    flexMap[json.RawMessage] `json:"cal"`
	} `json:"item"`
}

type wireSessionItem struct {
	ItemID    flexInt    `json:"item_id"`
	SKU       flexString `json:"sku"`
	Name      flexString `json:"name"`
	Slip      flexString `json:"slip"`
	Available flexInt    `json:"available"`
	Rate      struct {
		Total flexString `json:"total"`
	} `json:"rate"`
	Date *struct {
		Summary   flexString `json:"summary"`
		StartDate flexString `json:"start_date"`
		EndDate   flexString `json:"end_date"`
	} `json:"date"`
}

type sessionResponse struct {
	Booking struct {
		Session *struct {
			ID       flexString               `json:"id"`
			Total    flexString               `json:"total"`
			SubTotal flexString               `json:"sub_total"`
			TaxTotal flexString               `json:"tax_total"`
			DateDesc flexString               `json:"date_desc"`
			Item     flexMap[wireSessionItem] `json:"item"`
		} `json:"session"`
	} `json:"booking"`
}

type wireFormField struct {
	Value  flexString `json:"value"`
	Define struct {
		Required flexInt `json:"required"`
		Position flexInt `json:"position"`
		Archived flexInt `json:"archived"`
		Layout   struct {
			Lbl         flexString          `json:"lbl"`
			Type        flexString          `json:"type"`
			StartHidden flexInt             `json:"start_hidden"`
			Options     flexMap[flexString] `json:"options"`
			Customer    *struct {
				Form     flexInt `json:"form"`
				Required flexInt `json:"required"`
			} `json:"customer"`
		} `json:"layout"`
	} `json:"define"`
}

type bookingFormResponse struct {
	BookingFormUI flexMap[wireFormField] `json:"booking_form_ui"`
	BookingPolicy *struct {
		Body     flexString `json:"body"`
		Required flexInt    `json:"required"`
	} `json:"booking_policy"`
}

type bookingCreateResponse struct {
	Booking *struct {
		BookingID  flexString `json:"booking_id"`
		InvoiceURL flexString `json:"invoice_url"`
		Status     flexString `json:"status"`
	} `json:"booking"`
}
