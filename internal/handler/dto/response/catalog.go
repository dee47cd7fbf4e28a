package response

import (
	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

type CategoryResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ItemCount   int    `json:"item_count"`
}

func FromCategories(cats []catalog.Category) ([]CategoryResponse, error) {
	out := make([]CategoryResponse, 0, len(cats))
	if err := copier.Copy(&out, cats); err != nil {
		return nil, err
	}
	return out, nil
}

type ParamResponse struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Price    float64 `json:"price"`
	Required bool    `json:"required"`
	Min      int     `json:"min,omitempty"`
	Max      int     `json:"max,omitempty"`
	Default  int     `json:"default"`
}

type RateResponse struct {
	Status    string `json:"status"`
	Available int    `json:"available"`
	Slip      string `json:"slip,omitempty"`
	Total     string `json:"total"`
	SubTotal  string `json:"sub_total,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ItemResponse struct {
	ID           int             `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Summary      string          `json:"summary"`
	CategoryID   int             `json:"category_id"`
	ImageURL     string          `json:"image_url,omitempty"`
	Availability string          `json:"availability"`
	Params       []ParamResponse `json:"params"`
	Rate         *RateResponse   `json:"rate,omitempty"`
}

func FromItem(it catalog.Item) ItemResponse {
	res := ItemResponse{
		ID:           int(it.ID),
		SKU:          it.SKU,
		Name:         it.Name,
		Summary:      it.Summary,
		CategoryID:   it.CategoryID,
		ImageURL:     it.ImageURL,
		Availability: it.AvailabilityLabel(),
		Params:       make([]ParamResponse, 0, len(it.Params)),
	}
	for _, p := range it.VisibleParams() {
		res.Params = append(res.Params, ParamResponse{
			Key:      p.Key,
			Label:    p.Label,
			Price:    p.Price,
			Required: p.Required,
			Min:      p.Min,
			Max:      p.Max,
			Default:  p.DefaultQuantity(),
		})
	}
	if it.Rate != nil {
		res.Rate = &RateResponse{
			Status:    it.Rate.Status,
			Available: it.Rate.Available,
			Slip:      it.Rate.Token,
			Total:     it.Rate.Total,
			SubTotal:  it.Rate.SubTotal,
			StartDate: it.Rate.StartDate,
			EndDate:   it.Rate.EndDate,
		}
	}
	return res
}

func FromItems(items []catalog.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromItem(it))
	}
	return out
}

type CalendarDayResponse struct {
	Date         string `json:"date"`
	Stock        int    `json:"stock"`
	Availability string `json:"availability"`
}

type CalendarResponse struct {
	ItemID int                   `json:"item_id"`
	Days   []CalendarDayResponse `json:"days"`
}

func FromCalendar(cal *catalog.Calendar) CalendarResponse {
	res := CalendarResponse{ItemID: int(cal.ItemID), Days: make([]CalendarDayResponse, 0, len(cal.Days))}
	for _, d := range cal.Head(-1) {
		res.Days = append(res.Days, CalendarDayResponse{
			Date:         d.Date,
			Stock:        d.Stock,
			Availability: catalog.AvailabilityLabel(d.Stock, false),
		})
	}
	return res
}

type FormFieldResponse struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Type     string            `json:"type"`
	Required bool              `json:"required"`
	Options  map[string]string `json:"options,omitempty"`
}

type FormResponse struct {
	Fields         []FormFieldResponse `json:"fields"`
	PolicyBody     string              `json:"policy_body,omitempty"`
	PolicyRequired bool                `json:"policy_required"`
}

func FromForm(f *booking.FormSchema) (*FormResponse, error) {
	if f == nil {
		return nil, nil
	}
	res := &FormResponse{Fields: make([]FormFieldResponse, 0, len(f.Fields))}
	if err := copier.Copy(res, f); err != nil {
		return nil, err
	}
	return res, nil
}
