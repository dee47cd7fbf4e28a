package request

import (
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"
)

type ItemsQuery struct {
	CategoryID int    `form:"category_id" binding:"omitempty,min=1"`
	ItemID     []int  `form:"item_id"`
	Keyword    string `form:"keyword" binding:"max=100"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	// Params is read from param[<key>]=<n> pairs.
	Params map[string]int `form:"-"`
}

func (q *ItemsQuery) ToDomain() (catalog.ItemQuery, error) {
	out := catalog.ItemQuery{
		CategoryID: q.CategoryID,
		Keyword:    q.Keyword,
		Params:     q.Params,
	}
	for _, id := range q.ItemID {
		out.ItemIDs = append(out.ItemIDs, catalog.ItemID(id))
	}
	if q.StartDate != "" || q.EndDate != "" {
		end := q.EndDate
		if end == "" {
			end = q.StartDate
		}
		span, err := caldate.ParseRange(q.StartDate, end)
		if err != nil {
			return catalog.ItemQuery{}, err
		}
		out.StartDate, out.EndDate = span.StartString(), span.EndString()
	}
	return out, nil
}

type CalendarQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// ToDomain returns nil when no dates were given.
func (q *CalendarQuery) ToDomain() (*caldate.Range, error) {
	if q.StartDate == "" && q.EndDate == "" {
		return nil, nil
	}
	span, err := caldate.ParseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	return &span, nil
}
