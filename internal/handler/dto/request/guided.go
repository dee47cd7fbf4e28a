package request

import (
	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/pkg/caldate"
	"saba-booking/internal/pkg/ptr"
)

type UpdateGuidedRequest struct {
	ActivityID  *int              `json:"activity_id" binding:"omitempty,min=1"`
	StartDate   *string           `json:"start_date"`
	EndDate     *string           `json:"end_date"`
	Params      map[string]int    `json:"params" binding:"omitempty,dive,min=0"`
	RentalCount *int              `json:"rental_count" binding:"omitempty,min=0"`
	Customer    map[string]string `json:"customer"`
}

func (r *UpdateGuidedRequest) ToDomain() (booking.Patch, error) {
	p := booking.Patch{
		Params:      r.Params,
		RentalCount: r.RentalCount,
		Customer:    r.Customer,
	}
	if r.ActivityID != nil {
		p.ActivityID = ptr.Of(catalog.ItemID(*r.ActivityID))
	}
	if r.StartDate != nil {
		end := *r.StartDate
		if r.EndDate != nil && *r.EndDate != "" {
			end = *r.EndDate
		}
		span, err := caldate.ParseRange(*r.StartDate, end)
		if err != nil {
			return booking.Patch{}, err
		}
		p.Dates = &span
	}
	return p, nil
}
