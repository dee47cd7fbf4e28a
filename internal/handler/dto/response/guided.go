package response

import (
	"saba-booking/internal/domain/booking"
	"saba-booking/internal/usecase/commands"
)

type RatedResponse struct {
	ItemID      int    `json:"item_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Available   int    `json:"available"`
	Total       string `json:"total"`
	InCart      bool   `json:"in_cart"`
	AddOnsAdded bool   `json:"add_ons_added"`
}

type AddOnResponse struct {
	ItemID   int    `json:"item_id"`
	Param    string `json:"param"`
	Quantity int    `json:"quantity"`
}

type GuidedResponse struct {
	ID            string                `json:"id"`
	Version       int64                 `json:"version"`
	Step          string                `json:"step"`
	Steps         []string              `json:"steps"`
	ActivityID    int                   `json:"activity_id,omitempty"`
	StartDate     string                `json:"start_date,omitempty"`
	EndDate       string                `json:"end_date,omitempty"`
	Params        map[string]int        `json:"params"`
	RentalCount   int                   `json:"rental_count"`
	CertConfirmed bool                  `json:"cert_confirmed"`
	Customer      map[string]string     `json:"customer"`
	Rated         *RatedResponse        `json:"rated,omitempty"`
	HasCartLines  bool                  `json:"has_cart_lines"`
	Confirmation  *ConfirmationResponse `json:"confirmation,omitempty"`
	Validation    *ValidationResponse   `json:"validation,omitempty"`
	Form          *FormResponse         `json:"form,omitempty"`
	Cart          *CartResponse         `json:"cart,omitempty"`
	AddOns        []AddOnResponse       `json:"add_ons,omitempty"`
}

func FromGuidedState(s *commands.GuidedState) (*GuidedResponse, error) {
	i := s.Intent
	res := &GuidedResponse{
		ID:            i.ID().String(),
		Version:       i.Version(),
		Step:          string(i.Step()),
		Steps:         make([]string, 0, len(booking.Steps)),
		ActivityID:    int(i.ActivityID()),
		Params:        i.Params(),
		RentalCount:   i.RentalCount(),
		CertConfirmed: i.CertConfirmed(),
		Customer:      i.Customer(),
		HasCartLines:  i.HasCartLines(),
		Confirmation:  FromConfirmation(i.Confirmation()),
		Validation:    FromValidation(s.Validation),
		Cart:          FromCartView(s.Cart),
	}
	for _, st := range booking.Steps {
		res.Steps = append(res.Steps, string(st))
	}
	if d, ok := i.Dates(); ok {
		res.StartDate, res.EndDate = d.StartString(), d.EndString()
	}
	if r := i.Rated(); r != nil {
		res.Rated = &RatedResponse{
			ItemID:      int(r.ItemID),
			Name:        r.Name,
			Status:      r.Status,
			Available:   r.Available,
			Total:       r.Total,
			InCart:      r.InCart,
			AddOnsAdded: r.AddOnsAdded,
		}
	}
	for _, a := range s.AddOns {
		res.AddOns = append(res.AddOns, AddOnResponse{ItemID: int(a.Item), Param: a.Param, Quantity: a.Quantity})
	}
	form, err := FromForm(s.Form)
	if err != nil {
		return nil, err
	}
	res.Form = form
	return res, nil
}
