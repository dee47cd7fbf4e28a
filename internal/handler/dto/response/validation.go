package response

import "saba-booking/internal/domain/booking"

type AlternativeResponse struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	ItemID   int    `json:"item_id,omitempty"`
	Contact  string `json:"contact,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

type ViolationResponse struct {
	Code         string                `json:"code"`
	Field        string                `json:"field,omitempty"`
	Message      string                `json:"message"`
	Shortfall    int                   `json:"shortfall,omitempty"`
	Alternatives []AlternativeResponse `json:"alternatives,omitempty"`
}

type ValidationResponse struct {
	Step       string              `json:"step"`
	OK         bool                `json:"ok"`
	Violations []ViolationResponse `json:"violations"`
}

func FromViolations(vs []booking.Violation) []ViolationResponse {
	out := make([]ViolationResponse, 0, len(vs))
	for _, v := range vs {
		vr := ViolationResponse{
			Code:      string(v.Code),
			Field:     v.Field,
			Message:   v.Message,
			Shortfall: v.Shortfall,
		}
		for _, a := range v.Alternatives {
			vr.Alternatives = append(vr.Alternatives, AlternativeResponse{
				Kind:     string(a.Kind),
				Label:    a.Label,
				ItemID:   int(a.ItemID),
				Contact:  a.Contact,
				Quantity: a.Quantity,
			})
		}
		out = append(out, vr)
	}
	return out
}

func FromValidation(r *booking.ValidationResult) *ValidationResponse {
	if r == nil {
		return nil
	}
	return &ValidationResponse{
		Step:       string(r.Step),
		OK:         r.OK(),
		Violations: FromViolations(r.Violations),
	}
}
