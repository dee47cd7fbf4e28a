package request

import (
	"saba-booking/internal/domain/contact"
)

type ContactRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Email          string `json:"email" binding:"required,email,max=320"`
	Phone          string `json:"phone" binding:"max=50"`
	Subject        string `json:"subject" binding:"required,max=200"`
	Message        string `json:"message" binding:"required,max=5000"`
	RequestType    string `json:"request_type"`
	PreferredDates string `json:"preferred_dates" binding:"max=200"`
	GuestCount     int    `json:"guest_count" binding:"min=0,max=100"`
}

func (r *ContactRequest) ToDomain() (contact.Input, error) {
	t, err := contact.ParseRequestType(r.RequestType)
	if err != nil {
		return contact.Input{}, err
	}
	return contact.Input{
		Source:         contact.SourceContactForm,
		Type:           t,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Subject:        r.Subject,
		Message:        r.Message,
		PreferredDates: r.PreferredDates,
		GuestCount:     r.GuestCount,
	}, nil
}
