package contact

import (
	"strings"
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errs.New("name is required")
	ErrEmailInvalid    = errs.New("a valid email is required")
	ErrSubjectRequired = errs.New("subject is required")
	ErrMessageRequired = errs.New("message is required")
	ErrUnknownType     = errs.New("unknown request type")
)

type Source string

const (
	SourceContactForm Source = "contact_form"
	SourceAssistant   Source = "assistant"
)

// RequestType names requests that cannot be completed as online bookings.
type RequestType string

const (
	TypeSunsetCruiseUnderMinimum RequestType = "sunset_cruise_under_minimum"
	TypeDiscoverScuba            RequestType = "discover_scuba"
	TypeOpenWaterCourse          RequestType = "open_water_course"
	TypeAdvancedCourse           RequestType = "advanced_course"
	TypeTechnicalDiving          RequestType = "technical_diving"
	TypePrivateCharter           RequestType = "private_charter"
	TypeFishing                  RequestType = "fishing"
	TypeGroupEvent               RequestType = "group_event"
	TypeOther                    RequestType = "other"
)

var RequestTypes = []RequestType{
	TypeSunsetCruiseUnderMinimum, TypeDiscoverScuba, TypeOpenWaterCourse, TypeAdvancedCourse,
	TypeTechnicalDiving, TypePrivateCharter, TypeFishing, TypeGroupEvent, TypeOther,
}

func ParseRequestType(s string) (RequestType, error) {
	if s == "" {
		return TypeOther, nil
	}
	for _, t := range RequestTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errs.Wrapf(ErrUnknownType, "%q", s)
}

type Request struct {
	id             uuid.UUID
	source         Source
	requestType    RequestType
	name           string
	email          string
	phone          string
	subject        string
	message        string
	preferredDates string
	guestCount     int
	createdAt      time.Time
}

type Input struct {
	Source         Source
	Type           RequestType
	Name           string
	Email          string
	Phone          string
	Subject        string
	Message        string
	PreferredDates string
	GuestCount     int
}

func NewRequest(in Input, now time.Time) (*Request, error) {
	r := &Request{
		id:             uuid.New(),
		source:         in.Source,
		requestType:    in.Type,
		name:           strings.TrimSpace(in.Name),
		email:          strings.TrimSpace(in.Email),
		phone:          strings.TrimSpace(in.Phone),
		subject:        strings.TrimSpace(in.Subject),
		message:        strings.TrimSpace(in.Message),
		preferredDates: strings.TrimSpace(in.PreferredDates),
		guestCount:     in.GuestCount,
		createdAt:      now,
	}
	if r.requestType == "" {
		r.requestType = TypeOther
	}
	if r.subject == "" && r.source == SourceAssistant {
		r.subject = "Request: " + strings.ReplaceAll(string(r.requestType), "_", " ")
	}

	switch {
	case r.name == "":
		return nil, ErrNameRequired
	case !booking.ValidEmail(r.email):
		return nil, ErrEmailInvalid
	case r.subject == "":
		return nil, ErrSubjectRequired
	case r.message == "":
		return nil, ErrMessageRequired
	}
	return r, nil
}

func ReconstructRequest(id uuid.UUID, in Input, createdAt time.Time) *Request {
	return &Request{
		id:             id,
		source:         in.Source,
		requestType:    in.Type,
		name:           in.Name,
		email:          in.Email,
		phone:          in.Phone,
		subject:        in.Subject,
		message:        in.Message,
		preferredDates: in.PreferredDates,
		guestCount:     in.GuestCount,
		createdAt:      createdAt,
	}
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) Source() Source         { return r.source }
func (r *Request) Type() RequestType      { return r.requestType }
func (r *Request) Name() string           { return r.name }
func (r *Request) Email() string          { return r.email }
func (r *Request) Phone() string          { return r.phone }
func (r *Request) Subject() string        { return r.subject }
func (r *Request) Message() string        { return r.message }
func (r *Request) PreferredDates() string { return r.preferredDates }
func (r *Request) GuestCount() int        { return r.guestCount }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
