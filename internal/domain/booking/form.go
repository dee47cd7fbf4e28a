package booking

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormField is one customer field of the operator's booking form.
type FormField struct {
	ID       string
	Label    string
	Type     string
	Required bool
	Position int
	Options  map[string]string
}

func (f FormField) IsEmail() bool {
	return f.Type == "email" || strings.Contains(strings.ToLower(f.ID), "email")
}

// FormSchema holds the visible customer fields in display order.
type FormSchema struct {
	Fields         []FormField
	PolicyBody     string
	PolicyRequired bool
}

func (s *FormSchema) Field(id string) (FormField, bool) {
	if s == nil {
		return FormField{}, false
	}
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FormField{}, false
}

// Validate checks values against the schema. A nil schema only checks
// fields whose name marks them as an email address.
func (s *FormSchema) Validate(values map[string]string) []Violation {
	var out []Violation
	if s == nil {
		for k, v := range values {
			f := FormField{ID: k, Label: k}
			if f.IsEmail() && strings.TrimSpace(v) != "" && !ValidEmail(v) {
				out = append(out, invalidEmail(f))
			}
		}
		return out
	}

	for _, f := range s.Fields {
		v := strings.TrimSpace(values[f.ID])
		if v == "" {
			if f.Required {
				out = append(out, Violation{
					Code:    CodeFieldRequired,
					Field:   f.ID,
					Message: fmt.Sprintf("%s is required.", f.Label),
				})
			}
			continue
		}
		if f.IsEmail() && !ValidEmail(v) {
			out = append(out, invalidEmail(f))
		}
		if len(f.Options) > 0 {
			if _, ok := f.Options[v]; !ok {
				out = append(out, Violation{
					Code:    CodeFieldRequired,
					Field:   f.ID,
					Message: fmt.Sprintf("Choose one of the listed options for %s.", f.Label),
				})
			}
		}
	}
	return out
}

func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

func invalidEmail(f FormField) Violation {
	return Violation{
		Code:    CodeInvalidEmail,
		Field:   f.ID,
		Message: "Enter a valid email address.",
	}
}
