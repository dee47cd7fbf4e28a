// Package caldate handles calendar dates in the compact YYYYMMDD form used by
// the reservation API. Dates are represented as midnight UTC.
package caldate

import (
	"encoding/json"
	"time"

	"saba-booking/internal/pkg/errs"
)

const Layout = "20060102"

var (
	ErrInvalidDate  = errs.New("invalid calendar date")
	ErrInvertedSpan = errs.New("end date is before start date")
	ErrInvalidDays  = errs.New("number of days must be at least 1")
)

// Parse accepts exactly eight digits forming a real calendar date.
func Parse(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "%q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, errs.Wrapf(ErrInvalidDate, "%q", s)
		}
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidDate, "%q: %v", s, err)
	}
	return t, nil
}

func Format(t time.Time) string {
	return Normalize(t).Format(Layout)
}

// FormatLong renders "February 12, 2026".
func FormatLong(t time.Time) string {
	return Normalize(t).Format("January 2, 2006")
}

// Normalize drops the clock part, keeping the calendar date t carries in its own location.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func IsCompact(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// InclusiveDaysBetween counts calendar days including both ends; a same-day span is 1.
func InclusiveDaysBetween(start, end time.Time) (int, error) {
	s, e := Normalize(start), Normalize(end)
	if e.Before(s) {
		return 0, ErrInvertedSpan
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// AddDaysInclusive returns the inclusive end date of a span of numDays starting at start.
func AddDaysInclusive(start time.Time, numDays int) (time.Time, error) {
	if numDays < 1 {
		return time.Time{}, ErrInvalidDays
	}
	return Normalize(start).AddDate(0, 0, numDays-1), nil
}

// Range is an inclusive calendar-date span.
type Range struct {
	start time.Time
	end   time.Time
}

func NewRange(start, end time.Time) (Range, error) {
	s, e := Normalize(start), Normalize(end)
	if e.Before(s) {
		return Range{}, ErrInvertedSpan
	}
	return Range{start: s, end: e}, nil
}

func ParseRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e)
}

func SingleDay(day time.Time) Range {
	d := Normalize(day)
	return Range{start: d, end: d}
}

func (r Range) Start() time.Time { return r.start }
func (r Range) End() time.Time   { return r.end }
func (r Range) StartString() string {
	return Format(r.start)
}
func (r Range) EndString() string {
	return Format(r.end)
}
func (r Range) IsZero() bool { return r.start.IsZero() && r.end.IsZero() }

func (r Range) Days() int {
	n, _ := InclusiveDaysBetween(r.start, r.end)
	return n
}

func (r Range) Equal(other Range) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r Range) String() string {
	return r.StartString() + "-" + r.EndString()
}

type rangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(rangeJSON{Start: r.StartString(), End: r.EndString()})
}

func (r *Range) UnmarshalJSON(b []byte) error {
	var raw rangeJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return errs.Wrap(err, "failed to decode date range")
	}
	parsed, err := ParseRange(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
