package booking

import "saba-booking/internal/pkg/errs"

type Step string

const (
	StepActivity Step = "activity"
	StepDates    Step = "dates"
	StepGuests   Step = "guests"
	StepReview   Step = "review"
	StepDetails  Step = "details"
	StepCheckout Step = "checkout"
	// StepComplete is terminal and only exposes the checkout link.
	StepComplete Step = "complete"
)

// Steps is the guided order. StepComplete is not part of it.
var Steps = []Step{StepActivity, StepDates, StepGuests, StepReview, StepDetails, StepCheckout}

var ErrUnknownStep = errs.New("unknown step")

func ParseStep(s string) (Step, error) {
	for _, st := range Steps {
		if string(st) == s {
			return st, nil
		}
	}
	if s == string(StepComplete) {
		return StepComplete, nil
	}
	return "", errs.Wrapf(ErrUnknownStep, "%q", s)
}

// Index is the position in Steps, len(Steps) for StepComplete and -1 otherwise.
func (s Step) Index() int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	if s == StepComplete {
		return len(Steps)
	}
	return -1
}

func (s Step) After(other Step) bool {
	return s.Index() > other.Index()
}

func (s Step) next() (Step, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(Steps) {
		return s, false
	}
	return Steps[i+1], true
}

func (s Step) prev() (Step, bool) {
	i := s.Index()
	if i <= 0 || i >= len(Steps) {
		return s, false
	}
	return Steps[i-1], true
}
