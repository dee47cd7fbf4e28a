package commands

import (
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/errs"
)

var (
	ErrNoSession          = errs.New("no cart session")
	ErrCartExpired        = errs.New("cart session has expired")
	ErrCartEmpty          = errs.New("cart has no bookable items")
	ErrUnitNotFound       = errs.New("cart unit not found")
	ErrIntentNotFound     = errs.New("booking intent not found")
	ErrStaleIntent        = errs.New("booking intent changed while the request was running")
	ErrSubmissionInFlight = errs.New("the same submission is already running")
	ErrNotRated           = errs.New("nothing has been priced yet")
	ErrAddOnFailed        = errs.New("activity added to cart but its add-ons could not be added")
	ErrFormInvalid        = errs.New("booking details are incomplete")
)

// mapStoreErr translates intent store failures into command errors.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrIntentNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrStaleIntent)
	case infra.IsKind(err, infra.KindLocked):
		return errs.Mark(err, ErrSubmissionInFlight)
	default:
		return err
	}
}
