package commands

import (
	"context"
	"log/slog"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// GuidedState is what the guided flow shows after a command.
type GuidedState struct {
	Intent     *booking.Intent
	Validation *booking.ValidationResult
	// Form is the booking form, present at the details step.
	Form *booking.FormSchema
	// Cart is the existing session, present at the review step when enabled.
	Cart   *CartView
	AddOns []booking.AddOnLine
}

type GuidedCommands interface {
	Start(ctx context.Context, sessionID string) (*GuidedState, error)
	Get(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	Update(ctx context.Context, id uuid.UUID, p booking.Patch) (*GuidedState, error)
	ConfirmCertification(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	SwitchToAlternative(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	Advance(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	Retreat(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	Reset(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	AddAnother(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	Rate(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	AddToCart(ctx context.Context, id uuid.UUID) (*GuidedState, error)
	Checkout(ctx context.Context, id uuid.UUID) (*GuidedState, error)
}

type guidedUseCaseImpl struct {
	machine   *booking.Machine
	intents   shared.IntentStore
	gateway   shared.ReservationGateway
	guard     shared.InFlightGuard
	sessions  SessionSync
	submitter *bookingSubmitter
	clock     clock.Clock
	logger    *slog.Logger
}

func NewGuidedUseCase(
	machine *booking.Machine,
	intents shared.IntentStore,
	gateway shared.ReservationGateway,
	guard shared.InFlightGuard,
	sessions SessionSync,
	uow shared.UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
) GuidedCommands {
	return &guidedUseCaseImpl{
		machine:  machine,
		intents:  intents,
		gateway:  gateway,
		guard:    guard,
		sessions: sessions,
		submitter: &bookingSubmitter{
			gateway: gateway,
			guard:   guard,
			uow:     uow,
			catalog: machine.Catalog(),
			clock:   clk,
			logger:  logger,
		},
		clock:  clk,
		logger: logger,
	}
}

// Start creates an intent, adopting sessionID when the reservation API still knows it.
func (uc *guidedUseCaseImpl) Start(ctx context.Context, sessionID string) (*GuidedState, error) {
	intent := booking.NewIntent(uuid.New(), uc.clock.Now())
	if sessionID != "" {
		view, err := uc.sessions.Refresh(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if !view.Expired {
			intent.AdoptSession(view.SessionID, !view.Empty, uc.clock.Now())
		}
	}
	if err := uc.intents.Save(ctx, intent); err != nil {
		return nil, mapStoreErr(err)
	}
	return uc.present(ctx, intent, nil)
}

func (uc *guidedUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	intent, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.present(ctx, intent, nil)
}

func (uc *guidedUseCaseImpl) Update(ctx context.Context, id uuid.UUID, p booking.Patch) (*GuidedState, error) {
	return uc.mutate(ctx, id, func(i *booking.Intent) error {
		return uc.machine.Update(i, p)
	})
}

func (uc *guidedUseCaseImpl) ConfirmCertification(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	return uc.mutate(ctx, id, uc.machine.ConfirmCertification)
}

func (uc *guidedUseCaseImpl) SwitchToAlternative(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	return uc.mutate(ctx, id, uc.machine.SwitchToAlternative)
}

func (uc *guidedUseCaseImpl) Retreat(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	return uc.mutate(ctx, id, uc.machine.Retreat)
}

func (uc *guidedUseCaseImpl) AddAnother(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	return uc.mutate(ctx, id, uc.machine.AddAnother)
}

func (uc *guidedUseCaseImpl) Reset(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	return uc.mutate(ctx, id, func(i *booking.Intent) error {
		uc.machine.Reset(i)
		return nil
	})
}

// Advance runs the current gate and moves on when it passes. The review step
// is priced before its gate runs, and on entry.
func (uc *guidedUseCaseImpl) Advance(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	intent, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if intent.Step() == booking.StepReview && intent.Rated() == nil {
		if intent, err = uc.rate(ctx, intent); err != nil {
			return nil, err
		}
	}

	var form *booking.FormSchema
	if intent.Step() == booking.StepDetails {
		if form, err = uc.gateway.GetBookingForm(ctx); err != nil {
			return nil, err
		}
	}

	res, err := uc.machine.Advance(intent, form)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return uc.present(ctx, intent, &res)
	}
	if err := uc.intents.Save(ctx, intent); err != nil {
		return nil, mapStoreErr(err)
	}

	if intent.Step() == booking.StepReview && intent.Rated() == nil {
		if intent, err = uc.rate(ctx, intent); err != nil {
			return nil, err
		}
	}
	return uc.present(ctx, intent, &res)
}

func (uc *guidedUseCaseImpl) Rate(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	intent, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if intent, err = uc.rate(ctx, intent); err != nil {
		return nil, err
	}
	return uc.present(ctx, intent, nil)
}

// rate prices the current answers. The result is stored only if the intent
// was not changed while the gateway call was running.
func (uc *guidedUseCaseImpl) rate(ctx context.Context, intent *booking.Intent) (*booking.Intent, error) {
	if intent.IsComplete() {
		return nil, booking.ErrIntentCompleted
	}
	entry, err := uc.machine.Catalog().Primary(intent.ActivityID())
	if err != nil {
		return nil, errs.Mark(err, booking.ErrInvalidPatch)
	}
	dates, ok := intent.Dates()
	if !ok {
		return nil, errs.Wrap(booking.ErrInvalidPatch, "dates are required for pricing")
	}

	q := catalog.ItemQuery{
		ItemIDs:   []catalog.ItemID{entry.ID},
		StartDate: dates.StartString(),
		EndDate:   dates.EndString(),
		Params:    intent.Params(),
	}
	item, err := uc.gateway.GetItem(ctx, entry.ID, &q)
	if err != nil {
		return nil, err
	}

	rated := booking.Rated{ItemID: entry.ID, Name: entry.Name, Status: catalog.RateUnavailable}
	if item.Rate != nil {
		rated.Status = item.Rate.Status
		rated.Available = item.Rate.Available
		rated.Token = item.Rate.Token
		rated.Total = item.Rate.Total
	}
	if err := intent.SetRated(rated, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.intents.Save(ctx, intent); err != nil {
		return nil, mapStoreErr(err)
	}
	return intent, nil
}

// AddToCart adds the rated activity and then its add-ons. When the add-ons
// fail the activity stays in the cart and a retry adds only the add-ons.
func (uc *guidedUseCaseImpl) AddToCart(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	release, err := uc.guard.Acquire(ctx, "cart:"+id.String())
	if err != nil {
		return nil, mapStoreErr(err)
	}
	defer release(context.WithoutCancel(ctx))

	intent, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if intent.IsComplete() {
		return nil, booking.ErrIntentCompleted
	}
	rated := intent.Rated()
	if rated == nil || rated.Token == "" {
		return nil, ErrNotRated
	}
	if !rated.IsAvailable() {
		res := uc.machine.Validate(intent, nil)
		return uc.present(ctx, intent, &res)
	}

	if !rated.InCart {
		view, err := uc.sessions.AddTokens(ctx, intent.SessionID(), []string{rated.Token})
		if err != nil {
			return nil, err
		}
		if err := intent.RecordCartAdd(view.SessionID, uc.clock.Now()); err != nil {
			return nil, err
		}
		if err := uc.intents.Save(ctx, intent); err != nil {
			return nil, mapStoreErr(err)
		}
	}

	if !intent.Rated().AddOnsAdded {
		if err := uc.addAddOns(ctx, intent); err != nil {
			return nil, err
		}
	}
	return uc.present(ctx, intent, nil)
}

func (uc *guidedUseCaseImpl) addAddOns(ctx context.Context, intent *booking.Intent) error {
	plan, err := uc.machine.AddOnPlan(intent)
	if err != nil {
		return err
	}
	dates, _ := intent.Dates()

	tokens := make([]string, 0, len(plan))
	for _, line := range plan {
		q := catalog.ItemQuery{
			ItemIDs:   []catalog.ItemID{line.Item},
			StartDate: dates.StartString(),
			EndDate:   dates.EndString(),
			Params:    map[string]int{line.Param: line.Quantity},
		}
		item, err := uc.gateway.GetItem(ctx, line.Item, &q)
		if err != nil {
			return errs.Mark(errs.Wrapf(err, "rate add-on %d", line.Item), ErrAddOnFailed)
		}
		if item.Rate == nil || !item.Rate.IsAvailable() || item.Rate.Token == "" {
			return errs.Wrapf(ErrAddOnFailed, "add-on %d is not available", line.Item)
		}
		tokens = append(tokens, item.Rate.Token)
	}

	if len(tokens) > 0 {
		if _, err := uc.sessions.AddTokens(ctx, intent.SessionID(), tokens); err != nil {
			if infra.IsKind(err, infra.KindRateLimited) {
				return err
			}
			return errs.Mark(errs.Wrap(err, "add add-ons to session"), ErrAddOnFailed)
		}
	}

	intent.RecordAddOns(uc.clock.Now())
	if err := uc.intents.Save(ctx, intent); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// Checkout books the intent's session with the collected customer details
// and completes the intent. Details that fail the current booking form send
// the intent back to the details step instead.
func (uc *guidedUseCaseImpl) Checkout(ctx context.Context, id uuid.UUID) (*GuidedState, error) {
	intent, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if intent.IsComplete() {
		return nil, booking.ErrIntentCompleted
	}
	if intent.Step() != booking.StepCheckout {
		return nil, errs.Wrapf(booking.ErrNotAtCheckout, "step %s", intent.Step())
	}

	// the booking form can change upstream after the details step passed
	form, err := uc.gateway.GetBookingForm(ctx)
	if err != nil {
		return nil, err
	}
	if res := uc.machine.CheckDetails(intent, form); !res.OK() {
		if err := uc.intents.Save(ctx, intent); err != nil {
			return nil, mapStoreErr(err)
		}
		return uc.present(ctx, intent, &res)
	}

	intentID := intent.ID()
	conf, err := uc.submitter.submit(ctx, intent.SessionID(), intent.Customer(), &intentID)
	if err != nil {
		if errs.Is(err, ErrCartExpired) {
			intent.DropSession(uc.clock.Now())
			if saveErr := uc.intents.Save(ctx, intent); saveErr != nil {
				uc.logger.Warn("failed to drop expired session from intent", "intent_id", intentID, "error", saveErr.Error())
			}
		}
		return nil, err
	}

	if err := uc.completeAfterBooking(ctx, intent, *conf); err != nil {
		return nil, err
	}
	return uc.present(ctx, intent, nil)
}

// completeAfterBooking stores the confirmation. The booking exists upstream,
// so a concurrent change to the intent is overridden by reloading once.
func (uc *guidedUseCaseImpl) completeAfterBooking(ctx context.Context, intent *booking.Intent, conf booking.Confirmation) error {
	if err := uc.machine.Complete(intent, conf); err != nil {
		return err
	}
	err := uc.intents.Save(ctx, intent)
	if err == nil || !infra.IsKind(err, infra.KindConflict) {
		return mapStoreErr(err)
	}

	fresh, err := uc.load(ctx, intent.ID())
	if err != nil {
		return err
	}
	if !fresh.IsComplete() {
		if fresh.Step() != booking.StepCheckout {
			uc.logger.Warn("intent moved away from checkout while booking", "intent_id", fresh.ID(), "step", fresh.Step())
			return ErrStaleIntent
		}
		if err := uc.machine.Complete(fresh, conf); err != nil {
			return err
		}
		if err := uc.intents.Save(ctx, fresh); err != nil {
			return mapStoreErr(err)
		}
	}
	*intent = *fresh
	return nil
}

func (uc *guidedUseCaseImpl) load(ctx context.Context, id uuid.UUID) (*booking.Intent, error) {
	intent, err := uc.intents.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return intent, nil
}

func (uc *guidedUseCaseImpl) mutate(ctx context.Context, id uuid.UUID, fn func(*booking.Intent) error) (*GuidedState, error) {
	intent, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(intent); err != nil {
		return nil, err
	}
	if err := uc.intents.Save(ctx, intent); err != nil {
		return nil, mapStoreErr(err)
	}
	return uc.present(ctx, intent, nil)
}

func (uc *guidedUseCaseImpl) present(ctx context.Context, intent *booking.Intent, res *booking.ValidationResult) (*GuidedState, error) {
	state := &GuidedState{Intent: intent, Validation: res}

	switch intent.Step() {
	case booking.StepReview:
		plan, err := uc.machine.AddOnPlan(intent)
		if err != nil {
			return nil, err
		}
		state.AddOns = plan
		if uc.machine.ReviewOptions().ShowExistingCart && intent.SessionID() != "" {
			view, err := uc.sessions.Refresh(ctx, intent.SessionID())
			if err != nil {
				uc.logger.Warn("failed to load existing cart for review", "session_id", intent.SessionID(), "error", err.Error())
			} else {
				state.Cart = view
			}
		}
	case booking.StepDetails:
		form, err := uc.gateway.GetBookingForm(ctx)
		if err != nil {
			return nil, err
		}
		state.Form = form
	}
	return state, nil
}
