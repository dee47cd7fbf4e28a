package commands

import (
	"context"
	"log/slog"
	"time"

	"saba-booking/internal/domain/cart"
	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/pkg/money"
	"saba-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartUnit is a bookable unit as presented to callers.
type CartUnit struct {
	Primary   cart.LineItem
	AddOns    []cart.LineItem
	LineTotal string
}

// CartView is the caller-visible summary of one session. Expired means the
// reservation API no longer knows the session and holders must forget it.
type CartView struct {
	SessionID  string
	Empty      bool
	Expired    bool
	UnitCount  int
	Total      string
	SubTotal   string
	TaxTotal   string
	Units      []CartUnit
	Unassigned []cart.LineItem
	ExpiresAt  *time.Time
}

type SessionSync interface {
	Refresh(ctx context.Context, sessionID string) (*CartView, error)
	AddTokens(ctx context.Context, sessionID string, tokens []string) (*CartView, error)
	Alter(ctx context.Context, sessionID string, alter map[string]int) (*CartView, error)
	RemoveUnit(ctx context.Context, sessionID, primaryToken string) (*CartView, error)
	Clear(ctx context.Context, sessionID string) (*CartView, error)
	SyncIntent(ctx context.Context, intentID uuid.UUID) (*CartView, error)
}

type sessionSyncImpl struct {
	gateway    shared.ReservationGateway
	intents    shared.IntentStore
	catalog    *catalog.Catalog
	clock      clock.Clock
	sessionTTL time.Duration
	logger     *slog.Logger
}

func NewSessionSync(
	gateway shared.ReservationGateway,
	intents shared.IntentStore,
	cat *catalog.Catalog,
	clk clock.Clock,
	sessionTTL time.Duration,
	logger *slog.Logger,
) SessionSync {
	return &sessionSyncImpl{
		gateway:    gateway,
		intents:    intents,
		catalog:    cat,
		clock:      clk,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Refresh always reads the session from the gateway so it reflects the latest mutation.
func (s *sessionSyncImpl) Refresh(ctx context.Context, sessionID string) (*CartView, error) {
	if sessionID == "" {
		return emptyView("", false), nil
	}
	snap, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return emptyView(sessionID, true), nil
		}
		return nil, err
	}
	return s.view(snap), nil
}

// AddTokens extends the session with priced lines, starting a new session when
// none is held or the held one has expired.
func (s *sessionSyncImpl) AddTokens(ctx context.Context, sessionID string, tokens []string) (*CartView, error) {
	if len(tokens) == 0 {
		return nil, errs.New("no redemption tokens to add")
	}
	snap, err := s.gateway.CreateOrExtendSession(ctx, tokens, sessionID)
	if err != nil && sessionID != "" && infra.IsKind(err, infra.KindNotFound) {
		s.logger.Info("cart session expired, starting a new one", "session_id", sessionID)
		snap, err = s.gateway.CreateOrExtendSession(ctx, tokens, "")
	}
	if err != nil {
		return nil, err
	}
	return s.Refresh(ctx, snap.SessionID)
}

func (s *sessionSyncImpl) Alter(ctx context.Context, sessionID string, alter map[string]int) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	if _, err := s.gateway.AlterSession(ctx, sessionID, alter); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return emptyView(sessionID, true), nil
		}
		return nil, err
	}
	return s.Refresh(ctx, sessionID)
}

// RemoveUnit zeroes the primary and every add-on currently grouped with it in
// a single alter request, then re-reads the session.
func (s *sessionSyncImpl) RemoveUnit(ctx context.Context, sessionID, primaryToken string) (*CartView, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	snap, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return emptyView(sessionID, true), nil
		}
		return nil, err
	}

	unit, ok := cart.Reconcile(*snap, s.catalog).Find(primaryToken)
	if !ok {
		return nil, errs.Wrapf(ErrUnitNotFound, "token %q", primaryToken)
	}
	return s.Alter(ctx, sessionID, unit.RemovalAlter())
}

func (s *sessionSyncImpl) Clear(ctx context.Context, sessionID string) (*CartView, error) {
	if sessionID == "" {
		return emptyView("", false), nil
	}
	if err := s.gateway.ClearSession(ctx, sessionID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	return emptyView(sessionID, true), nil
}

// SyncIntent refreshes the session an intent holds and drops it from the
// intent when the reservation API has forgotten it.
func (s *sessionSyncImpl) SyncIntent(ctx context.Context, intentID uuid.UUID) (*CartView, error) {
	intent, err := s.intents.Get(ctx, intentID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	view, err := s.Refresh(ctx, intent.SessionID())
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	switch {
	case view.Expired:
		intent.DropSession(now)
	case intent.HasCartLines() == view.Empty:
		intent.AdoptSession(view.SessionID, !view.Empty, now)
	default:
		return view, nil
	}
	if err := s.intents.Save(ctx, intent); err != nil {
		return nil, mapStoreErr(err)
	}
	return view, nil
}

func (s *sessionSyncImpl) view(snap *cart.Snapshot) *CartView {
	rec := cart.Reconcile(*snap, s.catalog)
	v := &CartView{
		SessionID:  snap.SessionID,
		Empty:      rec.UnitCount() == 0 && len(rec.Unassigned) == 0,
		UnitCount:  rec.UnitCount(),
		Total:      snap.Total,
		SubTotal:   snap.SubTotal,
		TaxTotal:   snap.TaxTotal,
		Unassigned: rec.Unassigned,
	}
	if v.Total == "" {
		v.Total = money.Format(rec.UnitsTotal())
	}
	for _, u := range rec.Units {
		v.Units = append(v.Units, CartUnit{
			Primary:   u.Primary,
			AddOns:    u.AddOns,
			LineTotal: money.Format(u.LineTotal()),
		})
	}
	if s.sessionTTL > 0 {
		exp := s.clock.Now().Add(s.sessionTTL)
		v.ExpiresAt = &exp
	}
	return v
}

func emptyView(sessionID string, expired bool) *CartView {
	v := &CartView{Empty: true, Expired: expired, Total: money.Format(0)}
	if !expired {
		v.SessionID = sessionID
	}
	return v
}
