package commands

import (
	"context"
	"log/slog"

	"saba-booking/internal/domain/contact"
	"saba-booking/internal/pkg/clock"
	"saba-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ContactCommands interface {
	Submit(ctx context.Context, in contact.Input) (uuid.UUID, error)
}

type contactUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewContactUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ContactCommands {
	return &contactUseCaseImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

// Submit stores a request the operator follows up on by hand.
func (uc *contactUseCaseImpl) Submit(ctx context.Context, in contact.Input) (uuid.UUID, error) {
	req, err := contact.NewRequest(in, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ContactRequests().Create(ctx, tx.DB(), req)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("contact request stored",
		"request_id", req.ID(),
		"source", req.Source(),
		"type", req.Type())
	return req.ID(), nil
}
