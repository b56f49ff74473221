package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler cancels orders that were created but never
// placed within the configured time-to-live. All qualifying orders are
// cancelled in one transaction; the whole batch rolls back on any failure so
// the next run picks the survivors up again.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stale order cleanup command.
// Returns the number of orders cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.TTL())

	stale, err := uow.OrderRepository().GetAllCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
