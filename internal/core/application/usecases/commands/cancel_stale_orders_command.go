package commands

import (
	"errors"
	"fmt"
	"time"

	"microshop/internal/pkg/errs"
	"microshop/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a request to cancel all orders that
// stayed in created status longer than the given time-to-live.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale orders.
func NewCancelStaleOrdersCommand(ttl time.Duration) (CancelStaleOrdersCommand, error) {
	cmd := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long an order may stay in created status before it
// qualifies for cancellation.
func (c CancelStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CancelStaleOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not a positive duration", ttl))
	}

	c.ttl = ttl
	return nil
}
