package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrExpireAbandonedCartsCommandIsNotConstructed = errors.New(
	"ExpireAbandonedCartsCommand must be created via NewExpireAbandonedCartsCommand constructor",
)

// AbandonedCartReason is recorded in the notes of expired carts.
const AbandonedCartReason = "abandoned cart"

// ExpireAbandonedCartsCommand cancels up to limit PENDING orders created before cutoff.
type ExpireAbandonedCartsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time
	limit  int

	guard guard.ConstructorGuard
}

func NewExpireAbandonedCartsCommand(cutoff time.Time, limit int) (ExpireAbandonedCartsCommand, error) {
	var cutoffErr, limitErr error
	if cutoff.IsZero() {
		cutoffErr = errs.NewValueIsRequiredError("cutoff")
	}
	if limit <= 0 {
		limitErr = errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is not greater than 0", limit))
	}

	if err := errors.Join(cutoffErr, limitErr); err != nil {
		return ExpireAbandonedCartsCommand{}, err
	}

	return ExpireAbandonedCartsCommand{
		cutoff: cutoff,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ExpireAbandonedCartsCommand) Validate() error {
	return c.guard.Validate(ErrExpireAbandonedCartsCommandIsNotConstructed)
}

func (c ExpireAbandonedCartsCommand) Cutoff() time.Time { return c.cutoff }
func (c ExpireAbandonedCartsCommand) Limit() int        { return c.limit }
