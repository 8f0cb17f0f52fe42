package queries

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
	ErrStatusIsRequired = errs.NewValueIsRequiredError("status")
)

// GetOrdersByStatusQuery lists orders in any of the given statuses, newest
// first. GetActiveOrdersQuery and GetPendingOrdersQuery are the two fixed
// status sets the HTTP layer exposes on their own routes.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Preparing)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetOrdersByStatusQueryHandler(orderRepo).Handle(ctx, query)
type GetOrdersByStatusQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewGetOrdersByStatusQuery(statuses ...order.Status) (GetOrdersByStatusQuery, error) {
	if len(statuses) == 0 {
		return GetOrdersByStatusQuery{}, ErrStatusIsRequired
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetOrdersByStatusQuery{}, err
		}
	}

	return GetOrdersByStatusQuery{
		statuses: append([]order.Status(nil), statuses...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewGetActiveOrdersQuery covers PENDING through OUT_FOR_DELIVERY.
func NewGetActiveOrdersQuery() GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{statuses: order.ActiveStatuses(), guard: guard.NewConstructorGuard()}
}

func NewGetPendingOrdersQuery() GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{statuses: []order.Status{order.Pending}, guard: guard.NewConstructorGuard()}
}

func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Statuses() []order.Status {
	return append([]order.Status(nil), q.statuses...)
}
