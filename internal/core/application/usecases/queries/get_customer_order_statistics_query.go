package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetCustomerOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetCustomerOrderStatisticsQuery must be created via NewGetCustomerOrderStatisticsQuery constructor",
)

// GetCustomerOrderStatisticsQuery summarizes one customer's order history:
// counts per outcome, total spent on delivered orders and their average value.
//
// Example:
//
//	query, _ := NewGetCustomerOrderStatisticsQuery(customerID)
//	stats, err := NewGetCustomerOrderStatisticsQueryHandler(orderRepo).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d delivered, %s spent\n", stats.CompletedOrders, stats.TotalSpent)
type GetCustomerOrderStatisticsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCustomerOrderStatisticsQuery(customerID kernel.UUID) (GetCustomerOrderStatisticsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrderStatisticsQuery{}, err
	}
	return GetCustomerOrderStatisticsQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderStatisticsQueryIsNotConstructed)
}

func (q GetCustomerOrderStatisticsQuery) CustomerID() kernel.UUID { return q.customerID }
