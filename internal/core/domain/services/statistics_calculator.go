package services

import (
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderStatistics summarises a set of orders. Active is everything that is
// neither delivered nor cancelled.
type OrderStatistics struct {
	TotalOrders       int
	CompletedOrders   int
	CancelledOrders   int
	ActiveOrders      int
	TotalSpent        decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// StatisticsCalculator aggregates OrderStatistics. Only DELIVERED orders count
// towards TotalSpent and AverageOrderValue.
type StatisticsCalculator struct{}

func NewStatisticsCalculator() StatisticsCalculator {
	return StatisticsCalculator{}
}

// Calculate returns the statistics for orders. The average is rounded to two
// decimal places and is zero when no order was delivered.
func (StatisticsCalculator) Calculate(orders []*order.Order) OrderStatistics {
	stats := OrderStatistics{
		TotalOrders:       len(orders),
		TotalSpent:        decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}

	for _, o := range orders {
		switch o.Status() {
		case order.Delivered:
			stats.CompletedOrders++
			stats.TotalSpent = stats.TotalSpent.Add(o.Total())
		case order.Cancelled:
			stats.CancelledOrders++
		}
	}

	stats.ActiveOrders = stats.TotalOrders - stats.CompletedOrders - stats.CancelledOrders
	if stats.CompletedOrders > 0 {
		stats.AverageOrderValue = stats.TotalSpent.DivRound(decimal.NewFromInt(int64(stats.CompletedOrders)), 2)
	}

	return stats
}
