package services_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// orderWithTotal builds an order of one line priced total and drives it to status.
func orderWithTotal(t *testing.T, restaurantID kernel.UUID, total int64, status order.Status) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), restaurantID, "addr", "phone", "", now)
	require.NoError(t, err)
	p, err := order.NewProduct(kernel.NewUUID(), restaurantID, "Meal", decimal.NewFromInt(total))
	require.NoError(t, err)
	require.NoError(t, o.AddItem(p, 1))

	path := map[order.Status][]order.Status{
		order.Pending:        {},
		order.Confirmed:      {order.Confirmed},
		order.Preparing:      {order.Confirmed, order.Preparing},
		order.Ready:          {order.Confirmed, order.Preparing, order.Ready},
		order.OutForDelivery: {order.Confirmed, order.Preparing, order.Ready, order.OutForDelivery},
		order.Delivered:      {order.Confirmed, order.Preparing, order.Ready, order.OutForDelivery, order.Delivered},
		order.Cancelled:      {order.Cancelled},
	}
	for _, step := range path[status] {
		require.NoError(t, o.TransitionTo(step, now))
	}
	return o
}

func TestStatisticsCalculator_Calculate(t *testing.T) {
	restaurantID := kernel.NewUUID()
	calculator := services.NewStatisticsCalculator()

	t.Run("delivered, cancelled and active orders", func(t *testing.T) {
		orders := []*order.Order{
			orderWithTotal(t, restaurantID, 50000, order.Delivered),
			orderWithTotal(t, restaurantID, 75000, order.Delivered),
			orderWithTotal(t, restaurantID, 60000, order.Delivered),
			orderWithTotal(t, restaurantID, 99000, order.Cancelled),
			orderWithTotal(t, restaurantID, 12000, order.Preparing),
		}

		stats := calculator.Calculate(orders)

		assert.Equal(t, 5, stats.TotalOrders)
		assert.Equal(t, 3, stats.CompletedOrders)
		assert.Equal(t, 1, stats.CancelledOrders)
		assert.Equal(t, 1, stats.ActiveOrders)
		assert.Equal(t, "185000", stats.TotalSpent.String())
		assert.Equal(t, "61666.67", stats.AverageOrderValue.String())
	})

	t.Run("average is zero without delivered orders", func(t *testing.T) {
		orders := []*order.Order{
			orderWithTotal(t, restaurantID, 1000, order.Pending),
			orderWithTotal(t, restaurantID, 2000, order.Cancelled),
		}

		stats := calculator.Calculate(orders)

		assert.Equal(t, 0, stats.CompletedOrders)
		assert.True(t, stats.TotalSpent.IsZero())
		assert.True(t, stats.AverageOrderValue.IsZero())
		assert.Equal(t, 1, stats.ActiveOrders)
	})

	t.Run("empty input", func(t *testing.T) {
		stats := calculator.Calculate(nil)

		assert.Equal(t, services.OrderStatistics{
			TotalSpent:        decimal.Zero,
			AverageOrderValue: decimal.Zero,
		}, stats)
	})
}
