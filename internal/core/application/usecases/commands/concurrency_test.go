package commands_test

import (
	"sync"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentCartAdds(t *testing.T) {
	f := newFixture(t)
	o := f.createOrder(t)
	handler := commands.NewAddItemToCartCommandHandler(f.uowFactory, f.locks)

	const workers = 10
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewAddItemToCartCommand(o.ID(), f.pizza.ID(), 1)
			if err == nil {
				_, err = handler.Handle(t.Context(), cmd)
			}
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	stored := f.getOrder(t, o.ID())
	require.Len(t, stored.Items(), 1)
	assert.Equal(t, workers, stored.TotalItems())
	assert.True(t, stored.Total().Equal(decimal.NewFromInt(25000*workers)))
}

func TestConcurrentStatusUpdates(t *testing.T) {
	f := newFixture(t)
	o := f.orderIn(t, order.Confirmed)
	handler := commands.NewUpdateOrderStatusCommandHandler(f.uowFactory, f.locks)

	const workers = 4
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Preparing)
			if err == nil {
				_, err = handler.Handle(t.Context(), cmd)
			}
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	succeeded := 0
	for err := range errCh {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "invalid status transition from PREPARING to PREPARING")
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, order.Preparing, f.getOrder(t, o.ID()).Status())
}

func TestConcurrentCancelRestoresStockOnce(t *testing.T) {
	f := newFixture(t)
	o := f.orderIn(t, order.Confirmed)
	require.Equal(t, 8, f.stockOf(t, f.pizza))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.cancel(t.Context(), o.ID(), "race")
		}()
	}
	wg.Wait()

	assert.Equal(t, order.Cancelled, f.getOrder(t, o.ID()).Status())
	assert.Equal(t, 10, f.stockOf(t, f.pizza))
}

func TestConcurrentPlacementNeverOversells(t *testing.T) {
	f := newFixture(t)

	// Each order wants 4 of the 10 pizzas in stock, so only two can be placed.
	orders := make([]*order.Order, 0, 5)
	for range 5 {
		o := f.createOrder(t)
		orders = append(orders, f.addItem(t, o.ID(), f.pizza, 4))
	}

	var wg sync.WaitGroup
	results := make(chan error, len(orders))
	for _, o := range orders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.place(t.Context(), o.ID())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	placed := 0
	for err := range results {
		if err == nil {
			placed++
			continue
		}
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	}

	assert.Equal(t, 2, placed)
	assert.Equal(t, 2, f.stockOf(t, f.pizza))
}
