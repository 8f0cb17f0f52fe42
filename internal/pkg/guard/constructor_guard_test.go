package guard_test

import (
	"errors"
	"sync"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("cart line not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type lineItem struct {
		sku      string
		quantity int
		guard    guard.ConstructorGuard
	}

	errLineItemNotConstructed := errors.New("lineItem must be created via newLineItem")

	newLineItem := func(sku string, quantity int) (lineItem, error) {
		if quantity <= 0 {
			return lineItem{}, errors.New("quantity must be positive")
		}
		return lineItem{sku: sku, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		li, err := newLineItem("pizza", 2)

		require.NoError(t, err)
		require.NoError(t, li.guard.Validate(errLineItemNotConstructed))
	})

	t.Run("literal_value_fails", func(t *testing.T) {
		li := lineItem{sku: "pizza", quantity: 2}

		assert.Equal(t, errLineItemNotConstructed, li.guard.Validate(errLineItemNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		li, err := newLineItem("pizza", 0)

		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, li.guard.Validate(errLineItemNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}
