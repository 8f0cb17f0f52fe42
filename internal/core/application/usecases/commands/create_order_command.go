package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	ErrPhoneIsRequired           = errs.NewValueIsRequiredError("phone")
)

// CreateOrderCommand represents a request to open a new, empty cart for a
// customer at a restaurant.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, restaurantID, "Jl. Sudirman 1", "+62811111", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s is PENDING with total %s", o.ID(), o.Total())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	phone           string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers and the non-blank delivery
// address and phone. All validation errors are joined.
func NewCreateOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	deliveryAddress, phone, notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, customerID, restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPhone(phone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID   { return c.customerID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateOrderCommand) DeliveryAddress() string   { return c.deliveryAddress }
func (c CreateOrderCommand) Phone() string             { return c.phone }
func (c CreateOrderCommand) Notes() string             { return c.notes }

func (c *CreateOrderCommand) setIDs(orderID, customerID, restaurantID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return err
	}

	c.orderID = orderID
	c.customerID = customerID
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
