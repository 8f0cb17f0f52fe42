package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// EstimatedDeliveryWindow is added to the confirmation time to get the estimated delivery time.
const EstimatedDeliveryWindow = 30 * time.Minute

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrTotalMismatch is returned when a persisted total disagrees with the persisted items.
	ErrTotalMismatch = errs.NewInvalidStateError("persisted total does not match order items")
	// ErrItemFromAnotherRestaurant is returned when a product of another restaurant is put in the cart.
	ErrItemFromAnotherRestaurant = errs.NewValueIsInvalidErrorWithCause(
		"item", errors.New("item does not belong to order's restaurant"),
	)
)

// Order is the aggregate root of the order engine. It owns its items and keeps
// these invariants:
//   - total always equals the sum of price × quantity over the items, and is zero when empty
//   - every item comes from the order's restaurant and has a quantity of at least 1
//   - at most one item per food item
//   - items change only while the order is PENDING
//   - status changes only through the transitions table in status.go
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID

	deliveryAddress string
	phone           string
	notes           string

	status Status
	items  []Item
	total  decimal.Decimal

	orderDate             time.Time
	estimatedDeliveryTime *time.Time
	actualDeliveryTime    *time.Time

	// version is the optimistic concurrency counter kept by repositories.
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates an empty PENDING order. All validation errors are joined.
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	deliveryAddress, phone, notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		total:     decimal.Zero,
		orderDate: now,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, customerID, restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the persisted state of an order for RestoreOrder.
type Snapshot struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	RestaurantID          kernel.UUID
	DeliveryAddress       string
	Phone                 string
	Notes                 string
	Status                Status
	Items                 []ItemSnapshot
	Total                 decimal.Decimal
	OrderDate             time.Time
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Version               int
}

// ItemSnapshot is the persisted state of one order line.
type ItemSnapshot struct {
	FoodItemID kernel.UUID
	Name       string
	Price      decimal.Decimal
	Quantity   int
}

// RestoreOrder rebuilds an aggregate from storage and re-checks its invariants,
// including that the stored total matches the stored items.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		notes:                 s.Notes,
		orderDate:             s.OrderDate,
		estimatedDeliveryTime: s.EstimatedDeliveryTime,
		actualDeliveryTime:    s.ActualDeliveryTime,
		version:               s.Version,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(s.ID, s.CustomerID, s.RestaurantID),
		o.setDeliveryAddress(s.DeliveryAddress),
		o.setPhone(s.Phone),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = s.Status

	o.items = make([]Item, 0, len(s.Items))
	for _, is := range s.Items {
		product, err := NewProduct(is.FoodItemID, s.RestaurantID, is.Name, is.Price)
		if err != nil {
			return nil, err
		}
		if err = validateQuantity(is.Quantity); err != nil {
			return nil, err
		}
		if o.indexOf(is.FoodItemID) >= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("duplicate line for item %s", is.FoodItemID))
		}
		o.items = append(o.items, Item{product: product, quantity: is.Quantity})
	}
	o.recalculateTotal()

	if !o.total.Equal(s.Total) {
		return nil, ErrTotalMismatch
	}

	return o, nil
}

// Snapshot returns the persistable state of the order. RestoreOrder(o.Snapshot())
// yields an equal aggregate.
func (o *Order) Snapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, ItemSnapshot{
			FoodItemID: item.product.foodItemID,
			Name:       item.product.name,
			Price:      item.product.price,
			Quantity:   item.quantity,
		})
	}

	return Snapshot{
		ID:                    o.id,
		CustomerID:            o.customerID,
		RestaurantID:          o.restaurantID,
		DeliveryAddress:       o.deliveryAddress,
		Phone:                 o.phone,
		Notes:                 o.notes,
		Status:                o.status,
		Items:                 items,
		Total:                 o.total,
		OrderDate:             o.orderDate,
		EstimatedDeliveryTime: copyTime(o.estimatedDeliveryTime),
		ActualDeliveryTime:    copyTime(o.actualDeliveryTime),
		Version:               o.version,
	}
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) CustomerID() kernel.UUID   { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }
func (o *Order) DeliveryAddress() string   { return o.deliveryAddress }
func (o *Order) Phone() string             { return o.phone }
func (o *Order) Notes() string             { return o.notes }
func (o *Order) Status() Status            { return o.status }
func (o *Order) Total() decimal.Decimal    { return o.total }
func (o *Order) OrderDate() time.Time      { return o.orderDate }
func (o *Order) Version() int              { return o.version }

// SetVersion records the version written by a repository.
func (o *Order) SetVersion(version int) {
	o.version = version
}

func (o *Order) EstimatedDeliveryTime() *time.Time {
	return copyTime(o.estimatedDeliveryTime)
}

func (o *Order) ActualDeliveryTime() *time.Time {
	return copyTime(o.actualDeliveryTime)
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line for foodItemID, if any.
func (o *Order) Item(foodItemID kernel.UUID) (Item, bool) {
	if i := o.indexOf(foodItemID); i >= 0 {
		return o.items[i], true
	}
	return Item{}, false
}

func (o *Order) IsEmpty() bool {
	return len(o.items) == 0
}

// TotalItems is the sum of all line quantities.
func (o *Order) TotalItems() int {
	n := 0
	for _, item := range o.items {
		n += item.quantity
	}
	return n
}

// CanBeCancelled reports whether the order is PENDING, CONFIRMED or PREPARING.
func (o *Order) CanBeCancelled() bool {
	return o.status.CanBeCancelled()
}

// StockReserved reports whether stock was decremented for this order and not restored yet.
func (o *Order) StockReserved() bool {
	return o.status.HoldsStock()
}

// AddItem puts quantity units of product in the cart. Adding a product that is
// already in the cart increments its line; the line keeps its first price snapshot.
func (o *Order) AddItem(product Product, quantity int) error {
	if err := o.checkLine(product, quantity); err != nil {
		return err
	}

	if i := o.indexOf(product.foodItemID); i >= 0 {
		o.items[i].quantity += quantity
	} else {
		o.items = append(o.items, Item{product: product, quantity: quantity})
	}

	o.recalculateTotal()
	return nil
}

// SetItemQuantity sets the line of product to exactly quantity. A quantity of
// zero or less removes the line.
func (o *Order) SetItemQuantity(product Product, quantity int) error {
	if quantity <= 0 {
		if err := product.Validate(); err != nil {
			return err
		}
		return o.RemoveItem(product.foodItemID)
	}

	if err := o.checkLine(product, quantity); err != nil {
		return err
	}

	if i := o.indexOf(product.foodItemID); i >= 0 {
		o.items[i].quantity = quantity
	} else {
		o.items = append(o.items, Item{product: product, quantity: quantity})
	}

	o.recalculateTotal()
	return nil
}

// RemoveItem drops the line for foodItemID. Removing an absent item is a no-op.
func (o *Order) RemoveItem(foodItemID kernel.UUID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}
	if err := o.EnsureEditable(); err != nil {
		return err
	}

	if i := o.indexOf(foodItemID); i >= 0 {
		o.items = append(o.items[:i], o.items[i+1:]...)
	}

	o.recalculateTotal()
	return nil
}

// Confirm moves a non-empty PENDING order to CONFIRMED and sets the estimated
// delivery time. The caller is responsible for decrementing stock in the same
// unit of work.
func (o *Order) Confirm(now time.Time) error {
	return o.TransitionTo(Confirmed, now)
}

// Cancel moves the order to CANCELLED and records reason in the notes. A blank
// reason leaves the notes as they were; callers acting for a customer go
// through the cancel command, which requires one. The caller restores stock
// when StockReserved was true before the call.
func (o *Order) Cancel(reason string) error {
	if !o.CanBeCancelled() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order cannot be cancelled, current status: %s", o.status),
		)
	}

	if err := o.TransitionTo(Cancelled, time.Time{}); err != nil {
		return err
	}
	if strings.TrimSpace(reason) != "" {
		o.notes = reason
	}
	return nil
}

// TransitionTo applies one step of the state machine. Confirming requires
// items and stamps the estimated delivery time; delivering stamps the actual
// delivery time.
func (o *Order) TransitionTo(to Status, now time.Time) error {
	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	switch next {
	case Confirmed:
		if o.IsEmpty() {
			return errs.NewInvalidStateError("cannot confirm order without items")
		}
		eta := now.Add(EstimatedDeliveryWindow)
		o.estimatedDeliveryTime = &eta
	case Delivered:
		delivered := now
		o.actualDeliveryTime = &delivered
	}

	o.status = next
	return nil
}

func (o *Order) checkLine(product Product, quantity int) error {
	if err := errors.Join(product.Validate(), validateQuantity(quantity)); err != nil {
		return err
	}
	if err := o.EnsureEditable(); err != nil {
		return err
	}
	if !product.restaurantID.IsEqual(o.restaurantID) {
		return ErrItemFromAnotherRestaurant
	}
	return nil
}

// EnsureEditable fails unless the order is PENDING, the only status in which
// items may change.
func (o *Order) EnsureEditable() error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("cannot modify order with status: %s", o.status))
	}
	return nil
}

func (o *Order) indexOf(foodItemID kernel.UUID) int {
	for i, item := range o.items {
		if item.product.foodItemID.IsEqual(foodItemID) {
			return i
		}
	}
	return -1
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
}

func (o *Order) setIDs(id, customerID, restaurantID kernel.UUID) error {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.customerID = customerID
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
