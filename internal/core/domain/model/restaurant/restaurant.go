// Package restaurant models the part of a restaurant the order engine depends on:
// its identity and whether it currently accepts orders.
package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Status is the approval state of a restaurant. Only Approved restaurants are orderable.
type Status int

const (
	UnknownStatus Status = iota
	PendingApproval
	Approved
	Suspended
	Rejected
)

var statusNames = map[Status]string{
	PendingApproval: "PENDING_APPROVAL",
	Approved:        "APPROVED",
	Suspended:       "SUSPENDED",
	Rejected:        "REJECTED",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("restaurant status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus accepts the names returned by String, case-insensitively.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("restaurant status", fmt.Errorf("%q is not a valid status", s))
}

// Restaurant is a read model owned by the restaurant subsystem.
type Restaurant struct {
	id     kernel.UUID
	name   string
	status Status
	guard  guard.ConstructorGuard
}

func NewRestaurant(id kernel.UUID, name string, status Status) (*Restaurant, error) {
	r := &Restaurant{guard: guard.NewConstructorGuard()}

	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(id.Validate(), nameErr, status.Validate()); err != nil {
		return nil, err
	}

	r.id = id
	r.name = name
	r.status = status
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Status() Status {
	return r.status
}

// IsOrderable reports whether orders may be created for or placed at this restaurant.
func (r *Restaurant) IsOrderable() bool {
	return r.status == Approved
}

// EnsureOrderable returns an invalid-argument error when the restaurant does not accept orders.
func (r *Restaurant) EnsureOrderable() error {
	if !r.IsOrderable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurant",
			fmt.Errorf("restaurant is not accepting orders, current status: %s", r.status),
		)
	}
	return nil
}
