package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> READY ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │             │
//	   └────────────┴─────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Every legal step is listed in the
// transitions table; anything absent from it is rejected.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	OutForDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:        "PENDING",
	Confirmed:      "CONFIRMED",
	Preparing:      "PREPARING",
	Ready:          "READY",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
}

var transitions = map[Status]map[Status]struct{}{
	Pending:        {Confirmed: {}, Cancelled: {}},
	Confirmed:      {Preparing: {}, Cancelled: {}},
	Preparing:      {Ready: {}, Cancelled: {}},
	Ready:          {OutForDelivery: {}},
	OutForDelivery: {Delivered: {}},
	Delivered:      {},
	Cancelled:      {},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, OutForDelivery, Delivered, Cancelled}
}

// ActiveStatuses returns the non-terminal statuses, PENDING through OUT_FOR_DELIVERY.
func ActiveStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, OutForDelivery}
}

// ParseStatus accepts the names produced by String, case-insensitively.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate rejects Unknown and out-of-range values read from storage or transports.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// CanTransitionTo reports whether to is a legal direct successor of s.
func (s Status) CanTransitionTo(to Status) bool {
	_, ok := transitions[s][to]
	return ok
}

// TransitionTo returns to if the step is legal.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("invalid status transition from %s to %s", s, to),
		)
	}
	return to, nil
}

// CanBeCancelled is true for PENDING, CONFIRMED and PREPARING.
func (s Status) CanBeCancelled() bool {
	return s.CanTransitionTo(Cancelled)
}

// IsTerminal is true for DELIVERED and CANCELLED.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive is true for PENDING through OUT_FOR_DELIVERY.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// HoldsStock is true for the statuses in which the order's stock has been
// decremented and not restored.
func (s Status) HoldsStock() bool {
	switch s {
	case Confirmed, Preparing, Ready, OutForDelivery:
		return true
	default:
		return false
	}
}
