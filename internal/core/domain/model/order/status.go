package order

import (
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Allowed transitions:
//
//	Pending    -> Processing, Cancelled
//	Processing -> Shipped, Cancelled
//	Shipped    -> Delivered
//	Delivered  -> (terminal)
//	Cancelled  -> (terminal)
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusProcessing
	StatusShipped
	StatusDelivered
	StatusCancelled
)

var statusStrings = map[Status]string{
	StatusUnknown:    "Unknown",
	StatusPending:    "Pending",
	StatusProcessing: "Processing",
	StatusShipped:    "Shipped",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

var stringStatuses = map[string]Status{
	"Pending":    StatusPending,
	"Processing": StatusProcessing,
	"Shipped":    StatusShipped,
	"Delivered":  StatusDelivered,
	"Cancelled":  StatusCancelled,
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	status, ok := stringStatuses[s]
	if !ok {
		return StatusUnknown, errs.NewValueIsInvalidError("status")
	}
	return status, nil
}

func (s Status) String() string {
	name, ok := statusStrings[s]
	if !ok {
		return "Unknown"
	}
	return name
}

func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsRequiredError("status")
	}
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsCancellable reports whether an order in this status may still be cancelled.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusProcessing
}
