package queries

import (
	"errors"
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var ErrGetDriverDeliveriesQueryIsNotConstructed = errors.New(
	"GetDriverDeliveriesQuery must be created via NewGetDriverDeliveriesQuery constructor",
)

// GetDriverDeliveriesQuery retrieves the deliveries assigned to a driver,
// including the destination address pulled from the order. Drivers use this
// as their work queue.
type GetDriverDeliveriesQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverDeliveriesQuery creates a work queue query for the given
// driver.
func NewGetDriverDeliveriesQuery(driverID kernel.UUID) (GetDriverDeliveriesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverDeliveriesQuery{}, err
	}

	return GetDriverDeliveriesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverDeliveriesQueryIsNotConstructed)
}

func (q GetDriverDeliveriesQuery) DriverID() kernel.UUID { return q.driverID }

// GetDriverDeliveriesQueryResponse is a single entry in a driver's work
// queue. DeliveredAt is nil while the parcel is still on the road.
type GetDriverDeliveriesQueryResponse struct {
	DeliveryID      kernel.UUID `json:"deliveryId"`
	OrderID         kernel.UUID `json:"orderId"`
	TrackingID      string      `json:"trackingId"`
	Status          string      `json:"status"`
	Location        string      `json:"location"`
	ShippingAddress string      `json:"shippingAddress"`
	DeliveredAt     *time.Time  `json:"deliveredAt,omitempty"`
}
