package queries

import (
	"errors"

	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
)

var ErrGetOrderByTrackingQueryIsNotConstructed = errors.New(
	"GetOrderByTrackingQuery must be created via NewGetOrderByTrackingQuery constructor",
)

// GetOrderByTrackingQuery retrieves the public tracking projection for a
// single order. It is keyed by the opaque tracking identifier printed in the
// QR code, so anyone holding the code can follow the parcel without
// authenticating.
//
// Example:
//
//	query, err := NewGetOrderByTrackingQuery("a3f1c9e0-...")
//	if err != nil {
//	    return err
//	}
//
//	projection, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//
//	fmt.Printf("Order is %s at %s\n", projection.Status, projection.DeliveryLocation)
type GetOrderByTrackingQuery struct {
	trackingID string

	guard guard.ConstructorGuard
}

// NewGetOrderByTrackingQuery creates a tracking query for the given
// tracking identifier.
func NewGetOrderByTrackingQuery(trackingID string) (GetOrderByTrackingQuery, error) {
	if trackingID == "" {
		return GetOrderByTrackingQuery{}, errs.NewValueIsRequiredError("trackingID")
	}

	return GetOrderByTrackingQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackingQueryIsNotConstructed)
}

func (q GetOrderByTrackingQuery) TrackingID() string { return q.trackingID }

// GetOrderByTrackingQueryResponse is the public tracking projection. Anyone
// holding the tracking identifier can read it, so it carries no payment
// state, no shipping address and no confirmation code; the delivery fields
// are empty until a driver is assigned.
type GetOrderByTrackingQueryResponse struct {
	OrderID          string `json:"orderId"`
	TrackingID       string `json:"trackingId"`
	Status           string `json:"status"`
	QRCodePayload    string `json:"qrCodePayload"`
	DeliveryStatus   string `json:"deliveryStatus,omitempty"`
	DeliveryLocation string `json:"deliveryLocation,omitempty"`
}
