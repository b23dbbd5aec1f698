package queries

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverDeliveriesQueryHandler retrieves a driver's deliveries joined with
// the destination address of each order.
type GetDriverDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverDeliveriesQueryHandler creates a handler for driver work queue
// queries.
func NewGetDriverDeliveriesQueryHandler(db *gorm.DB) GetDriverDeliveriesQueryHandler {
	return GetDriverDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve the driver's deliveries, the open
// ones first and the completed ones in delivery order after them.
func (h GetDriverDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverDeliveriesQuery,
) ([]GetDriverDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetDriverDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			o.tracking_id,
			d.status,
			d.location,
			o.shipping_address,
			d.delivered_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.driver_id = ?
		ORDER BY d.delivered_at NULLS FIRST, d.id
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetDriverDeliveriesQueryResponse
		var id, orderID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderID,
			&entry.TrackingID,
			&status,
			&entry.Location,
			&entry.ShippingAddress,
			&entry.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.DeliveryID = deliveryID

		parcelOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = parcelOrderID

		entry.Status = delivery.Status(status).String()
		deliveries = append(deliveries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
