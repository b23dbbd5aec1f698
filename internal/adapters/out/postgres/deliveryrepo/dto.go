// Package deliveryrepo persists the driver-facing delivery records created
// at driver assignment.
package deliveryrepo

import (
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// Each order has at most one delivery record.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DriverID    uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	Location    string
	OTP         string
	DeliveredAt *time.Time
}

// TableName overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		DriverID:    aggregate.DriverID().Bytes(),
		Status:      int(aggregate.Status()),
		Location:    aggregate.Location(),
		OTP:         aggregate.OTP(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, driverID,
		delivery.Status(dto.Status), dto.Location, dto.OTP, dto.DeliveredAt)
}
