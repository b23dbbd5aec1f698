// Package reservationrepo persists the per-line stock reservation records
// written at checkout. Cancellation reads back only the rows still in the
// Reserved status, which is what makes a repeated release a no-op.
package reservationrepo

import (
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for persisting stock
// reservations.
type ReservationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	Status    string `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "reservations".
func (ReservationDTO) TableName() string {
	return "reservations"
}

func fromDomain(aggregate *product.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		ProductID: aggregate.ProductID().Bytes(),
		Quantity:  aggregate.Quantity(),
		Status:    string(aggregate.Status()),
	}
}

func toDomain(dto ReservationDTO) (*product.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreReservation(id, orderID, productID, dto.Quantity,
		product.ReservationStatus(dto.Status))
}
