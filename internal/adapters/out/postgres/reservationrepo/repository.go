package reservationrepo

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM.
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GORM reservation repository.
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Add saves a new reservation record to the database.
func (r *GormReservationRepository) Add(ctx context.Context, aggregate *product.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing reservation record to the database.
func (r *GormReservationRepository) Update(ctx context.Context, aggregate *product.Reservation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).
		Where("id = ?", dto.ID).
		Select("Status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reservation", aggregate.ID().String())
	}

	return nil
}

// GetReservedByOrder retrieves the records of an order still in the Reserved
// status, sorted by product.
func (r *GormReservationRepository) GetReservedByOrder(ctx context.Context, orderID kernel.UUID) ([]*product.Reservation, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReservationDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), string(product.ReservationStatusReserved)).
		Order("product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reservations := make([]*product.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, record)
	}

	return reservations, nil
}
