// Package orderrepo persists order aggregates together with their line
// items. Items live in their own table and are loaded with the order; the
// refund, when present, is flattened into nullable columns on the order row.
package orderrepo

import (
	"time"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed by customer and tracking identifier for the two main
// lookup paths.
type OrderDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID           uuid.UUID       `gorm:"type:uuid;index"`
	Items                []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status               int             `gorm:"index"`
	TrackingID           string          `gorm:"uniqueIndex"`
	QRCodePayload        string          `gorm:"type:text"`
	ShippingAddress      string
	AssignedDriverID     *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryConfirmation string
	PaymentMode          string
	PaymentStatus        string
	RefundID             *string
	RefundStatus         *string
	RefundAmount         *decimal.Decimal `gorm:"type:numeric(12,2)"`
	RefundedAt           *time.Time
	CreatedAt            time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in the order_items table.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	var driverID *uuid.UUID
	if id := aggregate.AssignedDriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		Items:                items,
		TotalAmount:          aggregate.TotalAmount(),
		Status:               int(aggregate.Status()),
		TrackingID:           aggregate.TrackingID(),
		QRCodePayload:        aggregate.QRCodePayload(),
		ShippingAddress:      aggregate.ShippingAddress(),
		AssignedDriverID:     driverID,
		DeliveryConfirmation: aggregate.DeliveryConfirmation(),
		PaymentMode:          string(aggregate.PaymentMode()),
		PaymentStatus:        string(aggregate.PaymentStatus()),
		CreatedAt:            aggregate.CreatedAt(),
	}

	if refund := aggregate.Refund(); refund != nil {
		refundID := refund.RefundID()
		refundStatus := string(refund.Status())
		refundAmount := refund.Amount()
		refundedAt := refund.RefundedAt()

		dto.RefundID = &refundID
		dto.RefundStatus = &refundStatus
		dto.RefundAmount = &refundAmount
		dto.RefundedAt = &refundedAt
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var driverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	var refund *order.Refund
	if dto.RefundID != nil && dto.RefundStatus != nil &&
		dto.RefundAmount != nil && dto.RefundedAt != nil {
		restored, refundErr := order.RestoreRefund(*dto.RefundID,
			order.RefundStatus(*dto.RefundStatus), *dto.RefundAmount, *dto.RefundedAt)
		if refundErr != nil {
			return nil, refundErr
		}
		refund = &restored
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		dto.TotalAmount,
		order.Status(dto.Status),
		dto.TrackingID,
		dto.QRCodePayload,
		dto.ShippingAddress,
		driverID,
		dto.DeliveryConfirmation,
		order.PaymentMode(dto.PaymentMode),
		order.PaymentStatus(dto.PaymentStatus),
		refund,
		dto.CreatedAt,
	)
}
