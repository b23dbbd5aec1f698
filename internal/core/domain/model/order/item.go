package order

import (
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"
	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem")

// Item is a single order line: a product, the quantity ordered and the unit
// price the product carried at the time the order was placed.
type Item struct {
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

func NewItem(productID kernel.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("unitPrice")
	}

	return Item{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,

		guard: guard.NewConstructorGuard(),
	}, nil
}

const maxItemQuantity = 1000

func (i Item) ProductID() kernel.UUID     { return i.productID }
func (i Item) Quantity() int              { return i.quantity }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// Subtotal is the line total: unit price times quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
