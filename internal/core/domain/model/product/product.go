package product

import (
	"errors"
	"fmt"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is applied when a product is created without an
// explicit replenishment threshold.
const DefaultLowStockThreshold = 5

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// InsufficientStockError reports a reservation that would drive stock negative.
// It carries the available and requested quantities so callers can surface a
// precise message to the client.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Have      int
	Want      int
}

func NewInsufficientStockError(productID kernel.UUID, have, want int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Have: have, Want: want}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: have %d, want %d", e.ProductID, e.Have, e.Want)
}

func (e *InsufficientStockError) Unwrap() error {
	return errs.ErrConflict
}

// Product is the aggregate owning a per-product stock counter. Its stock is
// mutated exclusively through Reserve and Release, which preserve the
// invariant that stock never goes negative. Catalog attributes (name, price)
// are owned by an external catalog collaborator and only carried here.
type Product struct {
	id                kernel.UUID
	name              string
	price             decimal.Decimal
	stock             int
	lowStockThreshold int

	guard guard.ConstructorGuard
}

// NewProduct creates a product with validated attributes.
// A negative threshold is rejected; zero is replaced by DefaultLowStockThreshold.
func NewProduct(id kernel.UUID, name string, price decimal.Decimal, stock, lowStockThreshold int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	if lowStockThreshold < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("lowStockThreshold",
			fmt.Errorf("%d is negative", lowStockThreshold))
	}
	if lowStockThreshold == 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	return &Product{
		id:                id,
		name:              name,
		price:             price,
		stock:             stock,
		lowStockThreshold: lowStockThreshold,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a product from persistence without applying the
// threshold default, so stored state round-trips exactly.
func RestoreProduct(id kernel.UUID, name string, price decimal.Decimal, stock, lowStockThreshold int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Product{
		id:                id,
		name:              name,
		price:             price,
		stock:             stock,
		lowStockThreshold: lowStockThreshold,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the currently available quantity.
func (p *Product) Stock() int {
	return p.stock
}

// LowStockThreshold returns the replenishment alert threshold.
func (p *Product) LowStockThreshold() int {
	return p.lowStockThreshold
}

// Reserve decrements stock by qty for an order line.
// Returns an InsufficientStockError when availability does not cover the
// request; stock is left untouched on any error.
func (p *Product) Reserve(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if p.stock < qty {
		return &InsufficientStockError{ProductID: p.id, Have: p.stock, Want: qty}
	}

	p.stock -= qty
	return nil
}

// Release returns qty units to stock, the compensating inverse of Reserve.
func (p *Product) Release(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	p.stock += qty
	return nil
}

// IsLowStock reports whether stock has reached the replenishment threshold.
func (p *Product) IsLowStock() bool {
	return p.stock <= p.lowStockThreshold
}
