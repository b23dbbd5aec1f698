package services

import (
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"
)

// ReservationLine is one product/quantity pair to reserve or release.
type ReservationLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// LowStockAlert reports a product whose stock dropped to or below its
// threshold as a result of a reservation.
type LowStockAlert struct {
	ProductID   kernel.UUID
	ProductName string
	Remaining   int
}

// InventoryLedger is a domain service that applies reservations and releases
// across a set of product aggregates as a single all-or-nothing operation.
//
// Business rules:
//   - A reservation either succeeds for every line or changes nothing
//   - Every requested product must be present in the working set
//   - Reserving may push products to their low stock threshold; the resulting
//     alerts are returned to the caller to notify after commit
//
// The ledger mutates the aggregates only; persistence and row locking are the
// caller's concern.
type InventoryLedger struct{}

func NewInventoryLedger() InventoryLedger {
	return InventoryLedger{}
}

// Reserve decrements stock for every line. All availability checks run before
// any stock is touched, so an insufficient line leaves the whole set
// unchanged. Returned alerts list products at or below their threshold after
// the reservation.
func (l InventoryLedger) Reserve(products []*product.Product,
	lines []ReservationLine) ([]LowStockAlert, error) {
	index, err := indexProducts(products)
	if err != nil {
		return nil, err
	}

	wanted, err := sumLines(lines)
	if err != nil {
		return nil, err
	}

	for id, qty := range wanted {
		p, ok := index[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productID", id)
		}
		if qty > p.Stock() {
			return nil, product.NewInsufficientStockError(p.ID(), p.Stock(), qty)
		}
	}

	var alerts []LowStockAlert
	for id, qty := range wanted {
		p := index[id]
		if err := p.Reserve(qty); err != nil {
			return nil, err
		}
		if p.IsLowStock() {
			alerts = append(alerts, LowStockAlert{
				ProductID:   p.ID(),
				ProductName: p.Name(),
				Remaining:   p.Stock(),
			})
		}
	}

	return alerts, nil
}

// Release returns previously reserved stock. Lines for products missing from
// the working set fail the whole release; callers pass only lines that are
// still marked reserved, which makes repeated releases no-ops.
func (l InventoryLedger) Release(products []*product.Product,
	lines []ReservationLine) error {
	index, err := indexProducts(products)
	if err != nil {
		return err
	}

	returned, err := sumLines(lines)
	if err != nil {
		return err
	}

	for id := range returned {
		if _, ok := index[id]; !ok {
			return errs.NewObjectNotFoundError("productID", id)
		}
	}

	for id, qty := range returned {
		if err := index[id].Release(qty); err != nil {
			return err
		}
	}

	return nil
}

func indexProducts(products []*product.Product) (map[string]*product.Product, error) {
	index := make(map[string]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		index[p.ID().String()] = p
	}
	return index, nil
}

// sumLines aggregates duplicate product lines into a single quantity per
// product so availability is checked against the combined demand.
func sumLines(lines []ReservationLine) (map[string]int, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	sums := make(map[string]int, len(lines))
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("productID", err)
		}
		if line.Quantity < 1 {
			return nil, errs.NewValueIsInvalidError("quantity")
		}
		sums[line.ProductID.String()] += line.Quantity
	}
	return sums, nil
}
