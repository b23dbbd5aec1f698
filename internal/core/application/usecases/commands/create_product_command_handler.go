package commands

import (
	"context"

	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds products to the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context,
	cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(actor.RoleAdmin, actor.RoleWarehouse) {
		return actor.NewForbiddenError(cmd.Actor().Role, "manage the catalog")
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Stock(), cmd.LowStockThreshold())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
