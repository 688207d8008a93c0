package interfaces

import (
	"context"
	"errors"

	"opticai/internal/domain/entities"
)

// ErrDuplicateOrderNumber is returned by Insert when the tenant already has
// an order with the same number.
var ErrDuplicateOrderNumber = errors.New("duplicate order number")

// IServiceOrderRepository abstracts the row store behind service orders.
//
// The order service must be able to:
//   - insert one order and get the persisted row back
//   - list a tenant's orders by order number, highest first
//   - apply a partial update (arrival toggle, full-record edit save)
//
// A zero-value order (empty ID) means "not found".

type IServiceOrderRepository interface {
	Insert(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	ListByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error)
	UpdateFields(ctx context.Context, tenantID, id string, fields entities.OrderFields) (entities.ServiceOrder, error)
}
