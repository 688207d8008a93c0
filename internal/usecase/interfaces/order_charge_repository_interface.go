package interfaces

import (
	"context"

	"opticai/internal/domain/entities"
)

// IOrderChargeRepository keeps every charge attempt for traceability.
type IOrderChargeRepository interface {
	Create(ctx context.Context, c entities.OrderCharge) (entities.OrderCharge, error)
	GetByID(ctx context.Context, id string) (entities.OrderCharge, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderCharge, error)
}
