package orderform

import "opticai/internal/domain/entities"

// NextOrderNumber suggests the number of a new order: one past the tenant's
// highest, or 1 for a tenant without orders.
func NextOrderNumber(existingMax int) int {
	if existingMax < 1 {
		return 1
	}
	return existingMax + 1
}

// MaxOrderNumber is the highest order number in orders, 0 when empty.
func MaxOrderNumber(orders []entities.ServiceOrder) int {
	max := 0
	for _, o := range orders {
		if o.OrderNumber > max {
			max = o.OrderNumber
		}
	}
	return max
}
