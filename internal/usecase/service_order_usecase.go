package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"opticai/internal/domain/entities"
	"opticai/internal/domain/orderform"
	"opticai/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound    = errors.New("service order not found")
	ErrInvalidTenantID  = errors.New("invalid tenant_id")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrOrderNumberTaken = errors.New("order number already in use")
)

// OrderListItem is one row of the management list.
type OrderListItem struct {
	Order entities.ServiceOrder
	Color entities.StatusColor
}

// OrderList is the filtered management list. Statistics always cover every
// order of the tenant, not only the filtered ones.
type OrderList struct {
	Items           []OrderListItem
	Statistics      entities.OrderStatistics
	NextOrderNumber int
}

// IServiceOrderUseCase exposes the service order lifecycle.
//
//   - new order form => NextOrderNumber()
//   - save of a new order => Create()
//   - management list (search, arrival, delivery date) => List()
//   - edit save from the list => Update()
//   - "chegou" checkbox => ToggleArrival()

type IServiceOrderUseCase interface {
	NextOrderNumber(ctx context.Context, tenantID string) (int, error)
	Create(ctx context.Context, tenantID string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, tenantID string, filter entities.OrderFilter) (OrderList, error)
	Update(ctx context.Context, tenantID, id string, o entities.ServiceOrder) (entities.ServiceOrder, error)
	ToggleArrival(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
	now  func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, now: time.Now}
}

func (u *ServiceOrderUseCase) NextOrderNumber(ctx context.Context, tenantID string) (int, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return 0, ErrInvalidTenantID
	}
	orders, err := u.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	return orderform.NextOrderNumber(orderform.MaxOrderNumber(orders)), nil
}

// Create revalidates the whole record and inserts it once. Nothing is
// written while any blocking error exists.
func (u *ServiceOrderUseCase) Create(ctx context.Context, tenantID string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.ServiceOrder{}, ErrInvalidTenantID
	}
	log.Printf("[order][usecase] create start tenant_id=%s order_number=%d", tenantID, o.OrderNumber)

	o.TenantID = tenantID
	if o.OrderNumber < 1 {
		next, err := u.NextOrderNumber(ctx, tenantID)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		o.OrderNumber = next
	}
	o = orderform.Normalize(o)
	if err := orderform.ValidateOrder(o); err != nil {
		log.Printf("[order][usecase] create refused tenant_id=%s err=%v", tenantID, err)
		return entities.ServiceOrder{}, err
	}

	now := u.now().UTC()
	o.ID = uuid.NewString()
	o.ArrivedAt = nil
	o.PaymentReference = ""
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.repo.Insert(ctx, o)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateOrderNumber) {
			log.Printf("[order][usecase] order number taken tenant_id=%s order_number=%d", tenantID, o.OrderNumber)
			return entities.ServiceOrder{}, ErrOrderNumberTaken
		}
		log.Printf("[order][usecase] insert failed tenant_id=%s err=%v", tenantID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] create success tenant_id=%s id=%s order_number=%d", tenantID, created.ID, created.OrderNumber)
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return entities.ServiceOrder{}, ErrInvalidTenantID
	}
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, tenantID string, filter entities.OrderFilter) (OrderList, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return OrderList{}, ErrInvalidTenantID
	}
	orders, err := u.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return OrderList{}, err
	}

	today := u.now()
	filtered := filter.Apply(orders)
	items := make([]OrderListItem, 0, len(filtered))
	for _, o := range filtered {
		items = append(items, OrderListItem{Order: o, Color: o.StatusColor(today)})
	}
	return OrderList{
		Items:           items,
		Statistics:      entities.ComputeStatistics(orders, today),
		NextOrderNumber: orderform.NextOrderNumber(orderform.MaxOrderNumber(orders)),
	}, nil
}

// Update is the full-record edit save. The order number and the tracking
// columns are not part of the edit.
func (u *ServiceOrderUseCase) Update(ctx context.Context, tenantID, id string, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	existing, err := u.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] update start tenant_id=%s id=%s", existing.TenantID, existing.ID)

	o.ID = existing.ID
	o.TenantID = existing.TenantID
	o.OrderNumber = existing.OrderNumber
	o = orderform.Normalize(o)
	if err := orderform.ValidateOrder(o); err != nil {
		log.Printf("[order][usecase] update refused id=%s err=%v", existing.ID, err)
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.UpdateFields(ctx, existing.TenantID, existing.ID, o.EditableFields())
	if err != nil {
		log.Printf("[order][usecase] update failed id=%s err=%v", existing.ID, err)
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// ToggleArrival marks the order as arrived now, or clears the mark.
func (u *ServiceOrderUseCase) ToggleArrival(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	existing, err := u.GetByID(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	var arrivedAt *time.Time
	if existing.ArrivedAt == nil {
		now := u.now().UTC()
		arrivedAt = &now
	}
	log.Printf("[order][usecase] toggle arrival id=%s arrived=%t", existing.ID, arrivedAt != nil)

	updated, err := u.repo.UpdateFields(ctx, existing.TenantID, existing.ID, entities.ArrivalFields(arrivedAt))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}
