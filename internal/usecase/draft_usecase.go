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
	ErrDraftNotFound  = errors.New("draft not found")
	ErrInvalidDraftID = errors.New("invalid draft id")
	// ErrOrderNumberImmutable is returned when an edit session tries to renumber its order.
	ErrOrderNumberImmutable = errors.New("order number cannot change after save")
)

// DraftView is a draft together with the warnings derived from it.
type DraftView struct {
	Draft    *orderform.Draft
	Warnings []orderform.Warning
}

// IDraftUseCase runs server-side editing sessions of the order form. Every
// mutation returns the fresh warnings so the caller never derives them.
type IDraftUseCase interface {
	Start(ctx context.Context, tenantID, orderID string) (DraftView, error)
	Get(ctx context.Context, tenantID, id string) (DraftView, error)
	SetFields(ctx context.Context, tenantID, id string, values map[orderform.Field]string) (DraftView, error)
	Adjust(ctx context.Context, tenantID, id string, field orderform.Field, delta float64) (DraftView, error)
	Blur(ctx context.Context, tenantID, id string, field orderform.Field) (DraftView, error)
	SetOrderNumber(ctx context.Context, tenantID, id string, n int) (DraftView, error)
	Save(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error)
	Discard(ctx context.Context, tenantID, id string) error
}

type DraftUseCase struct {
	drafts interfaces.IDraftRepository
	orders IServiceOrderUseCase
	now    func() time.Time
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(drafts interfaces.IDraftRepository, orders IServiceOrderUseCase) *DraftUseCase {
	return &DraftUseCase{drafts: drafts, orders: orders, now: time.Now}
}

// Start opens a blank form with the suggested order number, or an edit
// session of an existing order when orderID is set.
func (u *DraftUseCase) Start(ctx context.Context, tenantID, orderID string) (DraftView, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return DraftView{}, ErrInvalidTenantID
	}

	now := u.now()
	var d *orderform.Draft
	if orderID = strings.TrimSpace(orderID); orderID != "" {
		o, err := u.orders.GetByID(ctx, tenantID, orderID)
		if err != nil {
			return DraftView{}, err
		}
		d = orderform.LoadDraft(o, now)
	} else {
		next, err := u.orders.NextOrderNumber(ctx, tenantID)
		if err != nil {
			return DraftView{}, err
		}
		d = orderform.NewDraft(tenantID, now, next)
	}
	d.ID = uuid.NewString()

	if err := u.drafts.Save(ctx, d); err != nil {
		return DraftView{}, err
	}
	log.Printf("[draft][usecase] started tenant_id=%s draft_id=%s order_id=%s", tenantID, d.ID, d.OrderID)
	return view(d), nil
}

func (u *DraftUseCase) Get(ctx context.Context, tenantID, id string) (DraftView, error) {
	d, err := u.load(ctx, tenantID, id)
	if err != nil {
		return DraftView{}, err
	}
	return view(d), nil
}

// SetFields applies every value in one go; nothing is stored when any field
// is unknown.
func (u *DraftUseCase) SetFields(ctx context.Context, tenantID, id string, values map[orderform.Field]string) (DraftView, error) {
	return u.mutate(ctx, tenantID, id, func(d *orderform.Draft) error {
		for f, v := range values {
			if err := d.SetField(f, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *DraftUseCase) Adjust(ctx context.Context, tenantID, id string, field orderform.Field, delta float64) (DraftView, error) {
	return u.mutate(ctx, tenantID, id, func(d *orderform.Draft) error {
		_, err := d.AdjustOpticalField(field, delta)
		return err
	})
}

func (u *DraftUseCase) Blur(ctx context.Context, tenantID, id string, field orderform.Field) (DraftView, error) {
	return u.mutate(ctx, tenantID, id, func(d *orderform.Draft) error {
		_, err := d.ValidateOnBlur(field)
		return err
	})
}

func (u *DraftUseCase) SetOrderNumber(ctx context.Context, tenantID, id string, n int) (DraftView, error) {
	return u.mutate(ctx, tenantID, id, func(d *orderform.Draft) error {
		if d.OrderID != "" {
			return ErrOrderNumberImmutable
		}
		return d.SetOrderNumber(n)
	})
}

// Save persists the draft: an insert for a new order, a full-record update
// for an edit session. The draft is discarded only after a successful write.
func (u *DraftUseCase) Save(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	d, err := u.load(ctx, tenantID, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	snapshot := d.Snapshot()

	var saved entities.ServiceOrder
	if d.OrderID == "" {
		saved, err = u.orders.Create(ctx, d.TenantID, snapshot)
	} else {
		saved, err = u.orders.Update(ctx, d.TenantID, d.OrderID, snapshot)
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if err := u.drafts.Delete(ctx, d.TenantID, d.ID); err != nil {
		log.Printf("[draft][usecase] discard after save failed draft_id=%s err=%v", d.ID, err)
	}
	log.Printf("[draft][usecase] saved draft_id=%s order_id=%s order_number=%d", d.ID, saved.ID, saved.OrderNumber)
	return saved, nil
}

func (u *DraftUseCase) Discard(ctx context.Context, tenantID, id string) error {
	d, err := u.load(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return u.drafts.Delete(ctx, d.TenantID, d.ID)
}

func (u *DraftUseCase) load(ctx context.Context, tenantID, id string) (*orderform.Draft, error) {
	tenantID = strings.TrimSpace(tenantID)
	id = strings.TrimSpace(id)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if id == "" {
		return nil, ErrInvalidDraftID
	}
	d, err := u.drafts.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDraftNotFound
	}
	return d, nil
}

// mutate runs fn on a copy of the stored draft and stores it only when fn
// succeeds.
func (u *DraftUseCase) mutate(ctx context.Context, tenantID, id string, fn func(d *orderform.Draft) error) (DraftView, error) {
	d, err := u.load(ctx, tenantID, id)
	if err != nil {
		return DraftView{}, err
	}
	d = d.Clone()
	if err := fn(d); err != nil {
		return DraftView{}, err
	}
	d.UpdatedAt = u.now()
	if err := u.drafts.Save(ctx, d); err != nil {
		return DraftView{}, err
	}
	return view(d), nil
}

func view(d *orderform.Draft) DraftView {
	return DraftView{Draft: d, Warnings: orderform.DeriveWarnings(d)}
}
