package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"opticai/internal/domain/document"
	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"
)

var ErrTenantNotFound = errors.New("tenant not found")

// IDocumentUseCase renders the lab and sale slips, either of a saved order
// or of a draft that was never persisted.
type IDocumentUseCase interface {
	RenderOrder(ctx context.Context, tenantID, orderID string, kind document.Kind) (document.Document, error)
	RenderDraft(ctx context.Context, tenantID, draftID string, kind document.Kind) (document.Document, error)
}

type DocumentUseCase struct {
	orders   interfaces.IServiceOrderRepository
	drafts   interfaces.IDraftRepository
	tenants  interfaces.ITenantRepository
	renderer interfaces.IDocumentRenderer
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(orders interfaces.IServiceOrderRepository, drafts interfaces.IDraftRepository, tenants interfaces.ITenantRepository, renderer interfaces.IDocumentRenderer) *DocumentUseCase {
	return &DocumentUseCase{orders: orders, drafts: drafts, tenants: tenants, renderer: renderer}
}

func (u *DocumentUseCase) RenderOrder(ctx context.Context, tenantID, orderID string, kind document.Kind) (document.Document, error) {
	tenantID = strings.TrimSpace(tenantID)
	orderID = strings.TrimSpace(orderID)
	if tenantID == "" {
		return document.Document{}, ErrInvalidTenantID
	}
	if orderID == "" {
		return document.Document{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, tenantID, orderID)
	if err != nil {
		return document.Document{}, err
	}
	if o.ID == "" {
		return document.Document{}, ErrOrderNotFound
	}
	return u.render(ctx, kind, o)
}

func (u *DocumentUseCase) RenderDraft(ctx context.Context, tenantID, draftID string, kind document.Kind) (document.Document, error) {
	tenantID = strings.TrimSpace(tenantID)
	draftID = strings.TrimSpace(draftID)
	if tenantID == "" {
		return document.Document{}, ErrInvalidTenantID
	}
	if draftID == "" {
		return document.Document{}, ErrInvalidDraftID
	}
	d, err := u.drafts.Get(ctx, tenantID, draftID)
	if err != nil {
		return document.Document{}, err
	}
	if d == nil {
		return document.Document{}, ErrDraftNotFound
	}
	return u.render(ctx, kind, d.Snapshot())
}

func (u *DocumentUseCase) render(ctx context.Context, kind document.Kind, o entities.ServiceOrder) (document.Document, error) {
	if !kind.Valid() {
		return document.Document{}, document.ErrUnknownKind
	}
	tenant, err := u.tenants.GetByID(ctx, o.TenantID)
	if err != nil {
		return document.Document{}, err
	}
	if tenant.ID == "" {
		return document.Document{}, ErrTenantNotFound
	}

	doc, err := u.renderer.Render(ctx, kind, o, tenant)
	if err != nil {
		log.Printf("[document][usecase] render failed tenant_id=%s order_number=%d kind=%s err=%v", o.TenantID, o.OrderNumber, kind, err)
		return document.Document{}, err
	}
	log.Printf("[document][usecase] rendered tenant_id=%s filename=%s bytes=%d", o.TenantID, doc.Filename, len(doc.Data))
	return doc, nil
}
