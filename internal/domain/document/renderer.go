package document

import (
	"context"
	"fmt"
	"log"

	"opticai/internal/domain/entities"
)

// Renderer produces PDF documents. The fetcher is only used for tenant logos
// and may be nil, in which case every document gets the fallback glyph.
type Renderer struct {
	fetcher BinaryFetcher
}

func NewRenderer(fetcher BinaryFetcher) *Renderer {
	return &Renderer{fetcher: fetcher}
}

// Render resolves the tenant logo, lays out kind and returns the finished
// file. Any failure during layout is reported as ErrRenderFailed and no
// bytes are returned.
func (r *Renderer) Render(ctx context.Context, kind Kind, order entities.ServiceOrder, tenant entities.Tenant) (doc Document, err error) {
	if !kind.Valid() {
		return Document{}, ErrUnknownKind
	}
	defer func() {
		if rec := recover(); rec != nil {
			doc = Document{}
			err = fmt.Errorf("%w: %v", ErrRenderFailed, rec)
		}
	}()

	logo := ResolveLogo(ctx, r.fetcher, tenant.LogoURL)
	if !logo.Present() && tenant.LogoURL != "" {
		log.Printf("[document][renderer] logo unavailable, using fallback tenant_id=%s", tenant.ID)
	}

	surface := newPDFSurface()
	if err := Layout(kind, order, tenant, logo, surface); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	data, err := surface.output()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return Document{
		Filename:    Filename(kind, order.OrderNumber),
		ContentType: ContentTypePDF,
		Data:        data,
	}, nil
}
