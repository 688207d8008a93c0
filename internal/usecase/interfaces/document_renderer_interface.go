package interfaces

import (
	"context"

	"opticai/internal/domain/document"
	"opticai/internal/domain/entities"
)

// IDocumentRenderer turns an order snapshot into a printable file.
type IDocumentRenderer interface {
	Render(ctx context.Context, kind document.Kind, order entities.ServiceOrder, tenant entities.Tenant) (document.Document, error)
}
