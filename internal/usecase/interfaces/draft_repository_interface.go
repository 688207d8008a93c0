package interfaces

import (
	"context"

	"opticai/internal/domain/orderform"
)

// IDraftRepository holds editing sessions between requests. Get returns nil
// when the draft does not exist or has expired.
type IDraftRepository interface {
	Save(ctx context.Context, d *orderform.Draft) error
	Get(ctx context.Context, tenantID, id string) (*orderform.Draft, error)
	Delete(ctx context.Context, tenantID, id string) error
}
