package interfaces

import (
	"context"

	"opticai/internal/domain/entities"
)

// ITenantRepository reads tenant metadata. Tenants are never written here.
type ITenantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
}

// IProfileRepository maps an authenticated user to its profile.
type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
}
