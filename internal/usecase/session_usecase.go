package usecase

import (
	"context"
	"errors"
	"strings"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"
)

var (
	ErrUnauthenticated = errors.New("missing authenticated user")
	ErrProfileNotFound = errors.New("profile not found")
)

// Session is the tenant context every order operation runs in.
type Session struct {
	UserID  string
	Profile entities.Profile
	Tenant  entities.Tenant
}

// ISessionUseCase resolves user -> profile -> tenant.
type ISessionUseCase interface {
	Resolve(ctx context.Context, userID string) (Session, error)
}

type SessionUseCase struct {
	profiles interfaces.IProfileRepository
	tenants  interfaces.ITenantRepository
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(profiles interfaces.IProfileRepository, tenants interfaces.ITenantRepository) *SessionUseCase {
	return &SessionUseCase{profiles: profiles, tenants: tenants}
}

func (u *SessionUseCase) Resolve(ctx context.Context, userID string) (Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Session{}, ErrUnauthenticated
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	if p.UserID == "" || p.TenantID == "" {
		return Session{}, ErrProfileNotFound
	}

	t, err := u.tenants.GetByID(ctx, p.TenantID)
	if err != nil {
		return Session{}, err
	}
	if t.ID == "" {
		return Session{}, ErrTenantNotFound
	}
	return Session{UserID: userID, Profile: p, Tenant: t}, nil
}
