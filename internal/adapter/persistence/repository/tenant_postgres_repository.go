package repository

import (
	"context"
	"errors"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TenantPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ITenantRepository = (*TenantPostgresRepository)(nil)

func NewTenantPostgresRepository(pool *pgxpool.Pool) *TenantPostgresRepository {
	return &TenantPostgresRepository{pool: pool}
}

func (r *TenantPostgresRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	var t entities.Tenant
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, coalesce(logo_url, ''), coalesce(endereco, ''),
		       coalesce(numero, ''), coalesce(telefone, ''), created_at
		FROM tenants WHERE id::text = $1`, id,
	).Scan(&t.ID, &t.Name, &t.LogoURL, &t.Address, &t.Number, &t.Phone, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Tenant{}, nil
	}
	if err != nil {
		return entities.Tenant{}, err
	}
	return t, nil
}

type ProfilePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IProfileRepository = (*ProfilePostgresRepository)(nil)

func NewProfilePostgresRepository(pool *pgxpool.Pool) *ProfilePostgresRepository {
	return &ProfilePostgresRepository{pool: pool}
}

func (r *ProfilePostgresRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	var (
		p    entities.Profile
		role string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, tenant_id::text, role, created_at FROM profiles WHERE user_id = $1`, userID,
	).Scan(&p.UserID, &p.TenantID, &role, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Profile{}, nil
	}
	if err != nil {
		return entities.Profile{}, err
	}
	p.Role = entities.ProfileRole(role)
	return p, nil
}
