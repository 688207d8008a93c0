package repository

import (
	"context"
	"errors"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const orderChargeSelect = `SELECT id, order_id::text, tenant_id::text, num_os, amount::text, status, date,
	coalesce(provider_payload::text, '') FROM order_charges`

type OrderChargePostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IOrderChargeRepository = (*OrderChargePostgresRepository)(nil)

func NewOrderChargePostgresRepository(pool *pgxpool.Pool) *OrderChargePostgresRepository {
	return &OrderChargePostgresRepository{pool: pool}
}

func (r *OrderChargePostgresRepository) Create(ctx context.Context, c entities.OrderCharge) (entities.OrderCharge, error) {
	var payload *string
	if len(c.ProviderPayloadRaw) > 0 {
		s := string(c.ProviderPayloadRaw)
		payload = &s
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO order_charges (id, order_id, tenant_id, num_os, amount, status, date, provider_payload)
		VALUES ($1, $2::text::uuid, $3::text::uuid, $4, $5::text::numeric, $6, $7, $8::text::jsonb)`,
		c.ID, c.OrderID, c.TenantID, c.OrderNumber, c.Amount.StringFixed(2), string(c.Status), c.Date, payload,
	)
	if err != nil {
		return entities.OrderCharge{}, err
	}
	return c, nil
}

func (r *OrderChargePostgresRepository) GetByID(ctx context.Context, id string) (entities.OrderCharge, error) {
	c, err := scanOrderCharge(r.pool.QueryRow(ctx, orderChargeSelect+" WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.OrderCharge{}, nil
	}
	return c, err
}

func (r *OrderChargePostgresRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderCharge, error) {
	rows, err := r.pool.Query(ctx, orderChargeSelect+" WHERE order_id::text = $1 ORDER BY date", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entities.OrderCharge{}
	for rows.Next() {
		c, err := scanOrderCharge(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func scanOrderCharge(row pgx.Row) (entities.OrderCharge, error) {
	var (
		c       entities.OrderCharge
		amount  string
		status  string
		payload string
	)
	if err := row.Scan(&c.ID, &c.OrderID, &c.TenantID, &c.OrderNumber, &amount, &status, &c.Date, &payload); err != nil {
		return entities.OrderCharge{}, err
	}
	c.Amount, _ = decimal.NewFromString(amount)
	c.Status = entities.ChargeStatus(status)
	if payload != "" {
		c.ProviderPayloadRaw = []byte(payload)
	}
	return c, nil
}
