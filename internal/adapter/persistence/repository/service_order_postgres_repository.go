package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// ServiceOrderPostgresRepository persists ServiceOrder entities in the
// ordens table, unique on (tenant_id, num_os).
type ServiceOrderPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderPostgresRepository)(nil)

func NewServiceOrderPostgresRepository(pool *pgxpool.Pool) *ServiceOrderPostgresRepository {
	return &ServiceOrderPostgresRepository{pool: pool}
}

func (r *ServiceOrderPostgresRepository) Insert(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	sql, args := orderInsertArgs(o)
	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entities.ServiceOrder{}, interfaces.ErrDuplicateOrderNumber
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderPostgresRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrder, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+orderSelectList()+" FROM ordens WHERE tenant_id::text = $1 ORDER BY num_os DESC",
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entities.ServiceOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *ServiceOrderPostgresRepository) GetByID(ctx context.Context, tenantID, id string) (entities.ServiceOrder, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+orderSelectList()+" FROM ordens WHERE tenant_id::text = $1 AND id::text = $2",
		tenantID, id,
	)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ServiceOrder{}, nil
	}
	return o, err
}

func (r *ServiceOrderPostgresRepository) UpdateFields(ctx context.Context, tenantID, id string, fields entities.OrderFields) (entities.ServiceOrder, error) {
	sql, args, err := buildOrderUpdateSQL(tenantID, id, fields)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o, err := scanOrder(r.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.ServiceOrder{}, nil
	}
	return o, err
}

// buildOrderUpdateSQL renders one UPDATE ... RETURNING for a partial update.
// $1 and $2 are the tenant and order ids; columns follow in name order.
func buildOrderUpdateSQL(tenantID, id string, fields entities.OrderFields) (string, []any, error) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !entities.IsEditableColumn(col) {
			return "", nil, fmt.Errorf("%w: %s", ErrColumnNotUpdatable, col)
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := []any{tenantID, id}
	sets := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		args = append(args, fields[col])
		sets = append(sets, col+" = "+placeholder(col, len(args)))
	}
	sets = append(sets, entities.ColumnUpdatedAt+" = now()")

	sql := fmt.Sprintf(
		"UPDATE ordens SET %s WHERE tenant_id::text = $1 AND id::text = $2 RETURNING %s",
		strings.Join(sets, ", "), orderSelectList(),
	)
	return sql, args, nil
}
