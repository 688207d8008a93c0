package repository

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"opticai/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var postgresSchema string

// EnsurePostgresSchema creates the tables used by the Postgres repositories
// when they do not exist yet.
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, postgresSchema)
	return err
}

// orderColumns lists the data columns of ordens in a fixed order. Values
// travel as text and are cast to the column type on the server.
var orderColumns = []string{
	entities.ColumnClientName,
	entities.ColumnClientPhone,
	entities.ColumnTaxID,
	entities.ColumnAddress,
	entities.ColumnBirthDate,
	entities.ColumnSaleDate,
	entities.ColumnDeliveryDate,
	entities.ColumnSphereRight,
	entities.ColumnCylinderRight,
	entities.ColumnAxisRight,
	entities.ColumnDNPRight,
	entities.ColumnHeightRight,
	entities.ColumnSphereLeft,
	entities.ColumnCylinderLeft,
	entities.ColumnAxisLeft,
	entities.ColumnDNPLeft,
	entities.ColumnHeightLeft,
	entities.ColumnAddition,
	entities.ColumnLensType,
	entities.ColumnLensDescription,
	entities.ColumnTotalValue,
	entities.ColumnPaymentMethod,
	entities.ColumnInstallments,
	entities.ColumnPaymentStatus,
	entities.ColumnGeneralNote,
	entities.ColumnOrderDescription,
	entities.ColumnClientNote,
	entities.ColumnPaymentReference,
}

var orderColumnTypes = map[string]string{
	entities.ColumnBirthDate:    "date",
	entities.ColumnSaleDate:     "date",
	entities.ColumnDeliveryDate: "date",
	entities.ColumnTotalValue:   "numeric",
	entities.ColumnInstallments: "integer",
	entities.ColumnArrivedAt:    "timestamptz",
}

// placeholder renders parameter n for col, casting through text when the
// column is not textual.
func placeholder(col string, n int) string {
	if t, ok := orderColumnTypes[col]; ok {
		return fmt.Sprintf("$%d::text::%s", n, t)
	}
	return fmt.Sprintf("$%d", n)
}

func orderSelectList() string {
	cols := make([]string, 0, len(orderColumns)+6)
	cols = append(cols, "id::text", "tenant_id::text", entities.ColumnOrderNumber)
	for _, c := range orderColumns {
		cols = append(cols, c+"::text")
	}
	cols = append(cols, entities.ColumnArrivedAt, entities.ColumnCreatedAt, entities.ColumnUpdatedAt)
	return strings.Join(cols, ", ")
}

func scanOrder(row pgx.Row) (entities.ServiceOrder, error) {
	var o entities.ServiceOrder
	values := make([]*string, len(orderColumns))
	dest := []any{&o.ID, &o.TenantID, &o.OrderNumber}
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &o.ArrivedAt, &o.CreatedAt, &o.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return entities.ServiceOrder{}, err
	}

	fields := make(entities.OrderFields, len(orderColumns))
	for i, c := range orderColumns {
		fields[c] = values[i]
	}
	o.ApplyFields(fields)
	return o, nil
}

func orderInsertArgs(o entities.ServiceOrder) (string, []any) {
	fields := o.EditableFields()
	if o.PaymentReference != "" {
		ref := o.PaymentReference
		fields[entities.ColumnPaymentReference] = &ref
	}

	cols := []string{"id", "tenant_id", entities.ColumnOrderNumber}
	args := []any{o.ID, o.TenantID, o.OrderNumber}
	marks := []string{"$1::text::uuid", "$2::text::uuid", "$3"}
	for _, c := range orderColumns {
		cols = append(cols, c)
		args = append(args, fields[c])
		marks = append(marks, placeholder(c, len(args)))
	}
	cols = append(cols, entities.ColumnArrivedAt, entities.ColumnCreatedAt, entities.ColumnUpdatedAt)
	args = append(args, o.ArrivedAt, o.CreatedAt, o.UpdatedAt)
	n := len(args)
	marks = append(marks, fmt.Sprintf("$%d", n-2), fmt.Sprintf("$%d", n-1), fmt.Sprintf("$%d", n))

	sql := fmt.Sprintf("INSERT INTO ordens (%s) VALUES (%s)", strings.Join(cols, ", "), strings.Join(marks, ", "))
	return sql, args
}
