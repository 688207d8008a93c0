package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestServiceOrder_EditableFieldsRoundTrip(t *testing.T) {
	src := ServiceOrder{
		ClientName:    "Maria",
		ClientPhone:   "(81) 9 8898-4547",
		SaleDate:      "2025-03-10",
		RightEye:      EyePrescription{Sphere: "+2.50", Cylinder: "-0.75", Axis: "90"},
		LensType:      LensTypeMultifocal,
		Addition:      "+2.00",
		TotalValue:    decimal.NewNullDecimal(decimal.RequireFromString("350.5")),
		PaymentMethod: PaymentMethodCredit,
		Installments:  3,
	}

	fields := src.EditableFields()
	if _, ok := fields[ColumnOrderNumber]; ok {
		t.Fatalf("order number must not be editable")
	}
	if fields[ColumnTaxID] != nil {
		t.Fatalf("expected empty tax id to clear the column")
	}
	if got := *fields[ColumnTotalValue]; got != "350.50" {
		t.Fatalf("expected 350.50 got %s", got)
	}

	var dst ServiceOrder
	dst.ApplyFields(fields)
	if dst.ClientName != "Maria" || dst.RightEye.Axis != "90" || dst.Installments != 3 || dst.LensType != LensTypeMultifocal {
		t.Fatalf("unexpected order: %+v", dst)
	}
	if !dst.TotalValue.Valid || !dst.TotalValue.Decimal.Equal(decimal.RequireFromString("350.50")) {
		t.Fatalf("unexpected total: %+v", dst.TotalValue)
	}
}

func TestArrivalFields(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	var o ServiceOrder
	o.ApplyFields(ArrivalFields(&at))
	if o.ArrivedAt == nil || !o.ArrivedAt.Equal(at) {
		t.Fatalf("expected arrival at %v got %v", at, o.ArrivedAt)
	}

	o.ApplyFields(ArrivalFields(nil))
	if o.ArrivedAt != nil {
		t.Fatalf("expected arrival cleared")
	}
}

func TestTenant_FullAddress(t *testing.T) {
	if got := (Tenant{Address: "Rua A", Number: "10"}).FullAddress(); got != "Rua A, 10" {
		t.Fatalf("unexpected address %q", got)
	}
	if got := (Tenant{Number: "10"}).FullAddress(); got != "" {
		t.Fatalf("expected empty address, got %q", got)
	}
}

func TestIsEditableColumn(t *testing.T) {
	for _, col := range []string{ColumnClientName, ColumnArrivedAt, ColumnTotalValue, ColumnPaymentReference} {
		if !IsEditableColumn(col) {
			t.Fatalf("expected %s editable", col)
		}
	}
	for _, col := range []string{ColumnID, ColumnTenantID, ColumnOrderNumber, "drop table"} {
		if IsEditableColumn(col) {
			t.Fatalf("expected %s not editable", col)
		}
	}
}
