package entities

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used by every date field of an order.
const DateLayout = "2006-01-02"

// LensType values are stored verbatim, matching the shop's existing rows.
type LensType string

const (
	LensTypeSingleVision LensType = "Visão Simples"
	LensTypeMultifocal   LensType = "Multifocal"
)

func (t LensType) Valid() bool {
	return t == LensTypeSingleVision || t == LensTypeMultifocal
}

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "dinheiro"
	PaymentMethodDebit  PaymentMethod = "debito"
	PaymentMethodCredit PaymentMethod = "credito"
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodOther  PaymentMethod = "outro"
)

// Label is the printable name of the method. Unknown values print as "Outro".
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Dinheiro"
	case PaymentMethodDebit:
		return "Débito"
	case PaymentMethodCredit:
		return "Crédito"
	case PaymentMethodPix:
		return "PIX"
	default:
		return "Outro"
	}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodDebit, PaymentMethodCredit, PaymentMethodPix, PaymentMethodOther:
		return true
	}
	return false
}

// PaymentStatus is either one of the known values or free text typed by the shop.
type PaymentStatus string

const (
	PaymentStatusPaid          PaymentStatus = "pago"
	PaymentStatusPayOnDelivery PaymentStatus = "pagar_na_entrega"
)

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPaid:
		return "Pago"
	case PaymentStatusPayOnDelivery:
		return "Pagar na entrega"
	default:
		return strings.TrimSpace(string(s))
	}
}

// EyePrescription holds the optometric values of one eye as typed (and
// corrected) on the form.
type EyePrescription struct {
	Sphere   string `json:"sphere"`
	Cylinder string `json:"cylinder"`
	Axis     string `json:"axis"`
	DNP      string `json:"dnp"`
	Height   string `json:"height"`
}

// ServiceOrder (OS) is one optical prescription order of a tenant.
//
// Storage model:
//   - DynamoDB: PK tenant_id, SK order_number, GSI id-index (PK id)
//   - Postgres: table ordens, unique (tenant_id, num_os)
//
// Dates are calendar dates in DateLayout; an empty string means "not set".
// Addition is shared by both eyes and only meaningful for multifocal lenses.
type ServiceOrder struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	OrderNumber int    `json:"order_number"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	TaxID       string `json:"tax_id"`
	Address     string `json:"address"`
	BirthDate   string `json:"birth_date"`

	SaleDate     string `json:"sale_date"`
	DeliveryDate string `json:"delivery_date"`

	RightEye EyePrescription `json:"right_eye"`
	LeftEye  EyePrescription `json:"left_eye"`
	Addition string          `json:"addition"`

	LensType        LensType `json:"lens_type"`
	LensDescription string   `json:"lens_description"`

	TotalValue    decimal.NullDecimal `json:"total_value"`
	PaymentMethod PaymentMethod       `json:"payment_method"`
	Installments  int                 `json:"installments"`
	PaymentStatus PaymentStatus       `json:"payment_status"`

	GeneralNote      string `json:"general_note"`
	OrderDescription string `json:"order_description"`
	ClientNote       string `json:"client_note"`

	ArrivedAt        *time.Time `json:"arrived_at"`
	PaymentReference string     `json:"payment_reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Column names shared by every store. They follow the shop's original
// table so both backends can be loaded from the same export.
const (
	ColumnID               = "id"
	ColumnTenantID         = "tenant_id"
	ColumnOrderNumber      = "num_os"
	ColumnClientName       = "cliente_nome"
	ColumnClientPhone      = "telefone_cliente"
	ColumnTaxID            = "cpf"
	ColumnAddress          = "endereco"
	ColumnBirthDate        = "data_nascimento"
	ColumnSaleDate         = "data_venda"
	ColumnDeliveryDate     = "data_entrega"
	ColumnSphereRight      = "esf_od"
	ColumnCylinderRight    = "cil_od"
	ColumnAxisRight        = "eixo_od"
	ColumnDNPRight         = "dnp_od"
	ColumnHeightRight      = "altura_od"
	ColumnSphereLeft       = "esf_oe"
	ColumnCylinderLeft     = "cil_oe"
	ColumnAxisLeft         = "eixo_oe"
	ColumnDNPLeft          = "dnp_oe"
	ColumnHeightLeft       = "altura_oe"
	ColumnAddition         = "adicao"
	ColumnLensType         = "tipo_lente"
	ColumnLensDescription  = "descricao_lente"
	ColumnTotalValue       = "valor_total"
	ColumnPaymentMethod    = "forma_pagamento"
	ColumnInstallments     = "credito_parcelas"
	ColumnPaymentStatus    = "status_pagamento"
	ColumnGeneralNote      = "observacao"
	ColumnOrderDescription = "descricao_pedido"
	ColumnClientNote       = "observacao_cliente"
	ColumnArrivedAt        = "data_chegada_real"
	ColumnPaymentReference = "referencia_pagamento"
	ColumnCreatedAt        = "created_at"
	ColumnUpdatedAt        = "updated_at"
)

// OrderFields is a partial update. A nil value clears the column.
type OrderFields map[string]*string

// EditableFields returns every column a full-record edit may overwrite.
// Identity columns (id, tenant, order number) are never included.
func (o ServiceOrder) EditableFields() OrderFields {
	f := OrderFields{
		ColumnClientName:       nullable(o.ClientName),
		ColumnClientPhone:      nullable(o.ClientPhone),
		ColumnTaxID:            nullable(o.TaxID),
		ColumnAddress:          nullable(o.Address),
		ColumnBirthDate:        nullable(o.BirthDate),
		ColumnSaleDate:         nullable(o.SaleDate),
		ColumnDeliveryDate:     nullable(o.DeliveryDate),
		ColumnSphereRight:      nullable(o.RightEye.Sphere),
		ColumnCylinderRight:    nullable(o.RightEye.Cylinder),
		ColumnAxisRight:        nullable(o.RightEye.Axis),
		ColumnDNPRight:         nullable(o.RightEye.DNP),
		ColumnHeightRight:      nullable(o.RightEye.Height),
		ColumnSphereLeft:       nullable(o.LeftEye.Sphere),
		ColumnCylinderLeft:     nullable(o.LeftEye.Cylinder),
		ColumnAxisLeft:         nullable(o.LeftEye.Axis),
		ColumnDNPLeft:          nullable(o.LeftEye.DNP),
		ColumnHeightLeft:       nullable(o.LeftEye.Height),
		ColumnAddition:         nullable(o.Addition),
		ColumnLensType:         nullable(string(o.LensType)),
		ColumnLensDescription:  nullable(o.LensDescription),
		ColumnPaymentMethod:    nullable(string(o.PaymentMethod)),
		ColumnPaymentStatus:    nullable(string(o.PaymentStatus)),
		ColumnGeneralNote:      nullable(o.GeneralNote),
		ColumnOrderDescription: nullable(o.OrderDescription),
		ColumnClientNote:       nullable(o.ClientNote),
		ColumnTotalValue:       nil,
		ColumnInstallments:     nil,
	}
	if o.TotalValue.Valid {
		f[ColumnTotalValue] = nullable(o.TotalValue.Decimal.StringFixed(2))
	}
	if o.Installments > 0 {
		f[ColumnInstallments] = nullable(strconv.Itoa(o.Installments))
	}
	return f
}

// ArrivalFields is the one-column update used by the arrival toggle.
func ArrivalFields(arrivedAt *time.Time) OrderFields {
	if arrivedAt == nil {
		return OrderFields{ColumnArrivedAt: nil}
	}
	return OrderFields{ColumnArrivedAt: nullable(arrivedAt.UTC().Format(time.RFC3339Nano))}
}

// ApplyFields copies a partial update onto o. Unknown columns are ignored.
func (o *ServiceOrder) ApplyFields(fields OrderFields) {
	for col, v := range fields {
		s := ""
		if v != nil {
			s = *v
		}
		switch col {
		case ColumnClientName:
			o.ClientName = s
		case ColumnClientPhone:
			o.ClientPhone = s
		case ColumnTaxID:
			o.TaxID = s
		case ColumnAddress:
			o.Address = s
		case ColumnBirthDate:
			o.BirthDate = s
		case ColumnSaleDate:
			o.SaleDate = s
		case ColumnDeliveryDate:
			o.DeliveryDate = s
		case ColumnSphereRight:
			o.RightEye.Sphere = s
		case ColumnCylinderRight:
			o.RightEye.Cylinder = s
		case ColumnAxisRight:
			o.RightEye.Axis = s
		case ColumnDNPRight:
			o.RightEye.DNP = s
		case ColumnHeightRight:
			o.RightEye.Height = s
		case ColumnSphereLeft:
			o.LeftEye.Sphere = s
		case ColumnCylinderLeft:
			o.LeftEye.Cylinder = s
		case ColumnAxisLeft:
			o.LeftEye.Axis = s
		case ColumnDNPLeft:
			o.LeftEye.DNP = s
		case ColumnHeightLeft:
			o.LeftEye.Height = s
		case ColumnAddition:
			o.Addition = s
		case ColumnLensType:
			o.LensType = LensType(s)
		case ColumnLensDescription:
			o.LensDescription = s
		case ColumnPaymentMethod:
			o.PaymentMethod = PaymentMethod(s)
		case ColumnPaymentStatus:
			o.PaymentStatus = PaymentStatus(s)
		case ColumnGeneralNote:
			o.GeneralNote = s
		case ColumnOrderDescription:
			o.OrderDescription = s
		case ColumnClientNote:
			o.ClientNote = s
		case ColumnPaymentReference:
			o.PaymentReference = s
		case ColumnTotalValue:
			o.TotalValue = decimal.NullDecimal{}
			if d, err := decimal.NewFromString(s); err == nil {
				o.TotalValue = decimal.NewNullDecimal(d)
			}
		case ColumnInstallments:
			o.Installments, _ = strconv.Atoi(s)
		case ColumnArrivedAt:
			o.ArrivedAt = nil
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				o.ArrivedAt = &t
			}
		}
	}
}

// IsEditableColumn reports whether col may be written through a partial update.
func IsEditableColumn(col string) bool {
	switch col {
	case ColumnID, ColumnTenantID, ColumnOrderNumber, ColumnCreatedAt, ColumnUpdatedAt:
		return false
	}
	_, ok := (ServiceOrder{}).EditableFields()[col]
	return ok || col == ColumnArrivedAt || col == ColumnPaymentReference
}

// ParseDate parses a DateLayout date. ok is false for empty or malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
