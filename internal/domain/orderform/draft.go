package orderform

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"opticai/internal/domain/entities"
)

var (
	ErrUnknownField       = errors.New("unknown form field")
	ErrNotOpticalField    = errors.New("field has no optical policy")
	ErrInvalidOrderNumber = errors.New("order number must be positive")
)

// Draft is the mutable state of one editing session. It is owned by a single
// session and never shared; readers take a Snapshot.
type Draft struct {
	ID          string
	TenantID    string
	OrderID     string // set when editing a persisted order
	OrderNumber int
	Values      map[Field]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDraft starts a draft with the form defaults: sale date today, single
// vision lenses, cash payment and the suggested order number.
func NewDraft(tenantID string, today time.Time, orderNumber int) *Draft {
	if orderNumber < 1 {
		orderNumber = 1
	}
	d := &Draft{
		TenantID:    tenantID,
		OrderNumber: orderNumber,
		Values:      make(map[Field]string, len(allFields)),
		CreatedAt:   today,
		UpdatedAt:   today,
	}
	d.Values[FieldSaleDate] = today.Format(entities.DateLayout)
	d.Values[FieldLensType] = string(entities.LensTypeSingleVision)
	d.Values[FieldPaymentMethod] = string(entities.PaymentMethodCash)
	return d
}

// LoadDraft rebuilds a draft from a persisted order for the edit flow.
func LoadDraft(o entities.ServiceOrder, now time.Time) *Draft {
	d := &Draft{
		TenantID:    o.TenantID,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Values:      make(map[Field]string, len(allFields)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for col, v := range o.EditableFields() {
		if v != nil {
			d.Values[Field(col)] = *v
		}
	}
	if o.TotalValue.Valid {
		d.Values[FieldTotalValue] = FormatCurrency(o.TotalValue.Decimal)
	}
	return d
}

// Value returns the current display value of f.
func (d *Draft) Value(f Field) string {
	return d.Values[f]
}

// SetField stores raw after the normalization of f: masks for phone, CPF and
// currency, passthrough for everything else (optical fields are corrected on
// blur). It never rejects a value of a known field.
func (d *Draft) SetField(f Field, raw string) error {
	if !f.Valid() {
		return ErrUnknownField
	}
	switch f {
	case FieldClientPhone:
		raw = MaskPhone(raw)
	case FieldTaxID:
		raw = MaskCPF(raw)
	case FieldTotalValue:
		raw = MaskCurrency(raw)
	}
	d.Values[f] = raw
	return nil
}

// AdjustOpticalField is the +/- stepper of an optical field.
func (d *Draft) AdjustOpticalField(f Field, delta float64) (string, error) {
	kind, ok := f.OpticalKind()
	if !ok {
		return "", ErrNotOpticalField
	}
	v := StepOptical(kind, d.Values[f], delta)
	d.Values[f] = v
	return v, nil
}

// ValidateOnBlur corrects an optical field in place to its nearest legal
// value. Applying it twice yields the same value.
func (d *Draft) ValidateOnBlur(f Field) (string, error) {
	kind, ok := f.OpticalKind()
	if !ok {
		return "", ErrNotOpticalField
	}
	v := CorrectOptical(kind, d.Values[f])
	d.Values[f] = v
	return v, nil
}

// SetOrderNumber overrides the suggested number before saving.
func (d *Draft) SetOrderNumber(n int) error {
	if n < 1 {
		return ErrInvalidOrderNumber
	}
	d.OrderNumber = n
	return nil
}

// Validate runs the blocking validation on the current snapshot.
func (d *Draft) Validate() error {
	return ValidateOrder(d.Snapshot())
}

// Clone returns a deep copy of d.
func (d *Draft) Clone() *Draft {
	c := *d
	c.Values = make(map[Field]string, len(d.Values))
	for k, v := range d.Values {
		c.Values[k] = v
	}
	return &c
}

// Snapshot converts the draft into an immutable order record. Addition is
// dropped unless the lens is multifocal and installments unless the
// payment is on credit.
func (d *Draft) Snapshot() entities.ServiceOrder {
	v := func(f Field) string { return strings.TrimSpace(d.Values[f]) }

	o := entities.ServiceOrder{
		ID:          d.OrderID,
		TenantID:    d.TenantID,
		OrderNumber: d.OrderNumber,

		ClientName:  v(FieldClientName),
		ClientPhone: v(FieldClientPhone),
		TaxID:       v(FieldTaxID),
		Address:     v(FieldAddress),
		BirthDate:   v(FieldBirthDate),

		SaleDate:     v(FieldSaleDate),
		DeliveryDate: v(FieldDeliveryDate),

		RightEye: entities.EyePrescription{
			Sphere:   v(FieldSphereRight),
			Cylinder: v(FieldCylinderRight),
			Axis:     v(FieldAxisRight),
			DNP:      v(FieldDNPRight),
			Height:   v(FieldHeightRight),
		},
		LeftEye: entities.EyePrescription{
			Sphere:   v(FieldSphereLeft),
			Cylinder: v(FieldCylinderLeft),
			Axis:     v(FieldAxisLeft),
			DNP:      v(FieldDNPLeft),
			Height:   v(FieldHeightLeft),
		},

		LensType:        entities.LensType(v(FieldLensType)),
		LensDescription: v(FieldLensDescription),

		PaymentMethod: entities.PaymentMethod(v(FieldPaymentMethod)),
		PaymentStatus: entities.PaymentStatus(v(FieldPaymentStatus)),

		GeneralNote:      v(FieldGeneralNote),
		OrderDescription: v(FieldOrderDescription),
		ClientNote:       v(FieldClientNote),
	}
	if o.LensType == entities.LensTypeMultifocal {
		o.Addition = v(FieldAddition)
	}
	if o.PaymentMethod == entities.PaymentMethodCredit {
		o.Installments, _ = strconv.Atoi(Digits(v(FieldInstallments)))
	}
	if total, ok := ParseCurrency(v(FieldTotalValue)); ok {
		o.TotalValue.Decimal = total
		o.TotalValue.Valid = true
	}
	return o
}

// Normalize applies the draft rules to an order that was posted whole:
// optical values are corrected as on blur, and addition and installments are
// dropped when they do not apply. Tracking fields are kept.
func Normalize(o entities.ServiceOrder) entities.ServiceOrder {
	d := LoadDraft(o, o.CreatedAt)
	for f := range opticalKinds {
		_, _ = d.ValidateOnBlur(f)
	}
	n := d.Snapshot()
	n.ArrivedAt = o.ArrivedAt
	n.PaymentReference = o.PaymentReference
	n.CreatedAt = o.CreatedAt
	n.UpdatedAt = o.UpdatedAt
	return n
}
