package request

import (
	"errors"
	"strings"

	"opticai/internal/domain/entities"
	"opticai/internal/domain/orderform"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTotalValue = errors.New("invalid total value")
)

type EyeRequest struct {
	Sphere   string `json:"sphere"`
	Cylinder string `json:"cylinder"`
	Axis     string `json:"axis"`
	DNP      string `json:"dnp"`
	Height   string `json:"height"`
}

func (r EyeRequest) toEntity() entities.EyePrescription {
	return entities.EyePrescription{
		Sphere:   r.Sphere,
		Cylinder: r.Cylinder,
		Axis:     r.Axis,
		DNP:      r.DNP,
		Height:   r.Height,
	}
}

// ServiceOrderRequest is the full record sent on create and on the edit save.
// Values may arrive raw or already masked; the use case normalizes them.
type ServiceOrderRequest struct {
	OrderNumber int `json:"order_number"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	TaxID       string `json:"tax_id"`
	Address     string `json:"address"`
	BirthDate   string `json:"birth_date"`

	SaleDate     string `json:"sale_date"`
	DeliveryDate string `json:"delivery_date"`

	RightEye EyeRequest `json:"right_eye"`
	LeftEye  EyeRequest `json:"left_eye"`
	Addition string     `json:"addition"`

	LensType        string `json:"lens_type"`
	LensDescription string `json:"lens_description"`

	TotalValue    string `json:"total_value"`
	PaymentMethod string `json:"payment_method"`
	Installments  int    `json:"installments"`
	PaymentStatus string `json:"payment_status"`

	GeneralNote      string `json:"general_note"`
	OrderDescription string `json:"order_description"`
	ClientNote       string `json:"client_note"`
}

func (r ServiceOrderRequest) ToEntity() (entities.ServiceOrder, error) {
	total, err := ResolveTotalValue(r.TotalValue)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return entities.ServiceOrder{
		OrderNumber:      r.OrderNumber,
		ClientName:       r.ClientName,
		ClientPhone:      r.ClientPhone,
		TaxID:            r.TaxID,
		Address:          r.Address,
		BirthDate:        r.BirthDate,
		SaleDate:         r.SaleDate,
		DeliveryDate:     r.DeliveryDate,
		RightEye:         r.RightEye.toEntity(),
		LeftEye:          r.LeftEye.toEntity(),
		Addition:         r.Addition,
		LensType:         entities.LensType(strings.TrimSpace(r.LensType)),
		LensDescription:  r.LensDescription,
		TotalValue:       total,
		PaymentMethod:    entities.PaymentMethod(strings.TrimSpace(r.PaymentMethod)),
		Installments:     r.Installments,
		PaymentStatus:    entities.PaymentStatus(strings.TrimSpace(r.PaymentStatus)),
		GeneralNote:      r.GeneralNote,
		OrderDescription: r.OrderDescription,
		ClientNote:       r.ClientNote,
	}, nil
}

// ResolveTotalValue accepts a plain decimal ("1234.5") or the masked form
// shown on the screen ("1.234,50"). Empty means no value.
func ResolveTotalValue(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	if !strings.Contains(raw, ",") {
		if d, err := decimal.NewFromString(raw); err == nil {
			if d.IsNegative() {
				return decimal.NullDecimal{}, ErrInvalidTotalValue
			}
			return decimal.NewNullDecimal(d.Round(2)), nil
		}
	}
	if strings.Trim(raw, "0123456789.,R$ ") != "" {
		return decimal.NullDecimal{}, ErrInvalidTotalValue
	}
	d, ok := orderform.ParseCurrency(raw)
	if !ok {
		return decimal.NullDecimal{}, ErrInvalidTotalValue
	}
	return decimal.NewNullDecimal(d), nil
}

// OrderListQuery is the query string of the management list.
type OrderListQuery struct {
	Search       string `form:"q"`
	Arrival      string `form:"arrival"`
	DeliveryDate string `form:"delivery_date"`
}

func (q OrderListQuery) ToFilter() entities.OrderFilter {
	arrival := entities.ArrivalFilter(strings.ToLower(strings.TrimSpace(q.Arrival)))
	switch arrival {
	case entities.ArrivalFilterArrived, entities.ArrivalFilterNotArrived:
	default:
		arrival = entities.ArrivalFilterAll
	}
	return entities.OrderFilter{
		Search:       strings.TrimSpace(q.Search),
		Arrival:      arrival,
		DeliveryDate: strings.TrimSpace(q.DeliveryDate),
	}
}
