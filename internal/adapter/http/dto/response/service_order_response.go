package response

import (
	"time"

	"opticai/internal/domain/entities"
	"opticai/internal/domain/orderform"
	"opticai/internal/usecase"
)

type EyeResponse struct {
	Sphere   string `json:"sphere"`
	Cylinder string `json:"cylinder"`
	Axis     string `json:"axis"`
	DNP      string `json:"dnp"`
	Height   string `json:"height"`
}

type ServiceOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber int    `json:"order_number"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	TaxID       string `json:"tax_id,omitempty"`
	Address     string `json:"address,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`

	SaleDate     string `json:"sale_date"`
	DeliveryDate string `json:"delivery_date,omitempty"`

	RightEye EyeResponse `json:"right_eye"`
	LeftEye  EyeResponse `json:"left_eye"`
	Addition string      `json:"addition,omitempty"`

	LensType        string `json:"lens_type"`
	LensDescription string `json:"lens_description,omitempty"`

	TotalValue        *string `json:"total_value"`
	TotalValueDisplay string  `json:"total_value_display,omitempty"`
	PaymentMethod     string  `json:"payment_method"`
	Installments      int     `json:"installments,omitempty"`
	PaymentStatus     string  `json:"payment_status,omitempty"`

	GeneralNote      string `json:"general_note,omitempty"`
	OrderDescription string `json:"order_description,omitempty"`
	ClientNote       string `json:"client_note,omitempty"`

	Arrived          bool       `json:"arrived"`
	ArrivedAt        *time.Time `json:"arrived_at,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func eye(e entities.EyePrescription) EyeResponse {
	return EyeResponse{Sphere: e.Sphere, Cylinder: e.Cylinder, Axis: e.Axis, DNP: e.DNP, Height: e.Height}
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := ServiceOrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		ClientName:       o.ClientName,
		ClientPhone:      o.ClientPhone,
		TaxID:            o.TaxID,
		Address:          o.Address,
		BirthDate:        o.BirthDate,
		SaleDate:         o.SaleDate,
		DeliveryDate:     o.DeliveryDate,
		RightEye:         eye(o.RightEye),
		LeftEye:          eye(o.LeftEye),
		Addition:         o.Addition,
		LensType:         string(o.LensType),
		LensDescription:  o.LensDescription,
		PaymentMethod:    string(o.PaymentMethod),
		Installments:     o.Installments,
		PaymentStatus:    string(o.PaymentStatus),
		GeneralNote:      o.GeneralNote,
		OrderDescription: o.OrderDescription,
		ClientNote:       o.ClientNote,
		Arrived:          o.ArrivedAt != nil,
		ArrivedAt:        o.ArrivedAt,
		PaymentReference: o.PaymentReference,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.TotalValue.Valid {
		v := o.TotalValue.Decimal.StringFixed(2)
		res.TotalValue = &v
		res.TotalValueDisplay = orderform.FormatCurrency(o.TotalValue.Decimal)
	}
	return res
}

type OrderListItemResponse struct {
	ServiceOrderResponse
	Color string `json:"color"`
}

type OrderListResponse struct {
	Items           []OrderListItemResponse  `json:"items"`
	Statistics      entities.OrderStatistics `json:"statistics"`
	NextOrderNumber int                      `json:"next_order_number"`
}

func FromOrderList(l usecase.OrderList) OrderListResponse {
	items := make([]OrderListItemResponse, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, OrderListItemResponse{
			ServiceOrderResponse: FromServiceOrder(it.Order),
			Color:                string(it.Color),
		})
	}
	return OrderListResponse{
		Items:           items,
		Statistics:      l.Statistics,
		NextOrderNumber: l.NextOrderNumber,
	}
}

type NextOrderNumberResponse struct {
	NextOrderNumber int `json:"next_order_number"`
}
