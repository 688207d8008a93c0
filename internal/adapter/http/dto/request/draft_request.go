package request

import (
	"strings"

	"opticai/internal/domain/orderform"
)

type StartDraftRequest struct {
	OrderID string `json:"order_id"`
}

// SetFieldsRequest carries raw keystroke values keyed by form field name
// (the column names, e.g. "telefone_cliente").
type SetFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

func (r SetFieldsRequest) ToFields() map[orderform.Field]string {
	out := make(map[orderform.Field]string, len(r.Fields))
	for k, v := range r.Fields {
		out[orderform.Field(strings.TrimSpace(k))] = v
	}
	return out
}

type AdjustRequest struct {
	Field string  `json:"field" binding:"required"`
	Delta float64 `json:"delta" binding:"required"`
}

type BlurRequest struct {
	Field string `json:"field" binding:"required"`
}

type OrderNumberRequest struct {
	OrderNumber int `json:"order_number" binding:"required,min=1"`
}
