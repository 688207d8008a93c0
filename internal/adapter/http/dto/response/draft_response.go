package response

import (
	"time"

	"opticai/internal/domain/orderform"
	"opticai/internal/usecase"
)

type WarningResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DraftResponse is the editing session as the form renders it: every field
// value as currently displayed plus the advisory warnings.
type DraftResponse struct {
	ID          string            `json:"id"`
	OrderID     string            `json:"order_id,omitempty"`
	OrderNumber int               `json:"order_number"`
	Fields      map[string]string `json:"fields"`
	Warnings    []WarningResponse `json:"warnings"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func FromDraftView(v usecase.DraftView) DraftResponse {
	d := v.Draft
	fields := make(map[string]string, len(orderform.Fields()))
	for _, f := range orderform.Fields() {
		fields[string(f)] = d.Value(f)
	}
	warnings := make([]WarningResponse, 0, len(v.Warnings))
	for _, w := range v.Warnings {
		warnings = append(warnings, WarningResponse{Field: string(w.Field), Message: w.Message})
	}
	return DraftResponse{
		ID:          d.ID,
		OrderID:     d.OrderID,
		OrderNumber: d.OrderNumber,
		Fields:      fields,
		Warnings:    warnings,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
