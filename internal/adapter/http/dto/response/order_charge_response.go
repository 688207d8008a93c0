package response

import (
	"encoding/json"
	"time"

	"opticai/internal/domain/entities"
)

type OrderChargeResponse struct {
	ChargeID    string    `json:"charge_id"`
	OrderID     string    `json:"order_id"`
	OrderNumber int       `json:"order_number"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromOrderCharge(c entities.OrderCharge) OrderChargeResponse {
	res := OrderChargeResponse{
		ChargeID:           c.ID,
		OrderID:            c.OrderID,
		OrderNumber:        c.OrderNumber,
		Amount:             c.Amount.StringFixed(2),
		Status:             string(c.Status),
		Date:               c.Date,
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
	}
	var payload map[string]interface{}
	if len(c.ProviderPayloadRaw) > 0 && json.Unmarshal(c.ProviderPayloadRaw, &payload) == nil {
		res.ProviderPayload = payload
	}
	return res
}
