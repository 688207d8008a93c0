package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStatus represents the outcome reported by the payment provider.
type ChargeStatus string

const (
	ChargeStatusPending  ChargeStatus = "pending"
	ChargeStatusApproved ChargeStatus = "approved"
	ChargeStatusRejected ChargeStatus = "rejected"
)

// OrderCharge is one attempt to collect an order's total through Mercado Pago.
//
// ProviderPayloadRaw keeps the provider response for traceability; the order
// itself only stores the provider payment id as its payment reference.
type OrderCharge struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"order_id"`
	TenantID           string          `json:"tenant_id"`
	OrderNumber        int             `json:"order_number"`
	Amount             decimal.Decimal `json:"amount"`
	Status             ChargeStatus    `json:"status"`
	Date               time.Time       `json:"date"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
