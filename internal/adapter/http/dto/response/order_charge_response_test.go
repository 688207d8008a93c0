package response

import (
	"encoding/json"
	"testing"
	"time"

	"opticai/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOrderCharge(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123,"status":"approved"}`)

	c := entities.OrderCharge{
		ID:                 "chg-1",
		OrderID:            "ord-1",
		OrderNumber:        42,
		Amount:             decimal.RequireFromString("350.5"),
		Status:             entities.ChargeStatusApproved,
		Date:               now,
		ProviderPayloadRaw: raw,
	}

	res := FromOrderCharge(c)
	if res.ChargeID != "chg-1" || res.OrderID != "ord-1" || res.OrderNumber != 42 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != "350.50" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.ProviderPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
	}
	if res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}

	t.Run("invalid raw payload keeps only the raw text", func(t *testing.T) {
		c.ProviderPayloadRaw = json.RawMessage(`not-json`)
		res := FromOrderCharge(c)
		if res.ProviderPayload != nil {
			t.Fatalf("expected nil parsed payload, got %+v", res.ProviderPayload)
		}
		if res.ProviderPayloadRaw != "not-json" {
			t.Fatalf("unexpected raw payload: %s", res.ProviderPayloadRaw)
		}
	})
}
