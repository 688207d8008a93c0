package request

import "encoding/json"

// OrderChargeRequest is the payload of the order charge route.
//
// `mp_payload` is passed to Mercado Pago as-is (raw JSON); the amount and the
// external reference always come from the stored order.

type OrderChargeRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
