package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"opticai/internal/domain/entities"
	"opticai/internal/usecase/interfaces"
)

var (
	ErrChargeNotFound                 = errors.New("order charge not found")
	ErrInvalidChargeID                = errors.New("invalid charge id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderWithoutTotal              = errors.New("order has no total value to charge")
	ErrOrderAlreadyPaid               = errors.New("order already paid")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IOrderChargeUseCase collects an order total through the payment gateway.
//
//   - every attempt is stored as an OrderCharge
//   - an approved charge marks the order as paid and keeps the provider
//     payment id as the order's payment reference

type IOrderChargeUseCase interface {
	Charge(ctx context.Context, tenantID, orderID string, mpPayload json.RawMessage) (entities.OrderCharge, error)
	GetByID(ctx context.Context, id string) (entities.OrderCharge, error)
	ListByOrderID(ctx context.Context, tenantID, orderID string) ([]entities.OrderCharge, error)
}

type OrderChargeUseCase struct {
	repo    interfaces.IOrderChargeRepository
	orders  interfaces.IServiceOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IOrderChargeUseCase = (*OrderChargeUseCase)(nil)

func NewOrderChargeUseCase(repo interfaces.IOrderChargeRepository, orders interfaces.IServiceOrderRepository, gateway interfaces.IPaymentGateway) *OrderChargeUseCase {
	return &OrderChargeUseCase{repo: repo, orders: orders, gateway: gateway}
}

func (u *OrderChargeUseCase) Charge(ctx context.Context, tenantID, orderID string, mpPayload json.RawMessage) (entities.OrderCharge, error) {
	log.Printf("[charge][usecase] charge start tenant_id=%q order_id=%q payload_len=%d", tenantID, orderID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	tenantID = strings.TrimSpace(tenantID)
	orderID = strings.TrimSpace(orderID)
	if tenantID == "" {
		return entities.OrderCharge{}, ErrInvalidTenantID
	}
	if orderID == "" {
		log.Printf("[charge][usecase] invalid order_id (empty)")
		return entities.OrderCharge{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[charge][usecase] invalid payload order_id=%s", orderID)
			return entities.OrderCharge{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[charge][usecase] gateway not configured order_id=%s", orderID)
		return entities.OrderCharge{}, errors.New("payment gateway not configured")
	}
	if u.orders == nil {
		log.Printf("[charge][usecase] order repository not configured order_id=%s", orderID)
		return entities.OrderCharge{}, errors.New("order repository not configured")
	}

	order, err := u.orders.GetByID(ctx, tenantID, orderID)
	if err != nil {
		log.Printf("[charge][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.OrderCharge{}, err
	}
	if order.ID == "" {
		return entities.OrderCharge{}, ErrOrderNotFound
	}
	if order.PaymentStatus == entities.PaymentStatusPaid {
		return entities.OrderCharge{}, ErrOrderAlreadyPaid
	}
	if !order.TotalValue.Valid || !order.TotalValue.Decimal.IsPositive() {
		return entities.OrderCharge{}, ErrOrderWithoutTotal
	}
	amount := order.TotalValue.Decimal.Round(2)
	log.Printf("[charge][usecase] order loaded order_id=%s order_number=%d amount=%s", orderID, order.OrderNumber, amount.StringFixed(2))

	// Mercado Pago uses external_reference to reconcile events with the order.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[charge][usecase] missing payment_method_id order_id=%s", orderID)
			return entities.OrderCharge{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[charge][usecase] missing/invalid payer order_id=%s", orderID)
			return entities.OrderCharge{}, ErrInvalidMPPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = orderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("OS %d", order.OrderNumber)
		}
		// The amount always comes from the stored order.
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Printf("[charge][usecase] payload unmarshal failed order_id=%s err=%v", orderID, err)
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[charge][usecase] mock mode enabled; skipping external payment gateway order_id=%s", orderID)
		providerPaymentID, providerStatus, providerResp, err = mockGatewayResponse(mpPayload, orderID, amount.InexactFloat64())
		if err != nil {
			return entities.OrderCharge{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[charge][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
			return entities.OrderCharge{}, classifyGatewayError(err)
		}
	}
	log.Printf("[charge][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	charge := entities.OrderCharge{
		ID:                 providerPaymentID,
		OrderID:            order.ID,
		TenantID:           order.TenantID,
		OrderNumber:        order.OrderNumber,
		Amount:             amount,
		Status:             chargeStatus(providerStatus),
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
	}
	created, err := u.repo.Create(ctx, charge)
	if err != nil {
		log.Printf("[charge][usecase] charge repository create failed order_id=%s charge_id=%s err=%v", orderID, charge.ID, err)
		return entities.OrderCharge{}, err
	}

	if created.Status == entities.ChargeStatusApproved {
		paid := string(entities.PaymentStatusPaid)
		ref := created.ID
		fields := entities.OrderFields{
			entities.ColumnPaymentStatus:    &paid,
			entities.ColumnPaymentReference: &ref,
		}
		if _, err := u.orders.UpdateFields(ctx, order.TenantID, order.ID, fields); err != nil {
			log.Printf("[charge][usecase] mark order paid failed order_id=%s charge_id=%s err=%v", orderID, created.ID, err)
			return entities.OrderCharge{}, err
		}
	}
	log.Printf("[charge][usecase] charge done order_id=%s charge_id=%s status=%s", orderID, created.ID, created.Status)
	return created, nil
}

func mockGatewayResponse(payload json.RawMessage, orderID string, amount float64) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = orderID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func chargeStatus(providerStatus string) entities.ChargeStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.ChargeStatusApproved
	case "pending", "in_process", "in_mediation":
		return entities.ChargeStatusPending
	default:
		return entities.ChargeStatusRejected
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[charge][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *OrderChargeUseCase) GetByID(ctx context.Context, id string) (entities.OrderCharge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderCharge{}, ErrInvalidChargeID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.OrderCharge{}, err
	}
	if c.ID == "" {
		return entities.OrderCharge{}, ErrChargeNotFound
	}
	return c, nil
}

func (u *OrderChargeUseCase) ListByOrderID(ctx context.Context, tenantID, orderID string) ([]entities.OrderCharge, error) {
	tenantID = strings.TrimSpace(tenantID)
	orderID = strings.TrimSpace(orderID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	charges, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := charges[:0]
	for _, c := range charges {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}
